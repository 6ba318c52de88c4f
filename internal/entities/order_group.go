package entities

import "time"

type OrderGroup struct {
	ID             int64
	OrganizationID int64
	Code           string
	LastStatusType OrderGroupStatusType
	Warehouse      *Warehouse
	ProcessByOrder *OrderRef
	Orders         []Order
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderGroupStatusType string

const (
	OrderGroupApproved     OrderGroupStatusType = "APPROVED"
	OrderGroupTranshipment OrderGroupStatusType = "TRANSHIPMENT"
	OrderGroupInStock      OrderGroupStatusType = "IN_STOCK"
	OrderGroupInbound      OrderGroupStatusType = "INBOUND"
	OrderGroupOutbound     OrderGroupStatusType = "OUTBOUND"
	OrderGroupInProgress   OrderGroupStatusType = "IN_PROGRESS"
	OrderGroupDelivered    OrderGroupStatusType = "DELIVERED"
	OrderGroupCompleted    OrderGroupStatusType = "COMPLETED"
	OrderGroupCanceled     OrderGroupStatusType = "CANCELED"
)

func (s OrderGroupStatusType) String() string {
	return string(s)
}

// OrderGroupStatuses в порядке вкладок счетчиков.
var OrderGroupStatuses = []OrderGroupStatusType{
	OrderGroupApproved,
	OrderGroupTranshipment,
	OrderGroupInbound,
	OrderGroupInStock,
	OrderGroupOutbound,
	OrderGroupInProgress,
	OrderGroupDelivered,
	OrderGroupCompleted,
	OrderGroupCanceled,
}

type Warehouse struct {
	ID   int64
	Code string
	Name string
}

type OrderRef struct {
	ID   int64
	Code string
}

type OrderGroupRef struct {
	ID   int64
	Code string
}

type OrderGroupAction string

const (
	ActionInbound          OrderGroupAction = "INBOUND"
	ActionOutbound         OrderGroupAction = "OUTBOUND"
	ActionShare            OrderGroupAction = "SHARE"
	ActionUpdateTripStatus OrderGroupAction = "UPDATE_TRIP_STATUS"
	ActionSendNotification OrderGroupAction = "SEND_NOTIFICATION"
)

func (a OrderGroupAction) String() string {
	return string(a)
}

type OrderGroupFilter struct {
	OrganizationID int64
	Statuses       []OrderGroupStatusType
	Keywords       string
	Page           int
	PageSize       int
}

type OrderGroupPage struct {
	Items      []OrderGroup
	Pagination Pagination
}

type OrderGroupStatusCount struct {
	Status OrderGroupStatusType
	Count  int64
}

// OrderGroupStatusUpdate описывает смену статуса с проверкой оптимистичной блокировки.
type OrderGroupStatusUpdate struct {
	OrganizationID    int64
	OrderGroupID      int64
	From              OrderGroupStatusType
	To                OrderGroupStatusType
	ExpectedUpdatedAt time.Time
}

type InboundCommand struct {
	OrganizationID    int64
	OrderGroupID      int64
	OrderGroupCode    string
	WarehouseID       *int64
	VehicleID         int64
	ExpectedUpdatedAt time.Time
}

type OutboundCommand struct {
	OrganizationID    int64
	OrderGroupID      int64
	OrderGroupCode    string
	OrderIDs          []int64
	ExpectedUpdatedAt time.Time
}

type TripStatusCommand struct {
	OrganizationID int64
	OrderGroupID   int64
	TripID         int64
	TripCode       string
	DriverReport   DriverReport
}
