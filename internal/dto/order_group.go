package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"tms/internal/entities"
	"tms/internal/service/ordergroup"
)

type OrderGroup struct {
	ID               int64           `json:"id"`
	Code             string          `json:"code"`
	LastStatusType   string          `json:"lastStatusType"`
	Warehouse        *Warehouse      `json:"warehouse,omitempty"`
	ProcessByOrder   *Ref            `json:"processByOrder,omitempty"`
	Orders           []Order         `json:"orders"`
	AvailableActions []string        `json:"availableActions"`
	Quantity         string          `json:"quantity"`
	CBM              decimal.Decimal `json:"cbm"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type Warehouse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Ref struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type Order struct {
	ID                     int64               `json:"id"`
	Code                   string              `json:"code"`
	Weight                 decimal.NullDecimal `json:"weight"`
	CBM                    decimal.NullDecimal `json:"cbm"`
	UnitCode               string              `json:"unitCode,omitempty"`
	Customer               *Customer           `json:"customer,omitempty"`
	Route                  *Ref                `json:"route,omitempty"`
	IsInboundConsolidation bool                `json:"isInboundConsolidation"`
	Trips                  []Trip              `json:"trips"`
}

type Customer struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Trip struct {
	ID             int64      `json:"id"`
	Code           string     `json:"code"`
	VehicleNumber  string     `json:"vehicleNumber,omitempty"`
	DriverID       *int64     `json:"driverId,omitempty"`
	DriverFullName string     `json:"driverFullName,omitempty"`
	PickupDate     *time.Time `json:"pickupDate,omitempty"`
	DeliveryDate   *time.Time `json:"deliveryDate,omitempty"`
	LastStatusType string     `json:"lastStatusType"`
}

type OrderGroupList struct {
	Items      []OrderGroup `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	PageCount int   `json:"pageCount"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func NewOrderGroup(group *entities.OrderGroup) OrderGroup {
	summary := ordergroup.Summarize(group)

	out := OrderGroup{
		ID:               group.ID,
		Code:             group.Code,
		LastStatusType:   group.LastStatusType.String(),
		Orders:           make([]Order, 0, len(group.Orders)),
		AvailableActions: make([]string, 0, len(summary.Actions)),
		Quantity:         summary.Quantity,
		CBM:              summary.CBM,
		UpdatedAt:        group.UpdatedAt,
	}
	if group.Warehouse != nil {
		out.Warehouse = &Warehouse{ID: group.Warehouse.ID, Code: group.Warehouse.Code, Name: group.Warehouse.Name}
	}
	if group.ProcessByOrder != nil {
		out.ProcessByOrder = &Ref{ID: group.ProcessByOrder.ID, Code: group.ProcessByOrder.Code}
	}
	for _, action := range summary.Actions {
		out.AvailableActions = append(out.AvailableActions, action.String())
	}
	for i := range group.Orders {
		out.Orders = append(out.Orders, newOrder(&group.Orders[i]))
	}
	return out
}

func newOrder(order *entities.Order) Order {
	out := Order{
		ID:                     order.ID,
		Code:                   order.Code,
		Weight:                 order.Weight,
		CBM:                    order.CBM,
		UnitCode:               order.UnitCode(),
		IsInboundConsolidation: ordergroup.IsInboundConsolidationOrder(order),
		Trips:                  make([]Trip, 0, len(order.Trips)),
	}
	if order.Customer != nil {
		out.Customer = &Customer{ID: order.Customer.ID, Code: order.Customer.Code, Name: order.Customer.Name}
	}
	if order.Route != nil {
		out.Route = &Ref{ID: order.Route.ID, Code: order.Route.Code}
	}
	for i := range order.Trips {
		out.Trips = append(out.Trips, newTrip(&order.Trips[i]))
	}
	return out
}

func newTrip(trip *entities.OrderTrip) Trip {
	out := Trip{
		ID:             trip.ID,
		Code:           trip.Code,
		PickupDate:     trip.PickupDate,
		DeliveryDate:   trip.DeliveryDate,
		LastStatusType: trip.LastStatusType.String(),
	}
	if trip.Vehicle != nil {
		out.VehicleNumber = trip.Vehicle.VehicleNumber
	}
	if trip.Driver != nil {
		id := trip.Driver.ID
		out.DriverID = &id
		out.DriverFullName = trip.Driver.FullName()
	}
	return out
}

func NewOrderGroupList(page *entities.OrderGroupPage) OrderGroupList {
	out := OrderGroupList{
		Items: make([]OrderGroup, 0, len(page.Items)),
		Pagination: Pagination{
			Page:      page.Pagination.Page,
			PageSize:  page.Pagination.PageSize,
			Total:     page.Pagination.Total,
			PageCount: page.Pagination.PageCount,
		},
	}
	for i := range page.Items {
		out.Items = append(out.Items, NewOrderGroup(&page.Items[i]))
	}
	return out
}

func NewStatusCounts(counts []entities.OrderGroupStatusCount) []StatusCount {
	out := make([]StatusCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, StatusCount{Status: c.Status.String(), Count: c.Count})
	}
	return out
}
