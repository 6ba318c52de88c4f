package dto

import "github.com/shopspring/decimal"

type InboundRequest struct {
	VehicleID int64 `json:"vehicleId"`
}

type NotificationRequest struct {
	FullName string `json:"fullName"`
}

type TripStatusRequest struct {
	DriverReportName string `json:"driverReportName"`
	DriverReportType string `json:"driverReportType"`
}

type TripDriverExpensesRequest struct {
	OrderCode         string                   `json:"orderCode"`
	Entities          []TripDriverExpenseInput `json:"entities"`
	SubcontractorCost decimal.NullDecimal      `json:"subcontractorCost"`
	BridgeToll        decimal.NullDecimal      `json:"bridgeToll"`
	OtherCost         decimal.NullDecimal      `json:"otherCost"`
	Notes             *string                  `json:"notes"`
}

type TripDriverExpenseInput struct {
	DriverExpenseKey string          `json:"driverExpenseKey"`
	Amount           decimal.Decimal `json:"amount"`
}
