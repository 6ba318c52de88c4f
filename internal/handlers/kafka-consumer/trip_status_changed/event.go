package trip_status_changed

type changedEvent struct {
	OrganizationID   int64  `json:"organizationId"`
	TripCode         string `json:"tripCode"`
	DriverReportName string `json:"driverReportName"`
	DriverReportType string `json:"driverReportType"`
}
