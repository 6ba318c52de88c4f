package order_groups_export_get

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"tms/internal/entities"
	"tms/internal/service/ordergroup"
)

const sheetName = "Order groups"

var headers = []string{"Code", "Status", "Warehouse", "Orders", "Customers", "Quantity", "CBM", "Trips", "Updated at"}

func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	return f, nil
}

// writeGroup пишет группу в строку row (строки считаются с 1, первая занята заголовком).
func writeGroup(f *excelize.File, row int, group *entities.OrderGroup) error {
	summary := ordergroup.Summarize(group)

	orders := make([]string, 0, len(group.Orders))
	customers := make([]string, 0, len(group.Orders))
	trips := make([]string, 0, len(group.Orders))
	for i := range group.Orders {
		order := &group.Orders[i]
		orders = append(orders, order.Code)
		if order.Customer != nil {
			customers = append(customers, order.Customer.Name)
		}
		for j := range order.Trips {
			trips = append(trips, order.Trips[j].Code+" ("+order.Trips[j].LastStatusType.String()+")")
		}
	}

	warehouse := ""
	if group.Warehouse != nil {
		warehouse = group.Warehouse.Name
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := []any{
		group.Code,
		group.LastStatusType.String(),
		warehouse,
		strings.Join(orders, ", "),
		strings.Join(customers, ", "),
		summary.Quantity,
		summary.CBM.InexactFloat64(),
		strings.Join(trips, ", "),
		group.UpdatedAt.Format("02.01.2006 15:04"),
	}
	return f.SetSheetRow(sheetName, cell, &values)
}
