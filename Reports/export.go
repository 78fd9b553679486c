package Reports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoTrips means the requested period had no trips; no workbook is
// produced in that case.
var ErrNoTrips = errors.New("no trips found for the selected period")

// Period sheet columns, A through Y.
var periodHeaders = []string{
	"Date", "Out", "Returned", "From", "To", "Start", "Finished",
	"Dist KM", "Reason for trip", "Driver", "Direction",
	"Cash", "Online", "Paytm", "Others", "Agent", "G.Total",
	"Diesel", "Driver", "Route Exp.", "Maintenance", "Govt. duty",
	"Others", "Total Exp.", "N.Income",
}

var periodWidths = []float64{
	12, 10, 10, 18, 18, 10, 10, 9, 20, 15, 11,
	10, 10, 10, 10, 10, 11,
	10, 10, 10, 12, 10, 10, 11, 12,
}

// Single-trip sheet drops the Direction and Agent columns.
var tripHeaders = []string{
	"Date", "Out", "Returned", "From", "To", "Start", "Finished",
	"Dist KM", "Reason for trip", "Driver",
	"Cash", "Online", "Paytm", "Others", "G.Total",
	"Diesel", "Driver", "Route Exp.", "Maintenance", "Govt. duty",
	"Others", "Total Exp.", "N.Income",
}

var tripWidths = []float64{
	12, 10, 10, 18, 18, 10, 10, 9, 20, 15,
	10, 10, 10, 10, 11,
	10, 10, 10, 12, 10, 10, 11, 12,
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}

// BuildPeriodWorkbook renders the period trip sheet: one sheet per bus
// plus a fleet summary sheet.
func BuildPeriodWorkbook(buses []BusTripData, periodLabel string) (*excelize.File, error) {
	if len(buses) == 0 {
		return nil, ErrNoTrips
	}

	f := excelize.NewFile()
	used := make(map[string]bool)

	for i, bus := range buses {
		sheetName := uniqueSheetName(bus.VehicleNo, used)
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, fmt.Errorf("error creating sheet: %v", err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeBusSheet(f, sheetName, bus, periodLabel); err != nil {
			return nil, err
		}
	}

	if err := writeSummarySheet(f, buses, periodLabel); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// BuildTripWorkbook renders a single trip's sheet, padded to ten data
// rows like the printed books the office used before.
func BuildTripWorkbook(rows []TripRow, vehicleNo, periodLabel string) (*excelize.File, error) {
	if len(rows) == 0 {
		return nil, ErrNoTrips
	}

	f := excelize.NewFile()
	sheetName := "Trip Sheet"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	titleStyle, headerStyle, totalStyle := sheetStyles(f)
	lastCol := len(tripHeaders) - 1

	f.MergeCell(sheetName, cellRef(0, 1), cellRef(lastCol, 1))
	f.SetCellValue(sheetName, "A1", "BUS TRIP SHEET")
	f.SetCellStyle(sheetName, "A1", cellRef(lastCol, 1), titleStyle)

	f.SetCellValue(sheetName, "A2", "Vehicle No:")
	f.SetCellValue(sheetName, "B2", vehicleNo)
	if periodLabel != "" {
		f.SetCellValue(sheetName, "D2", "Period: "+periodLabel)
	}

	// Group headers over the column bands
	groups := []columnGroup{
		{"Hours", 1, 2},
		{"Journey", 3, 4},
		{"Odometer Reading", 5, 6},
		{"Revenue from operation", 10, 14},
		{"Expenses in operation", 15, 21},
	}
	writeGroupRow(f, sheetName, groups, headerStyle, lastCol)

	for i, header := range tripHeaders {
		f.SetCellValue(sheetName, cellRef(i, 4), header)
	}
	f.SetRowStyle(sheetName, 4, 4, headerStyle)

	row := 5
	for _, tripRow := range rows {
		writeDataRow(f, sheetName, row, tripRow, false)
		row++
	}
	// Pad so the printed sheet keeps its shape. Filler rows carry
	// zeros in the Dist KM, G.Total, Total Exp. and N.Income columns.
	for ; row < 15; row++ {
		for _, col := range []int{7, 14, 21, 22} {
			f.SetCellValue(sheetName, cellRef(col, row), 0)
		}
	}

	total := BusTotals(rows)
	writeDataRow(f, sheetName, row, total, false)
	f.SetRowStyle(sheetName, row, row, totalStyle)

	for i, width := range tripWidths {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, width)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeBusSheet(f *excelize.File, sheetName string, bus BusTripData, periodLabel string) error {
	titleStyle, headerStyle, totalStyle := sheetStyles(f)
	lastCol := len(periodHeaders) - 1

	f.MergeCell(sheetName, cellRef(0, 1), cellRef(lastCol, 1))
	f.SetCellValue(sheetName, "A1", "BUS TRIP SHEET")
	f.SetCellStyle(sheetName, "A1", cellRef(lastCol, 1), titleStyle)

	f.SetCellValue(sheetName, "A2", "Vehicle No: "+bus.VehicleNo)
	f.SetCellValue(sheetName, "D2", "Period: "+periodLabel)

	groups := []columnGroup{
		{"Hours", 1, 2},
		{"Journey", 3, 4},
		{"Odometer Reading", 5, 6},
		{"Revenue from operation", 11, 16},
		{"Expenses in operation", 17, 23},
	}
	writeGroupRow(f, sheetName, groups, headerStyle, lastCol)

	for i, header := range periodHeaders {
		f.SetCellValue(sheetName, cellRef(i, 4), header)
	}
	f.SetRowStyle(sheetName, 4, 4, headerStyle)

	row := 5
	for _, tripRow := range bus.Rows {
		writeDataRow(f, sheetName, row, tripRow, true)
		row++
	}

	total := BusTotals(bus.Rows)
	writeDataRow(f, sheetName, row, total, true)
	f.SetRowStyle(sheetName, row, row, totalStyle)

	for i, width := range periodWidths {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, width)
	}
	return nil
}

type columnGroup struct {
	label      string
	start, end int
}

func writeGroupRow(f *excelize.File, sheetName string, groups []columnGroup, style, lastCol int) {
	for _, group := range groups {
		f.MergeCell(sheetName, cellRef(group.start, 3), cellRef(group.end, 3))
		f.SetCellValue(sheetName, cellRef(group.start, 3), group.label)
	}
	f.SetCellStyle(sheetName, "A3", cellRef(lastCol, 3), style)
}

// writeDataRow writes one sheet row. withDirection selects the 25
// column period layout over the 23 column single-trip layout.
func writeDataRow(f *excelize.File, sheetName string, row int, r TripRow, withDirection bool) {
	values := []interface{}{
		r.Date, r.HoursOut, r.HoursReturned, r.From, r.To,
		odometerCell(r.OdometerStart), odometerCell(r.OdometerFinished),
		r.DistanceKM, r.Reason, r.DriverName,
	}
	if withDirection {
		values = append(values, r.Direction)
	}
	values = append(values,
		r.RevenueCash, r.RevenueOnline, r.RevenuePaytm, r.RevenueOthers)
	if withDirection {
		values = append(values, r.RevenueAgent)
	}
	values = append(values,
		r.RevenueTotal,
		r.Expenses.Diesel, r.Expenses.Driver, r.Expenses.Route,
		r.Expenses.Maintenance, r.Expenses.GovtDuty, r.Expenses.Others,
		r.ExpenseTotal, r.NetIncome,
	)
	for col, value := range values {
		f.SetCellValue(sheetName, cellRef(col, row), value)
	}
}

func odometerCell(reading *float64) interface{} {
	if reading == nil {
		return ""
	}
	return *reading
}

func writeSummarySheet(f *excelize.File, buses []BusTripData, periodLabel string) error {
	sheetName := "Summary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("error creating summary sheet: %v", err)
	}

	titleStyle, headerStyle, totalStyle := sheetStyles(f)

	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellValue(sheetName, "A1", "FLEET SUMMARY")
	f.SetCellStyle(sheetName, "A1", "F1", titleStyle)

	f.SetCellValue(sheetName, "A2", "Period: "+periodLabel)

	headers := []string{
		"Vehicle", "Total Trips", "Total Distance (km)",
		"Total Revenue", "Total Expenses", "Net Income",
	}
	for i, header := range headers {
		f.SetCellValue(sheetName, cellRef(i, 4), header)
	}
	f.SetRowStyle(sheetName, 4, 4, headerStyle)

	lines, fleet := FleetSummary(buses)
	row := 5
	for _, line := range lines {
		writeSummaryLine(f, sheetName, row, line)
		row++
	}
	writeSummaryLine(f, sheetName, row, fleet)
	f.SetRowStyle(sheetName, row, row, totalStyle)

	widths := []float64{20, 12, 18, 15, 15, 12}
	for i, width := range widths {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, width)
	}
	return nil
}

func writeSummaryLine(f *excelize.File, sheetName string, row int, line SummaryLine) {
	values := []interface{}{
		line.VehicleNo, line.TripCount, line.DistanceKM,
		line.Revenue, line.Expenses, line.NetIncome,
	}
	for col, value := range values {
		f.SetCellValue(sheetName, cellRef(col, row), value)
	}
}

func sheetStyles(f *excelize.File) (title, header, total int) {
	title, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 14,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D9E1F2"},
			Pattern: 1,
		},
	})
	header, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	total, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	return title, header, total
}

var sheetNameSanitizer = strings.NewReplacer(
	"[", "", "]", "", ":", "", "*", "", "?", "", "/", "-", "\\", "-",
)

// uniqueSheetName fits a registration number into Excel's 31 character
// sheet name limit, appending " (2)", " (3)", ... on collision.
func uniqueSheetName(vehicleNo string, used map[string]bool) string {
	base := sheetNameSanitizer.Replace(vehicleNo)
	if base == "" {
		base = UnknownVehicle
	}
	if len(base) > 31 {
		base = base[:31]
	}
	name := base
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		name = trimmed + suffix
	}
	used[name] = true
	return name
}
