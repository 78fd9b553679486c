package Reports

import (
	"strings"
	"time"

	"Fleet/Models"
)

// TripRow is one printed line of the bus trip sheet. A one-way trip
// produces one row, a two-way trip an outward and a return row.
type TripRow struct {
	Date          string
	HoursOut      string
	HoursReturned string
	From          string
	To            string

	// Odometer cells stay blank when the reading was never entered
	OdometerStart    *float64
	OdometerFinished *float64
	DistanceKM       float64

	Reason     string
	DriverName string
	Direction  string

	RevenueCash   float64
	RevenueOnline float64
	RevenuePaytm  float64
	RevenueOthers float64
	RevenueAgent  float64
	RevenueTotal  float64

	Expenses     Buckets
	ExpenseTotal float64

	NetIncome float64
}

const (
	directionOutward = "→ Outward"
	directionReturn  = "↩ Return"
)

// TripRows maps a trip and its approved expenses onto sheet rows.
// Revenue is always recomputed from the channel columns. For two-way
// trips every expense bucket is split evenly between the two legs.
func TripRows(trip Models.Trip, items []ExpenseItem) []TripRow {
	from, to := tripEndpoints(trip)
	driver := driverName(trip)
	reason := trip.Notes
	if reason == "" {
		reason = "Trip"
	}

	buckets := SplitExpenses(items)
	twoWay := trip.TripType == "two_way"
	legBuckets := buckets
	if twoWay {
		legBuckets = buckets.Half()
	}
	legExpense := legBuckets.Total()

	outward := TripRow{
		Date:             formatSheetDate(trip.StartDate),
		HoursOut:         formatSheetTime(trip.DepartureTime),
		HoursReturned:    formatSheetTime(trip.ArrivalTime),
		From:             from,
		To:               to,
		OdometerStart:    trip.OdometerStart,
		OdometerFinished: trip.OdometerEnd,
		DistanceKM:       odometerDelta(trip.OdometerStart, trip.OdometerEnd),
		Reason:           reason,
		DriverName:       driver,
		Direction:        directionOutward,
		RevenueCash:      trip.RevenueCash,
		RevenueOnline:    trip.RevenueOnline,
		RevenuePaytm:     trip.RevenuePaytm,
		RevenueOthers:    trip.RevenueOthers,
		RevenueAgent:     trip.RevenueAgent,
		RevenueTotal:     trip.OutwardRevenue(),
		Expenses:         legBuckets,
		ExpenseTotal:     legExpense,
	}
	outward.NetIncome = outward.RevenueTotal - outward.ExpenseTotal

	if !twoWay {
		return []TripRow{outward}
	}

	ret := TripRow{
		Date:             formatSheetDate(trip.StartDate),
		HoursOut:         formatSheetTime(trip.ReturnDepartureTime),
		HoursReturned:    formatSheetTime(trip.ReturnArrivalTime),
		From:             to,
		To:               from,
		OdometerStart:    trip.ReturnOdometerStart,
		OdometerFinished: trip.ReturnOdometerEnd,
		DistanceKM:       odometerDelta(trip.ReturnOdometerStart, trip.ReturnOdometerEnd),
		Reason:           "Return",
		DriverName:       driver,
		Direction:        directionReturn,
		RevenueCash:      trip.ReturnRevenueCash,
		RevenueOnline:    trip.ReturnRevenueOnline,
		RevenuePaytm:     trip.ReturnRevenuePaytm,
		RevenueOthers:    trip.ReturnRevenueOthers,
		RevenueAgent:     trip.ReturnRevenueAgent,
		RevenueTotal:     trip.ReturnRevenue(),
		Expenses:         legBuckets,
		ExpenseTotal:     legExpense,
	}
	ret.NetIncome = ret.RevenueTotal - ret.ExpenseTotal

	return []TripRow{outward, ret}
}

// tripEndpoints resolves the From/To cells from the route addresses,
// falling back to splitting the route name on " - ".
func tripEndpoints(trip Models.Trip) (string, string) {
	if trip.Route == nil {
		return "", ""
	}
	from := trip.Route.FromAddress
	to := trip.Route.ToAddress
	if from != "" || to != "" {
		return from, to
	}
	parts := strings.SplitN(trip.Route.RouteName, " - ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return trip.Route.RouteName, ""
}

func driverName(trip Models.Trip) string {
	if trip.DriverNameSnapshot != "" {
		return trip.DriverNameSnapshot
	}
	if trip.Driver != nil {
		return trip.Driver.Name
	}
	return ""
}

func odometerDelta(start, end *float64) float64 {
	if start == nil || end == nil {
		return 0
	}
	return *end - *start
}

func formatSheetDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2/1/06")
}

// formatSheetTime renders a "15:04" clock value as "03:04 pm".
func formatSheetTime(clock string) string {
	if clock == "" {
		return ""
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("03:04 pm")
}
