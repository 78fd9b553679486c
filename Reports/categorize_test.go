package Reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"diesel", "Diesel", BucketDiesel},
		{"fuel surcharge", "Fuel Surcharge", BucketDiesel},
		{"driver allowance", "Driver Allowance", BucketDriver},
		{"salary advance", "Salary Advance", BucketDriver},
		{"toll", "Toll Plaza", BucketRoute},
		{"route fee", "Route Fee", BucketRoute},
		{"maintenance", "Maintenance", BucketMaintenance},
		{"repair", "Brake Repair", BucketMaintenance},
		{"govt", "Govt Levy", BucketGovtDuty},
		{"road tax", "Road Tax", BucketGovtDuty},
		{"customs duty", "Customs Duty", BucketGovtDuty},
		{"unknown", "Snacks", BucketOthers},
		{"empty name", "", BucketOthers},
		{"case insensitive", "dIeSeL", BucketDiesel},
		// First match wins: fuel beats driver
		{"priority", "Driver Fuel", BucketDiesel},
		// Tax beats nothing earlier in "Municipal Tax"
		{"municipal tax", "Municipal Tax", BucketGovtDuty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.category))
		})
	}
}

func TestSplitExpensesClosure(t *testing.T) {
	items := []ExpenseItem{
		{CategoryName: "Diesel", Amount: 120.45},
		{CategoryName: "Driver Allowance", Amount: 33.33},
		{CategoryName: "Toll Plaza", Amount: 80},
		{CategoryName: "Engine Repair", Amount: 410.9},
		{CategoryName: "Road Tax", Amount: 55},
		{CategoryName: "Snacks", Amount: 12.5},
		{CategoryName: "", Amount: 7.77},
	}
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}

	buckets := SplitExpenses(items)
	assert.InDelta(t, sum, buckets.Total(), 1e-9)
	assert.Equal(t, 120.45, buckets.Diesel)
	assert.Equal(t, 33.33, buckets.Driver)
	assert.Equal(t, 80.0, buckets.Route)
	assert.Equal(t, 410.9, buckets.Maintenance)
	assert.Equal(t, 55.0, buckets.GovtDuty)
	assert.InDelta(t, 20.27, buckets.Others, 1e-9)
}

func TestSplitExpensesEmpty(t *testing.T) {
	buckets := SplitExpenses(nil)
	assert.Equal(t, Buckets{}, buckets)
	assert.Equal(t, 0.0, buckets.Total())
}

func TestBucketsHalf(t *testing.T) {
	buckets := Buckets{Diesel: 100, Driver: 50, Route: 30, Maintenance: 21, GovtDuty: 10, Others: 9}
	half := buckets.Half()
	assert.Equal(t, 110.0, half.Total())
	assert.InDelta(t, buckets.Total(), half.Total()*2, 1e-9)
	assert.Equal(t, 50.0, half.Diesel)
	assert.Equal(t, 10.5, half.Maintenance)
}
