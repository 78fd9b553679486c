package Reports

import (
	"strings"
)

// ExpenseItem is the slice of an expense the sheet cares about.
type ExpenseItem struct {
	CategoryName string
	Amount       float64
}

// Buckets holds the per-trip expense totals by sheet column.
type Buckets struct {
	Diesel      float64
	Driver      float64
	Route       float64
	Maintenance float64
	GovtDuty    float64
	Others      float64
}

func (b Buckets) Total() float64 {
	return b.Diesel + b.Driver + b.Route + b.Maintenance + b.GovtDuty + b.Others
}

// Half splits every bucket evenly, used for two-way trips where each
// leg carries half the expenses.
func (b Buckets) Half() Buckets {
	return Buckets{
		Diesel:      b.Diesel / 2,
		Driver:      b.Driver / 2,
		Route:       b.Route / 2,
		Maintenance: b.Maintenance / 2,
		GovtDuty:    b.GovtDuty / 2,
		Others:      b.Others / 2,
	}
}

func (b Buckets) Add(other Buckets) Buckets {
	return Buckets{
		Diesel:      b.Diesel + other.Diesel,
		Driver:      b.Driver + other.Driver,
		Route:       b.Route + other.Route,
		Maintenance: b.Maintenance + other.Maintenance,
		GovtDuty:    b.GovtDuty + other.GovtDuty,
		Others:      b.Others + other.Others,
	}
}

// Bucket names, matching the sheet's expense columns.
const (
	BucketDiesel      = "diesel"
	BucketDriver      = "driver"
	BucketRoute       = "route"
	BucketMaintenance = "maintenance"
	BucketGovtDuty    = "govt_duty"
	BucketOthers      = "others"
)

// Categorize maps a category name to a sheet bucket. Matching is
// case-insensitive substring, first match wins, and anything
// unrecognised (including an empty name) lands in others so no amount
// is ever dropped.
func Categorize(categoryName string) string {
	name := strings.ToLower(categoryName)
	switch {
	case strings.Contains(name, "diesel") || strings.Contains(name, "fuel"):
		return BucketDiesel
	case strings.Contains(name, "driver") || strings.Contains(name, "salary"):
		return BucketDriver
	case strings.Contains(name, "route") || strings.Contains(name, "toll"):
		return BucketRoute
	case strings.Contains(name, "maintenance") || strings.Contains(name, "repair"):
		return BucketMaintenance
	case strings.Contains(name, "govt") || strings.Contains(name, "tax") || strings.Contains(name, "duty"):
		return BucketGovtDuty
	default:
		return BucketOthers
	}
}

// SplitExpenses buckets a trip's expenses. The bucket totals always sum
// to the total of the input amounts.
func SplitExpenses(items []ExpenseItem) Buckets {
	var b Buckets
	for _, item := range items {
		switch Categorize(item.CategoryName) {
		case BucketDiesel:
			b.Diesel += item.Amount
		case BucketDriver:
			b.Driver += item.Amount
		case BucketRoute:
			b.Route += item.Amount
		case BucketMaintenance:
			b.Maintenance += item.Amount
		case BucketGovtDuty:
			b.GovtDuty += item.Amount
		default:
			b.Others += item.Amount
		}
	}
	return b
}
