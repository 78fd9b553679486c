package Models

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatalf("Couldn't open database: %v", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Bus{},
		&Route{},
		&ExpenseCategory{},
		&StockItem{},
		&AdminSetting{},
		&FCMToken{},
	)

	// 2. Tables with simple foreign keys
	DB.AutoMigrate(
		&BusSchedule{},
		&BusTaxRecord{},
		&Notification{},
	)

	// 3. Trips and everything hanging off them
	DB.AutoMigrate(
		&Trip{},
		&Expense{},
		&StockTransaction{},
	)

	seedAdmin()
	seedExpenseCategories()
	SetupBuses()
}

func seedAdmin() {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}
	password, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	admin := User{
		Name:       "Admin",
		Email:      "admin@fleet.local",
		Password:   password,
		Permission: 4,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println(err)
	}
}

func seedExpenseCategories() {
	var count int64
	DB.Model(&ExpenseCategory{}).Count(&count)
	if count > 0 {
		return
	}
	categories := []ExpenseCategory{
		{Name: "Diesel", Icon: "fuel"},
		{Name: "Driver Allowance", Icon: "user"},
		{Name: "Toll", Icon: "road"},
		{Name: "Maintenance", Icon: "wrench"},
		{Name: "Govt Tax", Icon: "landmark"},
		{Name: "Miscellaneous", Icon: "receipt"},
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Println(err)
	}
}

// SetupBuses imports the fleet from Buses.xlsx on first run. Columns:
// registration, name, capacity, type, insurance expiry, monthly tax,
// tax due day.
func SetupBuses() {
	var count int64
	DB.Model(&Bus{}).Count(&count)
	if count > 0 {
		return
	}
	f, err := excelize.OpenFile("Buses.xlsx")
	if err != nil {
		fmt.Println(err)
		return
	}
	var buses []Bus
	rows := f.GetRows("Sheet1")
	for _, row := range rows {
		var bus Bus
		for columnIndex, data := range row {
			if columnIndex == 0 {
				bus.RegistrationNumber = data
			}
			if columnIndex == 1 {
				bus.BusName = data
			}
			if columnIndex == 2 {
				capacity, err := strconv.Atoi(data)
				if err != nil {
					capacity = 0
				}
				bus.Capacity = capacity
			}
			if columnIndex == 3 {
				bus.BusType = data
			}
			if columnIndex == 4 {
				bus.InsuranceExpiryDate = data
			}
			if columnIndex == 5 {
				amount, err := strconv.ParseFloat(data, 64)
				if err != nil {
					amount = 0
				}
				bus.MonthlyTaxAmount = amount
			}
			if columnIndex == 6 {
				day, err := strconv.Atoi(data)
				if err != nil {
					day = 1
				}
				bus.TaxDueDay = day
			}
		}
		if bus.RegistrationNumber == "" {
			continue
		}
		bus.Status = "active"
		buses = append(buses, bus)
	}
	if len(buses) == 0 {
		return
	}
	if err := DB.Create(&buses).Error; err != nil {
		log.Println(err)
	}
}
