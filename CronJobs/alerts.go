package CronJobs

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"Fleet/Models"
	"Fleet/email"

	"gorm.io/gorm"
)

// CheckStockAlerts emails the admin a table of stock items at or below
// their minimum quantity.
func CheckStockAlerts(db *gorm.DB) error {
	var items []Models.StockItem
	err := db.Where("quantity <= min_quantity").Order("name asc").Find(&items).Error
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	recipient := Models.GetSetting("admin_alert_email", "")
	if recipient == "" {
		log.Println("Stock alert skipped: admin_alert_email not configured")
		return nil
	}

	message := Models.EmailMessage{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Low stock alert: %d item(s) need restocking", len(items)),
		Body:    buildStockAlertHTML(items),
		IsHTML:  true,
	}
	return email.SendEmail(Models.LoadEmailConfig(), message)
}

func buildStockAlertHTML(items []Models.StockItem) string {
	var b strings.Builder
	b.WriteString("<h2>Low Stock Alert</h2>")
	b.WriteString("<p>The following items are at or below their minimum quantity:</p>")
	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>Item</th><th>Unit</th><th>Quantity</th><th>Minimum</th></tr>")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%.2f</td><td>%.2f</td></tr>",
			item.Name, item.Unit, item.Quantity, item.MinQuantity))
	}
	b.WriteString("</table>")
	return b.String()
}

// CheckTaxAlerts emails the admin about buses whose road tax falls due
// within the configured number of days (tax_alert_days, default 7).
func CheckTaxAlerts(db *gorm.DB) error {
	days, err := strconv.Atoi(Models.GetSetting("tax_alert_days", "7"))
	if err != nil || days < 1 {
		days = 7
	}

	var buses []Models.Bus
	if err := db.Where("next_tax_due_date != ''").Find(&buses).Error; err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, days)
	var due []Models.Bus
	for _, bus := range buses {
		dueDate, err := time.Parse("2006-01-02", bus.NextTaxDueDate)
		if err != nil {
			continue
		}
		if !dueDate.After(cutoff) {
			due = append(due, bus)
		}
	}
	if len(due) == 0 {
		return nil
	}

	recipient := Models.GetSetting("admin_alert_email", "")
	if recipient == "" {
		log.Println("Tax alert skipped: admin_alert_email not configured")
		return nil
	}

	message := Models.EmailMessage{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Road tax due: %d bus(es) within %d days", len(due), days),
		Body:    buildTaxAlertHTML(due, now),
		IsHTML:  true,
	}
	return email.SendEmail(Models.LoadEmailConfig(), message)
}

func buildTaxAlertHTML(buses []Models.Bus, now time.Time) string {
	var b strings.Builder
	b.WriteString("<h2>Road Tax Due</h2>")
	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>Registration</th><th>Bus</th><th>Monthly Tax</th><th>Due Date</th><th>Status</th></tr>")
	for _, bus := range buses {
		status := "upcoming"
		if dueDate, err := time.Parse("2006-01-02", bus.NextTaxDueDate); err == nil && dueDate.Before(now) {
			status = "OVERDUE"
		}
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%.2f</td><td>%s</td><td>%s</td></tr>",
			bus.RegistrationNumber, bus.BusName, bus.MonthlyTaxAmount, bus.NextTaxDueDate, status))
	}
	b.WriteString("</table>")
	return b.String()
}
