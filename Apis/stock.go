package Apis

import (
	"log"
	"net/http"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetStockItems(c *fiber.Ctx) error {
	var items []Models.StockItem
	if err := Models.DB.Order("name asc").Find(&items).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch stock items",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    items,
	})
}

func CreateStockItem(c *fiber.Ctx) error {
	var item Models.StockItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if item.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "name is required",
		})
	}
	if err := Models.DB.Create(&item).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't create stock item",
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Stock item created",
		"data":    item,
	})
}

func UpdateStockItem(c *fiber.Ctx) error {
	var item Models.StockItem
	if err := Models.DB.First(&item, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Stock item not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch stock item",
		})
	}

	var updated Models.StockItem
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	updated.ID = item.ID
	updated.CreatedAt = item.CreatedAt
	if err := Models.DB.Save(&updated).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update stock item",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Stock item updated",
		"data":    updated,
	})
}

type StockTransactionInput struct {
	StockItemID uint    `json:"stock_item_id"`
	TripID      *uint   `json:"trip_id"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	Remarks     string  `json:"remarks"`
}

// RecordStockTransaction books stock in or out and keeps the item
// quantity in step, rejecting withdrawals the shelf can't cover.
func RecordStockTransaction(c *fiber.Ctx) error {
	var input StockTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if input.Type != "in" && input.Type != "out" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "type must be in or out",
		})
	}
	if input.Quantity <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "quantity must be positive",
		})
	}

	var item Models.StockItem
	if err := Models.DB.First(&item, input.StockItemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Stock item not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch stock item",
		})
	}

	if input.Type == "out" && item.Quantity < input.Quantity {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Insufficient stock",
		})
	}

	transaction := Models.StockTransaction{
		StockItemID: item.ID,
		TripID:      input.TripID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Remarks:     input.Remarks,
	}

	tx := Models.DB.Begin()
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't record transaction",
		})
	}
	if input.Type == "in" {
		item.Quantity += input.Quantity
	} else {
		item.Quantity -= input.Quantity
	}
	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update stock item",
		})
	}
	tx.Commit()

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Transaction recorded",
		"data":    transaction,
	})
}

func GetStockTransactions(c *fiber.Ctx) error {
	var transactions []Models.StockTransaction
	query := Models.DB.Preload("StockItem").Order("created_at desc")
	if itemID := c.Query("stock_item_id"); itemID != "" {
		query = query.Where("stock_item_id = ?", itemID)
	}
	if err := query.Find(&transactions).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch transactions",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    transactions,
	})
}
