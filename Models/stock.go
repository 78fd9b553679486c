package Models

import (
	"gorm.io/gorm"
)

type StockItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Unit        string  `json:"unit"` // litre, piece, kg
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"min_quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type StockTransaction struct {
	gorm.Model
	StockItemID uint    `json:"stock_item_id" gorm:"index"`
	TripID      *uint   `json:"trip_id"`
	Type        string  `json:"type"` // in or out
	Quantity    float64 `json:"quantity"`
	Remarks     string  `json:"remarks"`

	StockItem *StockItem `json:"stock_item,omitempty" gorm:"foreignKey:StockItemID"`
}
