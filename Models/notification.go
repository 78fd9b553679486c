package Models

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type" gorm:"default:info"` // info, warning, error
	Link    string `json:"link"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
