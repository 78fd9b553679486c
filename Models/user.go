package Models

import (
	"gorm.io/gorm"
)

// Permission levels: 1 driver, 2 repair org, 3 admin, 4 super admin
type User struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   []byte `json:"-"`
	Phone      string `json:"phone"`
	Permission int    `json:"permission"`
}
