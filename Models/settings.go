package Models

import (
	"gorm.io/gorm"
)

type AdminSetting struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

// GetSetting returns the stored value for key, or fallback when unset.
func GetSetting(key, fallback string) string {
	var setting AdminSetting
	if err := DB.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	if setting.Value == "" {
		return fallback
	}
	return setting.Value
}

func SetSetting(key, value string) error {
	var setting AdminSetting
	err := DB.Where(AdminSetting{Key: key}).FirstOrCreate(&setting).Error
	if err != nil {
		return err
	}
	setting.Value = value
	return DB.Save(&setting).Error
}
