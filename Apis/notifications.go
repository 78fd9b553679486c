package Apis

import (
	"log"
	"net/http"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMyNotifications(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}

	var notifications []Models.Notification
	query := Models.DB.Where("user_id = ?", user.ID).Order("created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Find(&notifications).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch notifications",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    notifications,
	})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}

	var notification Models.Notification
	err := Models.DB.Where("user_id = ?", user.ID).First(&notification, c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch notification",
		})
	}

	if err := Models.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update notification",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notification read",
	})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}

	err := Models.DB.Model(&Models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true).Error
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update notifications",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "All notifications read",
	})
}
