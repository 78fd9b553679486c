package Models

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Single shared device token for the admin companion app.
type FCMToken struct {
	gorm.Model
	Value string `json:"value"`
}

type UpdateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func UpdateToken(c *fiber.Ctx) error {
	var input UpdateTokenRequest
	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var token FCMToken
	if err := DB.Where(FCMToken{Model: gorm.Model{ID: 1}}).FirstOrCreate(&token).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't store token",
		})
	}

	token.Value = input.Token
	if err := DB.Save(&token).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't store token",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Token updated",
	})
}

// CurrentToken returns the stored device token, empty when none yet.
func CurrentToken() string {
	var token FCMToken
	if err := DB.First(&token, 1).Error; err != nil {
		return ""
	}
	return token.Value
}
