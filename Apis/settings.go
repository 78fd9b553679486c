package Apis

import (
	"log"
	"net/http"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	var settings []Models.AdminSetting
	if err := Models.DB.Find(&settings).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch settings",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    settings,
	})
}

func UpdateSetting(c *fiber.Ctx) error {
	var input struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if input.Key == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "key is required",
		})
	}
	if err := Models.SetSetting(input.Key, input.Value); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update setting",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Setting updated",
	})
}
