package Apis

import (
	"log"
	"net/http"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetRoutes(c *fiber.Ctx) error {
	var routes []Models.Route
	if err := Models.DB.Order("route_name asc").Find(&routes).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch routes",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    routes,
	})
}

func CreateRoute(c *fiber.Ctx) error {
	var route Models.Route
	if err := c.BodyParser(&route); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if route.RouteName == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "route_name is required",
		})
	}
	if err := Models.DB.Create(&route).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't create route",
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Route created",
		"data":    route,
	})
}

func UpdateRoute(c *fiber.Ctx) error {
	var route Models.Route
	if err := Models.DB.First(&route, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Route not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch route",
		})
	}

	var updated Models.Route
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	updated.ID = route.ID
	updated.CreatedAt = route.CreatedAt
	if err := Models.DB.Save(&updated).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update route",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Route updated",
		"data":    updated,
	})
}

func DeleteRoute(c *fiber.Ctx) error {
	var route Models.Route
	if err := Models.DB.First(&route, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Route not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch route",
		})
	}
	if err := Models.DB.Delete(&route).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete route",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Route deleted",
	})
}
