package Controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"Fleet/Models"
	"Fleet/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var user Models.User
	Models.DB.Where("email = ?", data["email"]).First(&user)
	if user.ID == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(data["password"])); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Incorrect password",
		})
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(user.ID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(middleware.SecretKey()))
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't login",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(time.Hour * 24),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "Logged in",
		"data":    user,
	})
}

type RegisterInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone"`
	Permission int    `json:"permission" validate:"min=1,max=4"`
}

func RegisterUser(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if msgs := ValidateStruct(input); len(msgs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  msgs,
		})
	}

	password, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't register user",
		})
	}

	user := Models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   password,
		Phone:      input.Phone,
		Permission: input.Permission,
	}
	if err := Models.DB.Create(&user).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Email already registered",
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered",
		"data":    user,
	})
}

// User returns the account resolved by the Verify middleware.
func User(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}
	return c.JSON(fiber.Map{
		"message": "OK",
		"data":    user,
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

func ValidateToken(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Valid token",
		"data": fiber.Map{
			"id":         user.ID,
			"permission": user.Permission,
		},
	})
}

func FetchUsers(c *fiber.Ctx) error {
	var users []Models.User
	if err := Models.DB.Find(&users).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch users",
		})
	}
	return c.JSON(fiber.Map{
		"message": "OK",
		"data":    users,
	})
}
