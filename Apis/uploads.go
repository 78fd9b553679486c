package Apis

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

const (
	expenseDocsDir   = "./ExpenseDocs"
	expenseThumbsDir = "./ExpenseDocs/thumbs"
)

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff":
		return true
	}
	return false
}

// UploadExpenseDocument stores a receipt photo and, for images, a 300px
// thumbnail next to it. Responds with the URLs the static routes serve.
func UploadExpenseDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "document file is required",
		})
	}

	if err := os.MkdirAll(expenseThumbsDir, 0755); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't prepare upload directory",
		})
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	savedPath := filepath.Join(expenseDocsDir, filename)
	if err := c.SaveFile(file, savedPath); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't save document",
		})
	}

	response := fiber.Map{
		"document_url": "/expense-docs/" + filename,
	}

	if isImageFile(filename) {
		img, err := imaging.Open(savedPath)
		if err != nil {
			log.Println(err.Error())
		} else {
			thumb := imaging.Thumbnail(img, 300, 300, imaging.Lanczos)
			thumbPath := filepath.Join(expenseThumbsDir, filename)
			if err := imaging.Save(thumb, thumbPath); err != nil {
				log.Println(err.Error())
			} else {
				response["thumbnail_url"] = "/expense-docs/thumbs/" + filename
			}
		}
	}

	response["message"] = "Document uploaded"
	return c.Status(http.StatusCreated).JSON(response)
}
