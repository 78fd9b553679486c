package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	Console       bool
	File          bool
	LogFilePath   string
	Format        string // "json" or "text"
	IncludeUserID bool
	SkipPaths     []string
}

// LogData contains all the information that will be logged
type LogData struct {
	Timestamp     time.Time     `json:"timestamp"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	URL           string        `json:"url"`
	Status        int           `json:"status"`
	Latency       time.Duration `json:"latency"`
	IP            string        `json:"ip"`
	UserAgent     string        `json:"user_agent"`
	Error         string        `json:"error,omitempty"`
	UserID        interface{}   `json:"user_id"`
	Username      string        `json:"username"`
	ContentLength int64         `json:"content_length"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Console:       true,
		File:          true,
		LogFilePath:   "logs/requests.log",
		Format:        "json",
		IncludeUserID: true,
		SkipPaths:     []string{"/health"},
	}
}

// LoggingMiddleware creates a new logging middleware with the given configuration
func LoggingMiddleware(config ...LogConfig) fiber.Handler {
	cfg := DefaultLogConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.File {
		if err := os.MkdirAll("logs", 0755); err != nil {
			log.Printf("Error creating logs directory: %v\n", err)
		}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		for _, skipPath := range cfg.SkipPaths {
			if c.Path() == skipPath {
				return c.Next()
			}
		}

		err := c.Next()

		latency := time.Since(start)

		var userID interface{}
		var username string
		if cfg.IncludeUserID {
			if user, ok := c.Locals("user").(Models.User); ok {
				userID = user.ID
				username = user.Name
			}
		}

		logData := LogData{
			Timestamp:     start,
			Method:        c.Method(),
			Path:          c.Path(),
			URL:           c.OriginalURL(),
			Status:        c.Response().StatusCode(),
			Latency:       latency,
			IP:            c.IP(),
			UserAgent:     c.Get("User-Agent"),
			UserID:        userID,
			Username:      username,
			ContentLength: int64(len(c.Response().Body())),
		}
		if err != nil {
			logData.Error = err.Error()
		}

		logRequest(cfg, logData)

		return err
	}
}

func logRequest(cfg LogConfig, data LogData) {
	var logMessage string
	switch cfg.Format {
	case "json":
		jsonData, _ := json.Marshal(data)
		logMessage = string(jsonData)
	default:
		logMessage = formatTextLog(data)
	}

	if cfg.Console {
		log.Println(logMessage)
	}
	if cfg.File {
		logToFile(cfg.LogFilePath, logMessage)
	}
}

func formatTextLog(data LogData) string {
	userIDStr := ""
	if data.UserID != nil {
		userIDStr = fmt.Sprintf(" user:%v", data.UserID)
	}
	return fmt.Sprintf(
		"[%s] %s %s %d %s %s%s",
		data.Timestamp.Format("2006-01-02 15:04:05"),
		data.Method,
		data.Path,
		data.Status,
		data.Latency,
		data.IP,
		userIDStr,
	)
}

func logToFile(filePath, message string) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer file.Close()

	if len(message) > 0 && message[len(message)-1] != '\n' {
		message += "\n"
	}
	if _, err := file.WriteString(message); err != nil {
		log.Printf("Error writing to log file: %v\n", err)
	}
}

// RequestLogger creates a middleware that logs detailed request information
func RequestLogger() fiber.Handler {
	return LoggingMiddleware(LogConfig{
		Console:       true,
		File:          true,
		LogFilePath:   "logs/requests.log",
		Format:        "json",
		IncludeUserID: true,
		SkipPaths:     []string{"/health", "/expense-docs"},
	})
}

// ErrorLogger creates a middleware that only logs failed requests
func ErrorLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		if err != nil || c.Response().StatusCode() >= 400 {
			logData := LogData{
				Timestamp: start,
				Method:    c.Method(),
				Path:      c.Path(),
				URL:       c.OriginalURL(),
				Status:    c.Response().StatusCode(),
				Latency:   time.Since(start),
				IP:        c.IP(),
				UserAgent: c.Get("User-Agent"),
			}
			if user, ok := c.Locals("user").(Models.User); ok {
				logData.UserID = user.ID
				logData.Username = user.Name
			}
			if err != nil {
				logData.Error = err.Error()
			}

			jsonData, _ := json.Marshal(logData)
			logToFile("logs/errors.log", string(jsonData))
		}

		return err
	}
}
