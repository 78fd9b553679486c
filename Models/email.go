package Models

import (
	"os"
	"strconv"
)

type EmailConfig struct {
	SMTPServer   string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TLSEnabled   bool
	SkipTLSCheck bool
}

// EmailMessage represents an email to be sent
type EmailMessage struct {
	To      []string
	CC      []string
	BCC     []string
	Subject string
	Body    string
	IsHTML  bool
}

// LoadEmailConfig reads SMTP settings from the environment. godotenv
// populates these from .env in main.
func LoadEmailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		SMTPServer: os.Getenv("SMTP_SERVER"),
		SMTPPort:   port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		FromEmail:  os.Getenv("SMTP_FROM_EMAIL"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		TLSEnabled: os.Getenv("SMTP_TLS") != "false",
	}
}
