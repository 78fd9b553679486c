package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"Fleet/Models"
)

// SendEmail sends an email using the provided configuration and message details
func SendEmail(config Models.EmailConfig, message Models.EmailMessage) error {
	if config.SMTPServer == "" {
		return fmt.Errorf("SMTP server not configured")
	}
	if len(message.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", config.FromName, config.FromEmail)
	headers["To"] = strings.Join(message.To, ", ")
	headers["Subject"] = message.Subject
	if len(message.CC) > 0 {
		headers["Cc"] = strings.Join(message.CC, ", ")
	}
	if message.IsHTML {
		headers["MIME-Version"] = "1.0"
		headers["Content-Type"] = "text/html; charset=UTF-8"
	} else {
		headers["Content-Type"] = "text/plain; charset=UTF-8"
	}

	var messageBody strings.Builder
	for key, value := range headers {
		messageBody.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	messageBody.WriteString("\r\n")
	messageBody.WriteString(message.Body)

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPServer)

	var recipients []string
	recipients = append(recipients, message.To...)
	recipients = append(recipients, message.CC...)
	recipients = append(recipients, message.BCC...)

	serverAddr := fmt.Sprintf("%s:%d", config.SMTPServer, config.SMTPPort)

	if !config.TLSEnabled {
		return smtp.SendMail(serverAddr, auth, config.FromEmail, recipients, []byte(messageBody.String()))
	}

	tlsConfig := &tls.Config{
		ServerName:         config.SMTPServer,
		InsecureSkipVerify: config.SkipTLSCheck,
	}
	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, config.SMTPServer)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %v", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %v", err)
	}
	if err = client.Mail(config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %v", err)
	}
	for _, recipient := range recipients {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to add recipient %s: %v", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data connection: %v", err)
	}
	if _, err = w.Write([]byte(messageBody.String())); err != nil {
		return fmt.Errorf("failed to write email body: %v", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data connection: %v", err)
	}

	return client.Quit()
}
