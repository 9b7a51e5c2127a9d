package services

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"sort"
	"strings"
)

// EmailService notifies the school office about new enquiry submissions via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	notifyTo string
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}

	return &EmailService{
		host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     getEnvOrDefault("SMTP_FROM", "noreply@greenvalleyschool.edu"),
		notifyTo: os.Getenv("ENQUIRY_NOTIFY_EMAIL"),
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// IsConfigured checks if SMTP and a notification recipient are configured
func (e *EmailService) IsConfigured() bool {
	return e.username != "" && e.password != "" && e.notifyTo != ""
}

// SendEnquiryNotification emails the office about a fresh enquiry submission.
// Callers treat failures as non-fatal; the enquiry is already persisted.
func (e *EmailService) SendEnquiryNotification(enquiryType string, fields map[string]string) error {
	if !e.IsConfigured() {
		log.Printf("SMTP not configured, skipping notification for %s enquiry", enquiryType)
		return nil
	}

	subject := fmt.Sprintf("New %s enquiry received", enquiryType)
	body := e.buildEnquiryEmailBody(enquiryType, fields)

	return e.sendEmail(e.notifyTo, subject, body)
}

// buildEnquiryEmailBody creates the HTML email body for an enquiry notification
func (e *EmailService) buildEnquiryEmailBody(enquiryType string, fields map[string]string) string {
	var rows strings.Builder
	for _, key := range sortedKeys(fields) {
		rows.WriteString(fmt.Sprintf(
			"        <tr><td class=\"label\">%s</td><td>%s</td></tr>\n",
			key, fields[key]))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New %s enquiry</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: #ffffff;
            border-radius: 8px;
            padding: 40px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        }
        h2 {
            color: #2d5016;
            margin-top: 0;
        }
        table {
            width: 100%%;
            border-collapse: collapse;
        }
        td {
            padding: 8px 12px;
            border-bottom: 1px solid #eee;
        }
        td.label {
            color: #666;
            width: 40%%;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>New %s enquiry</h2>
        <p>A visitor submitted a new enquiry through the school website.</p>
        <table>
%s        </table>
        <p style="margin-top: 20px; color: #999;">
            Review and respond from the admin panel.
        </p>
    </div>
</body>
</html>`, enquiryType, enquiryType, rows.String())
}

// sortedKeys returns map keys in a stable order for the email body
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sendEmail sends an email using SMTP with TLS
func (e *EmailService) sendEmail(to, subject, htmlBody string) error {
	// Build the email message with proper headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("Green Valley School <%s>", e.from)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"
	headers["X-Mailer"] = "Green Valley School Mailer"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	// Connect to the SMTP server
	addr := fmt.Sprintf("%s:%d", e.host, e.port)

	auth := smtp.PlainAuth("", e.username, e.password, e.host)

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         e.host,
	}

	conn, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if err := conn.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if err := conn.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := conn.Mail(e.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	_, err = w.Write([]byte(message.String()))
	if err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}

	err = w.Close()
	if err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	conn.Quit()

	log.Printf("Enquiry notification sent to: %s", to)
	return nil
}
