package email

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/spycraft69/GAMA-Product-Request/internal/config"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// RequestNotificationData carries everything the publisher notice needs.
// It is the asynq task payload, so all fields must be JSON-serializable.
type RequestNotificationData struct {
	To               string `json:"to"`
	ProductName      string `json:"productName"`
	OrganizationName string `json:"organizationName"`
	OrganizationType string `json:"organizationType"`
	ContactName      string `json:"contactName"`
	ContactEmail     string `json:"contactEmail"`
	ShippingAddress  string `json:"shippingAddress"`
	ShippingCity     string `json:"shippingCity"`
	ShippingState    string `json:"shippingState"`
	ShippingZip      string `json:"shippingZip"`
	ShippingCountry  string `json:"shippingCountry"`
	Message          string `json:"message,omitempty"`
}

type EmailService interface {
	SendRequestNotification(ctx context.Context, data RequestNotificationData) error
}

type smtpEmailService struct {
	cfg config.SMTPConfig
}

func NewSMTPEmailService(cfg config.SMTPConfig) EmailService {
	return &smtpEmailService{cfg: cfg}
}

// enabled reports whether the transport is fully configured.
// A partially configured transport is treated as disabled.
func (s *smtpEmailService) enabled() bool {
	return s.cfg.Host != "" && s.cfg.Port != "" && s.cfg.User != "" && s.cfg.Password != "" && s.cfg.From != ""
}

// SendRequestNotification mails the publisher about a new demo request.
// When SMTP is not configured the send is skipped with a warning, not an
// error, so the notification path stays a clean no-op in local setups.
func (s *smtpEmailService) SendRequestNotification(ctx context.Context, data RequestNotificationData) error {
	if !s.enabled() {
		logger.Warn("SMTP environment variables not fully configured. Email skipped.", map[string]interface{}{
			"to":      data.To,
			"product": data.ProductName,
		})
		return nil
	}

	subject := fmt.Sprintf("New sample product request for %s", data.ProductName)
	plainText := fmt.Sprintf(
		"A new sample product request has been submitted for %s by %s (%s). Contact: %s (%s).",
		data.ProductName, data.OrganizationName, data.OrganizationType, data.ContactName, data.ContactEmail,
	)
	htmlBody := buildRequestNotificationHTML(data)

	msg := buildMIMEMessage(s.cfg.From, data.To, subject, plainText, htmlBody)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{data.To}, msg); err != nil {
		return fmt.Errorf("send request notification: %w", err)
	}

	return nil
}

// buildRequestNotificationHTML renders the publisher-facing summary.
// Only the free-text message is escaped; newlines become <br />.
func buildRequestNotificationHTML(data RequestNotificationData) string {
	var b strings.Builder

	b.WriteString("<h2>New Sample Product Request</h2>\n")
	b.WriteString(fmt.Sprintf("<p><strong>Product:</strong> %s</p>\n", html.EscapeString(data.ProductName)))
	b.WriteString(fmt.Sprintf("<p><strong>Organization:</strong> %s (%s)</p>\n",
		html.EscapeString(data.OrganizationName), html.EscapeString(data.OrganizationType)))
	b.WriteString(fmt.Sprintf("<p><strong>Contact:</strong> %s &lt;%s&gt;</p>\n",
		html.EscapeString(data.ContactName), html.EscapeString(data.ContactEmail)))
	b.WriteString(fmt.Sprintf("<p><strong>Shipping Address:</strong><br />\n%s<br />\n%s, %s %s<br />\n%s\n</p>\n",
		html.EscapeString(data.ShippingAddress),
		html.EscapeString(data.ShippingCity),
		html.EscapeString(data.ShippingState),
		html.EscapeString(data.ShippingZip),
		html.EscapeString(data.ShippingCountry)))

	if data.Message != "" {
		formatted := strings.ReplaceAll(html.EscapeString(data.Message), "\n", "<br />")
		b.WriteString(fmt.Sprintf("<p><strong>Message:</strong><br />%s</p>\n", formatted))
	}

	return b.String()
}

// buildMIMEMessage assembles a multipart/alternative message with plain
// text and HTML parts.
func buildMIMEMessage(from, to, subject, plainText, htmlBody string) []byte {
	boundary := "gama-mail-boundary"
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(plainText)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(b.String())
}
