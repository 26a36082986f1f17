package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spycraft69/GAMA-Product-Request/internal/config"
)

func sampleData() RequestNotificationData {
	return RequestNotificationData{
		To:               "owner@hexcrawl.example",
		ProductName:      "Gloom Harbor",
		OrganizationName: "Northside Library",
		OrganizationType: "EDUCATIONAL",
		ContactName:      "Sam Okafor",
		ContactEmail:     "sam@northside.example",
		ShippingAddress:  "12 Birch Street",
		ShippingCity:     "Madison",
		ShippingState:    "WI",
		ShippingZip:      "53703",
		ShippingCountry:  "USA",
	}
}

func TestSendRequestNotification_UnconfiguredIsNoop(t *testing.T) {
	svc := NewSMTPEmailService(config.SMTPConfig{Host: "smtp.example.com"})

	// Partially configured transport must skip, not dial
	err := svc.SendRequestNotification(context.Background(), sampleData())

	require.NoError(t, err)
}

func TestBuildRequestNotificationHTML(t *testing.T) {
	data := sampleData()
	data.Message = "First line\nSecond <line>"

	got := buildRequestNotificationHTML(data)

	assert.Contains(t, got, "<h2>New Sample Product Request</h2>")
	assert.Contains(t, got, "<strong>Product:</strong> Gloom Harbor")
	assert.Contains(t, got, "Northside Library (EDUCATIONAL)")
	assert.Contains(t, got, "Madison, WI 53703")
	assert.Contains(t, got, "First line<br />Second &lt;line&gt;")
	assert.NotContains(t, got, "<line>")
}

func TestBuildRequestNotificationHTML_NoMessageSection(t *testing.T) {
	got := buildRequestNotificationHTML(sampleData())

	assert.NotContains(t, got, "Message:")
}

func TestBuildMIMEMessage(t *testing.T) {
	msg := string(buildMIMEMessage(
		"noreply@example.com",
		"owner@hexcrawl.example",
		"New sample product request for Gloom Harbor",
		"plain body",
		"<p>html body</p>",
	))

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: owner@hexcrawl.example\r\n")
	assert.Contains(t, msg, "Subject: New sample product request for Gloom Harbor\r\n")
	assert.Contains(t, msg, "Content-Type: multipart/alternative;")
	assert.Contains(t, msg, "text/plain")
	assert.Contains(t, msg, "text/html")
	assert.Contains(t, msg, "plain body")
	assert.Contains(t, msg, "<p>html body</p>")
}
