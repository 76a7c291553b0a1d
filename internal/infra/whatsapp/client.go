package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"feedback-app/config"
)

// Client talks to the WhatsApp Cloud API. There is no official Go SDK; the
// API is plain JSON over HTTPS.
type Client struct {
	BaseURL     string
	PhoneID     string
	AccessToken string
	HTTPClient  *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:     config.WHATSAPP_API_URL,
		PhoneID:     config.WHATSAPP_PHONE_ID,
		AccessToken: config.WHATSAPP_ACCESS_TOKEN,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type templateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components,omitempty"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []parameter `json:"parameters,omitempty"`
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendTemplate sends one template message. bodyParams fill the template's
// body placeholders in order.
func (c *Client) SendTemplate(ctx context.Context, to, templateName, langCode string, bodyParams ...string) error {
	if c.AccessToken == "" || c.PhoneID == "" {
		return fmt.Errorf("whatsapp credentials not configured")
	}

	msg := templateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: template{
			Name:     templateName,
			Language: language{Code: langCode},
		},
	}
	if len(bodyParams) > 0 {
		comp := component{Type: "body"}
		for _, p := range bodyParams {
			comp.Parameters = append(comp.Parameters, parameter{Type: "text", Text: p})
		}
		msg.Template.Components = []component{comp}
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
