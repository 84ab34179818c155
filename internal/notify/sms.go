package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// smsMaxLen is the single-segment GSM limit; longer bodies are truncated
// with a trailing "...".
const smsMaxLen = 160

// SMSChannel sends through a Termii-style REST gateway. The sender id
// is fixed per account.
type SMSChannel struct {
	Gateway SMSGateway
}

// SMSGateway is the transport; implemented by TermiiGateway and faked
// in tests.
type SMSGateway interface {
	SendSMS(to, body string) error
}

func (c SMSChannel) Name() string { return ChannelSMS }

func (c SMSChannel) Send(ev Event, rec Recipient, content Content) error {
	if strings.TrimSpace(rec.Phone) == "" {
		return fmt.Errorf("recipient %d has no phone number", rec.UserID)
	}
	return c.Gateway.SendSMS(rec.Phone, utils.TruncateRunes(content.Message, smsMaxLen))
}

// TermiiGateway posts to the Termii sms/send endpoint.
type TermiiGateway struct {
	APIKey   string
	SenderID string
	BaseURL  string
	Client   *http.Client
}

func (g TermiiGateway) SendSMS(to, body string) error {
	base := g.BaseURL
	if base == "" {
		base = "https://api.ng.termii.com"
	}
	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	payload, err := json.Marshal(map[string]string{
		"api_key": g.APIKey,
		"to":      to,
		"from":    g.SenderID,
		"sms":     body,
		"type":    "plain",
		"channel": "generic",
	})
	if err != nil {
		return err
	}

	res, err := client.Post(base+"/api/sms/send", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms gateway status %d", res.StatusCode)
	}
	return nil
}
