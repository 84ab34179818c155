package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends one plain-text email. Retries are delegated to the
// provider; a returned error is logged by the dispatcher only.
type Mailer interface {
	SendMail(toName, toAddr, subject, body string) error
}

// MailChannel adapts a Mailer to the dispatcher.
type MailChannel struct {
	Mailer Mailer
}

func (c MailChannel) Name() string { return ChannelMail }

func (c MailChannel) Send(ev Event, rec Recipient, content Content) error {
	if strings.TrimSpace(rec.Email) == "" {
		return fmt.Errorf("recipient %d has no email address", rec.UserID)
	}
	body := content.Message
	if content.ActionURL != "" {
		body = fmt.Sprintf("%s\n\n%s: %s", content.Message, content.ActionText, content.ActionURL)
	}
	return c.Mailer.SendMail(rec.Name, rec.Email, content.Title, body)
}

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridMailer delivers through the SendGrid v3 mail API.
type SendgridMailer struct {
	APIKey      string
	FromName    string
	FromAddr    string
	SubjPrefix  string
}

func (m SendgridMailer) SendMail(toName, toAddr, subject, body string) error {
	p := sgmail.NewPersonalization()
	p.Subject = m.SubjPrefix + subject
	p.AddTos(sgmail.NewEmail(toName, toAddr))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(sgmail.NewEmail(m.FromName, m.FromAddr))
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/plain", body))

	req := sendgrid.GetRequest(m.APIKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// ConsoleMailer logs mails instead of sending them; used under the
// development delivery profile.
type ConsoleMailer struct{}

func (ConsoleMailer) SendMail(toName, toAddr, subject, body string) error {
	payload, _ := json.Marshal(map[string]string{
		"to":      fmt.Sprintf("%s <%s>", toName, toAddr),
		"subject": subject,
		"body":    body,
	})
	log.Printf("[MAIL] console delivery: %s", payload)
	return nil
}
