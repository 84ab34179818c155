package notify

import (
	"strings"
	"testing"
)

type fakeGateway struct {
	to   string
	body string
}

func (g *fakeGateway) SendSMS(to, body string) error {
	g.to = to
	g.body = body
	return nil
}

func TestSMSTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	gw := &fakeGateway{}
	ch := SMSChannel{Gateway: gw}

	err := ch.Send(
		Event{Type: PayoutSMS},
		Recipient{UserID: 1, Phone: "+2348012345678"},
		Content{Message: long},
	)
	if err != nil {
		t.Fatalf("send error: %v", err)
	}

	if len(gw.body) != 160 {
		t.Fatalf("body length = %d, want 160", len(gw.body))
	}
	if !strings.HasSuffix(gw.body, "...") {
		t.Fatalf("truncated body should end with ellipsis")
	}
	if got := strings.TrimSuffix(gw.body, "..."); len(got) != 157 {
		t.Fatalf("kept %d chars before ellipsis, want 157", len(got))
	}
}

func TestSMSShortBodyUntouched(t *testing.T) {
	gw := &fakeGateway{}
	ch := SMSChannel{Gateway: gw}

	msg := "IqraPath: your payout of ₦15,000.00 has been processed."
	if err := ch.Send(Event{Type: PayoutSMS}, Recipient{UserID: 1, Phone: "+234"}, Content{Message: msg}); err != nil {
		t.Fatalf("send error: %v", err)
	}
	if gw.body != msg {
		t.Fatalf("short body was altered: %q", gw.body)
	}
}

func TestSMSMissingPhone(t *testing.T) {
	ch := SMSChannel{Gateway: &fakeGateway{}}
	if err := ch.Send(Event{Type: PayoutSMS}, Recipient{UserID: 1}, Content{Message: "x"}); err == nil {
		t.Fatalf("expected error for missing phone")
	}
}
