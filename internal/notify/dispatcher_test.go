package notify

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type fakeChannel struct {
	name  string
	fail  error
	sends []string // "user:channel" per attempt
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) Send(ev Event, rec Recipient, content Content) error {
	c.sends = append(c.sends, fmt.Sprintf("%d:%s", rec.UserID, c.name))
	return c.fail
}

func testChannels(fail map[string]error) map[string]Channel {
	out := make(map[string]Channel)
	for _, name := range []string{ChannelDatabase, ChannelMail, ChannelBroadcast, ChannelSMS} {
		out[name] = &fakeChannel{name: name, fail: fail[name]}
	}
	return out
}

func channelNames(results []DeliveryResult) []string {
	seen := map[string]bool{}
	for _, r := range results {
		seen[r.Channel] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func TestDocumentRejectedChannels(t *testing.T) {
	d := Dispatcher{Profile: ProfileProduction, Channels: testChannels(nil)}
	results := d.Dispatch(Event{
		Type:       DocumentRejected,
		Document:   &models.Document{ID: 4, Type: "certificate", Reason: "blurry scan"},
		Recipients: []Recipient{{UserID: 10, Role: "teacher", Email: "t@x.com"}},
	})

	got := channelNames(results)
	want := []string{ChannelBroadcast, ChannelDatabase, ChannelMail}
	if len(got) != len(want) {
		t.Fatalf("channels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("channels = %v, want %v", got, want)
		}
	}
	for _, r := range results {
		if r.Channel == ChannelSMS {
			t.Fatalf("document_rejected must not reach sms")
		}
	}
}

func TestPayoutSMSSingleChannel(t *testing.T) {
	d := Dispatcher{Profile: ProfileProduction, Channels: testChannels(nil)}
	results := d.Dispatch(Event{
		Type:       PayoutSMS,
		Payout:     &models.PayoutRequest{ID: 1, Amount: 15000, Currency: "NGN"},
		Recipients: []Recipient{{UserID: 3, Role: "teacher", Phone: "+2348000000000"}},
	})
	if len(results) != 1 || results[0].Channel != ChannelSMS {
		t.Fatalf("payout_sms should hit exactly the sms channel, got %+v", results)
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
}

func TestBookingApprovedMailOnlyInProduction(t *testing.T) {
	ev := Event{
		Type:       BookingApproved,
		Booking:    &models.Booking{ID: 9, BookingDate: "2026-09-01", StartTime: "10:00"},
		Recipients: []Recipient{{UserID: 5, Role: "student", Email: "s@x.com"}},
	}

	prod := Dispatcher{Profile: ProfileProduction, Channels: testChannels(nil)}
	if got := channelNames(prod.Dispatch(ev)); len(got) != 2 {
		t.Fatalf("production channels = %v, want database+mail", got)
	}

	dev := Dispatcher{Profile: ProfileDevelopment, Channels: testChannels(nil)}
	results := dev.Dispatch(ev)
	if len(results) != 1 || results[0].Channel != ChannelDatabase {
		t.Fatalf("development should be database only, got %+v", results)
	}
}

func TestChannelFailureDoesNotBlockSiblings(t *testing.T) {
	chans := testChannels(map[string]error{ChannelMail: errors.New("smtp down")})
	d := Dispatcher{Profile: ProfileProduction, Channels: chans}

	results := d.Dispatch(Event{
		Type:     DocumentVerified,
		Document: &models.Document{ID: 2, Type: "id_card"},
		Recipients: []Recipient{
			{UserID: 1, Role: "teacher", Email: "a@x.com"},
			{UserID: 2, Role: "teacher", Email: "b@x.com"},
		},
	})

	if len(results) != 6 {
		t.Fatalf("expected 6 attempts (2 recipients x 3 channels), got %d", len(results))
	}
	var failed, ok int
	for _, r := range results {
		if r.Err != nil {
			if !domain.IsDelivery(r.Err) {
				t.Fatalf("channel failure should be a DeliveryError, got %v", r.Err)
			}
			failed++
		} else {
			ok++
		}
	}
	if failed != 2 || ok != 4 {
		t.Fatalf("failed=%d ok=%d, want 2 and 4", failed, ok)
	}

	db := chans[ChannelDatabase].(*fakeChannel)
	if len(db.sends) != 2 {
		t.Fatalf("database channel should still receive both recipients, got %v", db.sends)
	}
}

func TestMissingChannelIsLoggedNotFatal(t *testing.T) {
	d := Dispatcher{Profile: ProfileProduction, Channels: map[string]Channel{}}
	results := d.Dispatch(Event{
		Type:       BookingCreated,
		Booking:    &models.Booking{ID: 1},
		Recipients: []Recipient{{UserID: 1, Role: "teacher"}},
	})
	for _, r := range results {
		if r.Err == nil {
			t.Fatalf("unconfigured channel should report an error")
		}
	}
}

func TestReassignmentVariants(t *testing.T) {
	ev := Event{
		Type:        BookingReassigned,
		Booking:     &models.Booking{ID: 7, BookingDate: "2026-09-05", StartTime: "16:00"},
		SubjectName: "Tajweed",
		TeacherName: "Ustadh B",
		StudentName: "Amina",
		Recipients: []Recipient{
			{UserID: 20, Role: "teacher", Variant: VariantAssigned},
			{UserID: 10, Role: "teacher", Variant: VariantRemoved},
			{UserID: 30, Role: "student", Variant: VariantStudent},
		},
	}

	titles := map[string]string{}
	for _, rec := range ev.Recipients {
		titles[rec.Variant] = ContentFor(ev, rec).Title
	}
	if titles[VariantAssigned] != "New Session Assigned" {
		t.Fatalf("assigned variant title = %q", titles[VariantAssigned])
	}
	if titles[VariantRemoved] != "Session Reassigned" {
		t.Fatalf("removed variant title = %q", titles[VariantRemoved])
	}
	if titles[VariantStudent] != "Teacher Changed" {
		t.Fatalf("student variant title = %q", titles[VariantStudent])
	}

	// Exactly three notifications per channel, one per audience.
	d := Dispatcher{Profile: ProfileProduction, Channels: testChannels(nil)}
	results := d.Dispatch(ev)
	perChannel := map[string]int{}
	for _, r := range results {
		perChannel[r.Channel]++
	}
	if perChannel[ChannelDatabase] != 3 || perChannel[ChannelMail] != 3 {
		t.Fatalf("expected 3 deliveries per channel, got %v", perChannel)
	}
}

func TestMissingSubjectFallsBackToLabel(t *testing.T) {
	ev := Event{
		Type:        BookingCreated,
		Booking:     &models.Booking{ID: 3, BookingDate: "2026-09-01", StartTime: "10:00"},
		StudentName: "Zaid",
	}
	content := ContentFor(ev, Recipient{UserID: 1, Role: "teacher"})
	if want := "Unknown Subject"; !strings.Contains(content.Message, want) {
		t.Fatalf("message %q should contain %q", content.Message, want)
	}
}
