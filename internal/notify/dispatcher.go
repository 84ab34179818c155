package notify

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// DeliveryResult records one (recipient, channel) attempt.
type DeliveryResult struct {
	UserID  int64
	Channel string
	Err     error
}

// Dispatcher fans a single domain event out to the channels configured
// for its type. Each (recipient, channel) pair is an independent
// attempt: a failing channel is logged and never blocks siblings or the
// domain action that triggered the event. Dispatch does not deduplicate;
// callers dispatch exactly once per logical event.
type Dispatcher struct {
	Profile   Profile
	Channels  map[string]Channel
	RequestID string
}

// Dispatch delivers ev to every recipient over every configured channel
// and returns the attempt log. It never returns an error.
func (d Dispatcher) Dispatch(ev Event) []DeliveryResult {
	names := ChannelsFor(ev.Type, d.Profile)
	results := make([]DeliveryResult, 0, len(names)*len(ev.Recipients))

	for _, rec := range ev.Recipients {
		content := ContentFor(ev, rec)
		for _, name := range names {
			res := DeliveryResult{UserID: rec.UserID, Channel: name}
			ch, ok := d.Channels[name]
			if !ok {
				res.Err = domain.DeliveryError{Channel: name, Err: fmt.Errorf("channel not configured")}
			} else if err := ch.Send(ev, rec, content); err != nil {
				res.Err = domain.DeliveryError{Channel: name, Err: err}
			}
			if res.Err != nil {
				utils.LogEvent(d.RequestID, "notify", "dispatch",
					fmt.Sprintf("event=%s user_id=%d %v", ev.Type, rec.UserID, res.Err))
			}
			results = append(results, res)
		}
	}
	return results
}
