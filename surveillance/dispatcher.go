package surveillance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/agrinet/cropguard-api/external/messaging"
	"github.com/agrinet/cropguard-api/schema"
)

// DefaultChannelTimeout bounds a single channel attempt. A timed-out
// attempt becomes a failed NotificationAttempt; it never cancels sibling
// attempts.
const DefaultChannelTimeout = 10 * time.Second

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "dispatcher")
}

// Notifier fans one alert out to the matched farmers and returns the
// complete multiset of delivery attempts once every attempt finished.
type Notifier interface {
	Notify(ctx context.Context, report schema.DiseaseReport, matches []Match) []schema.NotificationAttempt
}

// Dispatcher delivers alerts over every channel a farmer registered.
// Each (farmer, channel) pair is a single independent try: a transport
// failure is recorded and counted, and never blocks or fails the rest of
// the batch.
type Dispatcher struct {
	email   messaging.EmailSender
	sms     messaging.SMSSender
	timeout time.Duration
	scope   tally.Scope
}

func NewDispatcher(email messaging.EmailSender, sms messaging.SMSSender, timeout time.Duration, scope tally.Scope) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultChannelTimeout
	}
	return &Dispatcher{
		email:   email,
		sms:     sms,
		timeout: timeout,
		scope:   scope,
	}
}

// Notify attempts every registered channel of every matched farmer
// concurrently and joins on completion. A farmer without contact
// channels yields zero attempts, not an error.
func (d *Dispatcher) Notify(ctx context.Context, report schema.DiseaseReport, matches []Match) []schema.NotificationAttempt {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		attempts = make([]schema.NotificationAttempt, 0)
	)

	record := func(a schema.NotificationAttempt) {
		mu.Lock()
		attempts = append(attempts, a)
		mu.Unlock()

		d.count(a)
	}

	for _, m := range matches {
		if m.Farmer.Email != "" {
			wg.Add(1)
			go func(m Match) {
				defer wg.Done()
				record(d.attemptEmail(ctx, report, m))
			}(m)
		}
		if m.Farmer.PhoneNumber != "" {
			wg.Add(1)
			go func(m Match) {
				defer wg.Done()
				record(d.attemptSMS(ctx, report, m))
			}(m)
		}
	}

	wg.Wait()
	return attempts
}

func (d *Dispatcher) attemptEmail(ctx context.Context, report schema.DiseaseReport, m Match) schema.NotificationAttempt {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	attempt := newAttempt(report, m.Farmer, schema.ChannelEmail)

	subject := emailSubject()
	body := emailBody(report, m)
	if err := d.email.Send(ctx, m.Farmer.Email, subject, body); err != nil {
		return failAttempt(attempt, m, err)
	}

	return attempt
}

func (d *Dispatcher) attemptSMS(ctx context.Context, report schema.DiseaseReport, m Match) schema.NotificationAttempt {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	attempt := newAttempt(report, m.Farmer, schema.ChannelSMS)

	if err := d.sms.Send(ctx, m.Farmer.PhoneNumber, smsBody(report, m)); err != nil {
		return failAttempt(attempt, m, err)
	}

	return attempt
}

func (d *Dispatcher) count(a schema.NotificationAttempt) {
	if d.scope == nil {
		return
	}

	scope := d.scope.Tagged(map[string]string{"channel": string(a.Channel)})
	if a.Delivered() {
		scope.Counter("notifications.delivered").Inc(1)
	} else {
		scope.Counter("notifications.failed").Inc(1)
	}
}

func newAttempt(report schema.DiseaseReport, farmer schema.Farmer, channel schema.NotificationChannel) schema.NotificationAttempt {
	return schema.NotificationAttempt{
		ID:        uuid.New().String(),
		ReportID:  report.ID.Hex(),
		FarmerID:  farmer.ID.Hex(),
		Channel:   channel,
		Outcome:   schema.OutcomeDelivered,
		CreatedAt: time.Now().UTC(),
	}
}

func failAttempt(attempt schema.NotificationAttempt, m Match, err error) schema.NotificationAttempt {
	attempt.Outcome = schema.OutcomeFailed
	attempt.Reason = err.Error()

	log.WithError(err).WithFields(logrus.Fields{
		"farmer":  m.Farmer.ID.Hex(),
		"channel": attempt.Channel,
	}).Warn("alert delivery failed")

	return attempt
}
