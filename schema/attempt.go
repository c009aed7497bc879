package schema

import "time"

type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
)

type DeliveryOutcome string

const (
	OutcomeDelivered DeliveryOutcome = "delivered"
	OutcomeFailed    DeliveryOutcome = "failed"
)

// NotificationAttempt records a single delivery try of one alert to one
// farmer over one channel. Attempts are audit data only; losing them
// never affects the alert pipeline.
type NotificationAttempt struct {
	ID        string              `json:"id" gorm:"primary_key"`
	ReportID  string              `json:"report_id" gorm:"index"`
	FarmerID  string              `json:"farmer_id"`
	Channel   NotificationChannel `json:"channel"`
	Outcome   DeliveryOutcome     `json:"outcome"`
	Reason    string              `json:"reason,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// Delivered reports whether the attempt reached the transport
// successfully.
func (a NotificationAttempt) Delivered() bool {
	return a.Outcome == OutcomeDelivered
}
