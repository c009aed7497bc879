package messaging

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

const defaultSMSEndpoint = "https://api.twilio.com/2010-04-01"

var errSMSNotConfigured = fmt.Errorf("sms gateway credentials are not set")

// SMSSender delivers one alert SMS. A single attempt, no retry.
type SMSSender interface {
	Send(ctx context.Context, recipient, body string) error
}

// TwilioSMSSender sends messages through the Twilio REST API.
type TwilioSMSSender struct {
	endpoint   string
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

func NewTwilioSMSSender(endpoint, accountSID, authToken, from string, client *http.Client) *TwilioSMSSender {
	u := defaultSMSEndpoint
	if endpoint != "" {
		u = endpoint
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TwilioSMSSender{
		endpoint:   u,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     client,
	}
}

func (t *TwilioSMSSender) Send(ctx context.Context, recipient, body string) error {
	if t.accountSID == "" || t.authToken == "" {
		return errSMSNotConfigured
	}

	form := url.Values{
		"To":   {recipient},
		"From": {t.from},
		"Body": {body},
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.endpoint, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if nil != err {
		return err
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("sms gateway responded %d: %s", resp.StatusCode, string(d))
	}

	return nil
}

// LogSMSSender logs instead of sending. It is the default transport
// when no SMS gateway is configured.
type LogSMSSender struct{}

func NewLogSMSSender() *LogSMSSender {
	return &LogSMSSender{}
}

func (s *LogSMSSender) Send(ctx context.Context, recipient, body string) error {
	log.WithField("prefix", "sms").WithField("recipient", recipient).Info(body)
	return nil
}
