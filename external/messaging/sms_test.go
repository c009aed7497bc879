package messaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwilioSendOK(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()

		assert.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	sender := NewTwilioSMSSender(ts.URL, "AC123", "token", "+10000000000", ts.Client())

	err := sender.Send(context.Background(), "+911234567890", "Crop alert: high severity Leaf Blight detected 0.5 km from your farm.")
	assert.NoError(t, err)

	assert.Equal(t, "/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token", gotPass)
	assert.Equal(t, "+911234567890", gotTo)
	assert.Equal(t, "+10000000000", gotFrom)
	assert.Contains(t, gotBody, "Leaf Blight")
}

func TestTwilioSendGatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Authenticate"}`))
	}))
	defer ts.Close()

	sender := NewTwilioSMSSender(ts.URL, "AC123", "bad-token", "+10000000000", ts.Client())

	err := sender.Send(context.Background(), "+911234567890", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Authenticate")
}

func TestTwilioSendNotConfigured(t *testing.T) {
	sender := NewTwilioSMSSender("", "", "", "", nil)

	err := sender.Send(context.Background(), "+911234567890", "body")
	assert.Equal(t, errSMSNotConfigured, err)
}

func TestTwilioSendContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	sender := NewTwilioSMSSender(ts.URL, "AC123", "token", "+10000000000", ts.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, "+911234567890", "body")
	assert.Error(t, err)
}

func TestLogSMSSender(t *testing.T) {
	sender := NewLogSMSSender()
	assert.NoError(t, sender.Send(context.Background(), "+911234567890", "body"))
}
