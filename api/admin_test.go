package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrinet/cropguard-api/schema"
)

const testAdminKey = "test-admin-key"

func secretRequest(router http.Handler, method, path, apikey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	if apikey != "" {
		req.Header.Set("API-KEY", apikey)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSecretRouteRequiresAPIKey(t *testing.T) {
	viper.Set("server.apikey.admin", testAdminKey)
	defer viper.Set("server.apikey.admin", "")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	w := secretRequest(f.router, "POST", "/secret/reindex", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1001), resp.Code)

	w = secretRequest(f.router, "POST", "/secret/reindex", "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReindexFarmers(t *testing.T) {
	viper.Set("server.apikey.admin", testAdminKey)
	defer viper.Set("server.apikey.admin", "")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	f.registry.EXPECT().ListFarmers().Return([]schema.Farmer{
		{ID: primitive.NewObjectID(), Name: "A", Latitude: 17.385, Longitude: 78.4867},
		{ID: primitive.NewObjectID(), Name: "B", Latitude: 17.390, Longitude: 78.4869},
	}, nil).Times(1)

	w := secretRequest(f.router, "POST", "/secret/reindex", testAdminKey)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["result"])
	assert.Equal(t, float64(2), resp["farmers"])
}

func TestReindexFarmersRegistryDown(t *testing.T) {
	viper.Set("server.apikey.admin", testAdminKey)
	defer viper.Set("server.apikey.admin", "")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	f.registry.EXPECT().ListFarmers().Return(nil, assert.AnError).Times(1)

	w := secretRequest(f.router, "POST", "/secret/reindex", testAdminKey)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListAttempts(t *testing.T) {
	viper.Set("server.apikey.admin", testAdminKey)
	defer viper.Set("server.apikey.admin", "")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	reportID := primitive.NewObjectID().Hex()
	f.core.EXPECT().ListNotificationAttempts(reportID).Return([]schema.NotificationAttempt{
		{ID: "a-1", ReportID: reportID, Channel: schema.ChannelEmail, Outcome: schema.OutcomeDelivered},
		{ID: "a-2", ReportID: reportID, Channel: schema.ChannelSMS, Outcome: schema.OutcomeFailed, Reason: "gateway down"},
	}, nil).Times(1)

	w := secretRequest(f.router, "GET", "/secret/reports/"+reportID+"/attempts", testAdminKey)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Attempts []schema.NotificationAttempt `json:"attempts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Attempts, 2)
}

func TestListAttemptsBadReportID(t *testing.T) {
	viper.Set("server.apikey.admin", testAdminKey)
	defer viper.Set("server.apikey.admin", "")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	w := secretRequest(f.router, "GET", "/secret/reports/not-an-object-id/attempts", testAdminKey)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1501), resp.Code)
}

func TestHealthz(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)
	f.core.EXPECT().Ping().Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
