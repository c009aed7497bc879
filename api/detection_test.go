package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apimocks "github.com/agrinet/cropguard-api/api/mocks"
	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/store"
	storemocks "github.com/agrinet/cropguard-api/store/mocks"
	"github.com/agrinet/cropguard-api/surveillance"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type serverFixture struct {
	core         *storemocks.MockSurveillanceCore
	mongoStore   *storemocks.MockMongoStore
	orchestrator *apimocks.MockAlertOrchestrator
	registry     *storemocks.MockFarmerRegistry
	router       *gin.Engine
}

func newServerFixture(ctl *gomock.Controller) *serverFixture {
	f := &serverFixture{
		core:         storemocks.NewMockSurveillanceCore(ctl),
		mongoStore:   storemocks.NewMockMongoStore(ctl),
		orchestrator: apimocks.NewMockAlertOrchestrator(ctl),
		registry:     storemocks.NewMockFarmerRegistry(ctl),
	}

	s := NewServer(f.core, f.mongoStore, f.orchestrator, geo.NewFarmerIndex(f.registry))
	f.router = s.setupRouter()
	return f
}

func postDetection(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/detections", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitDetectionOK(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	reportID := primitive.NewObjectID().Hex()
	f.orchestrator.EXPECT().
		Process(gomock.Any(), schema.Location{Latitude: 17.385, Longitude: 78.4867}, schema.Classification{
			Disease:    "Leaf Blight",
			Severity:   schema.SeverityHigh,
			Confidence: 0.92,
			Treatment:  "Apply fungicide XYZ",
		}).
		Return(&surveillance.Outcome{
			State:    surveillance.StateNotified,
			ReportID: reportID,
			Matches:  []surveillance.Match{{DistanceKm: 0.2}},
			Attempts: []schema.NotificationAttempt{
				{Channel: schema.ChannelEmail, Outcome: schema.OutcomeDelivered},
				{Channel: schema.ChannelSMS, Outcome: schema.OutcomeFailed},
			},
		}, nil).
		Times(1)

	w := postDetection(f.router, `{
		"latitude": 17.385,
		"longitude": 78.4867,
		"disease": "Leaf Blight",
		"severity": "high",
		"confidence": 0.92,
		"treatment": "Apply fungicide XYZ"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "notified", resp["state"])
	assert.Equal(t, reportID, resp["report_id"])
	assert.Equal(t, float64(1), resp["matched"])
	assert.Equal(t, float64(1), resp["notified"])
	assert.Equal(t, float64(1), resp["failed"])
}

func TestSubmitDetectionDropped(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	f.orchestrator.EXPECT().
		Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&surveillance.Outcome{State: surveillance.StateDropped}, nil).
		Times(1)

	w := postDetection(f.router, `{
		"latitude": 17.385,
		"longitude": 78.4867,
		"disease": "Leaf Spot",
		"severity": "low",
		"confidence": 0.4
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dropped", resp["state"])
	assert.Equal(t, float64(0), resp["matched"])
}

func TestSubmitDetectionMissingCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	w := postDetection(f.router, `{"disease": "Leaf Blight", "severity": "high", "confidence": 0.9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1010), resp.Code)
}

func TestSubmitDetectionMalformedBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	w := postDetection(f.router, `{"latitude": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1011), resp.Code)
}

func TestSubmitDetectionInvalidInput(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	f.orchestrator.EXPECT().
		Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: coordinate out of range", surveillance.ErrInvalidInput)).
		Times(1)

	w := postDetection(f.router, `{
		"latitude": 99.0,
		"longitude": 78.4867,
		"disease": "Leaf Blight",
		"severity": "high",
		"confidence": 0.9
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1010), resp.Code)
}

func TestSubmitDetectionStorageUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newServerFixture(ctl)

	f.orchestrator.EXPECT().
		Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: server selection timeout", store.ErrStorageUnavailable)).
		Times(1)

	w := postDetection(f.router, `{
		"latitude": 17.385,
		"longitude": 78.4867,
		"disease": "Leaf Blight",
		"severity": "high",
		"confidence": 0.9
	}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1500), resp.Code)
}
