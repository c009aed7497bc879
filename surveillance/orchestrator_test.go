package surveillance_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/store"
	storemocks "github.com/agrinet/cropguard-api/store/mocks"
	"github.com/agrinet/cropguard-api/surveillance"
	"github.com/agrinet/cropguard-api/surveillance/mocks"
)

type orchestratorFixture struct {
	reports  *storemocks.MockReportStore
	matcher  *mocks.MockMatcher
	notifier *mocks.MockNotifier
	audit    *storemocks.MockSurveillanceCore
}

func newOrchestratorFixture(ctl *gomock.Controller) (*orchestratorFixture, *surveillance.Orchestrator) {
	f := &orchestratorFixture{
		reports:  storemocks.NewMockReportStore(ctl),
		matcher:  mocks.NewMockMatcher(ctl),
		notifier: mocks.NewMockNotifier(ctl),
		audit:    storemocks.NewMockSurveillanceCore(ctl),
	}
	o := surveillance.NewOrchestrator(f.reports, f.matcher, f.notifier, f.audit, nil, geo.DefaultAlertRadiusKm)
	return f, o
}

func validLocation() schema.Location {
	return schema.Location{Latitude: 17.385, Longitude: 78.4867}
}

func highSeverityResult() schema.Classification {
	return schema.Classification{
		Disease:    "Leaf Blight",
		Severity:   schema.SeverityHigh,
		Confidence: 0.92,
		Treatment:  "Apply fungicide XYZ",
	}
}

func TestProcessNotifies(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f, o := newOrchestratorFixture(ctl)

	farmer := schema.Farmer{ID: primitive.NewObjectID(), Name: "Nearby", Email: "near@example.com"}
	matches := []surveillance.Match{{Farmer: farmer, DistanceKm: 0.12}}
	attempts := []schema.NotificationAttempt{{
		ID:       "a-1",
		FarmerID: farmer.ID.Hex(),
		Channel:  schema.ChannelEmail,
		Outcome:  schema.OutcomeDelivered,
	}}

	reportID := primitive.NewObjectID().Hex()

	f.reports.EXPECT().InsertReport(gomock.Any()).DoAndReturn(func(r *schema.DiseaseReport) (string, error) {
		assert.Equal(t, "Leaf Blight", r.DiseaseName)
		assert.Equal(t, schema.SeverityHigh, r.Severity)
		assert.Equal(t, "Apply fungicide XYZ", r.Treatment)
		assert.False(t, r.Timestamp.IsZero())
		return reportID, nil
	}).Times(1)
	f.matcher.EXPECT().Match(gomock.Any(), geo.DefaultAlertRadiusKm).Return(matches).Times(1)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), matches).Return(attempts).Times(1)
	f.audit.EXPECT().SaveNotificationAttempts(attempts).Return(nil).Times(1)

	outcome, err := o.Process(context.Background(), validLocation(), highSeverityResult())
	assert.NoError(t, err)
	assert.Equal(t, surveillance.StateNotified, outcome.State)
	assert.Equal(t, reportID, outcome.ReportID)
	assert.Len(t, outcome.Matches, 1)
	assert.Equal(t, 1, outcome.Delivered())
}

// a low severity result terminates before any collaborator is touched
func TestProcessDropsLowSeverity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, o := newOrchestratorFixture(ctl)

	result := highSeverityResult()
	result.Severity = schema.SeverityLow

	outcome, err := o.Process(context.Background(), validLocation(), result)
	assert.NoError(t, err)
	assert.Equal(t, surveillance.StateDropped, outcome.State)
	assert.Empty(t, outcome.ReportID)
	assert.Empty(t, outcome.Attempts)
}

func TestProcessInvalidCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, o := newOrchestratorFixture(ctl)

	outcome, err := o.Process(context.Background(), schema.Location{Latitude: 91.0, Longitude: 78.4867}, highSeverityResult())
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, surveillance.ErrInvalidInput))
}

func TestProcessInvalidClassification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, o := newOrchestratorFixture(ctl)

	result := highSeverityResult()
	result.Severity = schema.Severity("catastrophic")

	outcome, err := o.Process(context.Background(), validLocation(), result)
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, surveillance.ErrInvalidInput))

	result = highSeverityResult()
	result.Disease = ""

	outcome, err = o.Process(context.Background(), validLocation(), result)
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, surveillance.ErrInvalidInput))
}

// a persistence failure aborts the run before matching or dispatch
func TestProcessStorageFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f, o := newOrchestratorFixture(ctl)

	f.reports.EXPECT().InsertReport(gomock.Any()).
		Return("", fmt.Errorf("%w: connection reset", store.ErrStorageUnavailable)).Times(1)

	outcome, err := o.Process(context.Background(), validLocation(), highSeverityResult())
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
}

// a failed audit write never fails the run
func TestProcessAuditFailureAbsorbed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f, o := newOrchestratorFixture(ctl)

	f.reports.EXPECT().InsertReport(gomock.Any()).Return(primitive.NewObjectID().Hex(), nil).Times(1)
	f.matcher.EXPECT().Match(gomock.Any(), gomock.Any()).Return([]surveillance.Match{}).Times(1)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schema.NotificationAttempt{}).Times(1)
	f.audit.EXPECT().SaveNotificationAttempts(gomock.Any()).Return(assert.AnError).Times(1)

	outcome, err := o.Process(context.Background(), validLocation(), highSeverityResult())
	assert.NoError(t, err)
	assert.Equal(t, surveillance.StateNotified, outcome.State)
}

// no farmers in range still counts as a completed run
func TestProcessNoMatches(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f, o := newOrchestratorFixture(ctl)

	f.reports.EXPECT().InsertReport(gomock.Any()).Return(primitive.NewObjectID().Hex(), nil).Times(1)
	f.matcher.EXPECT().Match(gomock.Any(), gomock.Any()).Return([]surveillance.Match{}).Times(1)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schema.NotificationAttempt{}).Times(1)
	f.audit.EXPECT().SaveNotificationAttempts(gomock.Any()).Return(nil).Times(1)

	outcome, err := o.Process(context.Background(), validLocation(), highSeverityResult())
	assert.NoError(t, err)
	assert.Equal(t, surveillance.StateNotified, outcome.State)
	assert.Empty(t, outcome.Matches)
	assert.Equal(t, 0, outcome.Delivered())
}
