package surveillance

import (
	"context"
	"fmt"
	"time"

	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/store"
)

// State is the terminal state of one orchestrator run.
type State string

const (
	// StateDropped - severity below the alert threshold; nothing was
	// stored and nobody was notified.
	StateDropped State = "dropped"
	// StateNotified - the report was persisted and dispatch completed,
	// regardless of individual channel outcomes.
	StateNotified State = "notified"
)

// Outcome summarizes a completed orchestrator run.
type Outcome struct {
	State    State
	ReportID string
	Matches  []Match
	Attempts []schema.NotificationAttempt
}

// Delivered returns the number of attempts that reached the transport.
func (o *Outcome) Delivered() int {
	n := 0
	for _, a := range o.Attempts {
		if a.Delivered() {
			n++
		}
	}
	return n
}

// AlertOrchestrator runs the full alert sequence for one classification
// result.
type AlertOrchestrator interface {
	Process(ctx context.Context, loc schema.Location, result schema.Classification) (*Outcome, error)
}

// Orchestrator coordinates the alert pipeline: evaluate the severity
// threshold, persist the report, match nearby farmers, dispatch
// notifications. It is the only component with this sequencing
// responsibility. All collaborators are injected; concurrent runs share
// nothing but the stores and the farmer index.
type Orchestrator struct {
	reports  store.ReportStore
	matcher  Matcher
	notifier Notifier
	audit    store.SurveillanceCore
	resolver geo.LocationResolver
	radiusKm float64
}

func NewOrchestrator(
	reports store.ReportStore,
	matcher Matcher,
	notifier Notifier,
	audit store.SurveillanceCore,
	resolver geo.LocationResolver,
	radiusKm float64) *Orchestrator {
	if radiusKm <= 0 {
		radiusKm = geo.DefaultAlertRadiusKm
	}

	return &Orchestrator{
		reports:  reports,
		matcher:  matcher,
		notifier: notifier,
		audit:    audit,
		resolver: resolver,
		radiusKm: radiusKm,
	}
}

// Process runs the state machine for one classification result exactly
// once. A below-threshold severity terminates in StateDropped without
// touching any store. A persistence failure aborts the run before any
// matching or notification happens and surfaces to the caller. Once the
// report is persisted the run always reaches StateNotified; per-channel
// delivery failures are absorbed by the dispatcher.
func (o *Orchestrator) Process(ctx context.Context, loc schema.Location, result schema.Classification) (*Outcome, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if !result.Severity.TriggersAlert() {
		return &Outcome{State: StateDropped}, nil
	}

	if o.resolver != nil {
		if resolved, err := o.resolver.GetPoliticalInfo(loc); err == nil {
			loc = resolved
		} else {
			log.WithError(err).Debug("location resolution skipped")
		}
	}

	report := schema.DiseaseReport{
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		DiseaseName: result.Disease,
		Severity:    result.Severity,
		Confidence:  result.Confidence,
		Treatment:   result.Treatment,
		Country:     loc.Country,
		State:       loc.State,
		County:      loc.County,
		Timestamp:   time.Now().UTC(),
	}

	reportID, err := o.reports.InsertReport(&report)
	if err != nil {
		return nil, err
	}

	matches := o.matcher.Match(report, o.radiusKm)
	attempts := o.notifier.Notify(ctx, report, matches)

	if o.audit != nil {
		if err := o.audit.SaveNotificationAttempts(attempts); err != nil {
			log.WithError(err).Warn("notification attempts not recorded")
		}
	}

	return &Outcome{
		State:    StateNotified,
		ReportID: reportID,
		Matches:  matches,
		Attempts: attempts,
	}, nil
}
