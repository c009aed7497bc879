package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportCollection = "disease_reports"
)

// Severity is the categorical disease-impact level of a classification.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// TriggersAlert reports whether a classification of this severity is
// persisted and broadcast. Low severity results are dropped entirely.
func (s Severity) TriggersAlert() bool {
	return s == SeverityMedium || s == SeverityHigh
}

// Weight is the heatmap weighting factor of the severity level.
func (s Severity) Weight() int64 {
	switch s {
	case SeverityMedium:
		return 5
	case SeverityHigh:
		return 10
	default:
		return 1
	}
}

// Classification is the result produced by the disease classifier
// collaborator. This service never runs classification itself.
type Classification struct {
	Disease    string   `json:"disease"`
	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`
	Treatment  string   `json:"treatment"`
}

// Validate checks the classifier output before it enters the alert
// pipeline.
func (c Classification) Validate() error {
	if c.Disease == "" {
		return fmt.Errorf("empty disease name")
	}
	if !c.Severity.Valid() {
		return fmt.Errorf("unknown severity: %s", c.Severity)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence out of range: %f", c.Confidence)
	}
	return nil
}

// DiseaseReport is a stored disease detection. Reports are immutable
// once inserted and are never deleted by this service.
type DiseaseReport struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Latitude    float64            `json:"latitude" bson:"latitude"`
	Longitude   float64            `json:"longitude" bson:"longitude"`
	DiseaseName string             `json:"disease_name" bson:"disease_name"`
	Severity    Severity           `json:"severity" bson:"severity"`
	Confidence  float64            `json:"confidence" bson:"confidence"`
	Treatment   string             `json:"treatment,omitempty" bson:"treatment,omitempty"`
	Country     string             `json:"country,omitempty" bson:"country,omitempty"`
	State       string             `json:"state,omitempty" bson:"state,omitempty"`
	County      string             `json:"county,omitempty" bson:"county,omitempty"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}
