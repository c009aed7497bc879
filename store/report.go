package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrinet/cropguard-api/schema"
)

// ErrStorageUnavailable is returned when the report store cannot reach
// its backing database. Callers must treat it as an alert-pipeline
// failure, never swallow it.
var ErrStorageUnavailable = fmt.Errorf("report storage is unavailable")

// ReportStore persists disease reports and serves the heatmap
// aggregation over them.
type ReportStore interface {
	InsertReport(report *schema.DiseaseReport) (string, error)
	AggregateHeatmap() ([]schema.HeatmapBucket, error)
}

// InsertReport appends a report and returns its generated id. Reports
// are immutable once stored; there is no update path.
func (m *mongoDB) InsertReport(report *schema.DiseaseReport) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	result, err := c.InsertOne(ctx, *report)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert disease report")
		return "", fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type", ErrStorageUnavailable)
	}
	report.ID = id

	return id.Hex(), nil
}

// AggregateHeatmap groups all stored reports by the exact
// (latitude, longitude, disease, severity) tuple and weights each bucket
// by count times the severity factor.
//
// Grouping uses exact coordinate equality: two reports a few meters
// apart stay in separate buckets. Known granularity limitation, kept
// until product decides on radius-based clustering since clustering
// changes reported counts.
func (m *mongoDB) AggregateHeatmap() ([]schema.HeatmapBucket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	cursor, err := c.Aggregate(ctx, mongo.Pipeline{aggStageGroupByDetection()})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("aggregate heatmap")
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}
	defer cursor.Close(ctx)

	buckets := make([]schema.HeatmapBucket, 0)
	for cursor.Next(ctx) {
		var row struct {
			Key struct {
				Latitude    float64         `bson:"latitude"`
				Longitude   float64         `bson:"longitude"`
				DiseaseName string          `bson:"disease_name"`
				Severity    schema.Severity `bson:"severity"`
			} `bson:"_id"`
			Count int64 `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
		}

		buckets = append(buckets, schema.HeatmapBucket{
			Latitude:    row.Key.Latitude,
			Longitude:   row.Key.Longitude,
			DiseaseName: row.Key.DiseaseName,
			Severity:    row.Key.Severity,
			Count:       row.Count,
			Weight:      row.Count * row.Key.Severity.Weight(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	return buckets, nil
}

func aggStageGroupByDetection() bson.D {
	return bson.D{{Key: "$group", Value: bson.M{
		"_id": bson.M{
			"latitude":     "$latitude",
			"longitude":    "$longitude",
			"disease_name": "$disease_name",
			"severity":     "$severity",
		},
		"count": bson.M{"$sum": 1},
	}}}
}
