package store

import (
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/agrinet/cropguard-api/schema"
)

// SurveillanceCore is the composite datastore of the alerting service:
// postgres keeps the notification attempt audit log, mongo keeps the
// reports and the farmer projection.
type SurveillanceCore interface {
	Ping() error

	// Notification attempts (audit log, best-effort)
	SaveNotificationAttempts(attempts []schema.NotificationAttempt) error
	ListNotificationAttempts(reportID string) ([]schema.NotificationAttempt, error)
}

// SurveillanceStore is an implementation of SurveillanceCore
type SurveillanceStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewSurveillanceStore(ormDB *gorm.DB, mongo MongoStore) *SurveillanceStore {
	return &SurveillanceStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *SurveillanceStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// SaveNotificationAttempts records delivery attempts for a dispatched
// alert. Replayed attempts with a known id are skipped rather than
// duplicated.
func (s *SurveillanceStore) SaveNotificationAttempts(attempts []schema.NotificationAttempt) error {
	for _, a := range attempts {
		if err := s.ormDB.Create(&a).Error; err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				continue
			}
			return err
		}
	}
	return nil
}

// ListNotificationAttempts returns every recorded attempt for a report.
func (s *SurveillanceStore) ListNotificationAttempts(reportID string) ([]schema.NotificationAttempt, error) {
	attempts := []schema.NotificationAttempt{}

	if err := s.ormDB.
		Where("report_id = ?", reportID).
		Order("created_at").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	return attempts, nil
}
