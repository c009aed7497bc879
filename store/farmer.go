package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/agrinet/cropguard-api/schema"
)

// FarmerRegistry reads the farmer projection maintained by the external
// registration service. This service never writes farmers.
type FarmerRegistry interface {
	ListFarmers() ([]schema.Farmer, error)
}

// ListFarmers returns the full current farmer list.
func (m *mongoDB) ListFarmers() ([]schema.Farmer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FarmerCollection)
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("list farmers")
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}
	defer cursor.Close(ctx)

	farmers := make([]schema.Farmer, 0)
	if err := cursor.All(ctx, &farmers); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	return farmers, nil
}
