package geo

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/store"
)

// DefaultAlertRadiusKm is the radius used to match farmers when the
// caller does not override it.
const DefaultAlertRadiusKm = 2.0

// FarmerIndex answers radius queries over an in-memory snapshot of the
// farmer registry. The snapshot is replaced wholesale on refresh, never
// mutated in place, so queries always read a consistent view.
//
// Lookup is a linear scan over the snapshot. At the expected registry
// scale this is cheap; a spatial index can replace it behind the same
// Nearby contract if that stops being true.
type FarmerIndex struct {
	registry store.FarmerRegistry

	mu      sync.RWMutex
	farmers []schema.Farmer
}

func NewFarmerIndex(registry store.FarmerRegistry) *FarmerIndex {
	return &FarmerIndex{
		registry: registry,
	}
}

// Refresh reloads the snapshot from the farmer registry and swaps it in.
// In-flight Nearby calls keep reading the previous snapshot.
func (i *FarmerIndex) Refresh() error {
	farmers, err := i.registry.ListFarmers()
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.farmers = farmers
	i.mu.Unlock()

	log.WithField("prefix", "geo").WithField("farmers", len(farmers)).Info("farmer index refreshed")
	return nil
}

// Size returns the number of farmers in the current snapshot.
func (i *FarmerIndex) Size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.farmers)
}

// Nearby returns every farmer within radiusKm of center, boundary
// inclusive. It never fails; no match yields an empty slice.
func (i *FarmerIndex) Nearby(center schema.Location, radiusKm float64) []schema.Farmer {
	i.mu.RLock()
	defer i.mu.RUnlock()

	nearby := make([]schema.Farmer, 0)
	for _, f := range i.farmers {
		if Distance(center.Latitude, center.Longitude, f.Latitude, f.Longitude) <= radiusKm {
			nearby = append(nearby, f)
		}
	}
	return nearby
}
