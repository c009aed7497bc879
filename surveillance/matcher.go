package surveillance

import (
	"sort"

	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/schema"
)

// Match pairs a farmer with the computed distance from a detection. The
// distance feeds the alert text and the delivery ordering.
type Match struct {
	Farmer     schema.Farmer
	DistanceKm float64
}

// Matcher produces the candidate farmer set for a report, nearest first.
type Matcher interface {
	Match(report schema.DiseaseReport, radiusKm float64) []Match
}

// ProximityMatcher answers Match queries through the in-memory farmer
// index.
type ProximityMatcher struct {
	index *geo.FarmerIndex
}

func NewProximityMatcher(index *geo.FarmerIndex) *ProximityMatcher {
	return &ProximityMatcher{
		index: index,
	}
}

// Match returns every farmer within radiusKm of the report, ordered by
// ascending distance so rate-limited channels reach the closest farms
// first. An empty result is a normal outcome.
func (p *ProximityMatcher) Match(report schema.DiseaseReport, radiusKm float64) []Match {
	center := schema.Location{
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
	}

	farmers := p.index.Nearby(center, radiusKm)

	matches := make([]Match, 0, len(farmers))
	for _, f := range farmers {
		matches = append(matches, Match{
			Farmer:     f,
			DistanceKm: geo.Distance(report.Latitude, report.Longitude, f.Latitude, f.Longitude),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches
}
