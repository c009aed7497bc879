package schema

// HeatmapBucket is a derived aggregation of stored reports sharing the
// exact same coordinate, disease and severity. Buckets are recomputed on
// every query and never stored.
type HeatmapBucket struct {
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lng"`
	DiseaseName string   `json:"disease"`
	Severity    Severity `json:"severity"`
	Count       int64    `json:"count"`
	Weight      int64    `json:"weight"`
}
