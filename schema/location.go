package schema

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
	State     string  `json:"state,omitempty" bson:"state,omitempty"`
	County    string  `json:"county,omitempty" bson:"county,omitempty"`
}

// Valid reports whether the coordinate is within the WGS84 range.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
