package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Region is the metropolitan region a client lives in.
type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
)

// RegionAll is the filter value that matches every region.
const RegionAll = "all"

// UnknownLabel is the bucket used for records missing a grouping field.
const UnknownLabel = "Unknown"

// Locations are the fixed service-delivery sites.
var Locations = []string{"Canning", "Gosnells", "Mandurah", "Stirling", "Swan", "Wanneroo"}

// IsKnownLocation reports whether loc is one of the service-delivery sites.
func IsKnownLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
