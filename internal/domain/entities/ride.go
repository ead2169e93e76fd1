package entities

import "time"

// RideStatus represents the current lifecycle state of a ride. Rides are
// created in either an active state or Scheduled; status changes are the
// only mutation after creation.
type RideStatus string

const (
	RideStatusIdle       RideStatus = "idle"
	RideStatusSearching  RideStatus = "searching"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusScheduled  RideStatus = "scheduled"
)

// RideType is one of the four fixed service categories. The per-kilometre
// rate for each category lives in config, not here — entities carry no
// pricing policy.
type RideType string

const (
	RideTypeQuick  RideType = "quick"
	RideTypeSafe   RideType = "safe"
	RideTypeEco    RideType = "eco"
	RideTypeShared RideType = "shared"
)

// Location is a named point on the map. Distances between locations are
// supplied by the caller; this backend does no routing.
type Location struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Ride is a ride request as persisted in the ride ledger. RiderID and
// DriverID are optional foreign keys into the account directory. Price is
// derived from distance and the per-type rate at creation time and stored
// in whole meticais.
type Ride struct {
	ID          string     `json:"id"`
	RiderID     string     `json:"rider_id,omitempty"`
	DriverID    string     `json:"driver_id,omitempty"`
	Pickup      Location   `json:"pickup"`
	Dropoff     Location   `json:"dropoff"`
	Type        RideType   `json:"type"`
	Price       int64      `json:"price"`
	DistanceKm  float64    `json:"distance_km"`
	Status      RideStatus `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Involves reports whether the given account participates in this ride as
// either the rider or the driver.
func (r *Ride) Involves(accountID string) bool {
	return r.RiderID == accountID || r.DriverID == accountID
}
