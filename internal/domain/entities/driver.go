package entities

// DriverLevel is the reward tier derived from a driver's point balance.
type DriverLevel string

const (
	LevelBronze  DriverLevel = "bronze"
	LevelSilver  DriverLevel = "silver"
	LevelGold    DriverLevel = "gold"
	LevelDiamond DriverLevel = "diamond"
)

// Driver is the singleton driver profile tracked by the rewards component.
// Level is a pure function of Points applied forward-only — it is recomputed
// on every point change and never set independently.
type Driver struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Rating         float64     `json:"rating"`
	RidesCompleted int         `json:"rides_completed"`
	VehiclePlate   string      `json:"vehicle_plate"`
	Avatar         string      `json:"avatar"`
	IsOnline       bool        `json:"is_online"`
	Location       Location    `json:"location"`
	Points         int         `json:"points"`
	Level          DriverLevel `json:"level"`
}

// levelRank orders tiers so promotions can be compared. Bronze is the
// implicit floor for any unknown value.
var levelRank = map[DriverLevel]int{
	LevelBronze:  0,
	LevelSilver:  1,
	LevelGold:    2,
	LevelDiamond: 3,
}

// ApplyPoints adds delta to the point balance (delta may be negative, e.g.
// on reward redemption) and promotes the level when a threshold is crossed.
// The level never regresses: dropping back below a threshold after a
// redemption keeps the tier already earned.
func (d *Driver) ApplyPoints(delta int, silver, gold, diamond int) {
	d.Points += delta

	earned := LevelBronze
	switch {
	case d.Points > diamond:
		earned = LevelDiamond
	case d.Points > gold:
		earned = LevelGold
	case d.Points > silver:
		earned = LevelSilver
	}

	if levelRank[earned] > levelRank[d.Level] {
		d.Level = earned
	}
}
