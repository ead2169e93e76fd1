package entities

// ReportCategory classifies an incident observed in the field.
type ReportCategory string

const (
	ReportAccident   ReportCategory = "accident"
	ReportInfraction ReportCategory = "infraction"
	ReportRoadDamage ReportCategory = "road_damage"
	ReportOther      ReportCategory = "other"
)

// ReportStatus is the resolution state of an incident report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// IncidentReport is an agent-authored field record. AgentID is the author;
// the audit trail separately attributes creation to whoever held the session
// at the time, which is not necessarily the same identity.
type IncidentReport struct {
	ID          string         `json:"id"`
	AgentID     string         `json:"agent_id,omitempty"`
	Category    ReportCategory `json:"category"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Time        string         `json:"time"`
	Status      ReportStatus   `json:"status"`
}
