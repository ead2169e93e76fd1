package entities

import "time"

// Audit action tags. Every security-relevant operation appends exactly one
// entry with one of these tags.
const (
	ActionLogin           = "LOGIN"
	ActionLoginGuest      = "LOGIN_GUEST"
	ActionLoginSocial     = "LOGIN_SOCIAL"
	ActionLogout          = "LOGOUT"
	ActionRegister        = "REGISTER"
	ActionRegisterSocial  = "REGISTER_SOCIAL"
	ActionRecoverPassword = "RECOVER_PASSWORD"
	ActionUpdateProfile   = "UPDATE_PROFILE"
	ActionCreateRide      = "CREATE_RIDE"
	ActionCreateReport    = "CREATE_REPORT"
	ActionResolveReport   = "RESOLVE_REPORT"
)

// AuditEntry is one immutable record in the bounded audit trail. The
// collection is kept newest-first and trimmed to a fixed cap after every
// insert, so the trail is a sliding window, not a full history.
type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}
