// Package entities defines the core domain models for the mobility platform.
// These structs represent the business concepts (Account, Ride, Driver,
// IncidentReport, AuditEntry, WalletTransaction) and live in the innermost
// layer of the architecture — they have no dependencies on storage, HTTP,
// or external services.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module. Go
// enforces this at the compiler level. This is how Go provides encapsulation
// at the package level — it prevents external code from depending on your
// internal implementation details.
package entities

// Role is a typed string enum for the capability tier an account holds.
//
// Go Learning Note — Type Aliases for Enums:
// Go doesn't have a native enum keyword. The idiomatic pattern is to define a
// named type (usually based on string or int) and declare constants of that
// type. String-based enums are preferred when the value will be serialized to
// JSON or stored in a database, because they're human-readable.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
	RoleAgent     Role = "agent"
	RoleGuest     Role = "guest"
)

// Settings holds per-account presentation preferences. They ride along with
// the account record so a fresh login restores the user's theme and language.
type Settings struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// DefaultSettings returns the settings attached to every new account.
func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		Language:      "pt",
		Notifications: true,
	}
}

// Account represents a user identity. The Secret field is the simulated
// login credential — it is stored alongside the record because this backend
// models a prototype, not a production credential store.
//
// Go Learning Note — Struct Tags:
// The `json:"id"` annotations are struct tags. They control how encoding/json
// serializes the field. The "omitempty" option drops the field from JSON
// output when it holds its zero value, which keeps optional fields (Phone,
// DriverID on rides, etc.) out of responses until they're set.
type Account struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           Role     `json:"role"`
	Phone          string   `json:"phone,omitempty"`
	Secret         string   `json:"secret,omitempty"`
	Settings       Settings `json:"settings"`
	PrivacyConsent *bool    `json:"privacy_consent,omitempty"`
}

// NewAccount creates an Account with default settings.
//
// Go Learning Note — Constructor Functions:
// Go has no constructors. By convention, New<Type>() functions serve the same
// purpose. They return a pointer (*Account) so the caller and all downstream
// code share the same instance instead of copies.
func NewAccount(id, name, email string, role Role) *Account {
	return &Account{
		ID:       id,
		Name:     name,
		Email:    email,
		Role:     role,
		Settings: DefaultSettings(),
	}
}

// IsGuest reports whether this is an ephemeral guest identity. Guest
// accounts are synthesized at login time and never written to the directory.
func (a *Account) IsGuest() bool {
	return a.Role == RoleGuest
}
