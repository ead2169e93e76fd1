package services

import (
	"context"
	"errors"
	"fmt"

	"boleia/internal/config"
	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
)

// GuestEmail is the reserved address that bypasses the credential check and
// yields an ephemeral guest session.
const GuestEmail = "guest@boleia.app"

// socialSecret is the placeholder credential attached to accounts created
// through a social provider. It never matches a typed-in secret because
// social logins skip the password form entirely.
const socialSecret = "social_login_dummy_pass"

// AuthService owns the account directory and the session singleton.
type AuthService struct {
	store  storage.Store
	wallet *WalletService
	audit  *AuditService
	cfg    *config.Config
}

func NewAuthService(store storage.Store, wallet *WalletService, audit *AuditService, cfg *config.Config) *AuthService {
	return &AuthService{
		store:  store,
		wallet: wallet,
		audit:  audit,
		cfg:    cfg,
	}
}

// Login authenticates by exact email and secret match. The reserved guest
// email short-circuits the check and synthesizes a guest account that is
// never written to the directory. On success the account becomes the
// persisted session.
func (s *AuthService) Login(ctx context.Context, email, secret string) (*entities.Account, error) {
	if err := simulateLatency(ctx, s.cfg.Latency.Login); err != nil {
		return nil, err
	}

	if email == GuestEmail {
		guest := entities.NewAccount("guest", "Visitante", email, entities.RoleGuest)
		if err := saveSession(ctx, s.store, guest); err != nil {
			return nil, err
		}
		if err := s.audit.Append(ctx, guest.ID, entities.ActionLoginGuest, "guest", "guest session started"); err != nil {
			return nil, err
		}
		return guest, nil
	}

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email && accounts[i].Secret == secret {
			account := accounts[i]
			if err := saveSession(ctx, s.store, &account); err != nil {
				return nil, err
			}
			if err := s.audit.Append(ctx, account.ID, entities.ActionLogin, account.ID, "user logged in successfully"); err != nil {
				return nil, err
			}
			return &account, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// SocialLogin derives a deterministic synthetic email from the provider
// name. First-time providers get a passenger account registered on the
// spot; every social login establishes the session.
func (s *AuthService) SocialLogin(ctx context.Context, provider string) (*entities.Account, error) {
	if err := simulateLatency(ctx, s.cfg.Latency.SocialLogin); err != nil {
		return nil, err
	}

	email := fmt.Sprintf("user@%s.com", provider)

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var account *entities.Account
	for i := range accounts {
		if accounts[i].Email == email {
			account = &accounts[i]
			break
		}
	}

	if account == nil {
		created := entities.NewAccount(utils.GenerateID(), socialDisplayName(provider), email, entities.RolePassenger)
		created.Secret = socialSecret
		accounts = append(accounts, *created)
		if err := s.store.WriteCollection(ctx, storage.CollectionAccounts, accounts); err != nil {
			return nil, err
		}
		if err := s.audit.Append(ctx, created.ID, entities.ActionRegisterSocial, created.ID, "user registered via "+provider); err != nil {
			return nil, err
		}
		account = created
	}

	if err := saveSession(ctx, s.store, account); err != nil {
		return nil, err
	}
	if err := s.audit.Append(ctx, account.ID, entities.ActionLoginSocial, account.ID, "user logged in via "+provider); err != nil {
		return nil, err
	}
	return account, nil
}

// RegisterInput carries the profile fields a new user submits. Role
// defaults to passenger when empty.
type RegisterInput struct {
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Secret string        `json:"secret"`
	Phone  string        `json:"phone"`
	Role   entities.Role `json:"role"`
}

// Register creates an account, grants the welcome wallet credit, and
// establishes the session. Registration with an email already in the
// directory fails with ErrDuplicateEmail and leaves the directory
// untouched.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.Account, error) {
	if err := simulateLatency(ctx, s.cfg.Latency.Register); err != nil {
		return nil, err
	}

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == input.Email {
			return nil, ErrDuplicateEmail
		}
	}

	role := input.Role
	if role == "" {
		role = entities.RolePassenger
	}

	account := entities.NewAccount(utils.GenerateID(), input.Name, input.Email, role)
	account.Secret = input.Secret
	account.Phone = input.Phone

	accounts = append(accounts, *account)
	if err := s.store.WriteCollection(ctx, storage.CollectionAccounts, accounts); err != nil {
		return nil, err
	}

	if err := s.wallet.Record(ctx, account.ID, s.cfg.Wallet.WelcomeBonus, "Welcome bonus"); err != nil {
		return nil, err
	}
	if err := saveSession(ctx, s.store, account); err != nil {
		return nil, err
	}
	if err := s.audit.Append(ctx, account.ID, entities.ActionRegister, account.ID, "new user registration"); err != nil {
		return nil, err
	}
	return account, nil
}

// RecoverPassword always succeeds, whether or not the email is known —
// revealing which emails exist would enable user enumeration. Only a match
// leaves a trace, as an audit entry.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	if err := simulateLatency(ctx, s.cfg.Latency.Recover); err != nil {
		return err
	}

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			return s.audit.Append(ctx, accounts[i].ID, entities.ActionRecoverPassword, accounts[i].ID, "password reset requested")
		}
	}
	return nil
}

// SettingsUpdate carries optional settings fields. Nil means "leave as is".
type SettingsUpdate struct {
	Theme         *string `json:"theme"`
	Language      *string `json:"language"`
	Notifications *bool   `json:"notifications"`
}

// ProfileUpdate carries optional profile fields for a field-level merge.
type ProfileUpdate struct {
	Name           *string         `json:"name"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	Secret         *string         `json:"secret"`
	PrivacyConsent *bool           `json:"privacy_consent"`
	Settings       *SettingsUpdate `json:"settings"`
}

// UpdateProfile merges the update into the stored account field by field;
// settings are merged key by key rather than replaced wholesale. When the
// updated account holds the current session, the session is refreshed so a
// page reload sees the new profile.
func (s *AuthService) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*entities.Account, error) {
	if err := simulateLatency(ctx, s.cfg.Latency.ProfileUpdate); err != nil {
		return nil, err
	}

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range accounts {
		if accounts[i].ID == accountID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrAccountNotFound
	}

	account := &accounts[index]
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Email != nil {
		account.Email = *update.Email
	}
	if update.Phone != nil {
		account.Phone = *update.Phone
	}
	if update.Secret != nil {
		account.Secret = *update.Secret
	}
	if update.PrivacyConsent != nil {
		account.PrivacyConsent = update.PrivacyConsent
	}
	if update.Settings != nil {
		if update.Settings.Theme != nil {
			account.Settings.Theme = *update.Settings.Theme
		}
		if update.Settings.Language != nil {
			account.Settings.Language = *update.Settings.Language
		}
		if update.Settings.Notifications != nil {
			account.Settings.Notifications = *update.Settings.Notifications
		}
	}

	if err := s.store.WriteCollection(ctx, storage.CollectionAccounts, accounts); err != nil {
		return nil, err
	}

	session, err := currentSession(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if session != nil && session.ID == accountID {
		if err := saveSession(ctx, s.store, account); err != nil {
			return nil, err
		}
	}

	if err := s.audit.Append(ctx, accountID, entities.ActionUpdateProfile, accountID, "user updated profile/settings"); err != nil {
		return nil, err
	}

	updated := *account
	return &updated, nil
}

// Logout clears the session. Without an active session it is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	session, err := currentSession(ctx, s.store)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	if err := s.audit.Append(ctx, session.ID, entities.ActionLogout, session.ID, "user logged out"); err != nil {
		return err
	}
	return clearSession(ctx, s.store)
}

// Session returns the current session holder, or nil when logged out. No
// side effects.
func (s *AuthService) Session(ctx context.Context) (*entities.Account, error) {
	return currentSession(ctx, s.store)
}

func (s *AuthService) readAccounts(ctx context.Context) ([]entities.Account, error) {
	var accounts []entities.Account
	if err := s.store.ReadCollection(ctx, storage.CollectionAccounts, &accounts); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return accounts, nil
}

func socialDisplayName(provider string) string {
	switch provider {
	case "google":
		return "Usuario Google"
	case "facebook":
		return "Usuario Facebook"
	default:
		return "Usuario " + provider
	}
}
