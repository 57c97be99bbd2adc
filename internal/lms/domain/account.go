package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the closed set of identities the platform knows about. It gates
// which route group and navigation set an account may use.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTrainer Role = "TRAINER"
	RoleAdmin   Role = "ADMIN"
	RoleGuest   Role = "GUEST"
)

// ErrUnknownRole reports a role string outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole normalises a user-supplied role string. Only the four known
// roles are accepted.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTrainer:
		return RoleTrainer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleGuest:
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }

// Account is one registered identity. The JSON tags match the record layout
// the FutureX client has always persisted, so an existing data file stays
// readable.
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Bio       string `json:"bio,omitempty"`

	// Password is stored and compared as plain text. Behavioral parity with
	// the original records; see DESIGN.md before changing this.
	Password string `json:"password,omitempty"`
}

// AccountPatch is a partial profile update. Nil fields are left untouched.
type AccountPatch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Merge returns a copy of the account with the patch applied. ID, role and
// password are never patchable through profile updates.
func (a Account) Merge(p AccountPatch) Account {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		a.AvatarURL = *p.AvatarURL
	}
	return a
}
