package domain

import "time"

// Role is a user's permission tier. Roles form a total order
// (user < moderator < admin) so access checks reduce to a level comparison.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// roleLevels assigns each known role its rank in the hierarchy.
var roleLevels = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// unknownRequiredLevel sits above every real role so that a check against a
// malformed required role always fails rather than accidentally passing.
const unknownRequiredLevel = 999

// Level returns the rank of the role. Unrecognised roles rank at 0, below
// every real role.
func (r Role) Level() int {
	return roleLevels[r]
}

// Meets reports whether the role is at least as privileged as required.
// Both lookups fail closed: an unknown held role ranks weakest, an unknown
// required role ranks above admin.
func (r Role) Meets(required Role) bool {
	requiredLevel, ok := roleLevels[required]
	if !ok {
		requiredLevel = unknownRequiredLevel
	}
	return r.Level() >= requiredLevel
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// AllRoles returns the known roles in ascending privilege order.
func AllRoles() []Role {
	return []Role{RoleUser, RoleModerator, RoleAdmin}
}

// User is the client-side projection of a server user record. It mirrors
// server state and is never authoritative here.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        Role      `json:"role"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Name returns the preferred display string: the display name when the
// account has one, the username otherwise.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
