package models

const (
	RoleParent    = "parent"
	RoleVolunteer = "volunteer"
)

// Session is the already-authenticated user identity. Login itself lives behind
// the external auth boundary; workflows receive a Session instead of reading
// global state.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (s Session) IsParent() bool {
	return s.Role == RoleParent
}

func (s Session) IsVolunteer() bool {
	return s.Role == RoleVolunteer
}
