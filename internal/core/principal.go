// AngelaMos | 2026
// principal.go

package core

// Principal is the identity carried inside a signed token. It is never
// persisted; every request derives it fresh from the token.
type Principal struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const RoleAdmin = "admin"

// AdminUserID is the fixed identifier of the single built-in admin
// account; there is no user table behind it.
const AdminUserID = "admin"

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
