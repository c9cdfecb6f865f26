package domain

type UserRole string

const (
	RoleOwner   UserRole = "Owner"
	RoleManager UserRole = "Manager"
	RoleSales   UserRole = "Sales"
)

// User is a workspace member. Users are keyed by email; the password
// hash never leaves the server.
type User struct {
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name" validate:"required"`
	Role         UserRole `json:"role"`
	Avatar       string   `json:"avatar,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

// SessionUser identifies the acting user for store mutations. A zero
// value means the mutation was triggered by the system itself.
type SessionUser struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

func (s SessionUser) IsZero() bool { return s.Email == "" }

// SystemUser stamps cascaded records created outside a user session.
var SystemUser = SessionUser{Email: "system", Name: "System"}
