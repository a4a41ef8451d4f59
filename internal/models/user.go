package models

// Role is the authorization level resolved for a user. It is derived from the
// admin allow-list at request time, never stored on the user row.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents a registered customer or administrator.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	DisplayName  string  `json:"display_name"`
	PasswordHash string  `json:"-"`
	Orders       []Order `json:"orders,omitempty"`
}

// AdminEmail is one entry in the admin allow-list. Membership grants RoleAdmin.
type AdminEmail struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
}
