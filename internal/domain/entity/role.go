package entity

// Role is the access level of a user. The numeric values match the roles table.
type Role int16

const (
	// RoleCustomer browses the catalog, fills a cart and places orders.
	RoleCustomer Role = 1
	// RoleAdmin manages categories, services, users and reviews.
	RoleAdmin Role = 2
)

// String returns the role name as stored in the roles table.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
