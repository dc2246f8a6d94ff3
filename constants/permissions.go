package constants

// Admin access
const (
	HeaderAdminToken = "X-Admin-Token"

	// RoleAdmin is the role claim carried by admin JWTs
	RoleAdmin = "admin"

	// LocalsAdmin is the fiber Locals key set once a request is authorised
	LocalsAdmin = "admin"
)
