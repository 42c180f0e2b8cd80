// Package devmode holds the development-only admin credentials shared by the
// SDK, the CLI and the dev backend.
//
// The admin dashboard has no server-side login; access is a local comparison
// against these literals. They are placeholders and must never guard
// anything in production.
package devmode

const (
	// AdminUsername is the placeholder admin user name.
	AdminUsername = "admin"
	// AdminPassword is the placeholder admin password.
	AdminPassword = "admin123"
	// AdminKey is the admin key appended to gated writes. The dev backend
	// accepts it by default.
	AdminKey = "admin123"
)
