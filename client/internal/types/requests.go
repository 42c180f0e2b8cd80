package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// Credentials is the user login payload. It is sent wrapped as {"userDto": ...}.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body posted to /user/login.
type LoginRequest struct {
	UserDto Credentials `json:"userDto"`
}

// RegisterRequest holds the signup form.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Age             int    `json:"age" validate:"required,min=18,max=100"`
	Mobile          string `json:"mobile" validate:"required,indianmobile"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
}

// AdminCredentials gate the admin dashboard.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	AuthKey  string `json:"authKey"`
}

// FilePart is a single file attached to a multipart upload.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}
