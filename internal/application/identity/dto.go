package identity

// RegisterInput contains input for account registration. Form-level
// constraints (lengths, confirmation match) are checked at the binding
// layer; the domain re-validates lengths before hashing.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput contains input for authentication
type LoginInput struct {
	Username string
	Password string
}

// UserInfo is the authenticated identity handed to the session layer
type UserInfo struct {
	ID       uint
	Username string
}
