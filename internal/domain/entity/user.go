package entity

// User represents an account that can own advertisements.
// Users pre-exist in the store; this application only resolves them,
// by nickname when an advertisement is created and by id when one is rendered.
// The password is opaque here: no hashing or verification is performed.
type User struct {
	ID       int64
	Nickname string
	Email    string
	Password string
}
