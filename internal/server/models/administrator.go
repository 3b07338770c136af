package models

// Administrator is an identity allowed to sign in and call the API.
// Secret is kept as submitted; see DESIGN.md.
type Administrator struct {
	ID     int64
	Email  string
	Secret string
	Role   Role
}
