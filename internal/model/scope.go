package model

// Scope identifies the caller of a use case.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SystemScope is the scope used by background consumers.
func SystemScope() Scope {
	return Scope{UserID: "system", Role: "system"}
}
