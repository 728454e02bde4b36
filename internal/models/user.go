package models

// User is one account on the site.
//
// The password is kept exactly as submitted at registration and is
// echoed back in API responses together with the rest of the record;
// existing clients depend on that shape.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"` // unique, matched as an exact string
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // "admin" is interpreted by clients only
}
