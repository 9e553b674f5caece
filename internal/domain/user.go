package domain

// User represents a staff account
type User struct {
	ID       int64
	Username string
	Password string
	Role     string
}
