package domain

import "time"

// Roles referenced by authorization decisions. The core only needs the names.
const (
	RoleAdmin     string = "ADMIN"
	RoleAnalyst   string = "ANALYST"
	RoleAffiliate string = "AFFILIATE"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
