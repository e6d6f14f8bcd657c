package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        int
	Name      string
	Email     string
	Phone     *string
	Password  string
	Role      Role
	CreatedAt time.Time
}

type RegisterParams struct {
	Name     string
	Email    string
	Phone    *string
	Password string
}
