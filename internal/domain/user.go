package domain

import "time"

// User is a login credential record. Passwords of seeded users are stored
// in plain text; imported users may carry bcrypt hashes instead (the auth
// service picks the verification strategy per stored value).
type User struct {
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	Role      Role   `validate:"required,oneof=administrador coordinador profesor estudiante"`
	Name      string `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
