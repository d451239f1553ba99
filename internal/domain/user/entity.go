// internal/domain/user/entity.go
package user

import "time"

// Roles a user account can hold.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a storefront account. The password is stored exactly as
// given and never serialized into responses.
type User struct {
	ID        int64     `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
