package user

import "github.com/cashwallet/cashwallet/internal/storage"

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Language codes accepted for the profile preference.
const (
	LanguageArabic  = "ar"
	LanguageEnglish = "en"
)

// User represents a registered account. PasswordHash only exists in the stored
// form and is excluded from every JSON response.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Email        string          `bson:"email" json:"email"`
	Name         string          `bson:"name" json:"name"`
	Role         Role            `bson:"role" json:"role"`
	Language     string          `bson:"language" json:"language"`
	CreatedAt    storage.Instant `bson:"created_at" json:"created_at"`
	PasswordHash string          `bson:"password_hash" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
