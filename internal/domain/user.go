package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`       // Primary key
	Name     string `gorm:"not null" json:"name"`       // Display name
	Email    string `gorm:"unique;not null" json:"email"` // Unique email, used to resolve identity
	Password string `gorm:"not null" json:"-"`          // Hashed password, never serialized
	Role     string `gorm:"default:customer" json:"role"` // Role: admin or customer
}
