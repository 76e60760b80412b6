package domain

// Category Model
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Code        string `gorm:"size:10;uniqueIndex" json:"code"` // Sequential human-readable code (C001, C002, ...)
	Name        string `gorm:"not null" json:"name"`            // Category name
	Description string `json:"description"`                     // Category description
}
