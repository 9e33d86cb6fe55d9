package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the persisted authorization level of a user.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered platform user. Email is the natural key.
type User struct {
	ID        ID        `json:"_id" bson:"_id,omitempty" gorm:"type:varchar(36);primaryKey"`
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" bson:"name" gorm:"size:255"`
	PhotoURL  string    `json:"photoURL,omitempty" bson:"photoURL,omitempty" gorm:"size:1024"`
	Role      Role      `json:"role" bson:"role" gorm:"size:20;not null;default:'student';index"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets a UUID before creating the row.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID.IsZero() {
		u.ID = NewUUID()
	}
	return nil
}
