package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClassStatus represents the review state of a class listing.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Valid reports whether s is one of the known statuses.
func (s ClassStatus) Valid() bool {
	switch s {
	case ClassStatusPending, ClassStatusApproved, ClassStatusDenied:
		return true
	}
	return false
}

// Class is a course listing offered by an instructor.
type Class struct {
	ID              ID              `json:"_id" bson:"_id,omitempty" gorm:"type:varchar(36);primaryKey"`
	InstructorEmail string          `json:"instructorEmail" bson:"instructorEmail" gorm:"size:255;not null;index"`
	InstructorName  string          `json:"instructorName,omitempty" bson:"instructorName,omitempty" gorm:"size:255"`
	ClassName       string          `json:"className" bson:"className" gorm:"size:255;not null"`
	ClassImage      string          `json:"classImage" bson:"classImage" gorm:"size:1024"`
	Price           decimal.Decimal `json:"price" bson:"price" gorm:"type:decimal(12,2);not null;default:0"`
	AvailableSeats  int64           `json:"availableSeats" bson:"availableSeats" gorm:"not null;default:0"`
	TotalEnrolled   int64           `json:"totalEnrolled" bson:"totalEnrolled" gorm:"not null;default:0;index"`
	Status          ClassStatus     `json:"status" bson:"status" gorm:"size:20;not null;default:'pending';index"`
	Feedback        string          `json:"feedback,omitempty" bson:"feedback,omitempty" gorm:"type:text"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets a UUID before creating the row.
func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID.IsZero() {
		c.ID = NewUUID()
	}
	return nil
}

// ClassDetails is the instructor-editable subset of a class.
type ClassDetails struct {
	ClassName      string
	ClassImage     string
	AvailableSeats int64
	Price          decimal.Decimal
}

// SelectedClass records a student's intent to enroll, created before payment.
type SelectedClass struct {
	ID              ID              `json:"_id" bson:"_id,omitempty" gorm:"type:varchar(36);primaryKey"`
	StudentEmail    string          `json:"studentEmail" bson:"studentEmail" gorm:"size:255;not null;index:idx_selected_student_class"`
	ClassID         string          `json:"classId" bson:"classId" gorm:"size:36;not null;index:idx_selected_student_class"`
	ClassName       string          `json:"className,omitempty" bson:"className,omitempty" gorm:"size:255"`
	ClassImage      string          `json:"classImage,omitempty" bson:"classImage,omitempty" gorm:"size:1024"`
	InstructorEmail string          `json:"instructorEmail,omitempty" bson:"instructorEmail,omitempty" gorm:"size:255"`
	Price           decimal.Decimal `json:"price" bson:"price" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}

// BeforeCreate sets a UUID before creating the row.
func (s *SelectedClass) BeforeCreate(tx *gorm.DB) error {
	if s.ID.IsZero() {
		s.ID = NewUUID()
	}
	return nil
}
