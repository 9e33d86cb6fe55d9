package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment records a completed class purchase. Payments are append-only and a
// student has at most one payment per class.
type Payment struct {
	ID              ID              `json:"_id" bson:"_id,omitempty" gorm:"type:varchar(36);primaryKey"`
	StudentEmail    string          `json:"studentEmail" bson:"studentEmail" gorm:"size:255;not null;uniqueIndex:idx_payment_student_class"`
	ClassID         string          `json:"classId" bson:"classId" gorm:"size:36;not null;uniqueIndex:idx_payment_student_class"`
	ClassName       string          `json:"className,omitempty" bson:"className,omitempty" gorm:"size:255"`
	InstructorEmail string          `json:"instructorEmail" bson:"instructorEmail" gorm:"size:255;index"`
	Amount          decimal.Decimal `json:"amount" bson:"amount" gorm:"type:decimal(12,2);not null"`
	TransactionID   string          `json:"transactionId" bson:"transactionId" gorm:"size:255;index"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// BeforeCreate sets a UUID before creating the row.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID.IsZero() {
		p.ID = NewUUID()
	}
	return nil
}

// Review is a free-form testimonial document. Fields are returned as stored.
type Review map[string]interface{}

// ReviewRecord is the SQL representation of a Review.
type ReviewRecord struct {
	ID        ID                `gorm:"type:varchar(36);primaryKey"`
	Body      datatypes.JSONMap `gorm:"type:json"`
	CreatedAt time.Time
}

// TableName keeps the SQL table aligned with the document collection name.
func (ReviewRecord) TableName() string {
	return "reviews"
}

// BeforeCreate sets a UUID before creating the row.
func (r *ReviewRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID.IsZero() {
		r.ID = NewUUID()
	}
	return nil
}

// Review renders the record as a document with its id under "_id".
func (r ReviewRecord) Review() Review {
	doc := make(Review, len(r.Body)+1)
	for k, v := range r.Body {
		doc[k] = v
	}
	doc["_id"] = r.ID.String()
	return doc
}

// InstructorStats ranks an instructor by enrollments across approved classes.
type InstructorStats struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Image         string `json:"image,omitempty"`
	TotalEnrolled int64  `json:"totalEnrolled"`
}
