package models

import (
	"time"

	"gorm.io/gorm"
)

// Opinion is a short movie opinion: a titled block of text with an optional
// source and author. The text is unique across the whole table.
type Opinion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:128;not null"`
	Text      string    `json:"text" gorm:"uniqueIndex;not null"`
	Source    *string   `json:"source" gorm:"size:256"`
	AddedBy   *string   `json:"added_by" gorm:"size:64"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

// TableName returns the table name for Opinion
func (Opinion) TableName() string {
	return "opinions"
}

// BeforeCreate defaults the timestamp to the creation time (UTC)
func (o *Opinion) BeforeCreate(tx *gorm.DB) error {
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	}
	return nil
}

// OpinionFields is the allow-list of externally settable fields. Nil means
// "leave unchanged"; id and timestamp are store-managed and cannot be set
// through this path.
type OpinionFields struct {
	Title   *string
	Text    *string
	Source  *string
	AddedBy *string
}

// Apply overwrites the opinion's mutable fields with the values present in f.
func (o *Opinion) Apply(f OpinionFields) {
	if f.Title != nil {
		o.Title = *f.Title
	}
	if f.Text != nil {
		o.Text = *f.Text
	}
	if f.Source != nil {
		o.Source = f.Source
	}
	if f.AddedBy != nil {
		o.AddedBy = f.AddedBy
	}
}
