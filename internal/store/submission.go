package store

import (
	"time"
)

// Submission records a consumed form submission token. A token can only be
// consumed once.
type Submission struct {
	Token      string    `gorm:"primaryKey"`
	Form       string    `gorm:"index"`
	Visitor    string    `gorm:"index"`
	ConsumedAt time.Time `gorm:"index"`
}
