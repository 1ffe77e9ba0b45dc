package store

import "gorm.io/gorm"

// ShortLink is a link shortened by a visitor, kept to display the most recent
// ones on the shortener page.
type ShortLink struct {
	gorm.Model

	Visitor     string `gorm:"index"`
	LinkID      string
	OriginalURL string
	ShortURL    string
}

func NewShortLink(visitor, linkID, originalURL, shortURL string) *ShortLink {
	return &ShortLink{
		Visitor:     visitor,
		LinkID:      linkID,
		OriginalURL: originalURL,
		ShortURL:    shortURL,
	}
}
