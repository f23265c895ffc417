package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book represents a tracked book on a user's shelf.
// ReadingStatus is caller-supplied and not validated against a closed set;
// typical values are "to-read", "reading" and "finished".
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookTitle     string             `bson:"book_title,omitempty" json:"book_title,omitempty"`
	BookAuthor    string             `bson:"book_author,omitempty" json:"book_author,omitempty"`
	CoverPhoto    string             `bson:"cover_photo,omitempty" json:"cover_photo,omitempty"`
	UserEmail     string             `bson:"user_email,omitempty" json:"user_email,omitempty"`
	ReadingStatus string             `bson:"reading_status,omitempty" json:"reading_status,omitempty"`
	Upvote        int64              `bson:"upvote" json:"upvote"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookFilter holds the optional query constraints for listing books.
// Zero values impose no constraint; Search and Status compose conjunctively.
type BookFilter struct {
	// Search is matched case-insensitively as a substring of the
	// title or the author.
	Search string
	// Status is an exact match against reading_status.
	Status string
}

// BookUpdate carries the replaceable fields for the generic update path.
// Nil pointers are left untouched in the stored document.
type BookUpdate struct {
	BookTitle     *string `json:"book_title,omitempty"`
	BookAuthor    *string `json:"book_author,omitempty"`
	CoverPhoto    *string `json:"cover_photo,omitempty"`
	ReadingStatus *string `json:"reading_status,omitempty"`
}

// IsEmpty reports whether the update sets no fields.
func (u BookUpdate) IsEmpty() bool {
	return u.BookTitle == nil && u.BookAuthor == nil && u.CoverPhoto == nil && u.ReadingStatus == nil
}
