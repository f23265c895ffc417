package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a user's review of a book.
// BookID and UserEmail are soft references; at most one review may exist
// per (book_id, user_email) pair, enforced by a pre-insert existence check.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID     string             `bson:"book_id" json:"book_id"`
	UserEmail  string             `bson:"user_email" json:"user_email"`
	ReviewText string             `bson:"review_text" json:"review_text"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
