package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is a single free-text study card owned by a user.
type Card struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int64              `bson:"userId" json:"userId"`
	Card      string             `bson:"card" json:"card"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
