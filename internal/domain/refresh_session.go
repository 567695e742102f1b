package domain

import (
	"time"
)

// RefreshSession is one device login. Tokens are uuid v7 values kept as
// strings so the document store stays driver-agnostic.
type RefreshSession struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       int64     `bson:"userId" json:"user_id"`
	RefreshToken string    `bson:"refreshToken" json:"refresh_token"`
	UserAgent    string    `bson:"userAgent" json:"user_agent"`
	IP           string    `bson:"ip" json:"ip"`
	ExpiresIn    time.Time `bson:"expiresIn" json:"expires_in"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}
