package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Flashcard is one question/answer pair inside a generated set.
type Flashcard struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// FlashcardSet groups the cards generated for one topic, together with the
// user's best test result on them.
type FlashcardSet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID       int64              `bson:"userId" json:"userId"`
	Topic        string             `bson:"topic" json:"topic"`
	Flashcards   []Flashcard        `bson:"flashcards" json:"flashcards"`
	CardCount    int                `bson:"cardCount" json:"cardCount"`
	HighestScore int                `bson:"highestScore" json:"highestScore"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// TestQuestion is a multiple-choice question generated from a flashcard set.
// CorrectAnswer indexes into Options.
type TestQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// TestResult is one finished test run reported by a client.
type TestResult struct {
	SetID          primitive.ObjectID `json:"setId"`
	UserID         int64              `json:"userId"`
	Score          int                `json:"score"`
	TotalQuestions int                `json:"totalQuestions"`
	CorrectAnswers int                `json:"correctAnswers"`
	TakenAt        time.Time          `json:"takenAt"`
}
