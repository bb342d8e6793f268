package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFAQRequest struct {
	Question   string      `json:"question" validate:"required"`
	Answer     string      `json:"answer" validate:"required"`
	Category   string      `json:"category"`
	DocumentId *uuid.UUID  `json:"documentId"`
	MessageId  *string     `json:"messageId"`
	ChannelId  string      `json:"channelId"`
	SourceIds  []uuid.UUID `json:"sourceIds"`
}

type CreateFAQResponse struct {
	Id uuid.UUID `json:"id"`
	// RoutedToReview is true when the candidate looked like a duplicate of
	// an existing FAQ and was parked for human review instead of created.
	RoutedToReview bool       `json:"routedToReview"`
	CandidateId    *uuid.UUID `json:"candidateId,omitempty"`
	MatchedFaqId   *uuid.UUID `json:"matchedFaqId,omitempty"`
	MatchScore     float64    `json:"matchScore,omitempty"`
}

type FAQResponse struct {
	Id        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
