package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdatePIIDetectionRequest struct {
	DetectionId       uuid.UUID `json:"detectionId" validate:"required"`
	Status            string    `json:"status" validate:"required"`
	ReviewedBy        string    `json:"reviewedBy" validate:"required"`
	CustomReplacement string    `json:"customReplacement"`
	ReviewNote        string    `json:"reviewNote"`
}

type BulkPIIUpdateItem struct {
	DetectionId uuid.UUID `json:"detectionId" validate:"required"`
	Status      string    `json:"status" validate:"required"`
}

type BulkUpdatePIIDetectionsRequest struct {
	Updates    []BulkPIIUpdateItem `json:"updates" validate:"required,min=1,dive"`
	ReviewedBy string              `json:"reviewedBy" validate:"required"`
	ReviewNote string              `json:"reviewNote"`
}

type BulkFailure struct {
	Id     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

type BulkUpdateResponse struct {
	Succeeded int           `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

type PIIDetectionResponse struct {
	Id                uuid.UUID  `json:"id"`
	OriginalText      string     `json:"originalText"`
	ReplacementText   string     `json:"replacementText"`
	PiiType           string     `json:"piiType"`
	Status            string     `json:"status"`
	ReviewedBy        string     `json:"reviewedBy,omitempty"`
	ReviewNote        string     `json:"reviewNote,omitempty"`
	ReviewedAt        *time.Time `json:"reviewedAt,omitempty"`
	CustomReplacement string     `json:"customReplacement,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type UpdateDuplicateCandidateRequest struct {
	CandidateId uuid.UUID  `json:"candidateId" validate:"required"`
	Status      string     `json:"status" validate:"required"`
	ReviewedBy  string     `json:"reviewedBy" validate:"required"`
	TargetFaqId *uuid.UUID `json:"targetFaqId"`
	ReviewNote  string     `json:"reviewNote"`
}

type UpdateDuplicateCandidateResponse struct {
	Id uuid.UUID `json:"id"`
	// CreatedFaqId is set when the decision materialized a new FAQ.
	CreatedFaqId *uuid.UUID `json:"createdFaqId,omitempty"`
}

type DuplicateCandidateResponse struct {
	Id           uuid.UUID  `json:"id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Category     string     `json:"category"`
	MatchedFaqId uuid.UUID  `json:"matchedFaqId"`
	MatchScore   float64    `json:"matchScore"`
	Status       string     `json:"status"`
	ReviewedBy   string     `json:"reviewedBy,omitempty"`
	ReviewNote   string     `json:"reviewNote,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	TargetFaqId  *uuid.UUID `json:"targetFaqId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
