package dto

import (
	"faq-knowledge-be/pkg/dedup"
)

// CleanupRunResponse mirrors dedup.Summary for the dashboard.
type CleanupRunResponse struct {
	DuplicatesRemoved int                   `json:"duplicatesRemoved"`
	TotalFAQs         int                   `json:"totalFAQs"`
	StaleReferences   int                   `json:"staleReferences"`
	DuplicateGroups   []dedup.ClusterDetail `json:"duplicateGroups"`
}

func NewCleanupRunResponse(summary *dedup.Summary) *CleanupRunResponse {
	return &CleanupRunResponse{
		DuplicatesRemoved: summary.Removed,
		TotalFAQs:         summary.RemainingTotal,
		StaleReferences:   summary.StaleReferences,
		DuplicateGroups:   summary.Groups,
	}
}
