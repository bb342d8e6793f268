package dto

import "github.com/google/uuid"

// PublishEmbedFAQMessage asks the consumer to (re)index one FAQ.
type PublishEmbedFAQMessage struct {
	FaqId uuid.UUID `json:"faq_id"`
}
