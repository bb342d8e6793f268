package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedFAQMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing FAQ embedding for FaqId: %s", payload.FaqId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	faq, err := uow.FAQRepository().FindOne(ctx, specification.ByID{ID: payload.FaqId})
	if err != nil {
		log.Printf("[ERROR] Failed to get FAQ %s: %v", payload.FaqId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if faq == nil {
		// FAQ removed between publish and consume (cleanup run or review
		// decision). Nothing left to index.
		log.Printf("[WARN] FAQ not found, skipping embed: %s", payload.FaqId)
		msg.Ack()
		return
	}

	content := faq.Question + "\n" + faq.Answer

	res, err := cs.embeddingProvider.Generate(ctx, content, embedding.TaskRetrievalDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for FAQ %s: %v", payload.FaqId, err)
		msg.Nack()
		return
	}

	newEmbedding := &entity.FAQEmbedding{
		Id:             uuid.New(),
		Document:       content,
		EmbeddingValue: res,
		FaqId:          faq.Id,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Delete-then-create keeps the index at exactly one entry per FAQ.
	if err := uow.FAQEmbeddingRepository().DeleteByFaqIdUnscoped(ctx, faq.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embedding: %v", err)
		msg.Nack()
		return
	}

	if err := uow.FAQEmbeddingRepository().Create(ctx, newEmbedding); err != nil {
		log.Printf("[ERROR] Failed to create embedding: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] FAQ indexed: %s", payload.FaqId)
	msg.Ack()
}
