// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// threadRepository implements the repository.ThreadRepository interface.
type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository is the constructor for threadRepository.
func NewThreadRepository(db *gorm.DB) repository.ThreadRepository {
	return &threadRepository{
		db: db,
	}
}

// CreateThread persists a new thread.
func (repo *threadRepository) CreateThread(ctx context.Context, thread *entity.Thread) error {
	threadM := fromThreadDomain(thread)

	if err := repo.db.WithContext(ctx).Create(threadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("thread already exists for supplier and consumer")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid supplier or consumer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create thread")
	}

	thread.ID = threadM.ID
	thread.CreatedAt = threadM.CreatedAt
	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

// FindThreadByID retrieves a thread by its unique ID.
func (repo *threadRepository) FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error) {
	var threadM model.ThreadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread by id")
	}

	return toThreadDomain(&threadM), nil
}

// FindBySupplierAndConsumer retrieves the thread between a supplier company and a consumer.
func (repo *threadRepository) FindBySupplierAndConsumer(ctx context.Context, supplierID, consumerID uuid.UUID) (*entity.Thread, error) {
	var threadM model.ThreadModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ? AND consumer_id = ?", supplierID, consumerID).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread by supplier and consumer")
	}

	return toThreadDomain(&threadM), nil
}

// ListBySupplier retrieves all non-archived threads of a supplier company.
func (repo *threadRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Thread, error) {
	return repo.list(ctx, "supplier_id = ?", supplierID)
}

// ListByConsumer retrieves all non-archived threads of a consumer.
func (repo *threadRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Thread, error) {
	return repo.list(ctx, "consumer_id = ?", consumerID)
}

func (repo *threadRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Thread, error) {
	var threadModels []*model.ThreadModel

	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Where("archived = ?", false).
		Order("updated_at DESC").
		Find(&threadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list threads")
	}

	threads := make([]*entity.Thread, 0, len(threadModels))
	for _, threadM := range threadModels {
		threads = append(threads, toThreadDomain(threadM))
	}

	return threads, nil
}

// UpdateThread modifies an existing thread.
func (repo *threadRepository) UpdateThread(ctx context.Context, thread *entity.Thread) error {
	threadM := fromThreadDomain(thread)

	if err := repo.db.WithContext(ctx).Save(threadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update thread")
	}

	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

// AppendMessage appends a message to a thread.
func (repo *threadRepository) AppendMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrThreadNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListMessages retrieves a thread's messages in creation order.
func (repo *threadRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead marks every message of the thread not sent by reader as read.
func (repo *threadRepository) MarkRead(ctx context.Context, threadID, reader uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("thread_id = ? AND sender_id <> ? AND read = ?", threadID, reader, false).
		Update("read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark messages read")
	}

	return nil
}

// CountUnread counts messages of the thread not sent by reader and not yet read.
func (repo *threadRepository) CountUnread(ctx context.Context, threadID, reader uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("thread_id = ? AND sender_id <> ? AND read = ?", threadID, reader, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return int(count), nil
}

// toThreadDomain converts a GORM ThreadModel to a domain Thread entity.
func toThreadDomain(data *model.ThreadModel) *entity.Thread {
	if data == nil {
		return nil
	}

	return &entity.Thread{
		ID:              data.ID,
		SupplierID:      data.SupplierID,
		ConsumerID:      data.ConsumerID,
		AssignedSalesID: data.AssignedSalesID,
		Escalated:       data.Escalated,
		EscalatedAt:     data.EscalatedAt,
		EscalatedBy:     data.EscalatedBy,
		Archived:        data.Archived,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromThreadDomain converts a domain Thread entity to a GORM ThreadModel.
func fromThreadDomain(data *entity.Thread) *model.ThreadModel {
	if data == nil {
		return nil
	}

	return &model.ThreadModel{
		ID:              data.ID,
		SupplierID:      data.SupplierID,
		ConsumerID:      data.ConsumerID,
		AssignedSalesID: data.AssignedSalesID,
		Escalated:       data.Escalated,
		EscalatedAt:     data.EscalatedAt,
		EscalatedBy:     data.EscalatedBy,
		Archived:        data.Archived,
	}
}

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		ThreadID:   data.ThreadID,
		SenderID:   data.SenderID,
		SenderRole: entity.Role(data.SenderRole),
		Type:       entity.MessageType(data.Type),
		Content:    data.Content,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		ThreadID:   data.ThreadID,
		SenderID:   data.SenderID,
		SenderRole: data.SenderRole.String(),
		Type:       string(data.Type),
		Content:    data.Content,
		Read:       data.Read,
	}
}
