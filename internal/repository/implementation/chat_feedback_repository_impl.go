package implementation

import (
	"context"
	"errors"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/mapper"
	"ai-support-be/internal/model"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewChatFeedbackRepository(db *gorm.DB) contract.ChatFeedbackRepository {
	return &ChatFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *ChatFeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert relies on the (chat_message_id, user_id) unique index: a
// concurrent duplicate submission degrades into the conflict branch and
// resolves idempotently instead of erroring.
func (r *ChatFeedbackRepositoryImpl) Upsert(ctx context.Context, feedback *entity.ChatFeedback) error {
	m := r.mapper.ToModel(feedback)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_message_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// Re-read so callers get the surviving row's identity, not the
	// discarded insert candidate's.
	var stored model.ChatFeedback
	err = r.db.WithContext(ctx).
		Where("chat_message_id = ? AND user_id = ?", feedback.ChatMessageId, feedback.UserId).
		First(&stored).Error
	if err != nil {
		return err
	}
	*feedback = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *ChatFeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatFeedback, error) {
	var m model.ChatFeedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChatFeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatFeedback, error) {
	var models []*model.ChatFeedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatFeedback, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ChatFeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatFeedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatFeedbackRepositoryImpl) FindRecent(ctx context.Context, limit, offset int) ([]*entity.FeedbackFeedItem, error) {
	var models []*model.ChatFeedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ChatMessage").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entity.FeedbackFeedItem, len(models))
	for i, m := range models {
		items[i] = r.mapper.ToFeedItem(m)
	}
	return items, nil
}

func (r *ChatFeedbackRepositoryImpl) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	// Subquery delete strategy
	return r.db.WithContext(ctx).
		Where("chat_message_id IN (?)", r.db.Table("chat_messages").Select("id").Where("chat_session_id = ?", sessionId)).
		Delete(&model.ChatFeedback{}).Error
}
