package service

import (
	"context"
	"time"

	"ai-support-be/internal/apperror"
	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/support/session"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type feedbackService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionManager *session.Manager
	logger         logger.ILogger
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		uowFactory:     uowFactory,
		sessionManager: session.NewManager(),
		logger:         log,
	}
}

// SubmitFeedback records a rating on an AI turn. One row per
// (message, user): a repeat submission overwrites rating and comment,
// the original row identity survives.
func (s *feedbackService) SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatMessage, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByID{ID: req.MessageId},
	)
	if err != nil {
		return nil, err
	}
	if chatMessage == nil {
		return nil, apperror.NotFound("Chat message not found")
	}

	// Ownership runs through the parent session.
	if _, err := s.sessionManager.VerifyChatSession(ctx, uow, userId, chatMessage.ChatSessionId); err != nil {
		return nil, err
	}

	if chatMessage.Sender != constant.ChatSenderAi {
		return nil, apperror.InvalidTarget("Feedback is only accepted on AI messages")
	}

	now := time.Now()
	feedback := &entity.ChatFeedback{
		Id:            uuid.New(),
		ChatMessageId: chatMessage.Id,
		UserId:        userId,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatFeedbackRepository().Upsert(ctx, feedback); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SubmitFeedbackResponse{
		Success:    true,
		FeedbackId: feedback.Id,
	}, nil
}
