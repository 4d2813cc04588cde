package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"ai-support-be/internal/apperror"
	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/prompt"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/aiconfig"
	"ai-support-be/pkg/llm"
	"ai-support-be/pkg/llm/factory"
	"ai-support-be/pkg/support/message"
	"ai-support-be/pkg/support/session"
	"ai-support-be/pkg/support/title"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID, page, perPage int) (*dto.ListSessionsResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error)
	RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.RenameSessionRequest) error
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.GetHistoryResponse, error)
}

// chatService coordinates the conversation domain components.
type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	profiles   *aiconfig.Registry
	providers  *factory.Registry
	prompts    *prompt.Registry
	logger     logger.ILogger

	sessionManager *session.Manager
	messageFactory *message.Factory
	titleGenerator *title.Generator
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	profiles *aiconfig.Registry,
	providers *factory.Registry,
	prompts *prompt.Registry,
	log logger.ILogger,
) IChatService {
	sessionManager := session.NewManager()

	return &chatService{
		uowFactory: uowFactory,
		profiles:   profiles,
		providers:  providers,
		prompts:    prompts,
		logger:     log,

		sessionManager: sessionManager,
		messageFactory: message.NewFactory(),
		titleGenerator: title.NewGenerator(profiles, providers, sessionManager, log),
	}
}

// CreateSession starts a new conversation thread. An explicit
// configuration key must exist in the registry; omitting it selects the
// default profile.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	configKey := constant.DefaultConfigurationKey
	if req.AiConfigurationKey != nil {
		if !cs.profiles.Has(*req.AiConfigurationKey) {
			return nil, apperror.Validation("Unknown AI configuration key")
		}
		configKey = *req.AiConfigurationKey
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession := &entity.ChatSession{
		Id:                 uuid.New(),
		UserId:             userId,
		AiConfigurationKey: configKey,
		CreatedAt:          time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id:                 chatSession.Id,
		AiConfigurationKey: chatSession.AiConfigurationKey,
	}, nil
}

func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID, page, perPage int) (*dto.ListSessionsResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	if err != nil {
		return nil, err
	}

	sessions := make([]*dto.SessionResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		sessions = append(sessions, toSessionResponse(s))
	}

	configs := cs.profiles.All()
	available := make([]*dto.AvailableConfigDTO, 0, len(configs))
	for _, p := range configs {
		available = append(available, &dto.AvailableConfigDTO{Key: p.Key, Name: p.Name})
	}

	return &dto.ListSessionsResponse{
		Sessions:           sessions,
		AvailableAiConfigs: available,
		Page:               page,
		PerPage:            perPage,
	}, nil
}

func (cs *chatService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	return toSessionResponse(chatSession), nil
}

func (cs *chatService) RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.RenameSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := cs.sessionManager.UpdateTitle(ctx, uow, chatSession, req.Title, time.Now()); err != nil {
		return err
	}

	return uow.Commit()
}

// DeleteSession removes a session with its messages and their feedback in
// one transaction. Feedback goes first: its delete resolves message ids
// through the live chat_messages rows.
func (cs *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatFeedbackRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}

	return uow.Commit()
}

// SendChat runs one full exchange. Whatever the provider does, a
// committed call leaves exactly one new user turn and one new ai turn.
func (cs *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperror.Validation("Message must not be empty")
	}
	if utf8.RuneCountInString(req.Message) > constant.ChatMessageMaxLength {
		return nil, apperror.Validation("Message exceeds the maximum length")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	userTurn := cs.messageFactory.CreateUserTurn(chatSession.Id, req.Message, now)
	if err := uow.ChatMessageRepository().Create(ctx, userTurn); err != nil {
		return nil, err
	}

	// Lazy title, best effort, always on the default profile.
	sessionTitle := cs.titleGenerator.EnsureTitle(ctx, uow, chatSession, req.Message, now)

	profile, fellBack := cs.profiles.Resolve(chatSession.AiConfigurationKey)
	if profile == nil {
		return nil, apperror.ServerConfiguration("Default AI configuration missing")
	}
	if fellBack {
		cs.logger.Warn("chat", "Unknown session configuration key, using default", map[string]interface{}{
			"session_id": chatSession.Id,
			"config_key": chatSession.AiConfigurationKey,
		})
	}

	systemPrompt, err := cs.prompts.Render(profile.SystemPromptRef)
	if err != nil {
		cs.logger.Warn("chat", "System prompt template unavailable", map[string]interface{}{
			"ref":   profile.SystemPromptRef,
			"error": err.Error(),
		})
		systemPrompt = ""
	}

	reply, dispatchErr := cs.dispatch(ctx, profile, systemPrompt, req.Message)
	if dispatchErr != nil {
		cs.logger.Error("chat", "AI provider call failed", map[string]interface{}{
			"session_id": chatSession.Id,
			"config_key": profile.Key,
			"provider":   profile.Provider,
			"model":      profile.Model,
			"error":      dispatchErr.Error(),
		})

		fallbackTurn := cs.messageFactory.CreateFallbackTurn(chatSession.Id, now)
		if err := uow.ChatMessageRepository().Create(ctx, fallbackTurn); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return nil, apperror.Upstream("AI provider request failed", dispatchErr)
	}

	aiTurn := cs.messageFactory.CreateAiTurn(chatSession.Id, reply, now)
	if err := uow.ChatMessageRepository().Create(ctx, aiTurn); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Reply:        reply,
		AiMessageId:  aiTurn.Id,
		SessionTitle: sessionTitle,
	}, nil
}

func (cs *chatService) dispatch(ctx context.Context, profile *aiconfig.Profile, systemPrompt, userText string) (string, error) {
	provider, err := cs.providers.Get(profile.Provider)
	if err != nil {
		return "", apperror.ServerConfiguration(err.Error())
	}

	return provider.Chat(ctx,
		cs.messageFactory.BuildPrompt(systemPrompt, userText),
		llm.WithModel(profile.Model),
	)
}

// GetChatHistory returns the session's turns oldest first. AI turns carry
// the caller's own rating; other users' feedback never leaves the server.
func (cs *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.GetHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messageIds := make([]uuid.UUID, 0, len(chatMessages))
	for _, msg := range chatMessages {
		if msg.Sender == constant.ChatSenderAi {
			messageIds = append(messageIds, msg.Id)
		}
	}

	ratingByMessageId := make(map[uuid.UUID]string)
	if len(messageIds) > 0 {
		feedbacks, err := uow.ChatFeedbackRepository().FindAll(ctx,
			specification.ByChatMessageIDs{ChatMessageIDs: messageIds},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		for _, f := range feedbacks {
			ratingByMessageId[f.ChatMessageId] = f.Rating
		}
	}

	messages := make([]*dto.HistoryMessageDTO, 0, len(chatMessages))
	for _, msg := range chatMessages {
		var feedbackGiven *string
		if rating, ok := ratingByMessageId[msg.Id]; ok {
			r := rating
			feedbackGiven = &r
		}
		messages = append(messages, &dto.HistoryMessageDTO{
			DbId:          msg.Id,
			Sender:        msg.Sender,
			Text:          msg.Message,
			CreatedAt:     msg.CreatedAt,
			FeedbackGiven: feedbackGiven,
		})
	}

	return &dto.GetHistoryResponse{Messages: messages}, nil
}

func toSessionResponse(s *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:                 s.Id,
		Title:              s.Title,
		AiConfigurationKey: s.AiConfigurationKey,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
