package service

import (
	"context"
	"errors"
	"sort"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence layer. They interpret the same
// specification objects the real repositories do, so service code runs
// unchanged against them.

type fakeStore struct {
	users     []*entity.User
	sessions  []*entity.ChatSession
	messages  []*entity.ChatMessage
	feedbacks []*entity.ChatFeedback

	// userFindErr simulates an infrastructure failure on user lookups.
	userFindErr error
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatFeedbackRepository() contract.ChatFeedbackRepository {
	return &fakeFeedbackRepo{store: u.store}
}

// specFilter extracts the filter parts of a spec list the fakes understand.
type specFilter struct {
	byID             *uuid.UUID
	ownerID          *uuid.UUID
	chatSessionID    *uuid.UUID
	chatMessageIDs   []uuid.UUID
	rating           string
	email            string
	orderByCreatedAt bool
	orderDesc        bool
	limit            int
	offset           int
}

func parseSpecs(specs []specification.Specification) specFilter {
	f := specFilter{limit: -1}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.byID = &id
		case specification.UserOwnedBy:
			id := v.UserID
			f.ownerID = &id
		case specification.ByChatSessionID:
			id := v.ChatSessionID
			f.chatSessionID = &id
		case specification.ByChatMessageIDs:
			f.chatMessageIDs = v.ChatMessageIDs
		case specification.ByRating:
			f.rating = v.Rating
		case specification.ByEmail:
			f.email = v.Email
		case specification.OrderBy:
			f.orderByCreatedAt = v.Field == "created_at"
			f.orderDesc = v.Desc
		case specification.Pagination:
			f.limit = v.Limit
			f.offset = v.Offset
		}
	}
	return f
}

func paginate[T any](items []T, f specFilter) []T {
	if f.offset > 0 {
		if f.offset >= len(items) {
			return nil
		}
		items = items[f.offset:]
	}
	if f.limit >= 0 && f.limit < len(items) {
		items = items[:f.limit]
	}
	return items
}

// fakeUserRepo

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			cp := *user
			r.store.users[i] = &cp
			return nil
		}
	}
	return errors.New("user not found")
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.store.userFindErr != nil {
		return nil, r.store.userFindErr
	}
	f := parseSpecs(specs)
	for _, u := range r.store.users {
		if f.byID != nil && u.Id != *f.byID {
			continue
		}
		if f.email != "" && u.Email != f.email {
			continue
		}
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

// fakeSessionRepo

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	cp := *session
	r.store.sessions = append(r.store.sessions, &cp)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			cp := *session
			r.store.sessions[i] = &cp
			return nil
		}
	}
	return errors.New("session not found")
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f := parseSpecs(specs)
	var matches []*entity.ChatSession
	for _, s := range r.store.sessions {
		if f.byID != nil && s.Id != *f.byID {
			continue
		}
		if f.ownerID != nil && s.UserId != *f.ownerID {
			continue
		}
		cp := *s
		matches = append(matches, &cp)
	}
	if f.orderByCreatedAt {
		sort.SliceStable(matches, func(i, j int) bool {
			if f.orderDesc {
				return matches[i].CreatedAt.After(matches[j].CreatedAt)
			}
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		})
	}
	return paginate(matches, f), nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

// fakeMessageRepo

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	cp := *message
	r.store.messages = append(r.store.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	f := parseSpecs(specs)
	var matches []*entity.ChatMessage
	for _, m := range r.store.messages {
		if f.byID != nil && m.Id != *f.byID {
			continue
		}
		if f.chatSessionID != nil && m.ChatSessionId != *f.chatSessionID {
			continue
		}
		cp := *m
		matches = append(matches, &cp)
	}
	if f.orderByCreatedAt {
		sort.SliceStable(matches, func(i, j int) bool {
			if f.orderDesc {
				return matches[i].CreatedAt.After(matches[j].CreatedAt)
			}
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		})
	}
	return paginate(matches, f), nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func (r *fakeMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

// fakeFeedbackRepo

type fakeFeedbackRepo struct {
	store *fakeStore
}

func (r *fakeFeedbackRepo) Upsert(ctx context.Context, feedback *entity.ChatFeedback) error {
	for i, f := range r.store.feedbacks {
		if f.ChatMessageId == feedback.ChatMessageId && f.UserId == feedback.UserId {
			updated := *f
			updated.Rating = feedback.Rating
			updated.Comment = feedback.Comment
			updated.UpdatedAt = feedback.UpdatedAt
			r.store.feedbacks[i] = &updated
			*feedback = updated
			return nil
		}
	}
	cp := *feedback
	r.store.feedbacks = append(r.store.feedbacks, &cp)
	return nil
}

func (r *fakeFeedbackRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatFeedback, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatFeedback, error) {
	f := parseSpecs(specs)
	var matches []*entity.ChatFeedback
	for _, fb := range r.store.feedbacks {
		if f.byID != nil && fb.Id != *f.byID {
			continue
		}
		if f.ownerID != nil && fb.UserId != *f.ownerID {
			continue
		}
		if f.rating != "" && fb.Rating != f.rating {
			continue
		}
		if len(f.chatMessageIDs) > 0 && !containsId(f.chatMessageIDs, fb.ChatMessageId) {
			continue
		}
		cp := *fb
		matches = append(matches, &cp)
	}
	return paginate(matches, f), nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func (r *fakeFeedbackRepo) FindRecent(ctx context.Context, limit, offset int) ([]*entity.FeedbackFeedItem, error) {
	sorted := make([]*entity.ChatFeedback, len(r.store.feedbacks))
	copy(sorted, r.store.feedbacks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	sorted = paginate(sorted, specFilter{limit: limit, offset: offset})

	items := make([]*entity.FeedbackFeedItem, 0, len(sorted))
	for _, fb := range sorted {
		item := &entity.FeedbackFeedItem{Feedback: *fb}
		for _, u := range r.store.users {
			if u.Id == fb.UserId {
				item.UserName = u.FullName
			}
		}
		for _, m := range r.store.messages {
			if m.Id == fb.ChatMessageId {
				item.MessageText = m.Message
				item.MessageSessionId = m.ChatSessionId
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeFeedbackRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	messageIds := make(map[uuid.UUID]bool)
	for _, m := range r.store.messages {
		if m.ChatSessionId == sessionId {
			messageIds[m.Id] = true
		}
	}
	kept := r.store.feedbacks[:0]
	for _, f := range r.store.feedbacks {
		if !messageIds[f.ChatMessageId] {
			kept = append(kept, f)
		}
	}
	r.store.feedbacks = kept
	return nil
}

func containsId(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// scriptedProvider plays back canned replies. Chat serves the main
// dispatch, Generate serves title generation, so tests can count them
// independently.
type scriptedProvider struct {
	chatReply     string
	chatErr       error
	chatCalls     int
	lastPrompt    []llm.Message
	generateReply string
	generateErr   error
	generateCalls int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.chatCalls++
	p.lastPrompt = history
	if p.chatErr != nil {
		return "", p.chatErr
	}
	return p.chatReply, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.generateCalls++
	if p.generateErr != nil {
		return "", p.generateErr
	}
	return p.generateReply, nil
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
