package service

import (
	"context"
	"testing"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFeedback(store *fakeStore, messageId, userId uuid.UUID, rating string, createdAt time.Time) {
	store.feedbacks = append(store.feedbacks, &entity.ChatFeedback{
		Id:            uuid.New(),
		ChatMessageId: messageId,
		UserId:        userId,
		Rating:        rating,
		CreatedAt:     createdAt,
	})
}

func TestDashboardStatsPercentage(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewDashboardService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")
	session := seedSession(uowFactory.store, user.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	now := time.Now()
	seedFeedback(uowFactory.store, msg.Id, uuid.New(), constant.FeedbackRatingPositive, now)
	seedFeedback(uowFactory.store, msg.Id, uuid.New(), constant.FeedbackRatingPositive, now)
	seedFeedback(uowFactory.store, msg.Id, uuid.New(), constant.FeedbackRatingPositive, now)
	seedFeedback(uowFactory.store, msg.Id, uuid.New(), constant.FeedbackRatingNegative, now)

	res, err := svc.GetDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(4), res.Stats.Total)
	assert.Equal(t, int64(3), res.Stats.Positive)
	assert.Equal(t, int64(1), res.Stats.Negative)
	assert.Equal(t, 75.0, res.Stats.PositivePercentage)
	assert.Equal(t, int64(1), res.Stats.TotalSessions)
}

func TestDashboardEmptyStats(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewDashboardService(uowFactory, nopLogger{})

	res, err := svc.GetDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Stats.Total)
	assert.Equal(t, 0.0, res.Stats.PositivePercentage)
	assert.Empty(t, res.RecentFeedback)
}

func TestDashboardRecentFeedbackNewestFirst(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewDashboardService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")
	other := seedUser(uowFactory.store, "bob")
	session := seedSession(uowFactory.store, user.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	base := time.Now()
	seedFeedback(uowFactory.store, msg.Id, other.Id, constant.FeedbackRatingNegative, base.Add(-time.Hour))
	seedFeedback(uowFactory.store, msg.Id, user.Id, constant.FeedbackRatingPositive, base)

	res, err := svc.GetDashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.RecentFeedback, 2)

	newest := res.RecentFeedback[0]
	assert.Equal(t, constant.FeedbackRatingPositive, newest.Rating)
	require.NotNil(t, newest.User)
	assert.Equal(t, "alice", newest.User.Name)
	require.NotNil(t, newest.ChatMessage)
	assert.Equal(t, msg.Id, newest.ChatMessage.Id)
	assert.Equal(t, "here is the answer", newest.ChatMessage.Message)
	assert.Equal(t, session.Id, newest.ChatMessage.ChatSessionId)
}
