package service

import (
	"context"
	"testing"
	"time"

	"ai-support-be/internal/apperror"
	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAiMessage(store *fakeStore, sessionId uuid.UUID) *entity.ChatMessage {
	msg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Sender:        constant.ChatSenderAi,
		Message:       "here is the answer",
		CreatedAt:     time.Now(),
	}
	store.messages = append(store.messages, msg)
	return msg
}

func TestSubmitFeedbackCreatesRow(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")
	session := seedSession(uowFactory.store, user.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	comment := "very helpful"
	res, err := svc.SubmitFeedback(context.Background(), user.Id, &dto.SubmitFeedbackRequest{
		MessageId: msg.Id,
		Rating:    constant.FeedbackRatingPositive,
		Comment:   &comment,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	require.Len(t, uowFactory.store.feedbacks, 1)
	stored := uowFactory.store.feedbacks[0]
	assert.Equal(t, constant.FeedbackRatingPositive, stored.Rating)
	require.NotNil(t, stored.Comment)
	assert.Equal(t, "very helpful", *stored.Comment)
}

func TestSubmitFeedbackSecondRatingWins(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")
	session := seedSession(uowFactory.store, user.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	first, err := svc.SubmitFeedback(context.Background(), user.Id, &dto.SubmitFeedbackRequest{
		MessageId: msg.Id,
		Rating:    constant.FeedbackRatingPositive,
	})
	require.NoError(t, err)

	second, err := svc.SubmitFeedback(context.Background(), user.Id, &dto.SubmitFeedbackRequest{
		MessageId: msg.Id,
		Rating:    constant.FeedbackRatingNegative,
	})
	require.NoError(t, err)

	// Still one row, the original identity survives, the rating flips.
	require.Len(t, uowFactory.store.feedbacks, 1)
	assert.Equal(t, first.FeedbackId, second.FeedbackId)
	assert.Equal(t, constant.FeedbackRatingNegative, uowFactory.store.feedbacks[0].Rating)
}

func TestSubmitFeedbackDistinctRatersKeepSeparateRows(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	alice := seedUser(uowFactory.store, "alice")
	session := seedSession(uowFactory.store, alice.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	_, err := svc.SubmitFeedback(context.Background(), alice.Id, &dto.SubmitFeedbackRequest{
		MessageId: msg.Id,
		Rating:    constant.FeedbackRatingPositive,
	})
	require.NoError(t, err)

	// A second rating by the same user on another message also stands alone.
	otherMsg := seedAiMessage(uowFactory.store, session.Id)
	_, err = svc.SubmitFeedback(context.Background(), alice.Id, &dto.SubmitFeedbackRequest{
		MessageId: otherMsg.Id,
		Rating:    constant.FeedbackRatingNegative,
	})
	require.NoError(t, err)

	assert.Len(t, uowFactory.store.feedbacks, 2)
}

func TestSubmitFeedbackOnUserMessageRejected(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")
	session := seedSession(uowFactory.store, user.Id, "default")

	userMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Sender:        constant.ChatSenderUser,
		Message:       "my own question",
		CreatedAt:     time.Now(),
	}
	uowFactory.store.messages = append(uowFactory.store.messages, userMsg)

	_, err := svc.SubmitFeedback(context.Background(), user.Id, &dto.SubmitFeedbackRequest{
		MessageId: userMsg.Id,
		Rating:    constant.FeedbackRatingPositive,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidTarget, apperror.KindOf(err))
	assert.Empty(t, uowFactory.store.feedbacks)
}

func TestSubmitFeedbackMissingMessage(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	user := seedUser(uowFactory.store, "alice")

	_, err := svc.SubmitFeedback(context.Background(), user.Id, &dto.SubmitFeedbackRequest{
		MessageId: uuid.New(),
		Rating:    constant.FeedbackRatingPositive,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSubmitFeedbackForeignSessionForbidden(t *testing.T) {
	uowFactory := newFakeFactory()
	svc := NewFeedbackService(uowFactory, nopLogger{})

	owner := seedUser(uowFactory.store, "alice")
	intruder := seedUser(uowFactory.store, "mallory")
	session := seedSession(uowFactory.store, owner.Id, "default")
	msg := seedAiMessage(uowFactory.store, session.Id)

	_, err := svc.SubmitFeedback(context.Background(), intruder.Id, &dto.SubmitFeedbackRequest{
		MessageId: msg.Id,
		Rating:    constant.FeedbackRatingNegative,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.Empty(t, uowFactory.store.feedbacks)
}
