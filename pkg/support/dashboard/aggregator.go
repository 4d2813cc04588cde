package dashboard

import (
	"context"
	"math"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
)

// Aggregator computes the feedback dashboard numbers and feed.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(log logger.ILogger) *Aggregator {
	return &Aggregator{logger: log}
}

// GetStats counts feedback by rating and derives the positive share.
// Counts exclude soft-deleted rows, so feedback on deleted sessions
// drops out of the numbers automatically.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardStats, error) {
	total, err := uow.ChatFeedbackRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	positive, err := uow.ChatFeedbackRepository().Count(ctx,
		specification.ByRating{Rating: constant.FeedbackRatingPositive},
	)
	if err != nil {
		return nil, err
	}

	negative, err := uow.ChatFeedbackRepository().Count(ctx,
		specification.ByRating{Rating: constant.FeedbackRatingNegative},
	)
	if err != nil {
		return nil, err
	}

	totalSessions, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Total:              total,
		Positive:           positive,
		Negative:           negative,
		PositivePercentage: PositivePercentage(positive, total),
		TotalSessions:      totalSessions,
	}, nil
}

// GetRecentFeedback returns the newest feedback joined with author and
// target message, mapped for the feed.
func (a *Aggregator) GetRecentFeedback(ctx context.Context, uow unitofwork.UnitOfWork, limit, offset int) ([]*dto.FeedbackFeedEntryDTO, error) {
	items, err := uow.ChatFeedbackRepository().FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	feed := make([]*dto.FeedbackFeedEntryDTO, 0, len(items))
	for _, item := range items {
		feed = append(feed, &dto.FeedbackFeedEntryDTO{
			Id:        item.Feedback.Id,
			Rating:    item.Feedback.Rating,
			Comment:   item.Feedback.Comment,
			CreatedAt: item.Feedback.CreatedAt,
			User: &dto.FeedbackUserDTO{
				Id:   item.Feedback.UserId,
				Name: item.UserName,
			},
			ChatMessage: &dto.FeedbackMessageDTO{
				Id:            item.Feedback.ChatMessageId,
				Message:       item.MessageText,
				ChatSessionId: item.MessageSessionId,
			},
		})
	}
	return feed, nil
}

// PositivePercentage is positive/total as a percentage rounded to one
// decimal place. Zero total yields zero, not NaN.
func PositivePercentage(positive, total int64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(positive) / float64(total) * 100
	return math.Round(pct*10) / 10
}
