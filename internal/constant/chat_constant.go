package constant

const (
	ChatSenderUser = "user"
	ChatSenderAi   = "ai"

	// Stored as the AI turn when the provider call fails, so the
	// conversation log always keeps one reply per user message.
	ChatErrorFallbackMessage = "[Error fetching response]"

	ChatMessageMaxLength     = 1000
	SessionTitleMaxLength    = 100
	FeedbackCommentMaxLength = 1000

	DefaultConfigurationKey = "default"

	FeedbackRatingPositive = "positive"
	FeedbackRatingNegative = "negative"
)

// TitlePromptFormat receives the first user message of a session.
const TitlePromptFormat = `Generate a very short title (max 5 words) for a chat based on this first user message: "%s"`
