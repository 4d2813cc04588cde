package title

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/aiconfig"
	"ai-support-be/pkg/llm/factory"
	"ai-support-be/pkg/support/session"
)

// Generator produces session titles lazily from the first user message.
// Title generation is best effort: any failure is logged and swallowed so
// it can never fail the chat exchange that triggered it. It always runs
// on the default profile, regardless of the session's own configuration.
type Generator struct {
	profiles  *aiconfig.Registry
	providers *factory.Registry
	sessions  *session.Manager
	logger    logger.ILogger
}

func NewGenerator(profiles *aiconfig.Registry, providers *factory.Registry, sessions *session.Manager, log logger.ILogger) *Generator {
	return &Generator{
		profiles:  profiles,
		providers: providers,
		sessions:  sessions,
		logger:    log,
	}
}

// EnsureTitle generates and persists a title when the session has none.
// Returns the title in effect afterwards (nil when generation failed).
func (g *Generator) EnsureTitle(ctx context.Context, uow unitofwork.UnitOfWork, chatSession *entity.ChatSession, firstUserMessage string, now time.Time) *string {
	if chatSession.Title != nil {
		return chatSession.Title
	}

	profile := g.profiles.Default()
	if profile == nil {
		g.logger.Warn("title", "Skipping title generation, default profile missing", nil)
		return nil
	}

	provider, err := g.providers.Get(profile.Provider)
	if err != nil {
		g.logger.Warn("title", "Skipping title generation", map[string]interface{}{"error": err.Error()})
		return nil
	}

	prompt := fmt.Sprintf(constant.TitlePromptFormat, firstUserMessage)
	raw, err := provider.Generate(ctx, prompt)
	if err != nil {
		g.logger.Warn("title", "Title generation failed", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      err.Error(),
		})
		return nil
	}

	title := CleanTitle(raw)
	if title == "" {
		return nil
	}

	if err := g.sessions.UpdateTitle(ctx, uow, chatSession, title, now); err != nil {
		g.logger.Warn("title", "Failed to persist generated title", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      err.Error(),
		})
		return nil
	}
	return chatSession.Title
}

// CleanTitle strips whitespace and wrapping quotes from a model reply
// and truncates to the column limit. Truncation counts runes so a
// multibyte title is never cut mid-character.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, `"'`)
	title = strings.TrimSpace(title)

	runes := []rune(title)
	if len(runes) > constant.SessionTitleMaxLength {
		runes = runes[:constant.SessionTitleMaxLength]
	}
	return string(runes)
}
