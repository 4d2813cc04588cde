package bootstrap

import (
	"log"

	"ai-support-be/internal/config"
	"ai-support-be/internal/controller"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/prompt"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/internal/service"
	"ai-support-be/pkg/aiconfig"
	"ai-support-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	SessionController   controller.ISessionController
	ChatController      controller.IChatController
	DashboardController controller.IDashboardController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// AI profile registry. A missing default profile is a configuration
	// bug every dispatch would trip over, so refuse to start.
	profiles := aiconfig.NewRegistry(cfg.Profiles)
	if err := profiles.Validate(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	providers := factory.NewRegistry(cfg.Ai)

	prompts, err := prompt.NewRegistry()
	if err != nil {
		log.Fatalf("[FATAL] Failed to load prompt templates: %v", err)
	}

	// Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	chatService := service.NewChatService(uowFactory, profiles, providers, prompts, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		SessionController:   controller.NewSessionController(chatService),
		ChatController:      controller.NewChatController(chatService, feedbackService),
		DashboardController: controller.NewDashboardController(dashboardService),

		Logger: sysLogger,
	}
}
