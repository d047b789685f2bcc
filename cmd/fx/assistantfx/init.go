package assistantfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/internal/api/controllers"
	"roamio/internal/config"
	"roamio/internal/services"
	"roamio/pkg/llm"
)

var Module = fx.Provide(
	ProvideCompletionProvider,
	ProvideAssistantService,
	controllers.NewAssistantController,
)

// ProvideCompletionProvider returns nil when no credential is configured.
// The service then answers every chat request with "assistant unavailable"
// instead of taking the whole process down at startup.
func ProvideCompletionProvider(cfg *config.Config, logger *zap.Logger) llm.Provider {
	if cfg.AIAPIKey == "" {
		logger.Warn("AI_API_KEY is not set; assistant endpoints will report unavailable")
		return nil
	}

	provider, err := llm.NewProvider(cfg.AIProvider, cfg.AIAPIKey, llm.Params{
		Model:             cfg.AIModel,
		MaxTokens:         cfg.AIMaxTokens,
		Temperature:       cfg.AITemperature,
		TopP:              cfg.AITopP,
		RepetitionPenalty: cfg.AIRepetitionPenalty,
	})
	if err != nil {
		logger.Error("failed to initialize AI provider", zap.String("provider", cfg.AIProvider), zap.Error(err))
		return nil
	}

	logger.Info("AI provider initialized", zap.String("provider", provider.Name()))
	return provider
}

func ProvideAssistantService(provider llm.Provider, cfg *config.Config, logger *zap.Logger) services.AssistantServiceInterface {
	return services.NewAssistantService(provider, cfg.AITimeout, logger)
}
