package intelligence

import (
	"context"
	"fmt"
	"strings"

	"eventify/models"
	"eventify/services/recommend"

	"go.uber.org/zap"
)

const connectionTrouble = "I'm having trouble connecting right now, please try again later."

// DefaultAIService answers chat turns from the catalog and hands anything the
// catalog cannot answer to the chat collaborator.
type DefaultAIService struct {
	Engine *recommend.Engine
	Store  ContextStore
	Chat   ChatClient
	Logger *zap.Logger
}

func NewAIService(engine *recommend.Engine, store ContextStore, chat ChatClient, logger *zap.Logger) *DefaultAIService {
	return &DefaultAIService{Engine: engine, Store: store, Chat: chat, Logger: logger}
}

func (s *DefaultAIService) ProcessUserInput(ctx context.Context, req models.AIRequest) (*models.AIResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	aiCtx, err := s.Store.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	rec := s.Engine.Respond(text)
	resp := &models.AIResponse{
		Kind:         rec.Kind,
		ResponseText: rec.Message,
		Services:     rec.Items,
		IsPackage:    rec.IsPackage,
		Total:        rec.Total,
	}
	if rec.Kind == models.KindDelegate {
		resp.ResponseText = s.delegate(ctx, req.UserID, aiCtx.History, text)
	}

	aiCtx.History = append(aiCtx.History,
		models.ChatMessage{Role: "user", Content: text},
		models.ChatMessage{Role: "assistant", Content: resp.ResponseText},
	)
	if err := s.Store.Set(ctx, req.UserID, aiCtx); err != nil {
		s.Logger.Warn("failed to save conversation", zap.String("userID", req.UserID), zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultAIService) delegate(ctx context.Context, userID string, history []models.ChatMessage, text string) string {
	if s.Chat == nil {
		return connectionTrouble
	}
	reply, err := s.Chat.Chat(ctx, history, text)
	if err != nil || strings.TrimSpace(reply) == "" {
		s.Logger.Error("chat fallback failed", zap.String("userID", userID), zap.Error(err))
		return connectionTrouble
	}
	return reply
}

func (s *DefaultAIService) ClearConversation(ctx context.Context, userID string) error {
	if err := s.Store.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear context: %w", err)
	}
	return nil
}
