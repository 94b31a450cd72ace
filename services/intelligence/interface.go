package intelligence

import (
	"context"
	"errors"

	"eventify/models"
)

var (
	ErrEmptyMessage  = errors.New("message text is required")
	ErrInvalidBudget = errors.New("budget must be a positive amount")
	ErrInvalidDraft  = errors.New("generated package did not match the expected format")
)

// ContextStore persists per-user conversation history.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// ChatClient continues a free-form conversation.
type ChatClient interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// ContentGenerator answers a single prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AIService is the assistant behind the chat screen.
type AIService interface {
	ProcessUserInput(ctx context.Context, req models.AIRequest) (*models.AIResponse, error)
	ClearConversation(ctx context.Context, userID string) error
}

// PlannerService drafts an event package from the planner screen's fields.
type PlannerService interface {
	GeneratePlan(ctx context.Context, req models.PlannerRequest) (*models.PlannerResponse, error)
}
