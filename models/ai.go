package models

// AIRequest is the payload coming from the frontend into /api/ai/chat.
type AIRequest struct {
	UserID string `json:"user_id"` // unique user identifier
	Text   string `json:"text"`    // user's message
}

// AIResponse is what the chat handler returns to the frontend.
type AIResponse struct {
	Kind         ResponseKind `json:"kind"`               // "listing", "package", "none" or "delegate"
	ResponseText string       `json:"response"`           // natural-language reply
	Services     []Service    `json:"services,omitempty"` // cards to render
	IsPackage    bool         `json:"isPackage"`          // offers the "checkout package" action
	Total        int64        `json:"total,omitempty"`    // sum of numeric prices
}

// ChatMessage is a single turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AIContext is the per-user conversation state kept between requests.
type AIContext struct {
	History []ChatMessage `json:"history"`
}

// PlannerRequest carries the planner screen's structured fields.
type PlannerRequest struct {
	Budget      int64  `json:"budget" binding:"required"`
	Region      string `json:"region"`
	Date        string `json:"date"`
	Guests      int    `json:"guests"`
	Description string `json:"description"`
}

// PlannerItem is one slot of a generated draft.
type PlannerItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// PlannerDraft is the three-slot package produced by the generative collaborator.
type PlannerDraft struct {
	Venue         PlannerItem `json:"venue"`
	Catering      PlannerItem `json:"catering"`
	Entertainment PlannerItem `json:"entertainment"`
}

// PlannerResponse pairs the generated draft with a locally built package.
type PlannerResponse struct {
	Draft        *PlannerDraft `json:"draft,omitempty"`
	DraftTotal   int64         `json:"draftTotal,omitempty"`
	LocalPackage Package       `json:"localPackage"`
	Message      string        `json:"message,omitempty"`
}
