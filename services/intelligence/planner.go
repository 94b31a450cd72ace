package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"eventify/models"
	"eventify/services/catalog"
	"eventify/services/recommend"

	"go.uber.org/zap"
)

const draftFailed = "Failed to generate a package, please try again."

// NameLookup resolves catalog services by display name.
type NameLookup interface {
	FindServiceByName(name string) (models.Service, bool)
}

// DefaultPlanner drafts packages with the generative collaborator and always
// builds a catalog package alongside.
type DefaultPlanner struct {
	Engine    *recommend.Engine
	Generator ContentGenerator
	Catalog   NameLookup
	Logger    *zap.Logger
}

func NewPlanner(engine *recommend.Engine, generator ContentGenerator, lookup NameLookup, logger *zap.Logger) *DefaultPlanner {
	return &DefaultPlanner{Engine: engine, Generator: generator, Catalog: lookup, Logger: logger}
}

func (p *DefaultPlanner) GeneratePlan(ctx context.Context, req models.PlannerRequest) (*models.PlannerResponse, error) {
	if req.Budget <= 0 {
		return nil, ErrInvalidBudget
	}

	categories := p.Engine.CategoriesByName(catalog.VenuesCategory, catalog.CateringCategory, catalog.EntertainmentCategory)
	resp := &models.PlannerResponse{
		LocalPackage: recommend.BuildCrossCategoryPackage(categories, req.Budget),
	}

	draft, err := p.draft(ctx, req)
	if err != nil {
		p.Logger.Warn("planner draft rejected", zap.Int64("budget", req.Budget), zap.Error(err))
		resp.Message = draftFailed
		return resp, nil
	}

	p.attachImages(&draft)
	adjusted := recommend.AdjustPackagePrices(draft, req.Budget)
	resp.Draft = &adjusted
	resp.DraftTotal = recommend.DraftTotal(adjusted)
	return resp, nil
}

func (p *DefaultPlanner) draft(ctx context.Context, req models.PlannerRequest) (models.PlannerDraft, error) {
	if p.Generator == nil {
		return models.PlannerDraft{}, fmt.Errorf("no generator configured: %w", ErrInvalidDraft)
	}
	raw, err := p.Generator.GenerateContent(ctx, buildPlannerPrompt(req))
	if err != nil {
		return models.PlannerDraft{}, err
	}
	return ParseDraft(raw)
}

func buildPlannerPrompt(req models.PlannerRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an event planner. Put together one venue, one catering service and one entertainment provider ")
	fmt.Fprintf(&sb, "for an event with a total budget of %s.\n", recommend.FormatPrice(req.Budget))
	if req.Region != "" {
		fmt.Fprintf(&sb, "Region: %s\n", req.Region)
	}
	if req.Date != "" {
		fmt.Fprintf(&sb, "Date: %s\n", req.Date)
	}
	if req.Guests > 0 {
		fmt.Fprintf(&sb, "Guests: %d\n", req.Guests)
	}
	if req.Description != "" {
		fmt.Fprintf(&sb, "Details: %s\n", req.Description)
	}
	sb.WriteString("Reply with JSON only, no commentary, in exactly this shape:\n")
	sb.WriteString(`{"venue":{"name":"","price":"€0","description":""},` +
		`"catering":{"name":"","price":"€0","description":""},` +
		`"entertainment":{"name":"","price":"€0","description":""}}`)
	return sb.String()
}

type rawDraft struct {
	Venue         *models.PlannerItem `json:"venue"`
	Catering      *models.PlannerItem `json:"catering"`
	Entertainment *models.PlannerItem `json:"entertainment"`
}

// ParseDraft decodes a generated reply. The reply may be wrapped in a
// markdown code fence. Every slot needs a name and a price with a digit.
func ParseDraft(raw string) (models.PlannerDraft, error) {
	var d rawDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &d); err != nil {
		return models.PlannerDraft{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	slots := map[string]*models.PlannerItem{"venue": d.Venue, "catering": d.Catering, "entertainment": d.Entertainment}
	for name, item := range slots {
		if item == nil {
			return models.PlannerDraft{}, fmt.Errorf("%w: missing %s", ErrInvalidDraft, name)
		}
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" || !recommend.HasPrice(item.Price) {
			return models.PlannerDraft{}, fmt.Errorf("%w: incomplete %s", ErrInvalidDraft, name)
		}
	}
	return models.PlannerDraft{Venue: *d.Venue, Catering: *d.Catering, Entertainment: *d.Entertainment}, nil
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func (p *DefaultPlanner) attachImages(draft *models.PlannerDraft) {
	if p.Catalog == nil {
		return
	}
	for _, item := range []*models.PlannerItem{&draft.Venue, &draft.Catering, &draft.Entertainment} {
		svc, ok := p.Catalog.FindServiceByName(item.Name)
		if !ok {
			p.Logger.Warn("no catalog image for generated service", zap.String("name", item.Name))
			continue
		}
		item.Image = svc.Image
	}
}
