package recommend

import "eventify/models"

// envelope bounds are expressed as a ratio so comparisons stay in integers:
// a total is inside the envelope when total*envelopeDen >= budget*envelopeNum.
const (
	envelopeNum = 4
	envelopeDen = 5
)

// InEnvelope reports whether total lies in [0.8*budget, budget].
func InEnvelope(total, budget int64) bool {
	return total <= budget && total*envelopeDen >= budget*envelopeNum
}

type packageSearch struct {
	choices [][]models.Service
	prices  [][]int64
	budget  int64

	current []models.Service

	bestValid    []models.Service
	bestValidSum int64
	hasValid     bool

	bestAny    []models.Service
	bestAnySum int64
	hasAny     bool
}

// BuildCrossCategoryPackage chooses one service per category so that the total
// stays within budget, preferring the highest total inside the 80-100% envelope
// and otherwise the highest total overall. It returns an empty package when no
// complete combination fits.
func BuildCrossCategoryPackage(categories []models.Category, budget int64) models.Package {
	if len(categories) == 0 || budget <= 0 {
		return models.Package{IsPackage: true}
	}

	s := &packageSearch{
		choices: make([][]models.Service, len(categories)),
		prices:  make([][]int64, len(categories)),
		budget:  budget,
		current: make([]models.Service, 0, len(categories)),
	}
	for i, cat := range categories {
		s.choices[i] = AvailableServices(cat, budget)
		if len(s.choices[i]) == 0 {
			return models.Package{IsPackage: true}
		}
		s.prices[i] = make([]int64, len(s.choices[i]))
		for j, svc := range s.choices[i] {
			s.prices[i][j] = ParsePrice(svc.Price)
		}
	}

	s.combine(0, 0)

	switch {
	case s.hasValid:
		return models.Package{Items: s.bestValid, Total: s.bestValidSum, IsPackage: true}
	case s.hasAny:
		return models.Package{Items: s.bestAny, Total: s.bestAnySum, IsPackage: true}
	default:
		return models.Package{IsPackage: true}
	}
}

// combine walks categories depth-first. Partial selections whose running total
// already exceeds the budget are pruned.
func (s *packageSearch) combine(index int, total int64) {
	if index == len(s.choices) {
		s.record(total)
		return
	}
	for j, svc := range s.choices[index] {
		next := total + s.prices[index][j]
		if next > s.budget {
			continue
		}
		s.current = append(s.current, svc)
		s.combine(index+1, next)
		s.current = s.current[:len(s.current)-1]
	}
}

// record keeps the first combination seen for each running maximum.
func (s *packageSearch) record(total int64) {
	if !s.hasAny || total > s.bestAnySum {
		s.bestAny = append([]models.Service(nil), s.current...)
		s.bestAnySum = total
		s.hasAny = true
	}
	if InEnvelope(total, s.budget) && (!s.hasValid || total > s.bestValidSum) {
		s.bestValid = append([]models.Service(nil), s.current...)
		s.bestValidSum = total
		s.hasValid = true
	}
}
