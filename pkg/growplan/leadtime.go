package growplan

import (
	"fmt"
	"sort"
	"time"
)

// IngredientLead describes one ingredient's position in a blend's growing
// timeline.
type IngredientLead struct {
	ProductID       string
	ProductName     string
	TotalGrowthDays int
	StartDate       time.Time
	RequiresSoaking bool
}

// BlendLeadAnalysis ranks a blend's ingredients by total growth time. The
// longest cycle paces the whole blend: it dictates the earliest start date
// and is the first ingredient at risk when an order moves closer.
type BlendLeadAnalysis struct {
	HarvestDate time.Time
	Ranking     []IngredientLead // longest growth cycle first
	Bottleneck  IngredientLead   // Ranking[0] when any ingredients exist
}

// AnalyzeLeadTimes derives the lead-time ranking for a computed blend
// schedule. Pure derivation; no scheduling decisions are made here.
func AnalyzeLeadTimes(blend BlendSchedule) *BlendLeadAnalysis {
	analysis := &BlendLeadAnalysis{
		HarvestDate: blend.HarvestDate,
		Ranking:     make([]IngredientLead, 0, len(blend.Ingredients)),
	}

	for _, ing := range blend.Ingredients {
		analysis.Ranking = append(analysis.Ranking, IngredientLead{
			ProductID:       ing.ProductID,
			ProductName:     ing.ProductName,
			TotalGrowthDays: ing.TotalGrowthDays,
			StartDate:       ing.StartDate(),
			RequiresSoaking: ing.RequiresSoaking,
		})
	}

	sort.Slice(analysis.Ranking, func(i, j int) bool {
		a, b := analysis.Ranking[i], analysis.Ranking[j]
		if a.TotalGrowthDays != b.TotalGrowthDays {
			return a.TotalGrowthDays > b.TotalGrowthDays
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.ProductName < b.ProductName
	})

	if len(analysis.Ranking) > 0 {
		analysis.Bottleneck = analysis.Ranking[0]
	}

	return analysis
}

// Summary returns a one-line description of the pacing ingredient.
func (a *BlendLeadAnalysis) Summary() string {
	if len(a.Ranking) == 0 {
		return "No ingredients to analyze"
	}

	b := a.Bottleneck
	name := b.ProductName
	if name == "" {
		name = b.ProductID
	}
	return fmt.Sprintf("Longest cycle: %s (%d days, start %s)",
		name, b.TotalGrowthDays, b.StartDate.Format("2006-01-02"))
}
