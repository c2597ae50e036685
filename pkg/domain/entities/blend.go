package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BlendID represents a unique blend identifier
type BlendID string

// BlendComponent represents one ingredient's share of a blend
type BlendComponent struct {
	ProductID    ProductID
	RatioPercent decimal.Decimal
}

// Blend represents a mixed product assembled from multiple crops by weight
// ratio
type Blend struct {
	ID         BlendID
	Name       string
	Components []BlendComponent
}

// NewBlend creates a validated Blend
func NewBlend(id BlendID, name string, components []BlendComponent) (*Blend, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("blend id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("blend name cannot be empty")
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("blend must have at least one component")
	}

	hundred := decimal.NewFromInt(100)
	for i, c := range components {
		if string(c.ProductID) == "" {
			return nil, fmt.Errorf("component %d: product id cannot be empty", i)
		}
		if c.RatioPercent.Sign() <= 0 || c.RatioPercent.GreaterThan(hundred) {
			return nil, fmt.Errorf("component %d: ratio must be in (0, 100], got %s", i, c.RatioPercent)
		}
	}

	return &Blend{
		ID:         id,
		Name:       name,
		Components: components,
	}, nil
}

// RatioTotal returns the sum of component ratios. Recipes are not forced to
// sum to 100; callers that care can compare against it.
func (b *Blend) RatioTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Components {
		total = total.Add(c.RatioPercent)
	}
	return total
}
