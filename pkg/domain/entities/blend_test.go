package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBlend_Validation(t *testing.T) {
	components := []BlendComponent{
		{ProductID: "pea", RatioPercent: decimal.NewFromInt(60)},
		{ProductID: "radish", RatioPercent: decimal.NewFromInt(40)},
	}

	valid, err := NewBlend("spicy-mix", "Spicy Mix", components)
	if err != nil {
		t.Fatalf("Expected valid blend creation to succeed: %v", err)
	}
	if len(valid.Components) != 2 {
		t.Errorf("Expected 2 components, got %d", len(valid.Components))
	}

	testCases := []struct {
		name       string
		id         BlendID
		blendName  string
		components []BlendComponent
	}{
		{"empty id", "", "Spicy Mix", components},
		{"empty name", "spicy-mix", "", components},
		{"no components", "spicy-mix", "Spicy Mix", nil},
		{
			"component missing product",
			"spicy-mix", "Spicy Mix",
			[]BlendComponent{{ProductID: "", RatioPercent: decimal.NewFromInt(50)}},
		},
		{
			"zero ratio",
			"spicy-mix", "Spicy Mix",
			[]BlendComponent{{ProductID: "pea", RatioPercent: decimal.Zero}},
		},
		{
			"ratio above hundred",
			"spicy-mix", "Spicy Mix",
			[]BlendComponent{{ProductID: "pea", RatioPercent: decimal.NewFromInt(120)}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBlend(tc.id, tc.blendName, tc.components)
			if err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestBlend_RatioTotal(t *testing.T) {
	blend, err := NewBlend("mild-mix", "Mild Mix", []BlendComponent{
		{ProductID: "pea", RatioPercent: decimal.NewFromInt(30)},
		{ProductID: "broccoli", RatioPercent: decimal.NewFromInt(30)},
	})
	if err != nil {
		t.Fatalf("NewBlend failed: %v", err)
	}

	if !blend.RatioTotal().Equal(decimal.NewFromInt(60)) {
		t.Errorf("Expected ratio total 60, got %s", blend.RatioTotal())
	}
}
