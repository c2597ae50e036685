package yamlfile

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/growplan/pkg/domain/entities"
)

// Blend recipes live in YAML rather than CSV; nested component lists do not
// flatten well into rows.

// Loader handles loading blend recipes from YAML files
type Loader struct{}

// NewLoader creates a new YAML blend loader
func NewLoader() *Loader {
	return &Loader{}
}

type blendFile struct {
	Blends []blendRecord `yaml:"blends"`
}

type blendRecord struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Components []componentRecord `yaml:"components"`
}

type componentRecord struct {
	ProductID    string  `yaml:"product_id"`
	RatioPercent float64 `yaml:"ratio_percent"`
}

// LoadBlends loads blend recipes from a YAML file
func (l *Loader) LoadBlends(filename string) ([]*entities.Blend, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open blends file %s: %w", filename, err)
	}

	var file blendFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse blends YAML: %w", err)
	}
	if len(file.Blends) == 0 {
		return nil, fmt.Errorf("blends YAML %s defines no blends", filename)
	}

	var blends []*entities.Blend
	for _, record := range file.Blends {
		blend, err := record.toEntity()
		if err != nil {
			return nil, fmt.Errorf("blend %q: %w", record.ID, err)
		}
		blends = append(blends, blend)
	}

	return blends, nil
}

func (r blendRecord) toEntity() (*entities.Blend, error) {
	components := make([]entities.BlendComponent, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, entities.BlendComponent{
			ProductID:    entities.ProductID(c.ProductID),
			RatioPercent: decimal.NewFromFloat(c.RatioPercent),
		})
	}

	return entities.NewBlend(entities.BlendID(r.ID), r.Name, components)
}
