package memory

import (
	"fmt"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/domain/repositories"
)

// BlendRepository provides in-memory blend recipe storage
type BlendRepository struct {
	blends    []entities.Blend
	blendsMap map[entities.BlendID]int
}

// NewBlendRepository creates a new in-memory blend repository
func NewBlendRepository(expectedBlends int) *BlendRepository {
	return &BlendRepository{
		blends:    make([]entities.Blend, 0, expectedBlends),
		blendsMap: make(map[entities.BlendID]int, expectedBlends),
	}
}

// Verify interface compliance
var _ repositories.BlendRepository = (*BlendRepository)(nil)

// LoadBlends loads blends into the repository
func (r *BlendRepository) LoadBlends(blends []*entities.Blend) error {
	for _, blend := range blends {
		r.AddBlend(*blend)
	}
	return nil
}

// AddBlend adds a blend to the repository
func (r *BlendRepository) AddBlend(blend entities.Blend) {
	r.blendsMap[blend.ID] = len(r.blends)
	r.blends = append(r.blends, blend)
}

// GetBlend returns the recipe for a blend id
func (r *BlendRepository) GetBlend(id entities.BlendID) (*entities.Blend, error) {
	index, exists := r.blendsMap[id]
	if !exists {
		return nil, fmt.Errorf("blend not found: %s", id)
	}
	return &r.blends[index], nil
}

// GetAllBlends returns all blends
func (r *BlendRepository) GetAllBlends() ([]*entities.Blend, error) {
	var blends []*entities.Blend
	for i := range r.blends {
		blends = append(blends, &r.blends[i])
	}
	return blends, nil
}
