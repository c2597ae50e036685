package repositories

import "github.com/vsinha/growplan/pkg/domain/entities"

// BlendRepository provides access to blend recipes
type BlendRepository interface {
	GetBlend(id entities.BlendID) (*entities.Blend, error)
	GetAllBlends() ([]*entities.Blend, error)
	LoadBlends(blends []*entities.Blend) error
}
