package repositories

import "github.com/vsinha/growplan/pkg/domain/entities"

// ProductRepository provides access to the crop catalog
type ProductRepository interface {
	GetProduct(id entities.ProductID) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}
