package memory

import (
	"fmt"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/domain/repositories"
)

// ProductRepository provides in-memory crop catalog storage
type ProductRepository struct {
	products    []entities.Product
	productsMap map[entities.ProductID]int
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products:    make([]entities.Product, 0, expectedProducts),
		productsMap: make(map[entities.ProductID]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		r.AddProduct(*product)
	}
	return nil
}

// AddProduct adds a product to the repository
func (r *ProductRepository) AddProduct(product entities.Product) {
	r.productsMap[product.ID] = len(r.products)
	r.products = append(r.products, product)
}

// GetProduct returns catalog data for a product id
func (r *ProductRepository) GetProduct(id entities.ProductID) (*entities.Product, error) {
	index, exists := r.productsMap[id]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", id)
	}
	return &r.products[index], nil
}

// GetAllProducts returns all products
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	var products []*entities.Product
	for i := range r.products {
		products = append(products, &r.products[i])
	}
	return products, nil
}
