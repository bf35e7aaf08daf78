package services

import (
	"errors"

	"quickcart/internal/models"
	"quickcart/internal/store"

	"github.com/rs/zerolog"
)

var (
	ErrProductExists   = errors.New("product with this id already exists")
	ErrProductNotFound = errors.New("product not found")
)

type CatalogService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewCatalogService(st *store.Store, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: logger,
	}
}

func (s *CatalogService) AddProduct(id, name string, price float64, stock int, category string) (*models.Product, error) {
	if id == "" || name == "" {
		return nil, errors.New("product id and name are required")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}
	if s.store.GetProduct(id) != nil {
		return nil, ErrProductExists
	}

	product := models.NewProduct(id, name, price, stock, category)
	s.store.PutProduct(product)

	s.logger.Info().
		Str("product_id", id).
		Float64("price", price).
		Int("stock", stock).
		Msg("Product added to catalog")
	return product, nil
}

// Restock raises a product's stock level by qty.
func (s *CatalogService) Restock(id string, qty int) (*models.Product, error) {
	if qty <= 0 {
		return nil, errors.New("restock quantity must be positive")
	}
	product := s.store.GetProduct(id)
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.store.SetProductStock(id, product.Stock+qty)

	s.logger.Info().Str("product_id", id).Int("stock", product.Stock).Msg("Product restocked")
	return product, nil
}

func (s *CatalogService) GetProduct(id string) *models.Product {
	return s.store.GetProduct(id)
}

func (s *CatalogService) ListProducts() []*models.Product {
	return s.store.ListProducts()
}
