package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"

	"gorm.io/gorm"
)

// ProductService manages the service price list and the product inventory
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new product service
func NewProductService() *ProductService {
	return &ProductService{db: database.GetDB()}
}

// AddService adds a priced salon service to the cashier pick-list.
func (s *ProductService) AddService(name string, price float64) (*models.Service, error) {
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}

	service := models.Service{Name: name, Price: price}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return &service, nil
}

// ListServices returns the price list ordered by name.
func (s *ProductService) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	return services, nil
}

// UpdateServicePrice changes a service's list price.
func (s *ProductService) UpdateServicePrice(id uint, price float64) error {
	if price < 0 {
		return fmt.Errorf("service price cannot be negative")
	}
	result := s.db.Model(&models.Service{}).Where("id = ?", id).Update("price", price)
	if result.Error != nil {
		return fmt.Errorf("failed to update service price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service not found")
	}
	return nil
}

// DeleteService removes a service from the price list.
func (s *ProductService) DeleteService(id uint) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service not found")
	}
	return nil
}

// AddProduct adds an inventory item with its opening stock.
func (s *ProductService) AddProduct(name string, price float64, quantity int) (*models.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("opening quantity cannot be negative")
	}

	product := models.Product{Name: name, Price: price, Quantity: quantity}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	return &product, nil
}

// ListProducts returns the inventory ordered by name.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// GetProduct returns one inventory item.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	return &product, nil
}

// Restock adds stock to an inventory item.
func (s *ProductService) Restock(id uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("restock quantity must be positive")
	}
	result := s.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to restock product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// UpdateProductPrice changes an inventory item's sale price.
func (s *ProductService) UpdateProductPrice(id uint, price float64) error {
	if price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Update("price", price)
	if result.Error != nil {
		return fmt.Errorf("failed to update product price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// DeleteProduct removes an inventory item.
func (s *ProductService) DeleteProduct(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
