package services

import (
	"fmt"

	"hotel-website/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// Menu returns the public restaurant menu: categories in display order with
// their available items.
func (s *MenuService) Menu() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := s.DB.
		Preload("Items", "available = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	for i := range categories {
		if categories[i].Items == nil {
			categories[i].Items = []models.MenuItem{}
		}
	}
	return categories, nil
}

// FullMenu returns everything including unavailable items, for the admin UI.
func (s *MenuService) FullMenu() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := s.DB.Preload("Items").Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return categories, nil
}

func (s *MenuService) CreateCategory(category *models.MenuCategory) error {
	if err := s.DB.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create menu category: %w", err)
	}
	return nil
}

func (s *MenuService) DeleteCategory(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of category %d: %w", id, err)
		}
		res := tx.Delete(&models.MenuCategory{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *MenuService) CreateItem(item *models.MenuItem) error {
	var category models.MenuCategory
	if err := s.DB.First(&category, item.CategoryID).Error; err != nil {
		return fmt.Errorf("menu category %d not found: %w", item.CategoryID, err)
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) UpdateItem(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update menu item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MenuService) DeleteItem(id uint) error {
	res := s.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
