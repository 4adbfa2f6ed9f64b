package services

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MikhailEmv/SmartBudget/internal/assets"
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

type defaultCategory struct {
	name string
	kind string
	icon string
}

// defaultCatalog is seeded for every new user: 10 expense and 6 income
// categories.
var defaultCatalog = []defaultCategory{
	{"Products", models.CategoryExpense, "products"},
	{"Transport", models.CategoryExpense, "transport"},
	{"Housing", models.CategoryExpense, "housing"},
	{"Health", models.CategoryExpense, "health"},
	{"Entertainment", models.CategoryExpense, "entertainment"},
	{"Clothes", models.CategoryExpense, "clothes"},
	{"Education", models.CategoryExpense, "education"},
	{"Gifts", models.CategoryExpense, "gifts"},
	{"Travel", models.CategoryExpense, "travel"},
	{"Other", models.CategoryExpense, "other"},
	{"Salary", models.CategoryIncome, "salary"},
	{"Bonus", models.CategoryIncome, "bonus"},
	{"Investments", models.CategoryIncome, "investments"},
	{"Freelance", models.CategoryIncome, "freelance"},
	{"Gifts", models.CategoryIncome, "gifts_income"},
	{"Other income", models.CategoryIncome, "other_income"},
}

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	mediaDir     string
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, mediaDir string) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		mediaDir:     mediaDir,
	}
}

// SeedDefaultsInTx inserts the default catalog for a user that has no
// categories yet. Called from registration inside the user-creation
// transaction. A failed icon copy does not abort the insert.
func (s *CategoryService) SeedDefaultsInTx(tx *gorm.DB, userID uint) error {
	count, err := s.categoryRepo.CountByUserInTx(tx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, dc := range defaultCatalog {
		iconPath, err := s.copyDefaultIcon(userID, dc.icon)
		if err != nil {
			log.Printf("failed to copy default icon %s for user %d: %v", dc.icon, userID, err)
			iconPath = ""
		}

		category := &models.Category{
			UserID: userID,
			Name:   dc.name,
			Kind:   dc.kind,
			Icon:   iconPath,
		}
		if err := s.categoryRepo.CreateInTx(tx, category); err != nil {
			return err
		}
	}

	return nil
}

// copyDefaultIcon materializes a bundled icon into the user's media
// directory and returns its media-relative path.
func (s *CategoryService) copyDefaultIcon(userID uint, name string) (string, error) {
	data, err := assets.Icon(name)
	if err != nil {
		return "", err
	}

	relDir := filepath.Join("icons", strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(filepath.Join(s.mediaDir, relDir), 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(relDir, name+".svg")
	if err := os.WriteFile(filepath.Join(s.mediaDir, relPath), data, 0o644); err != nil {
		return "", err
	}

	return relPath, nil
}

func (s *CategoryService) List(userID uint) ([]models.Category, error) {
	return s.categoryRepo.ListByUser(userID)
}

func (s *CategoryService) Get(userID, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) Create(userID uint, name, kind, icon string) (*models.Category, error) {
	if kind != models.CategoryExpense && kind != models.CategoryIncome {
		return nil, ErrInvalidCategoryKind
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
		Icon:   icon,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(userID, id uint, name, kind, icon string) (*models.Category, error) {
	if kind != models.CategoryExpense && kind != models.CategoryIncome {
		return nil, ErrInvalidCategoryKind
	}

	category, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Kind = kind
	if icon != "" {
		category.Icon = icon
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(userID, id uint) error {
	category, err := s.categoryRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(id, userID)
}
