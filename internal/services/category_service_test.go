package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MikhailEmv/SmartBudget/internal/database"
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupCategoryTestDB(t *testing.T) (*gorm.DB, *repository.CategoryRepository, *CategoryService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	categoryRepo := repository.NewCategoryRepository(db)
	categoryService := NewCategoryService(categoryRepo, t.TempDir())

	return db, categoryRepo, categoryService
}

func countByKind(categories []models.Category, kind string) int {
	n := 0
	for _, c := range categories {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func TestCategoryService_SeedDefaults(t *testing.T) {
	db, categoryRepo, categoryService := setupCategoryTestDB(t)

	err := categoryService.SeedDefaultsInTx(db, 1)
	assert.NoError(t, err)

	categories, err := categoryRepo.ListByUser(1)
	assert.NoError(t, err)
	assert.Len(t, categories, 16)
	assert.Equal(t, 10, countByKind(categories, models.CategoryExpense))
	assert.Equal(t, 6, countByKind(categories, models.CategoryIncome))
}

func TestCategoryService_SeedDefaults_OnlyOnce(t *testing.T) {
	db, categoryRepo, categoryService := setupCategoryTestDB(t)

	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 1))
	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 1))

	categories, _ := categoryRepo.ListByUser(1)
	assert.Len(t, categories, 16)
}

func TestCategoryService_SeedDefaults_SkippedWhenUserHasCategories(t *testing.T) {
	db, categoryRepo, categoryService := setupCategoryTestDB(t)

	existing := &models.Category{UserID: 1, Name: "Custom", Kind: models.CategoryExpense}
	assert.NoError(t, categoryRepo.Create(existing))

	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 1))

	categories, _ := categoryRepo.ListByUser(1)
	assert.Len(t, categories, 1)
}

func TestCategoryService_SeedDefaults_PerUser(t *testing.T) {
	db, categoryRepo, categoryService := setupCategoryTestDB(t)

	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 1))
	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 2))

	first, _ := categoryRepo.ListByUser(1)
	second, _ := categoryRepo.ListByUser(2)
	assert.Len(t, first, 16)
	assert.Len(t, second, 16)
}

func TestCategoryService_SeedDefaults_CopiesIcons(t *testing.T) {
	db, _, _ := setupCategoryTestDB(t)

	mediaDir := t.TempDir()
	categoryRepo := repository.NewCategoryRepository(db)
	categoryService := NewCategoryService(categoryRepo, mediaDir)

	assert.NoError(t, categoryService.SeedDefaultsInTx(db, 7))

	categories, _ := categoryRepo.ListByUser(7)
	for _, c := range categories {
		assert.NotEmpty(t, c.Icon, "category %s has no icon", c.Name)
		_, err := os.Stat(filepath.Join(mediaDir, c.Icon))
		assert.NoError(t, err, "icon file missing for %s", c.Name)
	}
}

func TestCategoryService_Create_InvalidKind(t *testing.T) {
	_, _, categoryService := setupCategoryTestDB(t)

	_, err := categoryService.Create(1, "Stuff", "savings", "")
	assert.ErrorIs(t, err, ErrInvalidCategoryKind)
}

func TestCategoryService_OwnershipEnforced(t *testing.T) {
	_, _, categoryService := setupCategoryTestDB(t)

	category, err := categoryService.Create(1, "Books", models.CategoryExpense, "")
	assert.NoError(t, err)

	_, err = categoryService.Get(2, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = categoryService.Update(2, category.ID, "Hacked", models.CategoryExpense, "")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	err = categoryService.Delete(2, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	got, err := categoryService.Get(1, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Books", got.Name)
}

func TestCategoryService_UpdateAndDelete(t *testing.T) {
	_, _, categoryService := setupCategoryTestDB(t)

	category, err := categoryService.Create(1, "Books", models.CategoryExpense, "")
	assert.NoError(t, err)

	updated, err := categoryService.Update(1, category.ID, "Literature", models.CategoryExpense, "")
	assert.NoError(t, err)
	assert.Equal(t, "Literature", updated.Name)

	assert.NoError(t, categoryService.Delete(1, category.ID))

	_, err = categoryService.Get(1, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
