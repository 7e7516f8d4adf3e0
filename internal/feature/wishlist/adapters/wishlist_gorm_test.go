package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "student_portal/internal/feature/auth/domain/entity"
	projectentity "student_portal/internal/feature/project/domain/entity"
	"student_portal/internal/feature/wishlist/domain/entity"
	"student_portal/internal/feature/wishlist/usecase"
)

// setupTestDB prepares an in-memory SQLite database with two students and two projects.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&authentity.Student{}, &projectentity.Project{}, &entity.WishlistItem{}), "failed to migrate tables")

	require.NoError(t, db.Create(&[]authentity.Student{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "x"},
		{FirstName: "John", LastName: "Roe", Email: "john@example.com", Password: "x"},
	}).Error)
	require.NoError(t, db.Create(&[]projectentity.Project{
		{Title: "Compiler", Description: "Build a compiler"},
		{Title: "Robot", Description: "Line follower"},
	}).Error)
	return db
}

func TestWishlistGorm_CreateAndList(t *testing.T) {
	repo := NewWishlistGorm(setupTestDB(t))
	ctx := context.Background()

	first := &entity.WishlistItem{StudentID: 1, ProjectID: 2}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 1, ProjectID: 1}))

	items, err := repo.ListByStudent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].ProjectID)
	require.NotNil(t, items[0].Project)
	assert.Equal(t, "Robot", items[0].Project.Title)
	assert.Equal(t, "Compiler", items[1].Project.Title)

	empty, err := repo.ListByStudent(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestWishlistGorm_Create_Duplicate(t *testing.T) {
	repo := NewWishlistGorm(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 1, ProjectID: 2}))
	err := repo.Create(ctx, &entity.WishlistItem{StudentID: 1, ProjectID: 2})
	assert.ErrorIs(t, err, usecase.ErrAlreadyInWishlist)

	// Another student may still pick the same project.
	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 2, ProjectID: 2}))

	items, err := repo.ListByStudent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistGorm_FindByIDAndDelete(t *testing.T) {
	repo := NewWishlistGorm(setupTestDB(t))
	ctx := context.Background()

	item := &entity.WishlistItem{StudentID: 1, ProjectID: 1}
	require.NoError(t, repo.Create(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.StudentID)
	require.NotNil(t, found.Project)
	assert.Equal(t, "Compiler", found.Project.Title)

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), usecase.ErrItemNotFound)
}

func TestWishlistGorm_ListAll(t *testing.T) {
	repo := NewWishlistGorm(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 2, ProjectID: 1}))
	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 1, ProjectID: 2}))
	require.NoError(t, repo.Create(ctx, &entity.WishlistItem{StudentID: 2, ProjectID: 2}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	require.Len(t, all[2], 2)
	assert.Equal(t, uint(1), all[2][0].ProjectID)
	assert.Equal(t, uint(2), all[2][1].ProjectID)
	require.Len(t, all[1], 1)
	assert.Equal(t, "Robot", all[1][0].Project.Title)
}

func TestRecordExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		checker *recordExists
		id      uint
		want    bool
	}{
		{name: "existing project", checker: NewProjectChecker(db), id: 2, want: true},
		{name: "missing project", checker: NewProjectChecker(db), id: 99},
		{name: "existing student", checker: NewStudentChecker(db), id: 1, want: true},
		{name: "missing student", checker: NewStudentChecker(db), id: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.checker.Exists(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
