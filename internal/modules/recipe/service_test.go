package recipe

import (
	"context"
	"testing"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
	"foodgram/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) List(ctx context.Context, f repository.RecipeFilter) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *mockRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRecipeRepo) Create(ctx context.Context, r *domain.Recipe) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRecipeRepo) Update(ctx context.Context, r *domain.Recipe, replace bool) error {
	return m.Called(ctx, r, replace).Error(0)
}

func (m *mockRecipeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockIngredientChecker struct {
	mock.Mock
}

func (m *mockIngredientChecker) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockImages) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func newMockedService(recipes *mockRecipeRepo, ingredients *mockIngredientChecker, images *mockImages) *Service {
	return NewService(recipes, ingredients, nil, nil, nil, images)
}

func TestService_Create_ValidationStopsBeforeWrites(t *testing.T) {
	recipes := new(mockRecipeRepo)
	ingredients := new(mockIngredientChecker)
	images := new(mockImages)
	ingredients.On("ExistingIDs", mock.Anything, []int64{1, 2}).Return(map[int64]bool{1: true}, nil)
	svc := newMockedService(recipes, ingredients, images)

	_, err := svc.Create(context.Background(), 1, CreateRecipeRequest{
		Ingredients: []IngredientInput{{ID: 1, Amount: 5}, {ID: 2, Amount: 5}},
		Image:       testutil.PixelPNG,
		Name:        "Soup",
		Text:        "Boil.",
		CookingTime: 5,
	})

	assert.ErrorIs(t, err, ErrUnknownIngredient)
	images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	recipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_PureValidation(t *testing.T) {
	svc := newMockedService(new(mockRecipeRepo), new(mockIngredientChecker), new(mockImages))
	base := CreateRecipeRequest{
		Ingredients: []IngredientInput{{ID: 1, Amount: 5}},
		Image:       testutil.PixelPNG,
		Name:        "Soup",
		Text:        "Boil.",
		CookingTime: 5,
	}

	cases := []struct {
		name   string
		mutate func(r *CreateRecipeRequest)
		want   error
	}{
		{"empty ingredients", func(r *CreateRecipeRequest) { r.Ingredients = nil }, ErrEmptyIngredients},
		{"duplicate", func(r *CreateRecipeRequest) { r.Ingredients = []IngredientInput{{1, 1}, {1, 2}} }, ErrDuplicateIngredient},
		{"amount", func(r *CreateRecipeRequest) { r.Ingredients = []IngredientInput{{1, 0}} }, ErrInvalidAmount},
		{"cooking time", func(r *CreateRecipeRequest) { r.CookingTime = 0 }, ErrInvalidCookingTime},
		{"image", func(r *CreateRecipeRequest) { r.Image = "" }, ErrImageRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := svc.Create(context.Background(), 1, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Delete_NonAuthor(t *testing.T) {
	recipes := new(mockRecipeRepo)
	recipes.On("GetByID", mock.Anything, int64(5)).Return(&domain.Recipe{ID: 5, AuthorID: 1}, nil)
	svc := newMockedService(recipes, new(mockIngredientChecker), new(mockImages))

	err := svc.Delete(context.Background(), 2, 5)

	require.ErrorIs(t, err, ErrForbidden)
	recipes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
