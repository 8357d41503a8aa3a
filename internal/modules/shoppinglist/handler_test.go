package shoppinglist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
	"foodgram/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	h := NewHandler(NewService(
		repository.NewShoppingCartRepository(db),
		repository.NewRecipeRepository(db),
	))

	r := gin.New()
	protected := r.Group("/api")
	protected.Use(func(c *gin.Context) {
		raw := c.GetHeader("X-Test-User-ID")
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized")
			return
		}
		id, _ := strconv.ParseInt(raw, 10, 64)
		c.Set("user_id", id)
		c.Next()
	})
	h.RegisterProtectedRoutes(protected)
	return r, db
}

func download(r http.Handler, query string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart"+query, nil)
	if userID > 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestDownload_SumsAcrossRecipes(t *testing.T) {
	r, db := setupTestRouter(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "cook")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	milk := testutil.CreateIngredient(t, db, "milk", "ml")
	a := testutil.CreateRecipe(t, db, user.ID, "Bread", map[int64]int{flour.ID: 200})
	b := testutil.CreateRecipe(t, db, user.ID, "Pancakes", map[int64]int{flour.ID: 300, milk.ID: 250})

	carts := repository.NewShoppingCartRepository(db)
	require.NoError(t, carts.Add(ctx, user.ID, a.ID))
	require.NoError(t, carts.Add(ctx, user.ID, b.ID))

	rr := download(r, "", user.ID)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "flour (g) - 500\nmilk (ml) - 250\n", rr.Body.String())
}

func TestDownload_EmptyCart(t *testing.T) {
	r, db := setupTestRouter(t)
	user := testutil.CreateUser(t, db, "cook")

	rr := download(r, "", user.ID)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDownload_CSV(t *testing.T) {
	r, db := setupTestRouter(t)
	user := testutil.CreateUser(t, db, "cook")

	rr := download(r, "?format=csv", user.ID)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "shopping_list.csv")
}

func TestDownload_UnknownFormat(t *testing.T) {
	r, db := setupTestRouter(t)
	user := testutil.CreateUser(t, db, "cook")

	rr := download(r, "?format=pdf", user.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDownload_Anonymous(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := download(r, "", 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
