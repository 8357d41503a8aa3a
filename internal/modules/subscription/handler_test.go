package subscription

import (
	"encoding/json"
	"fmt"
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
		repository.NewUserRepository(db),
		repository.NewSubscriptionRepository(db),
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

func doRequest(r http.Handler, method, path string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if userID > 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func subscribePath(authorID int64, query string) string {
	return fmt.Sprintf("/api/users/%d/subscribe%s", authorID, query)
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

func TestSubscribe_Flow(t *testing.T) {
	r, db := setupTestRouter(t)
	reader := testutil.CreateUser(t, db, "reader")
	chef := testutil.CreateUser(t, db, "chef")
	for i := 0; i < 3; i++ {
		testutil.CreateRecipe(t, db, chef.ID, fmt.Sprintf("Dish %d", i), nil)
	}

	rr := doRequest(r, http.MethodPost, subscribePath(chef.ID, "?recipes_limit=2"), reader.ID)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var author AuthorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &author))
	assert.Equal(t, chef.ID, author.ID)
	assert.True(t, author.IsSubscribed)
	assert.Len(t, author.Recipes, 2)
	assert.Equal(t, int64(2), author.RecipesCount)

	rr = doRequest(r, http.MethodPost, subscribePath(chef.ID, ""), reader.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ALREADY_SUBSCRIBED", errorCode(t, rr))

	rr = doRequest(r, http.MethodDelete, subscribePath(chef.ID, ""), reader.ID)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(r, http.MethodDelete, subscribePath(chef.ID, ""), reader.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "NOT_SUBSCRIBED", errorCode(t, rr))
}

func TestSubscribe_Self(t *testing.T) {
	r, db := setupTestRouter(t)
	user := testutil.CreateUser(t, db, "solo")

	rr := doRequest(r, http.MethodPost, subscribePath(user.ID, ""), user.ID)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "SELF_SUBSCRIPTION", errorCode(t, rr))
}

func TestSubscribe_UnknownAuthor(t *testing.T) {
	r, db := setupTestRouter(t)
	user := testutil.CreateUser(t, db, "reader")

	rr := doRequest(r, http.MethodPost, subscribePath(9999, ""), user.ID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubscriptions_List(t *testing.T) {
	r, db := setupTestRouter(t)
	reader := testutil.CreateUser(t, db, "reader")
	zed := testutil.CreateUser(t, db, "zed")
	amy := testutil.CreateUser(t, db, "amy")
	testutil.CreateRecipe(t, db, zed.ID, "Stew", nil)

	for _, id := range []int64{zed.ID, amy.ID} {
		rr := doRequest(r, http.MethodPost, subscribePath(id, ""), reader.ID)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doRequest(r, http.MethodGet, "/api/users/subscriptions?limit=1", reader.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	var page struct {
		Count   int64            `json:"count"`
		Next    *string          `json:"next"`
		Results []AuthorResponse `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, int64(2), page.Count)
	require.NotNil(t, page.Next)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "amy", page.Results[0].Username)
	assert.Empty(t, page.Results[0].Recipes)
	assert.NotNil(t, page.Results[0].Recipes)
}

func TestSubscriptions_Anonymous(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/users/subscriptions", 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
