package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/transport/http/router"
)

func setupEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Address{}, &domain.Post{}))
	return router.NewAPIEngine(zap.NewNop(), db, "/api")
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createUser(t *testing.T, r *gin.Engine, email string) uint {
	w := do(t, r, http.MethodPost, "/api/users", gin.H{
		"firstname": "Jane", "lastname": "Doe", "email": email,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	return uint(user["id"].(float64))
}

func TestRootRoute(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Test api response"}, decode(t, w))
}

func TestCreateUser(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodPost, "/api/users", gin.H{
		"firstname": "Jane", "lastname": "Doe", "email": "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User created successfully", body["message"])
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, "USER", user["role"])
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	r := setupEngine(t)
	createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/api/users", gin.H{
		"firstname": "Other", "lastname": "Jane", "email": "jane@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "User already exists",
		"errorCode": "VALIDATION_ERROR",
	}, decode(t, w))
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodPost, "/api/users", gin.H{"firstname": "Jane"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, "VALIDATION_ERROR", body["errorCode"])
	errs := body["errors"].([]any)
	require.Len(t, errs, 2)
	first := errs[0].(map[string]any)
	assert.Equal(t, "lastname", first["field"])
	second := errs[1].(map[string]any)
	assert.Equal(t, "email", second["field"])
	msg := second["message"].(map[string]any)
	assert.Equal(t, "email should not be empty", msg["isNotEmpty"])
	assert.Equal(t, "email must be an email", msg["isEmail"])
}

func TestListUsers_Pagination(t *testing.T) {
	r := setupEngine(t)
	createUser(t, r, "only@example.com")

	w := do(t, r, http.MethodGet, "/api/users?pageNumber=0&pageSize=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "All users fetched successfully", body["message"])
	assert.Len(t, body["users"].([]any), 1)
	assert.Equal(t, map[string]any{
		"totalElements": float64(1),
		"pageNumber":    float64(0),
		"pageSize":      float64(10),
		"totalPages":    float64(1),
	}, body["pagination"])
}

func TestListUsers_DefaultsWhenUnset(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(0), pagination["pageNumber"])
	assert.Equal(t, float64(10), pagination["pageSize"])
	assert.Equal(t, []any{}, body["users"])
}

func TestCountUsers(t *testing.T) {
	r := setupEngine(t)
	createUser(t, r, "a@x.com")
	createUser(t, r, "b@x.com")

	w := do(t, r, http.MethodGet, "/api/users/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Total number of user fetched successfully", body["message"])
	assert.Equal(t, float64(2), body["data"].(map[string]any)["total"])
}

func TestGetUserByID(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User detailed fetched successfully", body["message"])
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, float64(id), user["id"])
}

func TestGetUserByID_InvalidID(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodGet, "/api/users/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["errorCode"])
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "id", errs[0].(map[string]any)["field"])
}

func TestGetUserByID_NotFound(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "User not found",
		"errorCode": "RESOURCE_NOT_FOUND",
	}, decode(t, w))
}

func TestCreateAddress(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/api/addresses", gin.H{
		"userId": id, "houseNumber": "21b", "street": "Baker Street", "city": "London", "state": "LDN",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Address created successfully", body["message"])
	address := body["data"].(map[string]any)["address"].(map[string]any)
	assert.Equal(t, "21b", address["houseNumber"])
	user := address["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])
}

func TestCreateAddress_UserMissing(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodPost, "/api/addresses", gin.H{
		"userId": 9, "houseNumber": "1", "street": "s", "city": "c", "state": "st",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "User not found",
		"errorCode": "RESOURCE_NOT_FOUND",
	}, decode(t, w))
}

func TestCreateAddress_AlreadyHasOne(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")
	payload := gin.H{"userId": id, "houseNumber": "1", "street": "s", "city": "c", "state": "st"}

	w := do(t, r, http.MethodPost, "/api/addresses", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/addresses", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "User already has an address",
		"errorCode": "VALIDATION_ERROR",
	}, decode(t, w))
}

func TestGetAddress_NotFoundExactBody(t *testing.T) {
	r := setupEngine(t)
	createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodGet, "/api/addresses/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "Address not found for the user",
		"errorCode": "RESOURCE_NOT_FOUND",
	}, decode(t, w))
}

func TestPatchAddress_PartialUpdate(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")
	w := do(t, r, http.MethodPost, "/api/addresses", gin.H{
		"userId": id, "houseNumber": "1", "street": "First", "city": "Town", "state": "TS",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPatch, "/api/addresses/1", gin.H{"houseNumber": "99"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Address updated successfully", body["message"])
	address := body["data"].(map[string]any)["address"].(map[string]any)
	assert.Equal(t, "99", address["houseNumber"])
	assert.Equal(t, "First", address["street"])
	assert.Equal(t, "Town", address["city"])
	assert.Equal(t, "TS", address["state"])
}

func TestPatchAddress_NoAddress(t *testing.T) {
	r := setupEngine(t)
	createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPatch, "/api/addresses/1", gin.H{"city": "Paris"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Address not found for the user", decode(t, w)["message"])
}

func TestCreatePost_EmptyTitleExactError(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/api/posts", gin.H{
		"title": "", "body": "content", "userId": id,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, "VALIDATION_ERROR", body["errorCode"])
	assert.Equal(t, []any{
		map[string]any{
			"field":   "title",
			"message": map[string]any{"isNotEmpty": "title should not be empty"},
		},
	}, body["errors"])
}

func TestCreatePost(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")

	w := do(t, r, http.MethodPost, "/api/posts", gin.H{
		"title": "Hello", "body": "World", "userId": id,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Post created successfully", body["message"])
	post := body["data"].(map[string]any)["post"].(map[string]any)
	assert.Equal(t, "Hello", post["title"])
	assert.Equal(t, "World", post["body"])
}

func TestCreatePost_UserMissing(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodPost, "/api/posts", gin.H{
		"title": "Hello", "body": "World", "userId": 77,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["message"])
}

func TestListPosts_FilterByUser(t *testing.T) {
	r := setupEngine(t)
	u1 := createUser(t, r, "one@example.com")
	u2 := createUser(t, r, "two@example.com")
	w := do(t, r, http.MethodPost, "/api/posts", gin.H{"title": "mine", "body": "b", "userId": u1})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/posts", gin.H{"title": "theirs", "body": "b", "userId": u2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/posts?userId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Posts fetched successfully", body["message"])
	posts := body["data"].(map[string]any)["posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].(map[string]any)["title"])

	w = do(t, r, http.MethodGet, "/api/posts", nil)
	body = decode(t, w)
	assert.Len(t, body["data"].(map[string]any)["posts"].([]any), 2)
}

func TestDeletePost(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")
	w := do(t, r, http.MethodPost, "/api/posts", gin.H{"title": "gone", "body": "b", "userId": id})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, "/api/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Post deleted successfully"}, decode(t, w))

	w = do(t, r, http.MethodGet, "/api/posts", nil)
	assert.Empty(t, decode(t, w)["data"].(map[string]any)["posts"])
}

func TestDeletePost_NotFound(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodDelete, "/api/posts/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{
		"message":   "Post not found",
		"errorCode": "RESOURCE_NOT_FOUND",
	}, decode(t, w))
}

func TestDeletePost_InvalidID(t *testing.T) {
	r := setupEngine(t)
	w := do(t, r, http.MethodDelete, "/api/posts/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["errorCode"])
}

func TestDeleteUser_Cascades(t *testing.T) {
	r := setupEngine(t)
	id := createUser(t, r, "jane@example.com")
	w := do(t, r, http.MethodPost, "/api/addresses", gin.H{
		"userId": id, "houseNumber": "1", "street": "s", "city": "c", "state": "st",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/posts", gin.H{"title": "t", "body": "b", "userId": id})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "User deleted successfully"}, decode(t, w))

	w = do(t, r, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodGet, "/api/addresses/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodGet, "/api/posts", nil)
	assert.Empty(t, decode(t, w)["data"].(map[string]any)["posts"])
}

func TestMalformedJSONBody(t *testing.T) {
	r := setupEngine(t)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", decode(t, w)["message"])
}
