package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/api/controllers"
	"tripwise/internal/models/db_models"
	"tripwise/internal/services"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

// memoryUserRepo is an in-memory repositories.UserRepository used to
// exercise the full register/login path without Postgres.
type memoryUserRepo struct {
	nextID uint
	users  map[uint]*db_models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: make(map[uint]*db_models.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, user *db_models.User) error {
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memoryUserRepo) Update(ctx context.Context, user *db_models.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func userRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	controller := controllers.NewUserController(services.NewUserService(newMemoryUserRepo()))
	r.POST("/register", controller.Register)
	r.POST("/login", controller.Login)
	r.POST("/logout", middleware.SessionAuthMiddleware(), controller.Logout)
	r.GET("/:id", controller.GetProfile)
	r.PUT("/:id", controller.UpdateProfile)
	return r
}

func postJSON(r *gin.Engine, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

var registerBody = map[string]string{
	"username":  "wanderer",
	"email":     "wanderer@example.com",
	"password":  "hunter22",
	"full_name": "Wan Derer",
	"bio":       "always packing",
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	r := userRouter(t)

	w := postJSON(r, "/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter22")

	cookie := sessionCookie(t, w)
	claims, err := utils.ValidateSessionToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "wanderer@example.com", claims.Email)

	w = postJSON(r, "/login", map[string]string{
		"email":    "wanderer@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookie = sessionCookie(t, w)
	claims, err = utils.ValidateSessionToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "wanderer@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	r := userRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/register", registerBody).Code)

	w := postJSON(r, "/login", map[string]string{
		"email":    "wanderer@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, w).Message)
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	r := userRouter(t)

	w := postJSON(r, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, w).Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := userRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/register", registerBody).Code)
	w := postJSON(r, "/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRequiresSession(t *testing.T) {
	r := userRouter(t)

	w := postJSON(r, "/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	reg := postJSON(r, "/register", registerBody)
	require.Equal(t, http.StatusCreated, reg.Code)

	w = postJSON(r, "/logout", nil, sessionCookie(t, reg))
	assert.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
}

func TestLogoutRejectsGarbageToken(t *testing.T) {
	r := userRouter(t)

	w := postJSON(r, "/logout", nil, &http.Cookie{Name: middleware.SessionCookieName, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfileByID(t *testing.T) {
	r := userRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/register", registerBody).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wanderer@example.com")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r := userRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/register", registerBody).Code)

	payload, _ := json.Marshal(map[string]string{"bio": "home at last"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home at last")
}
