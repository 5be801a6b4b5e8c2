// Package apitest wires a gin engine to an in-memory SQLite database so
// handler tests exercise the real routes, migrations and constraints.
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"mybooks-app/config"
	"mybooks-app/database"
	_ "mybooks-app/docs"
	"mybooks-app/internal/domain/users"

	routes "mybooks-app/internal/app/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup returns a router backed by a fresh in-memory database.
func Setup(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pool connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

// CreateUser inserts an account and returns it with a valid bearer token.
func CreateUser(t *testing.T, email string) (users.User, string) {
	t.Helper()

	user := users.User{
		Name:         "Test User",
		Email:        email,
		AuthProvider: "local",
		Role:         "user",
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)

	return user, signed
}

// Do performs a JSON request against the router. body may be nil.
func Do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// AssertStatus fails with the response body when the status is unexpected.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "response body: %s", w.Body.String())
}
