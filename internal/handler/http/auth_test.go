package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/auth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/jwt"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/oauth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/postgresql"
	authService "github.com/checkmate-hq/checkmate-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestPassword   = "password123"
)

var (
	handlerTestDB     *database.DB
	handlerTestDBOnce sync.Once
	handlerTestDBErr  error
)

func requireHandlerTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping handler integration tests")
	}

	handlerTestDBOnce.Do(func() {
		handlerTestDB, handlerTestDBErr = database.NewPostgreSQLDB(dsn)
	})
	if handlerTestDBErr != nil {
		t.Fatalf("failed to connect to test database: %v", handlerTestDBErr)
	}
	return handlerTestDB
}

func truncateHandlerTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"refresh_tokens", "day_records", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createHandlerTestUser(t *testing.T, ctx context.Context, db *database.DB, email string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	var userID string
	err = db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, role, joining_date, is_admin, password_hash)
		VALUES ('Test Admin', $1, 'Administrator', '2024-01-01', true, $2)
		RETURNING id
	`, email, string(hashed)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestAuthHandler(db *database.DB, allowedEmails []string) AuthHandler {
	userRepo := postgresql.NewUserRepository(db)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	jwtRepo := postgresql.NewJWTRepository(db)
	authCfg := config.AuthConfig{AllowedEmails: allowedEmails}
	authSvc := authService.NewAuthService(db, authCfg, userRepo, jwtSvc, jwtRepo)

	// Real GoogleService; the OAuth endpoints are never hit in these tests
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:8080/callback", []string{"email"})

	return NewAuthHandler(jwtSvc, authSvc, googleSvc, "http://localhost:3000")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	testEmail := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, db, testEmail)
	handler := newTestAuthHandler(db, []string{testEmail})

	body, _ := json.Marshal(auth.LoginRequest{Email: testEmail, Password: handlerTestPassword})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	var refreshTokenCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshTokenCookie = cookie
			break
		}
	}
	require.NotNil(t, refreshTokenCookie)
	assert.True(t, refreshTokenCookie.HttpOnly)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	testEmail := fmt.Sprintf("login-wrong-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, db, testEmail)
	handler := newTestAuthHandler(db, []string{testEmail})

	body, _ := json.Marshal(auth.LoginRequest{Email: testEmail, Password: "not-the-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_EmailNotOnAllowList(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	testEmail := fmt.Sprintf("login-denied-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, db, testEmail)

	// valid account, but the allow-list names someone else
	handler := newTestAuthHandler(db, []string{"someone-else@example.com"})

	body, _ := json.Marshal(auth.LoginRequest{Email: testEmail, Password: handlerTestPassword})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	db := requireHandlerTestDB(t)

	handler := newTestAuthHandler(db, []string{"anyone@example.com"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	testEmail := fmt.Sprintf("refresh-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, db, testEmail)
	handler := newTestAuthHandler(db, []string{testEmail})

	// login first to obtain a refresh token
	body, _ := json.Marshal(auth.LoginRequest{Email: testEmail, Password: handlerTestPassword})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	loginW := httptest.NewRecorder()
	handler.Login(loginW, loginReq)
	require.Equal(t, http.StatusCreated, loginW.Code)

	var loginResp map[string]interface{}
	require.NoError(t, json.NewDecoder(loginW.Body).Decode(&loginResp))
	refreshToken := loginResp["data"].(map[string]interface{})["refresh_token"].(string)

	refreshBody, _ := json.Marshal(auth.RefreshTokenRequest{RefreshToken: refreshToken})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(refreshBody))
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
}

func TestAuthHandler_RefreshToken_Garbage(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	handler := newTestAuthHandler(db, []string{"anyone@example.com"})

	body, _ := json.Marshal(auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_RevokesRefreshToken(t *testing.T) {
	db := requireHandlerTestDB(t)
	ctx := context.Background()
	truncateHandlerTables(t, ctx, db)

	testEmail := fmt.Sprintf("logout-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, db, testEmail)
	handler := newTestAuthHandler(db, []string{testEmail})

	body, _ := json.Marshal(auth.LoginRequest{Email: testEmail, Password: handlerTestPassword})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	loginW := httptest.NewRecorder()
	handler.Login(loginW, loginReq)
	require.Equal(t, http.StatusCreated, loginW.Code)

	var loginResp map[string]interface{}
	require.NoError(t, json.NewDecoder(loginW.Body).Decode(&loginResp))
	refreshToken := loginResp["data"].(map[string]interface{})["refresh_token"].(string)

	logoutBody, _ := json.Marshal(auth.RefreshTokenRequest{RefreshToken: refreshToken})
	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", bytes.NewReader(logoutBody))
	logoutW := httptest.NewRecorder()
	handler.Logout(logoutW, logoutReq)
	assert.Equal(t, http.StatusOK, logoutW.Code)

	// the revoked token no longer refreshes
	refreshBody, _ := json.Marshal(auth.RefreshTokenRequest{RefreshToken: refreshToken})
	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(refreshBody))
	refreshW := httptest.NewRecorder()
	handler.RefreshToken(refreshW, refreshReq)
	assert.Equal(t, http.StatusUnauthorized, refreshW.Code)
}
