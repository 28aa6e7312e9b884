package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/a2sh3r/holdengine/internal/hash"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const testSecret = "testsecret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestJWTMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantRole   models.Role
	}{
		{
			name:       "нет заголовка",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "неверный формат",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "строковый идентификатор и роль",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": "123456789012345678", "role": "admin", "exp": exp}),
			wantStatus: http.StatusOK,
			wantUser:   "123456789012345678",
			wantRole:   models.RoleAdmin,
		},
		{
			name:       "числовой идентификатор без роли",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": float64(42), "exp": exp}),
			wantStatus: http.StatusOK,
			wantUser:   "42",
			wantRole:   models.RoleClient,
		},
		{
			name:       "неизвестная роль",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": "1", "role": "root", "exp": exp}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "истекший токен",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": "1", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			var gotRole models.Role
			h := JWTMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUserID(r.Context())
				gotRole = GetRole(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUser, gotUser)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantRole, gotRole)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for role, want := range map[models.Role]int{
		models.RoleAdmin:     http.StatusOK,
		models.RoleExchanger: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), RoleKey, role))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewUserRateLimiter(rate.Limit(0.001), 2)
	h := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if userID != "" {
			req = req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusOK, call("b"))
	assert.Equal(t, http.StatusOK, call(""))
}

func TestUserLimiter_PrunesIdleEntries(t *testing.T) {
	limiter := NewUserRateLimiter(rate.Limit(1), 1)
	old := time.Now().Add(-time.Hour)
	for i := 0; i < limiterPruneThreshold; i++ {
		limiter.getLimiter("ip:"+strconv.Itoa(i), old)
	}
	require.Len(t, limiter.limiters, limiterPruneThreshold)

	limiter.getLimiter("user:fresh", time.Now())
	assert.Len(t, limiter.limiters, 1)
}

func TestHashMiddleware(t *testing.T) {
	logger.Log = zap.NewNop()
	h := NewHashMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))

	body := `{"amount_usd":"100"}`

	tests := []struct {
		name       string
		method     string
		sign       string
		wantStatus int
	}{
		{name: "подпись верна", method: http.MethodPost, sign: hash.CalculateHash(body, testSecret), wantStatus: http.StatusCreated},
		{name: "подпись неверна", method: http.MethodPost, sign: "deadbeef", wantStatus: http.StatusBadRequest},
		{name: "POST без подписи", method: http.MethodPost, wantStatus: http.StatusBadRequest},
		{name: "DELETE без подписи", method: http.MethodDelete, wantStatus: http.StatusBadRequest},
		{name: "GET без подписи", method: http.MethodGet, wantStatus: http.StatusCreated},
		{name: "GET с неверной подписью", method: http.MethodGet, sign: "deadbeef", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader(body))
			if tt.sign != "" {
				req.Header.Set(hash.HeaderName, tt.sign)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, body, w.Body.String())
				assert.Equal(t, hash.CalculateHash(body, testSecret), w.Header().Get(hash.HeaderName))
			}
		})
	}

	empty := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, empty)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGzipMiddleware(t *testing.T) {
	logger.Log = zap.NewNop()
	h := NewGzipMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, _ = gz.Write([]byte("hello"))
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))

	plain := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, plain)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", w.Body.String())
}
