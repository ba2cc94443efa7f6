package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairfinder/fair-finder/internal/middleware"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/token/helper"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.NewAuthentication(logger, "secret")

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/", auth.TokenAuthentication, func(c *gin.Context) {
		userID, ok := model.GetUserIDFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})

	request := func(t *testing.T, authorization string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("ValidToken", func(t *testing.T) {
		token, err := helper.GenerateAccessToken(42, "secret", 60)
		require.NoError(t, err)

		w := request(t, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":42}`, w.Body.String())
	})

	t.Run("MissingToken", func(t *testing.T) {
		w := request(t, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Missing token"}`, w.Body.String())
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := helper.GenerateAccessToken(42, "another secret", 60)
		require.NoError(t, err)

		w := request(t, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, err := helper.GenerateAccessToken(42, "secret", -60)
		require.NoError(t, err)

		w := request(t, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := helper.GenerateRefreshToken(42, "secret", 60)
		require.NoError(t, err)

		w := request(t, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthenticator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.NewAuthentication(logger, "secret")
	token, err := helper.GenerateAccessToken(42, "secret", 60)
	require.NoError(t, err)

	serve := func(t *testing.T, required bool, authorization string) *httptest.ResponseRecorder {
		t.Helper()
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/", auth.Authenticator(required), func(c *gin.Context) {
			userID, ok := model.GetUserIDFromContext(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"authenticated": ok, "userId": userID})
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("RequiredWithoutToken", func(t *testing.T) {
		w := serve(t, true, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("OptionalWithoutToken", func(t *testing.T) {
		w := serve(t, false, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false,"userId":0}`, w.Body.String())
	})

	t.Run("OptionalWithInvalidToken", func(t *testing.T) {
		w := serve(t, false, "Bearer not-a-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false,"userId":0}`, w.Body.String())
	})

	t.Run("OptionalWithValidToken", func(t *testing.T) {
		w := serve(t, false, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"userId":42}`, w.Body.String())
	})
}
