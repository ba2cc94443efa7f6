package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPathParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "123")

	id, ok := GetPathParameter(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
}

func TestGetPathParameter_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	id, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, uint(0), id)
}

func TestGetQueryParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/get_participation?user_id=4&event_id=2", nil)

	userID, ok := GetQueryParameter(ctx, "user_id")
	assert.True(t, ok)
	assert.Equal(t, uint(4), userID)

	eventID, ok := GetQueryParameter(ctx, "event_id")
	assert.True(t, ok)
	assert.Equal(t, uint(2), eventID)
}

func TestGetQueryParameter_Invalid(t *testing.T) {
	tests := map[string]struct {
		url     string
		wantErr string
	}{
		"Missing":  {"/get_user", "Missing query parameter: user_id"},
		"Empty":    {"/get_user?user_id=", "Missing query parameter: user_id"},
		"NotAnInt": {"/get_user?user_id=abc", `error parsing "user_id"`},
		"Negative": {"/get_user?user_id=-1", `error parsing "user_id"`},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, test.url, nil)

			id, ok := GetQueryParameter(ctx, "user_id")

			assert.False(t, ok)
			assert.Zero(t, id)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.ErrorContains(t, ctx.Errors.Last(), test.wantErr)
		})
	}
}
