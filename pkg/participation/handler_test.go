package participation

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handler.RegisterValidation(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestHandler_Upsert(t *testing.T) {
	service := &mockParticipationService{}
	service.
		On("Upsert", mock.Anything, uint(1), uint(2), "Not going").
		Return(&model.Participation{ID: 1}, nil)
	h := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/post_participation", bytes.NewBufferString(`{"user_id": 1, "event_id": 2, "status": "Not going"}`))

	h.Upsert(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/get_participations", recorder.Header().Get("Location"))
	service.AssertExpectations(t)
}

func TestHandler_Upsert_InvalidStatus(t *testing.T) {
	service := &mockParticipationService{}
	h := NewHandler(service)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/post_participation", bytes.NewBufferString(`{"user_id": 1, "event_id": 2, "status": "Maybe"}`))

	h.Upsert(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsBadRequest(c.Errors.Last()))
	service.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Upsert_MissingStatus(t *testing.T) {
	h := NewHandler(&mockParticipationService{})

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/post_participation", bytes.NewBufferString(`{"user_id": 1, "event_id": 2}`))

	h.Upsert(c)

	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors.Last().Err, "Missing field: status")
}

func TestHandler_Find(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service := &mockParticipationService{}
		service.
			On("Find", mock.Anything, uint(1), uint(2)).
			Return(&model.Participation{ID: 3, UserID: 1, EventID: 2, Status: model.StatusGoing}, nil)
		h := NewHandler(service)

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_participation?user_id=1&event_id=2", nil)

		h.Find(c)

		require.Empty(t, c.Errors)
		assert.JSONEq(t, `{"id":3,"userId":1,"eventId":2,"status":"Going"}`, recorder.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		service := &mockParticipationService{}
		service.
			On("Find", mock.Anything, uint(1), uint(2)).
			Return(nil, errdef.NewNotFound("failed to find participation"))
		h := NewHandler(service)

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_participation?user_id=1&event_id=2", nil)

		h.Find(c)

		require.Empty(t, c.Errors)
		assert.JSONEq(t, `{}`, recorder.Body.String())
	})

	t.Run("MissingEventID", func(t *testing.T) {
		h := NewHandler(&mockParticipationService{})

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_participation?user_id=1", nil)

		h.Find(c)

		require.Len(t, c.Errors, 1)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.EqualError(t, c.Errors.Last().Err, "Missing query parameter: event_id")
	})
}

func TestHandler_FindByUser(t *testing.T) {
	service := &mockParticipationService{}
	service.
		On("FindByUser", mock.Anything, uint(1)).
		Return([]model.EventParticipation{{Event: model.Event{ID: 2, Title: "Picnic"}, Status: model.StatusInterested}}, nil)
	h := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.AddParam("id", "1")
	c.Request = httptest.NewRequest(http.MethodGet, "/get_user_part/1", nil)

	h.FindByUser(c)

	require.Empty(t, c.Errors)
	assert.Contains(t, recorder.Body.String(), `"title":"Picnic"`)
	assert.Contains(t, recorder.Body.String(), `"status":"Interested"`)
}

func TestHandler_DeleteAll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := &mockParticipationService{}
		service.
			On("DeleteAll", mock.Anything).
			Return(int64(3), nil)
		h := NewHandler(service)

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/delete", nil)

		h.DeleteAll(c)

		require.Empty(t, c.Errors)
		assert.JSONEq(t, `{"status":"3 participations deleted successfully.","deleted":3}`, recorder.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		service := &mockParticipationService{}
		service.
			On("DeleteAll", mock.Anything).
			Return(int64(0), errors.New("failed to delete participations: connection refused"))
		h := NewHandler(service)

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/delete", nil)

		h.DeleteAll(c)

		require.Len(t, c.Errors, 1)
		assert.False(t, errdef.IsBadRequest(c.Errors.Last()))
	})
}

type mockParticipationService struct{ mock.Mock }

func (m *mockParticipationService) Upsert(ctx context.Context, userID, eventID uint, status string) (*model.Participation, error) {
	called := m.Called(ctx, userID, eventID, status)
	p, _ := called.Get(0).(*model.Participation)
	return p, called.Error(1)
}

func (m *mockParticipationService) Find(ctx context.Context, userID, eventID uint) (*model.Participation, error) {
	called := m.Called(ctx, userID, eventID)
	p, _ := called.Get(0).(*model.Participation)
	return p, called.Error(1)
}

func (m *mockParticipationService) FindAll(ctx context.Context) ([]model.Participation, error) {
	called := m.Called(ctx)
	participations, _ := called.Get(0).([]model.Participation)
	return participations, called.Error(1)
}

func (m *mockParticipationService) FindByUser(ctx context.Context, userID uint) ([]model.EventParticipation, error) {
	called := m.Called(ctx, userID)
	participations, _ := called.Get(0).([]model.EventParticipation)
	return participations, called.Error(1)
}

func (m *mockParticipationService) FindByEvent(ctx context.Context, eventID uint) ([]model.UserParticipation, error) {
	called := m.Called(ctx, eventID)
	participations, _ := called.Get(0).([]model.UserParticipation)
	return participations, called.Error(1)
}

func (m *mockParticipationService) DeleteAll(ctx context.Context) (int64, error) {
	called := m.Called(ctx)
	return called.Get(0).(int64), called.Error(1)
}
