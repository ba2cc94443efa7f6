package event

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const eventBody = `{
	"owner_id": 1,
	"title": "Picnic",
	"description": "Bring food",
	"start_time": "2025-06-01T18:30",
	"end_time": "2025-06-01T21:00",
	"geometry": {"type": "Point", "coordinates": [25.3, 45.2]},
	"color": "#FF0000AA"
}`

func TestHandler_Create(t *testing.T) {
	service := &mockEventService{}
	service.
		On("Create", mock.Anything, mock.MatchedBy(func(input CreateInput) bool {
			return input.OwnerID == 1 && input.Title == "Picnic" && input.StartTime == "2025-06-01T18:30"
		})).
		Return(&model.Event{ID: 1}, nil)
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/post_event", bytes.NewBufferString(eventBody))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/get_events", recorder.Header().Get("Location"))
	service.AssertExpectations(t)
}

func TestHandler_Create_MissingField(t *testing.T) {
	service := &mockEventService{}
	handler := NewHandler(service)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/post_event", bytes.NewBufferString(`{"owner_id": 1, "title": "Picnic"}`))

	handler.Create(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsBadRequest(c.Errors.Last()))
	assert.EqualError(t, c.Errors.Last().Err, "Missing field: description")
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_Create_OwnerNotAnInteger(t *testing.T) {
	service := &mockEventService{}
	handler := NewHandler(service)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/post_event", bytes.NewBufferString(`{"owner_id": 1.5}`))

	handler.Create(c)

	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors.Last().Err, "Invalid field for owner_id. Expected integer")
}

func TestHandler_FindById(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service := &mockEventService{}
		service.
			On("FindById", mock.Anything, uint(1)).
			Return(&model.Event{ID: 1, Title: "Picnic", Geometry: model.Geometry{Geometry: orb.Point{25.3, 45.2}}}, nil)
		handler := NewHandler(service)

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_event?event_id=1", nil)

		handler.FindById(c)

		require.Empty(t, c.Errors)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"geometry":{"type":"Point","coordinates":[25.3,45.2]}`)
	})

	t.Run("NotFound", func(t *testing.T) {
		service := &mockEventService{}
		service.
			On("FindById", mock.Anything, uint(2)).
			Return(nil, errdef.NewNotFound("failed to find event with id %d", 2))
		handler := NewHandler(service)

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_event?event_id=2", nil)

		handler.FindById(c)

		require.Empty(t, c.Errors)
		assert.JSONEq(t, `{}`, recorder.Body.String())
	})

	t.Run("MissingParameter", func(t *testing.T) {
		handler := NewHandler(&mockEventService{})

		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/get_event", nil)

		handler.FindById(c)

		require.Len(t, c.Errors, 1)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_FindAll(t *testing.T) {
	service := &mockEventService{}
	service.
		On("FindAll", mock.Anything).
		Return([]model.Event{{ID: 1}, {ID: 2}}, nil)
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/get_events", nil)

	handler.FindAll(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":2`)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) Create(ctx context.Context, input CreateInput) (*model.Event, error) {
	called := m.Called(ctx, input)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockEventService) FindById(ctx context.Context, id uint) (*model.Event, error) {
	called := m.Called(ctx, id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockEventService) FindAll(ctx context.Context) ([]model.Event, error) {
	called := m.Called(ctx)
	events, _ := called.Get(0).([]model.Event)
	return events, called.Error(1)
}
