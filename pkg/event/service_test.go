package event

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput() CreateInput {
	return CreateInput{
		OwnerID:     1,
		Title:       "Picnic",
		Description: "Bring food",
		StartTime:   "2025-06-01T18:30",
		EndTime:     "2025-06-01T21:00:00Z",
		Geometry:    []byte(`{"type":"Point","coordinates":[25.3,45.2]}`),
		Color:       "#FF0000AA",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).
			Return(nil)
		service := NewService(repository)

		event, err := service.Create(context.Background(), validInput())

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC), event.StartTime)
		assert.Equal(t, time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC), event.EndTime)
		assert.Equal(t, orb.Point{25.3, 45.2}, event.Geometry.Geometry)
		repository.AssertExpectations(t)
	})

	tests := map[string]struct {
		modify  func(*CreateInput)
		wantErr string
	}{
		"InvalidStartTime": {
			modify:  func(i *CreateInput) { i.StartTime = "not-a-date" },
			wantErr: `Invalid start_time: "not-a-date" is not an ISO-8601 timestamp`,
		},
		"InvalidEndTime": {
			modify:  func(i *CreateInput) { i.EndTime = "tomorrow" },
			wantErr: `Invalid end_time: "tomorrow" is not an ISO-8601 timestamp`,
		},
		"InvalidGeometry": {
			modify:  func(i *CreateInput) { i.Geometry = []byte(`{"type":"Point","coordinates":[25.3]}`) },
			wantErr: "Invalid geometry:",
		},
		"TitleTooLong": {
			modify:  func(i *CreateInput) { i.Title = strings.Repeat("t", model.MaxTitleLength+1) },
			wantErr: "title must be at most 40 characters",
		},
		"ColorTooLong": {
			modify:  func(i *CreateInput) { i.Color = "#FF0000AAFF" },
			wantErr: "color must be at most 9 characters",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repository := &mockRepository{}
			service := NewService(repository)
			input := validInput()
			test.modify(&input)

			_, err := service.Create(context.Background(), input)

			require.Error(t, err)
			assert.True(t, errdef.IsBadRequest(err))
			assert.Contains(t, err.Error(), test.wantErr)
			repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("UnknownOwner", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).
			Return(errdef.NewBadRequest("Owner not found: %d", 1))
		service := NewService(repository)

		_, err := service.Create(context.Background(), validInput())

		require.Error(t, err)
		assert.True(t, errdef.IsBadRequest(err))
	})
}

type mockRepository struct{ mock.Mock }

func (m *mockRepository) Create(ctx context.Context, event *model.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockRepository) FindById(ctx context.Context, id uint) (*model.Event, error) {
	called := m.Called(ctx, id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	called := m.Called(ctx)
	events, _ := called.Get(0).([]model.Event)
	return events, called.Error(1)
}
