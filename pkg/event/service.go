package event

import (
	"context"
	"unicode/utf8"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
)

func NewService(repository Repository) *Service {
	return &Service{repository}
}

type Repository interface {
	Create(ctx context.Context, event *model.Event) error
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
}

type Service struct {
	repository Repository
}

// CreateInput carries an event as submitted. Times are ISO-8601 strings and the geometry is a
// GeoJSON geometry object.
type CreateInput struct {
	OwnerID     uint
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Geometry    []byte
	Color       string
}

// Create validates and stores the event. Nothing is stored if any field fails to parse.
func (s Service) Create(ctx context.Context, input CreateInput) (*model.Event, error) {
	startTime, err := model.ParseEventTime(input.StartTime)
	if err != nil {
		return nil, errdef.NewBadRequest("Invalid start_time: %v", err)
	}

	endTime, err := model.ParseEventTime(input.EndTime)
	if err != nil {
		return nil, errdef.NewBadRequest("Invalid end_time: %v", err)
	}

	geometry, err := model.ParseGeometry(input.Geometry)
	if err != nil {
		return nil, errdef.NewBadRequest("Invalid geometry: %v", err)
	}

	lengths := []struct {
		name  string
		value string
		max   int
	}{
		{"title", input.Title, model.MaxTitleLength},
		{"description", input.Description, model.MaxDescriptionLength},
		{"color", input.Color, model.MaxColorLength},
	}
	for _, l := range lengths {
		if utf8.RuneCountInString(l.value) > l.max {
			return nil, errdef.NewBadRequest("%s must be at most %d characters", l.name, l.max)
		}
	}

	event := &model.Event{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Geometry:    geometry,
		Color:       input.Color,
	}
	if err := s.repository.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	return s.repository.FindById(ctx, id)
}

func (s Service) FindAll(ctx context.Context) ([]model.Event, error) {
	return s.repository.FindAll(ctx)
}
