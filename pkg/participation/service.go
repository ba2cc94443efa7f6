package participation

import (
	"context"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
)

func NewService(repository Repository) *Service {
	return &Service{repository}
}

type Repository interface {
	Upsert(ctx context.Context, p *model.Participation) error
	Find(ctx context.Context, userID, eventID uint) (*model.Participation, error)
	FindAll(ctx context.Context) ([]model.Participation, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Participation, error)
	FindByEvent(ctx context.Context, eventID uint) ([]model.Participation, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type Service struct {
	repository Repository
}

// Upsert records the status of the user for the event. A later call for the same user and event
// replaces the status.
func (s Service) Upsert(ctx context.Context, userID, eventID uint, status string) (*model.Participation, error) {
	parsed, err := model.ParseParticipationStatus(status)
	if err != nil {
		return nil, errdef.NewBadRequest("%v", err)
	}

	p := &model.Participation{
		UserID:  userID,
		EventID: eventID,
		Status:  parsed,
	}
	if err := s.repository.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s Service) Find(ctx context.Context, userID, eventID uint) (*model.Participation, error) {
	return s.repository.Find(ctx, userID, eventID)
}

func (s Service) FindAll(ctx context.Context) ([]model.Participation, error) {
	return s.repository.FindAll(ctx)
}

// FindByUser returns the events the user participates in along with their status.
func (s Service) FindByUser(ctx context.Context, userID uint) ([]model.EventParticipation, error) {
	participations, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.EventParticipation, 0, len(participations))
	for _, p := range participations {
		if p.Event == nil {
			continue
		}
		result = append(result, model.EventParticipation{Event: *p.Event, Status: p.Status})
	}
	return result, nil
}

// FindByEvent returns the users participating in the event along with their status.
func (s Service) FindByEvent(ctx context.Context, eventID uint) ([]model.UserParticipation, error) {
	participations, err := s.repository.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserParticipation, 0, len(participations))
	for _, p := range participations {
		if p.User == nil {
			continue
		}
		result = append(result, model.UserParticipation{User: *p.User, Status: p.Status})
	}
	return result, nil
}

func (s Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repository.DeleteAll(ctx)
}
