package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) Create(ctx context.Context, event *model.Event) error {
	err := r.db.WithContext(ctx).Create(event).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errdef.NewBadRequest("Owner not found: %d", event.OwnerID)
	}
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}

	return nil
}

func (r repository) FindById(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event with id %d: %v", id, err)
	}

	return event, nil
}

func (r repository) FindAll(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	err := r.db.
		WithContext(ctx).
		Order("id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %v", err)
	}

	return events, nil
}
