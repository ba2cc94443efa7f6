package participation

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

// Upsert inserts the participation or, if the user already has one for the event, overwrites its
// status. p is refreshed with the stored row.
func (r repository) Upsert(ctx context.Context, p *model.Participation) error {
	err := r.db.
		WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(p).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errdef.NewBadRequest("User %d or event %d not found", p.UserID, p.EventID)
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errdef.NewBadRequest("Invalid status: %q", p.Status)
	}
	if err != nil {
		return fmt.Errorf("failed to save participation: %v", err)
	}

	return nil
}

func (r repository) Find(ctx context.Context, userID, eventID uint) (*model.Participation, error) {
	var p *model.Participation
	err := r.db.
		WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find participation of user %d in event %d", userID, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find participation: %v", err)
	}

	return p, nil
}

func (r repository) FindAll(ctx context.Context) ([]model.Participation, error) {
	participations := []model.Participation{}
	err := r.db.
		WithContext(ctx).
		Order("id").
		Find(&participations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find participations: %v", err)
	}

	return participations, nil
}

func (r repository) FindByUser(ctx context.Context, userID uint) ([]model.Participation, error) {
	participations := []model.Participation{}
	err := r.db.
		WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("id").
		Find(&participations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find participations of user %d: %v", userID, err)
	}

	return participations, nil
}

func (r repository) FindByEvent(ctx context.Context, eventID uint) ([]model.Participation, error) {
	participations := []model.Participation{}
	err := r.db.
		WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("id").
		Find(&participations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find participations in event %d: %v", eventID, err)
	}

	return participations, nil
}

// DeleteAll removes every participation and returns how many were removed.
func (r repository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Participation{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete participations: %v", err)
	}

	return deleted, nil
}
