package health

import (
	"context"
	"fmt"

	"github.com/fairfinder/fair-finder/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) Create(ctx context.Context, test *model.Test) error {
	err := r.db.WithContext(ctx).Create(test).Error
	if err != nil {
		return fmt.Errorf("failed to create test record: %v", err)
	}
	return nil
}

func (r repository) FindAll(ctx context.Context) ([]model.Test, error) {
	tests := []model.Test{}
	err := r.db.WithContext(ctx).Order("id").Find(&tests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find test records: %v", err)
	}
	return tests, nil
}
