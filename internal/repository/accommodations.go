package repository

import (
	"context"
	"errors"

	"github.com/bradycon/gatherpoint/internal/models"
	"gorm.io/gorm"
)

type AccommodationRepo struct {
	db *gorm.DB
}

func NewAccommodationRepo(db *gorm.DB) *AccommodationRepo {
	return &AccommodationRepo{db: db}
}

// List is the admin view, alphabetical.
func (r *AccommodationRepo) List(ctx context.Context) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	result := r.db.WithContext(ctx).Order("name").Find(&accommodations)
	if result.Error != nil {
		return nil, result.Error
	}
	return accommodations, nil
}

// ListPublic keeps insertion order for the public site.
func (r *AccommodationRepo) ListPublic(ctx context.Context) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	result := r.db.WithContext(ctx).Order("id").Find(&accommodations)
	if result.Error != nil {
		return nil, result.Error
	}
	return accommodations, nil
}

func (r *AccommodationRepo) Get(ctx context.Context, id uint) (models.Accommodation, error) {
	var accommodation models.Accommodation
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accommodation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Accommodation{}, ErrAccommodationNotFound
		}
		return models.Accommodation{}, result.Error
	}
	return accommodation, nil
}

func (r *AccommodationRepo) Create(ctx context.Context, accommodation *models.Accommodation) error {
	return r.db.WithContext(ctx).Create(accommodation).Error
}

func (r *AccommodationRepo) Update(ctx context.Context, id uint, update models.AccommodationUpdate) (models.Accommodation, error) {
	accommodation, err := r.Get(ctx, id)
	if err != nil {
		return models.Accommodation{}, err
	}
	changes := update.Changes()
	if len(changes) == 0 {
		return accommodation, nil
	}
	if err := r.db.WithContext(ctx).Model(&accommodation).Updates(changes).Error; err != nil {
		return models.Accommodation{}, err
	}
	return r.Get(ctx, id)
}

func (r *AccommodationRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Accommodation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccommodationNotFound
	}
	return nil
}
