package repository

import (
	"context"
	"errors"

	"github.com/bradycon/gatherpoint/internal/models"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	result := r.db.WithContext(ctx).
		Order("date, start_time").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// ListFrom returns events on or after the given ISO date, soonest first.
func (r *EventRepo) ListFrom(ctx context.Context, fromDate string) ([]models.Event, error) {
	var events []models.Event
	result := r.db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("date, start_time").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepo) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]models.Event, error) {
	var events []models.Event
	result := r.db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("date, start_time").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepo) Get(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, result.Error
	}
	return event, nil
}

func (r *EventRepo) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepo) Update(ctx context.Context, id uint, update models.EventUpdate) (models.Event, error) {
	event, err := r.Get(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	changes := update.Changes()
	if len(changes) == 0 {
		return event, nil
	}
	if err := r.db.WithContext(ctx).Model(&event).Updates(changes).Error; err != nil {
		return models.Event{}, err
	}
	return r.Get(ctx, id)
}

func (r *EventRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
