package repository

import (
	"context"

	"github.com/bradycon/gatherpoint/internal/models"
	"gorm.io/gorm"
)

type Stats struct {
	AttendeeCount      int64 `json:"attendeeCount"`
	EventCount         int64 `json:"eventCount"`
	AccommodationCount int64 `json:"accommodationCount"`
}

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) Counts(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := r.db.WithContext(ctx).Model(&models.Attendee{}).Count(&stats.AttendeeCount).Error; err != nil {
		return Stats{}, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&stats.EventCount).Error; err != nil {
		return Stats{}, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Accommodation{}).Count(&stats.AccommodationCount).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
