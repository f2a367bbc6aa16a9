package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bradycon/gatherpoint/internal/models"
	"gorm.io/gorm"
)

type AttendeeRepo struct {
	db *gorm.DB
}

func NewAttendeeRepo(db *gorm.DB) *AttendeeRepo {
	return &AttendeeRepo{db: db}
}

// List returns every attendee with the lodging name resolved; the join is a
// left join so unassigned attendees and dangling accommodation references
// come back with a null accommodationName.
func (r *AttendeeRepo) List(ctx context.Context) ([]models.AttendeeWithAccommodation, error) {
	var rows []models.AttendeeWithAccommodation
	result := r.db.WithContext(ctx).
		Model(&models.Attendee{}).
		Select("attendees.*, accommodations.name AS accommodation_name").
		Joins("LEFT JOIN accommodations ON accommodations.id = attendees.accommodation_id").
		Order("attendees.last_name, attendees.first_name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *AttendeeRepo) Get(ctx context.Context, id uint) (models.Attendee, error) {
	var attendee models.Attendee
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&attendee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Attendee{}, ErrAttendeeNotFound
		}
		return models.Attendee{}, result.Error
	}
	return attendee, nil
}

func (r *AttendeeRepo) Create(ctx context.Context, attendee *models.Attendee) error {
	return r.db.WithContext(ctx).Create(attendee).Error
}

func (r *AttendeeRepo) Update(ctx context.Context, id uint, update models.AttendeeUpdate) (models.Attendee, error) {
	attendee, err := r.Get(ctx, id)
	if err != nil {
		return models.Attendee{}, err
	}
	changes := update.Changes()
	if len(changes) == 0 {
		return attendee, nil
	}
	if err := r.db.WithContext(ctx).Model(&attendee).Updates(changes).Error; err != nil {
		return models.Attendee{}, err
	}
	return r.Get(ctx, id)
}

func (r *AttendeeRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Attendee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttendeeNotFound
	}
	return nil
}

func (r *AttendeeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&models.Attendee{}).
		Where("email = ?", email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Names returns the full autocomplete list ordered by first then last name.
func (r *AttendeeRepo) Names(ctx context.Context) ([]models.AttendeeName, error) {
	var attendees []models.Attendee
	result := r.db.WithContext(ctx).
		Select("id, first_name, last_name").
		Order("first_name, last_name").
		Find(&attendees)
	if result.Error != nil {
		return nil, result.Error
	}
	names := make([]models.AttendeeName, 0, len(attendees))
	for _, a := range attendees {
		names = append(names, models.AttendeeName{
			ID:        a.ID,
			FullName:  fmt.Sprintf("%s %s", a.FirstName, a.LastName),
			FirstName: a.FirstName,
			LastName:  a.LastName,
		})
	}
	return names, nil
}

// Search matches the term case-insensitively against the first name, the
// last name, or the "first last" concatenation.
func (r *AttendeeRepo) Search(ctx context.Context, term string, limit int) ([]models.Attendee, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var attendees []models.Attendee
	result := r.db.WithContext(ctx).
		Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(first_name || ' ' || last_name) LIKE ?",
			pattern, pattern, pattern,
		).
		Limit(limit).
		Find(&attendees)
	if result.Error != nil {
		return nil, result.Error
	}
	return attendees, nil
}

func (r *AttendeeRepo) ListByAccommodation(ctx context.Context, accommodationID uint) ([]models.Attendee, error) {
	var attendees []models.Attendee
	result := r.db.WithContext(ctx).
		Select("id, first_name, last_name, country_id").
		Where("accommodation_id = ?", accommodationID).
		Find(&attendees)
	if result.Error != nil {
		return nil, result.Error
	}
	return attendees, nil
}
