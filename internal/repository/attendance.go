package repository

import (
	"context"
	"errors"

	"github.com/bradycon/gatherpoint/internal/models"
	"gorm.io/gorm"
)

type AttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

func (r *AttendanceRepo) List(ctx context.Context) ([]models.EventAttendance, error) {
	var links []models.EventAttendance
	result := r.db.WithContext(ctx).Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}
	return links, nil
}

// Create verifies both endpoints exist and that no link for the pair is
// already present, then inserts. The pre-checks produce the specific errors;
// the unique index on (event_id, attendee_id) is what actually guarantees
// the invariant when two identical requests race, so a duplicate-key failure
// on insert is reported as the same conflict.
func (r *AttendanceRepo) Create(ctx context.Context, link *models.EventAttendance) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", link.EventID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrEventNotFound
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Attendee{}).
		Where("id = ?", link.AttendeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAttendeeNotFound
	}

	if err := r.db.WithContext(ctx).
		Model(&models.EventAttendance{}).
		Where("event_id = ? AND attendee_id = ?", link.EventID, link.AttendeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAttendance
	}

	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAttendance
		}
		return err
	}
	return nil
}

func (r *AttendanceRepo) Get(ctx context.Context, id uint) (models.EventAttendance, error) {
	var link models.EventAttendance
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.EventAttendance{}, ErrAttendanceNotFound
		}
		return models.EventAttendance{}, result.Error
	}
	return link, nil
}

func (r *AttendanceRepo) Update(ctx context.Context, id uint, update models.EventAttendanceUpdate) (models.EventAttendance, error) {
	link, err := r.Get(ctx, id)
	if err != nil {
		return models.EventAttendance{}, err
	}
	changes := update.Changes()
	if len(changes) == 0 {
		return link, nil
	}
	if err := r.db.WithContext(ctx).Model(&link).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.EventAttendance{}, ErrDuplicateAttendance
		}
		return models.EventAttendance{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the link and returns the removed row for confirmation.
func (r *AttendanceRepo) Delete(ctx context.Context, id uint) (models.EventAttendance, error) {
	link, err := r.Get(ctx, id)
	if err != nil {
		return models.EventAttendance{}, err
	}
	if err := r.db.WithContext(ctx).Delete(&link).Error; err != nil {
		return models.EventAttendance{}, err
	}
	return link, nil
}

func (r *AttendanceRepo) ListByEvent(ctx context.Context, eventID uint) ([]models.EventAttendeeRow, error) {
	var rows []models.EventAttendeeRow
	result := r.db.WithContext(ctx).
		Model(&models.EventAttendance{}).
		Select("attendees.id, attendees.first_name, attendees.last_name, attendees.country_id, event_attendance.status").
		Joins("INNER JOIN attendees ON attendees.id = event_attendance.attendee_id").
		Where("event_attendance.event_id = ?", eventID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *AttendanceRepo) ListByAttendee(ctx context.Context, attendeeID uint) ([]models.AttendeeEventRow, error) {
	var rows []models.AttendeeEventRow
	result := r.db.WithContext(ctx).
		Model(&models.EventAttendance{}).
		Select("events.id AS event_id, events.title AS event_title, events.date AS event_date, events.start_time AS event_start_time, events.end_time AS event_end_time, events.location AS event_location, event_attendance.status").
		Joins("INNER JOIN events ON events.id = event_attendance.event_id").
		Where("event_attendance.attendee_id = ?", attendeeID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
