package repository

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrAttendeeNotFound      = errors.New("attendee not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrDuplicateAttendance   = errors.New("attendance record already exists")
	ErrEmailTaken            = errors.New("an attendee with this email already exists")
)
