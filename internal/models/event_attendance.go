package models

const (
	RSVPConfirmed = "Confirmed"
	RSVPMaybe     = "Maybe"
	RSVPDeclined  = "Declined"
)

// EventAttendance links one attendee to one event with an RSVP status. The
// composite unique index is the authoritative duplicate guard; handler-level
// pre-checks only exist for friendlier messages.
type EventAttendance struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EventID    uint   `gorm:"uniqueIndex:uq_event_attendee" json:"eventId"`
	AttendeeID uint   `gorm:"uniqueIndex:uq_event_attendee" json:"attendeeId"`
	Status     string `json:"status"`

	Event    *Event    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Attendee *Attendee `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}

type EventAttendanceUpdate struct {
	EventID    *uint   `json:"eventId"`
	AttendeeID *uint   `json:"attendeeId"`
	Status     *string `json:"status"`
}

func (u EventAttendanceUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "event_id", u.EventID)
	setIfPresent(changes, "attendee_id", u.AttendeeID)
	setIfPresent(changes, "status", u.Status)
	return changes
}

// EventAttendeeRow is one attendee of an event, as served publicly.
type EventAttendeeRow struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CountryID string `json:"countryId"`
	Status    string `json:"status"`
}

// AttendeeEventRow is one registration of an attendee, used to enrich the
// public name search.
type AttendeeEventRow struct {
	EventID        uint   `json:"eventId"`
	EventTitle     string `json:"eventTitle"`
	EventDate      string `json:"eventDate"`
	EventStartTime string `json:"eventStartTime"`
	EventEndTime   string `json:"eventEndTime"`
	EventLocation  string `json:"eventLocation"`
	Status         string `json:"status"`
}
