package models

const (
	EventDraft     = "Draft"
	EventTentative = "Tentative"
	EventConfirmed = "Confirmed"
	EventCancelled = "Cancelled"
)

type Event struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Date              string `gorm:"type:text" json:"date"`
	StartTime         string `gorm:"type:text" json:"startTime"`
	EndTime           string `gorm:"type:text" json:"endTime"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	MaxAttendees      string `json:"maxAttendees"`
	Status            string `json:"status"`
	ResponsiblePerson string `json:"responsiblePerson"`
	ContactDetails    string `json:"contactDetails"`
	WebsiteURL        string `json:"websiteUrl"`
	ImageURL          string `json:"imageUrl"`
	Price             string `json:"price"`
	Notes             string `json:"notes"`
}

// EventUpdate carries a partial edit; nil fields are left unchanged.
type EventUpdate struct {
	Date              *string `json:"date"`
	StartTime         *string `json:"startTime"`
	EndTime           *string `json:"endTime"`
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Location          *string `json:"location"`
	MaxAttendees      *string `json:"maxAttendees"`
	Status            *string `json:"status"`
	ResponsiblePerson *string `json:"responsiblePerson"`
	ContactDetails    *string `json:"contactDetails"`
	WebsiteURL        *string `json:"websiteUrl"`
	ImageURL          *string `json:"imageUrl"`
	Price             *string `json:"price"`
	Notes             *string `json:"notes"`
}

func (u EventUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "date", u.Date)
	setIfPresent(changes, "start_time", u.StartTime)
	setIfPresent(changes, "end_time", u.EndTime)
	setIfPresent(changes, "title", u.Title)
	setIfPresent(changes, "description", u.Description)
	setIfPresent(changes, "location", u.Location)
	setIfPresent(changes, "max_attendees", u.MaxAttendees)
	setIfPresent(changes, "status", u.Status)
	setIfPresent(changes, "responsible_person", u.ResponsiblePerson)
	setIfPresent(changes, "contact_details", u.ContactDetails)
	setIfPresent(changes, "website_url", u.WebsiteURL)
	setIfPresent(changes, "image_url", u.ImageURL)
	setIfPresent(changes, "price", u.Price)
	setIfPresent(changes, "notes", u.Notes)
	return changes
}

func setIfPresent[T any](changes map[string]interface{}, column string, v *T) {
	if v != nil {
		changes[column] = *v
	}
}
