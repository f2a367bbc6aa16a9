package models

type Attendee struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Partner         *uint   `json:"partner"`
	Email           *string `json:"email"`
	Phone           string  `json:"phone"`
	CountryID       string  `json:"countryId"`
	IsConfirmed     bool    `json:"isConfirmed"`
	IsAdult         bool    `json:"isAdult"`
	AccommodationID *uint   `json:"accommodationId"`
	ArrivalDate     string  `gorm:"type:text" json:"arrivalDate"`
	DepartureDate   string  `gorm:"type:text" json:"departureDate"`
	SpecialRequests string  `json:"specialRequests"`
}

// AttendeeWithAccommodation is the admin list row: the attendee plus the
// resolved lodging name, null when unassigned or the accommodation is gone.
type AttendeeWithAccommodation struct {
	Attendee
	AccommodationName *string `json:"accommodationName"`
}

type AttendeeUpdate struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Partner         *uint   `json:"partner"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	CountryID       *string `json:"countryId"`
	IsConfirmed     *bool   `json:"isConfirmed"`
	IsAdult         *bool   `json:"isAdult"`
	AccommodationID *uint   `json:"accommodationId"`
	ArrivalDate     *string `json:"arrivalDate"`
	DepartureDate   *string `json:"departureDate"`
	SpecialRequests *string `json:"specialRequests"`
}

func (u AttendeeUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "first_name", u.FirstName)
	setIfPresent(changes, "last_name", u.LastName)
	setIfPresent(changes, "partner", u.Partner)
	setIfPresent(changes, "email", u.Email)
	setIfPresent(changes, "phone", u.Phone)
	setIfPresent(changes, "country_id", u.CountryID)
	setIfPresent(changes, "is_confirmed", u.IsConfirmed)
	setIfPresent(changes, "is_adult", u.IsAdult)
	setIfPresent(changes, "accommodation_id", u.AccommodationID)
	setIfPresent(changes, "arrival_date", u.ArrivalDate)
	setIfPresent(changes, "departure_date", u.DepartureDate)
	setIfPresent(changes, "special_requests", u.SpecialRequests)
	return changes
}

// AttendeeName is one autocomplete entry.
type AttendeeName struct {
	ID        uint   `json:"id"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
