package models

type Accommodation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity string `json:"capacity"`
	Notes    string `json:"notes"`
}

type AccommodationUpdate struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Capacity *string `json:"capacity"`
	Notes    *string `json:"notes"`
}

func (u AccommodationUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "name", u.Name)
	setIfPresent(changes, "address", u.Address)
	setIfPresent(changes, "capacity", u.Capacity)
	setIfPresent(changes, "notes", u.Notes)
	return changes
}
