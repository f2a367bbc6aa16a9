package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/bradycon/gatherpoint/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	searchMinLength  = 2
	searchMaxResults = 10
)

// AttendeeNames is the public autocomplete feed.
func (h *PublicHandler) AttendeeNames(c *gin.Context) {
	names, err := h.attendees.Names(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch attendee names")
		return
	}
	if names == nil {
		names = []models.AttendeeName{}
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

type searchMatch struct {
	ID        uint                      `json:"id"`
	FirstName string                    `json:"firstName"`
	LastName  string                    `json:"lastName"`
	Email     *string                   `json:"email"`
	Events    []models.AttendeeEventRow `json:"events"`
}

// SearchAttendees finds attendees by partial name and attaches each match's
// event registrations.
func (h *PublicHandler) SearchAttendees(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if len(name) < searchMinLength {
		helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("Name must be at least %d characters", searchMinLength))
		return
	}

	attendees, err := h.attendees.Search(c.Request.Context(), name, searchMaxResults)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to search attendees")
		return
	}

	if len(attendees) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"attendees": []searchMatch{},
			"message":   "No attendees found with that name",
		})
		return
	}

	matches := make([]searchMatch, 0, len(attendees))
	for _, a := range attendees {
		events, err := h.attendance.ListByAttendee(c.Request.Context(), a.ID)
		if err != nil {
			helpers.RespondWithRepoError(c, err, "Failed to search attendees")
			return
		}
		if events == nil {
			events = []models.AttendeeEventRow{}
		}
		matches = append(matches, searchMatch{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Events:    events,
		})
	}
	c.JSON(http.StatusOK, gin.H{"attendees": matches})
}

type registerRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Partner         *uint   `json:"partner"`
	Email           *string `json:"email"`
	Phone           string  `json:"phone"`
	CountryID       string  `json:"countryId"`
	IsAdult         *bool   `json:"isAdult"`
	AccommodationID *uint   `json:"accommodationId"`
	ArrivalDate     string  `json:"arrivalDate"`
	DepartureDate   string  `json:"departureDate"`
	SpecialRequests string  `json:"specialRequests"`
}

// Register is the public self-registration path. Unlike the admin create it
// requires a name, rejects duplicate emails, and never starts confirmed.
func (h *PublicHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "First name and last name are required")
		return
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := h.attendees.EmailExists(c.Request.Context(), *req.Email)
		if err != nil {
			helpers.RespondWithRepoError(c, err, "Failed to register attendee")
			return
		}
		if taken {
			helpers.RespondWithRepoError(c, repository.ErrEmailTaken, "Failed to register attendee")
			return
		}
	}

	isAdult := true
	if req.IsAdult != nil {
		isAdult = *req.IsAdult
	}
	attendee := models.Attendee{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Partner:         req.Partner,
		Email:           req.Email,
		Phone:           req.Phone,
		CountryID:       req.CountryID,
		IsConfirmed:     false,
		IsAdult:         isAdult,
		AccommodationID: req.AccommodationID,
		ArrivalDate:     req.ArrivalDate,
		DepartureDate:   req.DepartureDate,
		SpecialRequests: req.SpecialRequests,
	}
	if err := h.attendees.Create(c.Request.Context(), &attendee); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to register attendee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Registration successful!",
		"attendee": attendee,
	})
}
