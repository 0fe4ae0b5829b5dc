package dto

import (
	"meetsync/core/constants"
	"meetsync/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new event. Dates are YYYY-MM-DD.
type CreateEventRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Earliest    string  `json:"earliest"`
	Latest      string  `json:"latest"`
}

// ===================== Response DTOs =====================

// EventResponse for event details. created_at is internal (list ordering
// only) and never serialized.
type EventResponse struct {
	ID          int64   `json:"id"`
	PublicID    string  `json:"public_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Earliest    string  `json:"earliest"`
	Latest      string  `json:"latest"`
}

// EventDetailsResponse is an event together with its aggregated
// unavailability: day -> time-of-day tag -> comma-joined names. Days and
// tags nobody blocked are absent from the map.
type EventDetailsResponse struct {
	Event                 EventResponse                `json:"event"`
	UnavailabilityDetails map[string]map[string]string `json:"unavailability_details"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO
func ToEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		PublicID:    e.PublicID,
		Name:        e.Name,
		Description: e.Description,
		Earliest:    e.Earliest.Format(constants.DateFormat),
		Latest:      e.Latest.Format(constants.DateFormat),
	}
}
