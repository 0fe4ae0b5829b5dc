package dto

// MutateRequest is the shared body for adding and removing unavailability
// over a date range. Dates are YYYY-MM-DD, both ends inclusive;
// times_of_day entries are free-form tag strings.
type MutateRequest struct {
	UserID     int64    `json:"user_id"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	TimesOfDay []string `json:"times_of_day"`
}

// ClearRequest for wiping a user's whole selection within an event
type ClearRequest struct {
	UserID int64 `json:"user_id"`
}
