// Package domain holds the core data types shared by every other internal package.
package domain

// Trip is one user-entered trip. Dates are kept as the raw calendar-date strings
// ("2006-01-02") they were entered with, so derived views can tolerate values
// that do not parse. Trips are never edited in place, only added or removed.
type Trip struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
