package entity

import "time"

// ListingSummary is the projection of a stored vehicle listing used for
// every outbound message. Required fields are always populated; optional
// fields are nil when absent from the stored document.
type ListingSummary struct {
	ID        string  `json:"id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Price     float64 `json:"price"`
	OwnerName string  `json:"owner_name"`
	Currency  string  `json:"currency"`

	Location        *string    `json:"location,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Images          []string   `json:"images,omitempty"`
	Mileage         *int       `json:"mileage,omitempty"`
	Condition       *string    `json:"condition,omitempty"`
	Transmission    *string    `json:"transmission,omitempty"`
	FuelType        *string    `json:"fuel_type,omitempty"`
	Color           *string    `json:"color,omitempty"`
	Views           *int       `json:"views,omitempty"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	Category        *string    `json:"category,omitempty"`
	ChatOwnerID     *string    `json:"-"`
	SellerContact   *string    `json:"-"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// StatusOrEmpty returns the listing status or an empty string.
func (l *ListingSummary) StatusOrEmpty() string {
	if l.Status == nil {
		return ""
	}

	return *l.Status
}

// SearchFilter narrows a listing search. All set fields are combined with AND.
type SearchFilter struct {
	MaxPrice *float64
	Year     *int
	Query    *string
}

// IsEmpty reports whether no criteria are set.
func (f SearchFilter) IsEmpty() bool {
	return f.MaxPrice == nil && f.Year == nil && f.Query == nil
}

// BrandCount is a brand with its number of approved listings.
type BrandCount struct {
	Brand string `json:"brand" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// MarketStats summarises the approved inventory.
type MarketStats struct {
	TotalListings int          `json:"total_listings"`
	NewThisWeek   int          `json:"new_this_week"`
	AveragePrice  float64      `json:"average_price"`
	TopBrands     []BrandCount `json:"top_brands,omitempty"`
}
