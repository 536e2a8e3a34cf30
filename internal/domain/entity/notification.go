package entity

import "time"

// EventKind names a marketplace event that produces chat notifications.
type EventKind string

const (
	EventNewVehicle      EventKind = "new_vehicle"
	EventPaymentReceived EventKind = "payment_received"
	EventVehicleApproved EventKind = "vehicle_approved"
	EventVehicleRejected EventKind = "vehicle_rejected"
	EventPriceChange     EventKind = "price_change"
	EventMarketSummary   EventKind = "market_summary"
	EventContactMessage  EventKind = "contact_message"
)

// IsValid checks if the kind is one the dispatcher knows how to route.
func (k EventKind) IsValid() bool {
	switch k {
	case EventNewVehicle, EventPaymentReceived, EventVehicleApproved, EventVehicleRejected,
		EventPriceChange, EventMarketSummary, EventContactMessage:
		return true
	default:
		return false
	}
}

// RequiresListing reports whether the kind carries a listing payload.
func (k EventKind) RequiresListing() bool {
	switch k {
	case EventMarketSummary, EventContactMessage:
		return false
	default:
		return k.IsValid()
	}
}

// Payment describes a received payment.
type Payment struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"`
	PayerName string  `json:"payer_name"`
	Reference string  `json:"reference"`
}

// ContactMessage is a message left through the marketplace contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// NotificationEvent is a marketplace event to be turned into chat messages.
// Only the payload fields relevant to Kind are set.
type NotificationEvent struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id,omitempty"`
	Kind       EventKind `json:"kind"`
	ListingID  string    `json:"listing_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`

	Listing  *ListingSummary `json:"listing,omitempty"`
	Reason   string          `json:"reason,omitempty"`
	OldPrice float64         `json:"old_price,omitempty"`
	NewPrice float64         `json:"new_price,omitempty"`
	Payment  *Payment        `json:"payment,omitempty"`
	Stats    *MarketStats    `json:"stats,omitempty"`
	Contact  *ContactMessage `json:"contact,omitempty"`
}

// RecipientFilter selects the users interested in a broadcast. Linked users
// that did not disable notifications always match; the remaining fields
// narrow the audience further.
type RecipientFilter struct {
	FavoriteListingID string
	WeeklyDigestOnly  bool
	ExcludeChatID     string
}
