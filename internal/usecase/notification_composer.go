package usecase

import (
	"marketbot/internal/domain/entity"
)

// NotificationComposer renders domain data into chat messages. It performs
// no I/O.
type NotificationComposer interface {
	NewVehicle(listing *entity.ListingSummary) entity.OutboundMessage
	VehicleApproved(listing *entity.ListingSummary) entity.OutboundMessage
	NewListingAlert(listing *entity.ListingSummary) entity.OutboundMessage
	VehicleRejected(listing *entity.ListingSummary, reason string) entity.OutboundMessage
	PriceChange(listing *entity.ListingSummary, oldPrice, newPrice float64) entity.OutboundMessage
	PaymentReceived(listing *entity.ListingSummary, payment *entity.Payment) entity.OutboundMessage
	MarketSummary(stats *entity.MarketStats) entity.OutboundMessage
	ContactMessage(contact *entity.ContactMessage) entity.OutboundMessage

	// SearchResultLine renders one listing of a search reply.
	SearchResultLine(listing *entity.ListingSummary) string

	// FormatPrice renders an amount with grouping separators and no decimals.
	FormatPrice(amount float64, currency string) string

	// ListingURL returns the public detail page of a listing.
	ListingURL(listingID string) string
}
