package mongo

import (
	"time"

	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"
)

// toListingSummary projects a stored document into the summary every
// message is built from. Required fields get fallbacks; optional fields are
// copied only when present.
func toListingSummary(doc *listingDocument, now time.Time) *entity.ListingSummary {
	summary := &entity.ListingSummary{
		ID:        doc.ID.Hex(),
		Brand:     nonEmptyOr(doc.Brand, constants.UnknownBrand),
		Model:     nonEmptyOr(doc.Model, constants.UnknownModel),
		Year:      now.Year(),
		OwnerName: nonEmptyOr(doc.OwnerName, constants.UnknownOwner),
		Currency:  nonEmptyOr(doc.Currency, constants.DefaultCurrency),

		Location:        nonEmpty(doc.Location),
		Status:          nonEmpty(doc.Status),
		Description:     nonEmpty(doc.Description),
		Mileage:         doc.Mileage,
		Condition:       nonEmpty(doc.Condition),
		Transmission:    nonEmpty(doc.Transmission),
		FuelType:        nonEmpty(doc.FuelType),
		Color:           nonEmpty(doc.Color),
		Views:           doc.Views,
		ReferenceNumber: nonEmpty(doc.ReferenceNumber),
		Category:        nonEmpty(doc.Category),
		SellerContact:   nonEmpty(doc.SellerContact),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}

	if doc.Year != nil && *doc.Year > 0 {
		summary.Year = *doc.Year
	}
	if doc.Price != nil && *doc.Price > 0 {
		summary.Price = *doc.Price
	}
	if len(doc.Images) > 0 {
		summary.Images = append([]string(nil), doc.Images...)
	}

	if owner, ok := rawIDString(doc.OwnerChatID); ok {
		summary.ChatOwnerID = &owner
	} else if legacy, ok := rawIDString(doc.LegacyChatID); ok {
		summary.ChatOwnerID = &legacy
	}

	return summary
}

func toListingSummaries(docs []*listingDocument, now time.Time) []*entity.ListingSummary {
	summaries := make([]*entity.ListingSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, toListingSummary(doc, now))
	}

	return summaries
}

func toUser(doc *userDocument) *entity.User {
	user := &entity.User{
		ID:                   doc.ID.Hex(),
		Name:                 doc.Name,
		Email:                doc.Email,
		NotificationsEnabled: doc.NotificationsEnabled,
		WeeklyDigest:         doc.WeeklyDigest,
	}

	if chatUserID, ok := rawIDString(doc.ChatUserID); ok {
		user.ChatIdentity = &entity.ChatIdentity{
			ChatUserID:   chatUserID,
			ChatUsername: nonEmpty(doc.ChatUsername),
		}
	}
	if doc.LinkToken != nil && *doc.LinkToken != "" && doc.LinkTokenExpiresAt != nil {
		user.LinkToken = &entity.LinkToken{Token: *doc.LinkToken, ExpiresAt: *doc.LinkTokenExpiresAt}
	}
	for _, favorite := range doc.Favorites {
		if id, ok := rawIDString(favorite); ok {
			user.Favorites = append(user.Favorites, id)
		}
	}

	return user
}

func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}

func nonEmptyOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}

	return *value
}
