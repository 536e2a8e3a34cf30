package mongo

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names shared by filters and documents.
const (
	fieldID                 = "_id"
	fieldLinkToken          = "telegramLinkToken"
	fieldLinkTokenExpiresAt = "telegramLinkTokenExpiresAt"
	fieldChatUserID         = "telegramUserId"
	fieldChatUsername       = "telegramUsername"
	fieldNotifications      = "notificationsEnabled"
	fieldWeeklyDigest       = "weeklyDigest"
	fieldFavorites          = "favorites"

	fieldOwnerChatID = "ownerTelegramId"
	fieldStatus      = "status"
	fieldBrand       = "brand"
	fieldModel       = "model"
	fieldCategory    = "category"
	fieldPrice       = "price"
	fieldYear        = "year"
	fieldCreatedAt   = "createdAt"
)

// userDocument is the subset of the users collection the bot reads.
type userDocument struct {
	ID                   primitive.ObjectID `bson:"_id"`
	Name                 string             `bson:"name"`
	Email                string             `bson:"email"`
	ChatUserID           bson.RawValue      `bson:"telegramUserId,omitempty"`
	ChatUsername         *string            `bson:"telegramUsername,omitempty"`
	LinkToken            *string            `bson:"telegramLinkToken,omitempty"`
	LinkTokenExpiresAt   *time.Time         `bson:"telegramLinkTokenExpiresAt,omitempty"`
	NotificationsEnabled *bool              `bson:"notificationsEnabled,omitempty"`
	WeeklyDigest         bool               `bson:"weeklyDigest"`
	Favorites            []bson.RawValue    `bson:"favorites,omitempty"`
}

// listingDocument mirrors a stored vehicle. Everything but the id may be
// missing, hence the pointers.
type listingDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Brand           *string            `bson:"brand,omitempty"`
	Model           *string            `bson:"model,omitempty"`
	Year            *int               `bson:"year,omitempty"`
	Price           *float64           `bson:"price,omitempty"`
	Currency        *string            `bson:"currency,omitempty"`
	OwnerName       *string            `bson:"ownerName,omitempty"`
	Location        *string            `bson:"location,omitempty"`
	Status          *string            `bson:"status,omitempty"`
	Description     *string            `bson:"description,omitempty"`
	Images          []string           `bson:"images,omitempty"`
	Mileage         *int               `bson:"mileage,omitempty"`
	Condition       *string            `bson:"condition,omitempty"`
	Transmission    *string            `bson:"transmission,omitempty"`
	FuelType        *string            `bson:"fuelType,omitempty"`
	Color           *string            `bson:"color,omitempty"`
	Views           *int               `bson:"views,omitempty"`
	ReferenceNumber *string            `bson:"referenceNumber,omitempty"`
	Category        *string            `bson:"category,omitempty"`
	OwnerChatID     bson.RawValue      `bson:"ownerTelegramId,omitempty"`
	LegacyChatID    bson.RawValue      `bson:"telegramUserId,omitempty"`
	SellerContact   *string            `bson:"sellerContact,omitempty"`
	CreatedAt       *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty"`
}

// rawIDString renders an identifier stored either as a string, a number or
// an ObjectID. The second result is false for missing, null or empty values.
func rawIDString(value bson.RawValue) (string, bool) {
	var out string
	switch value.Type {
	case bsontype.String:
		out = value.StringValue()
	case bsontype.Int32:
		out = strconv.FormatInt(int64(value.Int32()), 10)
	case bsontype.Int64:
		out = strconv.FormatInt(value.Int64(), 10)
	case bsontype.Double:
		out = strconv.FormatFloat(value.Double(), 'f', -1, 64)
	case bsontype.ObjectID:
		out = value.ObjectID().Hex()
	default:
		return "", false
	}

	return out, out != ""
}
