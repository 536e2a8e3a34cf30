package mongo

import (
	"testing"
	"time"

	"marketbot/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](value T) *T {
	return &value
}

func TestToListingSummary_Fallbacks(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	doc := &listingDocument{ID: primitive.NewObjectID()}

	summary := toListingSummary(doc, now)

	assert.Equal(t, doc.ID.Hex(), summary.ID)
	assert.Equal(t, constants.UnknownBrand, summary.Brand)
	assert.Equal(t, constants.UnknownModel, summary.Model)
	assert.Equal(t, 2026, summary.Year)
	assert.Zero(t, summary.Price)
	assert.Equal(t, constants.UnknownOwner, summary.OwnerName)
	assert.Equal(t, constants.DefaultCurrency, summary.Currency)
	assert.Nil(t, summary.Location)
	assert.Nil(t, summary.Status)
	assert.Nil(t, summary.Images)
	assert.Nil(t, summary.ChatOwnerID)
	assert.Nil(t, summary.SellerContact)
}

func TestToListingSummary_CopiesPresentFields(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	doc := &listingDocument{
		ID:           primitive.NewObjectID(),
		Brand:        ptr("Toyota"),
		Model:        ptr("Corolla"),
		Year:         ptr(2019),
		Price:        ptr(14500.0),
		Currency:     ptr("CRC"),
		OwnerName:    ptr("Ana"),
		Location:     ptr("San José"),
		Status:       ptr("approved"),
		Description:  ptr(""),
		Images:       []string{"a.jpg"},
		Mileage:      ptr(82000),
		Transmission: ptr("automática"),
		CreatedAt:    &created,
	}

	summary := toListingSummary(doc, time.Now())

	assert.Equal(t, "Toyota", summary.Brand)
	assert.Equal(t, "Corolla", summary.Model)
	assert.Equal(t, 2019, summary.Year)
	assert.InDelta(t, 14500.0, summary.Price, 0.001)
	assert.Equal(t, "CRC", summary.Currency)
	assert.Equal(t, "Ana", summary.OwnerName)
	require.NotNil(t, summary.Location)
	assert.Equal(t, "San José", *summary.Location)
	assert.Equal(t, "approved", summary.StatusOrEmpty())
	assert.Nil(t, summary.Description, "empty strings count as absent")
	assert.Equal(t, []string{"a.jpg"}, summary.Images)
	require.NotNil(t, summary.Mileage)
	assert.Equal(t, 82000, *summary.Mileage)
	assert.Equal(t, &created, summary.CreatedAt)
}

func TestToListingSummary_OwnerPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		owner  any
		legacy any
		want   *string
	}{
		{name: "canonical wins", owner: "111", legacy: "222", want: ptr("111")},
		{name: "legacy fallback", legacy: int64(222), want: ptr("222")},
		{name: "empty canonical falls back", owner: "", legacy: int32(333), want: ptr("333")},
		{name: "none", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := bson.M{"_id": primitive.NewObjectID()}
			if tt.owner != nil {
				raw["ownerTelegramId"] = tt.owner
			}
			if tt.legacy != nil {
				raw["telegramUserId"] = tt.legacy
			}
			data, err := bson.Marshal(raw)
			require.NoError(t, err)

			var doc listingDocument
			require.NoError(t, bson.Unmarshal(data, &doc))

			assert.Equal(t, tt.want, toListingSummary(&doc, time.Now()).ChatOwnerID)
		})
	}
}

func TestToUser(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	favorite := primitive.NewObjectID()
	data, err := bson.Marshal(bson.M{
		"_id":                        primitive.NewObjectID(),
		"name":                       "Luis",
		"email":                      "luis@example.com",
		"telegramUserId":             int64(42),
		"telegramUsername":           "luis",
		"telegramLinkToken":          "abc123",
		"telegramLinkTokenExpiresAt": expires,
		"notificationsEnabled":       false,
		"favorites":                  bson.A{favorite, "plain-id"},
	})
	require.NoError(t, err)

	var doc userDocument
	require.NoError(t, bson.Unmarshal(data, &doc))
	user := toUser(&doc)

	assert.True(t, user.IsLinked())
	assert.Equal(t, "42", user.ChatIdentity.ChatUserID)
	assert.Equal(t, "luis", *user.ChatIdentity.ChatUsername)
	require.NotNil(t, user.LinkToken)
	assert.Equal(t, "abc123", user.LinkToken.Token)
	assert.False(t, user.WantsNotifications())
	assert.Equal(t, []string{favorite.Hex(), "plain-id"}, user.Favorites)
}
