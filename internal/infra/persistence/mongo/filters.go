package mongo

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// linkTokenFilter only matches a live token, so an expired or already
// redeemed token can never reach the update.
func linkTokenFilter(token string, now time.Time) bson.M {
	return bson.M{
		fieldLinkToken:          token,
		fieldLinkTokenExpiresAt: bson.M{"$gt": now},
	}
}

func linkUpdate(identity entity.ChatIdentity, now time.Time) bson.M {
	set := bson.M{
		fieldChatUserID: identity.ChatUserID,
		"updatedAt":     now,
	}
	if identity.ChatUsername != nil && *identity.ChatUsername != "" {
		set[fieldChatUsername] = *identity.ChatUsername
	}

	return bson.M{
		"$set": set,
		"$unset": bson.M{
			fieldLinkToken:          "",
			fieldLinkTokenExpiresAt: "",
		},
	}
}

// chatUserIDValues lists the stored forms a chat user id may take.
func chatUserIDValues(chatUserID string) bson.A {
	values := bson.A{chatUserID}
	if numeric, err := strconv.ParseInt(chatUserID, 10, 64); err == nil {
		values = append(values, numeric)
	}

	return values
}

func chatUserFilter(chatUserID string) bson.M {
	return bson.M{fieldChatUserID: bson.M{"$in": chatUserIDValues(chatUserID)}}
}

func recipientFilter(filter entity.RecipientFilter) bson.M {
	query := bson.M{
		fieldChatUserID:    bson.M{"$exists": true, "$nin": bson.A{nil, ""}},
		fieldNotifications: bson.M{"$ne": false},
	}

	if filter.FavoriteListingID != "" {
		favorites := bson.A{filter.FavoriteListingID}
		if oid, err := primitive.ObjectIDFromHex(filter.FavoriteListingID); err == nil {
			favorites = append(favorites, oid)
		}
		query[fieldFavorites] = bson.M{"$in": favorites}
	}
	if filter.WeeklyDigestOnly {
		query[fieldWeeklyDigest] = true
	}

	return query
}

func approvedFilter() bson.M {
	return bson.M{fieldStatus: constants.ListingStatusApproved}
}

// searchFilter combines every set criterion with AND. Free text is matched
// literally and case-insensitively against brand, model and category.
func searchFilter(filter entity.SearchFilter) bson.M {
	query := approvedFilter()

	if filter.Query != nil {
		if text := strings.TrimSpace(*filter.Query); text != "" {
			pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
			query["$or"] = bson.A{
				bson.M{fieldBrand: pattern},
				bson.M{fieldModel: pattern},
				bson.M{fieldCategory: pattern},
			}
		}
	}
	if filter.MaxPrice != nil {
		query[fieldPrice] = bson.M{"$lte": *filter.MaxPrice}
	}
	if filter.Year != nil {
		query[fieldYear] = *filter.Year
	}

	return query
}

// ownerFilter matches the canonical owner field and the legacy one.
func ownerFilter(chatUserID string) bson.M {
	values := chatUserIDValues(chatUserID)

	return bson.M{"$or": bson.A{
		bson.M{fieldOwnerChatID: bson.M{"$in": values}},
		bson.M{fieldChatUserID: bson.M{"$in": values}},
	}}
}

func newestFirst() bson.D {
	return bson.D{{Key: fieldCreatedAt, Value: -1}}
}

func statsPipeline(since time.Time, topBrands int) mongoPipeline {
	return mongoPipeline{
		{{Key: "$match", Value: approvedFilter()}},
		{{Key: "$facet", Value: bson.M{
			"totals": bson.A{
				bson.M{"$group": bson.M{
					"_id":      nil,
					"count":    bson.M{"$sum": 1},
					"avgPrice": bson.M{"$avg": "$" + fieldPrice},
				}},
			},
			"recent": bson.A{
				bson.M{"$match": bson.M{fieldCreatedAt: bson.M{"$gt": since}}},
				bson.M{"$count": "count"},
			},
			"brands": bson.A{
				bson.M{"$group": bson.M{"_id": "$" + fieldBrand, "count": bson.M{"$sum": 1}}},
				bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
				bson.M{"$limit": topBrands},
			},
		}}},
	}
}

type mongoPipeline = []bson.D
