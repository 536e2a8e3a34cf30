package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	mockSvc "marketbot/internal/mocks/service"
	"marketbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventService(t *testing.T) (*eventService, *mockSvc.MockEventPublisher, *metrics.Metrics) {
	publisher := mockSvc.NewMockEventPublisher(t)
	m := metrics.New()

	service := NewEventService(EventServiceParams{
		Publisher: publisher,
		Metrics:   m,
		Logger:    testLogger(),
	}).(*eventService)
	service.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }

	return service, publisher, m
}

func TestEventService_Publish(t *testing.T) {
	service, publisher, m := createTestEventService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*entity.NotificationEvent")).
		Return(nil)

	event, err := service.Publish(ctx, &usecase.EventInput{
		Kind:      entity.EventVehicleRejected,
		ListingID: testListingID,
		Reason:    "Faltan fotos",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(event.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, "Faltan fotos", event.Reason)
	assert.Equal(t, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC), event.OccurredAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("vehicle_rejected")))
}

func TestEventService_Publish_RejectsInconsistentPayloads(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.EventInput
	}{
		{name: "nil", input: nil},
		{name: "unknown kind", input: &usecase.EventInput{Kind: "listing_deleted"}},
		{name: "listing required", input: &usecase.EventInput{Kind: entity.EventNewVehicle}},
		{name: "contact required", input: &usecase.EventInput{Kind: entity.EventContactMessage}},
		{name: "payment required", input: &usecase.EventInput{Kind: entity.EventPaymentReceived, ListingID: testListingID}},
		{name: "old price required", input: &usecase.EventInput{Kind: entity.EventPriceChange, ListingID: testListingID, NewPrice: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := createTestEventService(t)

			event, err := service.Publish(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, event)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidEvent))
		})
	}
}

func TestEventService_Publish_MarketSummaryNeedsNoListing(t *testing.T) {
	service, publisher, _ := createTestEventService(t)
	ctx := context.Background()

	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	event, err := service.Publish(ctx, &usecase.EventInput{Kind: entity.EventMarketSummary})
	require.NoError(t, err)
	assert.Empty(t, event.ListingID)
}

func TestEventService_Publish_PublisherFailure(t *testing.T) {
	service, publisher, m := createTestEventService(t)
	ctx := context.Background()

	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	_, err := service.Publish(ctx, &usecase.EventInput{Kind: entity.EventNewVehicle, ListingID: testListingID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEventPublishFailed))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("new_vehicle")))
}
