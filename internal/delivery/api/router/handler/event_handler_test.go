package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketbot/internal/delivery/api/response"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/errors"
	mockUsecase "marketbot/internal/mocks/usecase"
	"marketbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockEventUsecase) {
	events := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{Events: events, Logger: testLogger()})

	e := newTestEcho()
	e.POST("/api/v1/events", h.PublishEvent)

	return e, events
}

func postEvent(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestEventHandler_PublishEvent(t *testing.T) {
	e, events := createTestEventHandler(t)

	events.EXPECT().
		Publish(mock.Anything, &usecase.EventInput{
			Kind:      entity.EventPriceChange,
			ListingID: "64b7f0c2a1b2c3d4e5f60718",
			OldPrice:  15500,
			NewPrice:  14500,
		}).
		Return(&entity.NotificationEvent{ID: "evt-1", Kind: entity.EventPriceChange}, nil)

	rec := postEvent(e, `{"kind":"price_change","listing_id":"64b7f0c2a1b2c3d4e5f60718","old_price":15500,"new_price":14500}`)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body struct {
		Data EventAcceptedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, EventAcceptedResponse{EventID: "evt-1", Kind: "price_change"}, body.Data)
}

func TestEventHandler_PublishEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing kind", body: `{"listing_id":"64b7f0c2a1b2c3d4e5f60718"}`},
		{name: "bad listing id", body: `{"kind":"new_vehicle","listing_id":"not-an-object-id"}`},
		{name: "negative price", body: `{"kind":"price_change","listing_id":"64b7f0c2a1b2c3d4e5f60718","old_price":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, events := createTestEventHandler(t)

			rec := postEvent(e, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.NotNil(t, body.Error.Details)
			events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestEventHandler_PublishEvent_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "inconsistent payload",
			err:        domainerrors.ErrInvalidEvent.WrapMessage("new_vehicle requires listing_id"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_EVENT",
		},
		{
			name:       "publisher down",
			err:        errors.Wrap(domainerrors.ErrEventPublishFailed, "deadline exceeded"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "EVENT_PUBLISH_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, events := createTestEventHandler(t)
			events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := postEvent(e, `{"kind":"new_vehicle"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestEventHandler_PublishEvent_MalformedBody(t *testing.T) {
	e, _ := createTestEventHandler(t)

	rec := postEvent(e, `{"kind":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
