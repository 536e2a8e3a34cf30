package handler

import (
	"net/http"

	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/errors"
	"marketbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LinkHandler serves account link artifacts to the web profile page.
type LinkHandler struct {
	accountLink usecase.AccountLinkUsecase
}

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	AccountLink usecase.AccountLinkUsecase
}

// LinkQRRequest is the query of GET /api/v1/link/qr.
type LinkQRRequest struct {
	Token string `query:"token" json:"token" validate:"required,max=128,printascii"`
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{accountLink: params.AccountLink}
}

// LinkQRCode handles GET /api/v1/link/qr and writes a PNG.
func (h *LinkHandler) LinkQRCode(c echo.Context) error {
	var req LinkQRRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed query")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.accountLink.LinkQRCode(req.Token)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
