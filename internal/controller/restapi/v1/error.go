package v1

import (
	"net/http"

	"github.com/akulagin/media-store/internal/controller/restapi/v1/response"
	"github.com/akulagin/media-store/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// envelope writes the uniform response body.
func envelope(ctx *fiber.Ctx, code int, data any, msg string) error {
	return ctx.Status(code).JSON(response.Envelope{Data: data, Code: code, Msg: msg})
}

// handleError is the single taxonomy-to-status mapping point. Handlers never
// translate errors themselves; everything funnels through here.
func (r *V1) handleError(ctx *fiber.Ctx, err error) error {
	var code int

	switch errs.KindOf(err) {
	case errs.KindValidation:
		code = http.StatusBadRequest
	case errs.KindUnauthorized:
		code = http.StatusUnauthorized
	case errs.KindNotFound:
		code = http.StatusNotFound
	default:
		code = http.StatusInternalServerError

		r.logger.Error(err, "restapi - v1 - handleError")
	}

	return envelope(ctx, code, nil, errs.Message(err))
}
