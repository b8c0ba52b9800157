package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	List media
// @Description Returns all media records, soft-deleted ones included, in insertion order
// @Tags 		media
// @Produce 	json
// @Success 	200 {object} response.Envelope{data=[]entity.Media}
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media [get]
func (r *V1) listMedia(ctx *fiber.Ctx) error {
	items, err := r.media.ListAll(ctx.UserContext())
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, items, "")
}

// @Summary 	Get media by id
// @Tags 		media
// @Produce 	json
// @Param 		id path int true "Media ID"
// @Success 	200 {object} response.Envelope{data=entity.Media}
// @Failure 	400 {object} response.Envelope "Invalid ID"
// @Failure 	404 {object} response.Envelope "Media not found"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media/{id} [get]
func (r *V1) getMedia(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return r.handleError(ctx, err)
	}

	media, err := r.media.GetByID(ctx.UserContext(), id)
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, media, "")
}

// @Summary 	Upload media
// @Description Accepts a single-file multipart upload, stores the binary and records metadata
// @Tags 		media
// @Accept 		mpfd
// @Produce 	json
// @Param 		file formData file true "Image file"
// @Success 	201 {object} response.Envelope{data=entity.Media}
// @Failure 	400 {object} response.Envelope "Missing file or disallowed MIME type"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media [post]
func (r *V1) uploadMedia(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return r.handleError(ctx, errs.Validation("file is required"))
	}

	if file.Size == 0 {
		return r.handleError(ctx, errs.Validation("file is empty"))
	}

	if r.maxFileSize > 0 && file.Size > r.maxFileSize {
		return r.handleError(ctx,
			errs.Validation(fmt.Sprintf("file size cant be more than %d bytes", r.maxFileSize)))
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadMedia")

		return r.handleError(ctx, err)
	}
	defer fileReader.Close()

	media, err := r.media.CreateFromUpload(
		ctx.UserContext(),
		fileReader,
		file.Filename,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusCreated, media, "")
}

// @Summary 	Update media
// @Description Partial update; the path id is authoritative and immutable
// @Tags 		media
// @Accept 		json
// @Produce 	json
// @Param 		id path int true "Media ID"
// @Param 		body body dto.UpdateMedia true "Fields to change"
// @Success 	200 {object} response.Envelope{data=entity.Media}
// @Failure 	400 {object} response.Envelope "Invalid ID or malformed field"
// @Failure 	404 {object} response.Envelope "Media not found"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media/{id} [put]
func (r *V1) updateMedia(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return r.handleError(ctx, err)
	}

	var upd dto.UpdateMedia

	if err = ctx.BodyParser(&upd); err != nil {
		return r.handleError(ctx, errs.Validation("invalid request body"))
	}

	if upd.Empty() {
		return r.handleError(ctx, errs.Validation("no fields to update"))
	}

	media, err := r.media.Update(ctx.UserContext(), id, upd)
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, media, "")
}

// @Summary 	Delete media
// @Description Hard delete: removes the row, then the backing file (best-effort)
// @Tags 		media
// @Produce 	json
// @Param 		id path int true "Media ID"
// @Success 	200 {object} response.Envelope
// @Failure 	400 {object} response.Envelope "Invalid ID"
// @Failure 	404 {object} response.Envelope "Media not found"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media/{id} [delete]
func (r *V1) deleteMedia(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return r.handleError(ctx, err)
	}

	if err = r.media.Remove(ctx.UserContext(), id); err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, nil, "media deleted")
}

// @Summary 	Soft-delete media
// @Description Marks the record deleted; fails if it is already deleted
// @Tags 		media
// @Produce 	json
// @Param 		id path int true "Media ID"
// @Success 	200 {object} response.Envelope{data=entity.Media}
// @Failure 	400 {object} response.Envelope "Invalid ID or already deleted"
// @Failure 	404 {object} response.Envelope "Media not found"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media/{id}/soft-delete [patch]
func (r *V1) softDeleteMedia(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return r.handleError(ctx, err)
	}

	media, err := r.media.SoftDelete(ctx.UserContext(), id)
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, media, "")
}

// @Summary 	Restore media
// @Description Clears the deleted mark; fails if the record is active
// @Tags 		media
// @Produce 	json
// @Param 		id path int true "Media ID"
// @Success 	200 {object} response.Envelope{data=entity.Media}
// @Failure 	400 {object} response.Envelope "Invalid ID or not deleted"
// @Failure 	404 {object} response.Envelope "Media not found"
// @Failure 	500 {object} response.Envelope
// @Router 		/v1/media/{id}/restore [patch]
func (r *V1) restoreMedia(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return r.handleError(ctx, err)
	}

	media, err := r.media.Restore(ctx.UserContext(), id)
	if err != nil {
		return r.handleError(ctx, err)
	}

	return envelope(ctx, http.StatusOK, media, "")
}

func parseID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validation("Invalid ID")
	}

	return id, nil
}
