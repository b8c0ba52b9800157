package v1

import (
	"github.com/akulagin/media-store/internal/usecase"
	"github.com/akulagin/media-store/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewMediaRoutes(apiV1Group fiber.Router, media usecase.MediaUseCase, l logger.Interface, maxFileSize int64) {
	r := &V1{media: media, logger: l, maxFileSize: maxFileSize}

	{
		apiV1Group.Get("/media", r.listMedia)
		apiV1Group.Post("/media", r.uploadMedia)
		apiV1Group.Get("/media/:id", r.getMedia)
		apiV1Group.Put("/media/:id", r.updateMedia)
		apiV1Group.Delete("/media/:id", r.deleteMedia)
		apiV1Group.Patch("/media/:id/soft-delete", r.softDeleteMedia)
		apiV1Group.Patch("/media/:id/restore", r.restoreMedia)
	}
}
