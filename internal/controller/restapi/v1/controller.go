package v1

import (
	"github.com/akulagin/media-store/internal/usecase"
	"github.com/akulagin/media-store/pkg/logger"
)

type V1 struct {
	media       usecase.MediaUseCase
	logger      logger.Interface
	maxFileSize int64
}
