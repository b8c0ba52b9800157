package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/internal/entity"
	"github.com/akulagin/media-store/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	media *entity.Media
	items []entity.Media
	err   error

	gotID           int64
	gotOriginalName string
	gotMimeType     string
	gotUpdate       dto.UpdateMedia
}

func (s *stubUseCase) ListAll(_ context.Context) ([]entity.Media, error) {
	return s.items, s.err
}

func (s *stubUseCase) GetByID(_ context.Context, id int64) (*entity.Media, error) {
	s.gotID = id

	return s.media, s.err
}

func (s *stubUseCase) CreateFromUpload(
	_ context.Context,
	_ io.Reader,
	originalName string,
	mimeType string,
) (*entity.Media, error) {
	s.gotOriginalName = originalName
	s.gotMimeType = mimeType

	return s.media, s.err
}

func (s *stubUseCase) Update(_ context.Context, id int64, upd dto.UpdateMedia) (*entity.Media, error) {
	s.gotID = id
	s.gotUpdate = upd

	return s.media, s.err
}

func (s *stubUseCase) SoftDelete(_ context.Context, id int64) (*entity.Media, error) {
	s.gotID = id

	return s.media, s.err
}

func (s *stubUseCase) Restore(_ context.Context, id int64) (*entity.Media, error) {
	s.gotID = id

	return s.media, s.err
}

func (s *stubUseCase) Remove(_ context.Context, id int64) error {
	s.gotID = id

	return s.err
}

func (s *stubUseCase) Health(_ context.Context) error { return s.err }

type nopLogger struct{}

func (nopLogger) Debug(_ interface{}, _ ...interface{}) {}
func (nopLogger) Info(_ string, _ ...interface{})       {}
func (nopLogger) Warn(_ string, _ ...interface{})       {}
func (nopLogger) Error(_ interface{}, _ ...interface{}) {}
func (nopLogger) Fatal(_ interface{}, _ ...interface{}) {}

type envelopeBody struct {
	Data json.RawMessage `json:"data"`
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
}

func newTestApp(stub *stubUseCase) *fiber.App {
	app := fiber.New()
	NewMediaRoutes(app.Group("/v1"), stub, nopLogger{}, 1<<20)

	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelopeBody) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)

	var body envelopeBody

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	return resp, body
}

func sampleMedia() *entity.Media {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Media{
		ID:               7,
		OriginalFileName: "a.png",
		StoredFileName:   "3f2c.png",
		MimeType:         "image/png",
		Width:            100,
		Height:           50,
		FileSize:         1234,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestListMedia(t *testing.T) {
	stub := &stubUseCase{items: []entity.Media{*sampleMedia()}}
	app := newTestApp(stub)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/media", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, body.Code)

	var items []entity.Media
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "a.png", items[0].OriginalFileName)
}

func TestGetMedia(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(&stubUseCase{})

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/media/abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, http.StatusBadRequest, body.Code)
		assert.Equal(t, "Invalid ID", body.Msg)
		assert.Equal(t, "null", string(body.Data))
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubUseCase{err: errs.NotFound("media not found")}
		app := newTestApp(stub)

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/media/7", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "media not found", body.Msg)
		assert.Equal(t, int64(7), stub.gotID)
	})

	t.Run("found", func(t *testing.T) {
		stub := &stubUseCase{media: sampleMedia()}
		app := newTestApp(stub)

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/media/7", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var media entity.Media
		require.NoError(t, json.Unmarshal(body.Data, &media))
		assert.Equal(t, int64(7), media.ID)
	})
}

func multipartUpload(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/media", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestUploadMedia(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &stubUseCase{media: sampleMedia()}
		app := newTestApp(stub)

		req := multipartUpload(t, "file", "a.png", "image/png", []byte("fake png bytes"))

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, http.StatusCreated, body.Code)
		assert.Equal(t, "a.png", stub.gotOriginalName)
		assert.Equal(t, "image/png", stub.gotMimeType)

		var media entity.Media
		require.NoError(t, json.Unmarshal(body.Data, &media))
		assert.Equal(t, 100, media.Width)
		assert.Equal(t, 50, media.Height)
	})

	t.Run("missing file", func(t *testing.T) {
		app := newTestApp(&stubUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/v1/media", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "file is required", body.Msg)
	})

	t.Run("empty file", func(t *testing.T) {
		app := newTestApp(&stubUseCase{})

		req := multipartUpload(t, "file", "a.png", "image/png", nil)

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "file is empty", body.Msg)
	})

	t.Run("disallowed mime", func(t *testing.T) {
		stub := &stubUseCase{err: errs.Validation("only image uploads are allowed")}
		app := newTestApp(stub)

		req := multipartUpload(t, "file", "a.txt", "text/plain", []byte("hello"))

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "only image uploads are allowed", body.Msg)
	})
}

func TestUpdateMedia(t *testing.T) {
	t.Run("partial body", func(t *testing.T) {
		stub := &stubUseCase{media: sampleMedia()}
		app := newTestApp(stub)

		req := httptest.NewRequest(http.MethodPut, "/v1/media/7",
			strings.NewReader(`{"originalFileName":"renamed.png","width":640}`))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := doRequest(t, app, req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(7), stub.gotID)
		require.NotNil(t, stub.gotUpdate.OriginalFileName)
		assert.Equal(t, "renamed.png", *stub.gotUpdate.OriginalFileName)
		require.NotNil(t, stub.gotUpdate.Width)
		assert.Equal(t, 640, *stub.gotUpdate.Width)
		assert.Nil(t, stub.gotUpdate.Height)
	})

	t.Run("wrong field type", func(t *testing.T) {
		app := newTestApp(&stubUseCase{media: sampleMedia()})

		req := httptest.NewRequest(http.MethodPut, "/v1/media/7",
			strings.NewReader(`{"width":"wide"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", body.Msg)
	})

	t.Run("empty body", func(t *testing.T) {
		app := newTestApp(&stubUseCase{media: sampleMedia()})

		req := httptest.NewRequest(http.MethodPut, "/v1/media/7", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "no fields to update", body.Msg)
	})

	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(&stubUseCase{})

		req := httptest.NewRequest(http.MethodPut, "/v1/media/zero", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid ID", body.Msg)
	})
}

func TestDeleteMedia(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		stub := &stubUseCase{}
		app := newTestApp(stub)

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/v1/media/7", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "media deleted", body.Msg)
		assert.Equal(t, "null", string(body.Data))
		assert.Equal(t, int64(7), stub.gotID)
	})

	t.Run("second delete is 404", func(t *testing.T) {
		stub := &stubUseCase{err: errs.NotFound("media not found")}
		app := newTestApp(stub)

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/v1/media/7", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "media not found", body.Msg)
	})
}

func TestSoftDeleteAndRestoreRoutes(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		deleted := sampleMedia()
		deletedAt := time.Now()
		deleted.DeletedAt = &deletedAt

		stub := &stubUseCase{media: deleted}
		app := newTestApp(stub)

		resp, body := doRequest(t, app,
			httptest.NewRequest(http.MethodPatch, "/v1/media/7/soft-delete", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var media entity.Media
		require.NoError(t, json.Unmarshal(body.Data, &media))
		assert.NotNil(t, media.DeletedAt)
	})

	t.Run("redundant soft delete", func(t *testing.T) {
		stub := &stubUseCase{err: errs.Validation("media is already deleted")}
		app := newTestApp(stub)

		resp, body := doRequest(t, app,
			httptest.NewRequest(http.MethodPatch, "/v1/media/7/soft-delete", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "media is already deleted", body.Msg)
	})

	t.Run("restore", func(t *testing.T) {
		stub := &stubUseCase{media: sampleMedia()}
		app := newTestApp(stub)

		resp, body := doRequest(t, app,
			httptest.NewRequest(http.MethodPatch, "/v1/media/7/restore", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var media entity.Media
		require.NoError(t, json.Unmarshal(body.Data, &media))
		assert.Nil(t, media.DeletedAt)
	})

	t.Run("restore of active record", func(t *testing.T) {
		stub := &stubUseCase{err: errs.Validation("media is not deleted")}
		app := newTestApp(stub)

		resp, body := doRequest(t, app,
			httptest.NewRequest(http.MethodPatch, "/v1/media/7/restore", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "media is not deleted", body.Msg)
	})
}

func TestInternalErrorsExposeMessage(t *testing.T) {
	stub := &stubUseCase{err: io.ErrUnexpectedEOF}
	app := newTestApp(stub)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/media", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, body.Code)
	assert.Equal(t, io.ErrUnexpectedEOF.Error(), body.Msg)
}
