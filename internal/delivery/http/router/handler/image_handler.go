package handler

import (
	"io"
	"log/slog"
	"net/http"

	"sejour/config"
	"sejour/internal/delivery/http/response"
	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/usecase"
	"sejour/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// allowedImageTypes mirrors the upload filter: jpeg and png only.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ImageHandler holds dependencies for image registry handlers.
type ImageHandler struct {
	imageUC    usecase.ImageUsecase
	propertyUC usecase.PropertyUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(imageUC usecase.ImageUsecase, propertyUC usecase.PropertyUsecase, cfg *config.Config, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageUC:    imageUC,
		propertyUC: propertyUC,
		cfg:        cfg,
		logger:     logger,
	}
}

// uploadResultPayload is the JSON shape of one batch upload slot.
type uploadResultPayload struct {
	Image    *entity.Image `json:"image,omitempty"`
	Filename string        `json:"filename,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// imageRecord is the JSON shape of one listed image. The property id is
// implied by the request path and left out of each record.
type imageRecord struct {
	ID           uuid.UUID `json:"id"`
	ImageKey     string    `json:"image_key"`
	IsCoverImage bool      `json:"is_cover_image"`
}

// requireOwner rejects callers that do not own the property.
func (h *ImageHandler) requireOwner(c echo.Context, propertyID uuid.UUID) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	ownerID, err := h.propertyUC.OwnerID(c.Request().Context(), propertyID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// Upload handles the multipart batch upload for a property.
func (h *ImageHandler) Upload(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	if err := h.requireOwner(c, propertyID); err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "VALIDATION_FAILED", "at least one file is required")
	}
	if len(fileHeaders) > h.cfg.Upload.MaxFiles {
		return response.BadRequest(c, "VALIDATION_FAILED", "too many files in one batch")
	}

	files := make([]*usecase.FileUpload, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		contentType := fileHeader.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			return response.BadRequest(c, "VALIDATION_FAILED", "only jpeg and png images are accepted")
		}
		if fileHeader.Size > h.cfg.Upload.MaxFileSize {
			return response.BadRequest(c, "VALIDATION_FAILED", "file exceeds the size limit")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return errors.Wrap(err, "failed to read uploaded file")
		}

		h.logger.Debug("Accepted upload file",
			"filename", fileHeader.Filename,
			"size", util.FormatBytes(fileHeader.Size),
			"checksum", util.Checksum(data),
		)

		files = append(files, &usecase.FileUpload{
			Filename:    fileHeader.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	results, err := h.imageUC.UploadBatch(c.Request().Context(), propertyID, files)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]uploadResultPayload, len(results))
	for i, result := range results {
		if result.Failed() {
			payload[i] = uploadResultPayload{
				Filename: result.Filename,
				Error:    result.Err.Error(),
			}

			continue
		}
		payload[i] = uploadResultPayload{Image: result.Image}
	}

	return response.Success(c, http.StatusCreated, payload, "Image batch processed")
}

// List handles the image listing for a property.
func (h *ImageHandler) List(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	images, err := h.imageUC.GetAllByProperty(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	records := make([]imageRecord, len(images))
	for i, image := range images {
		records[i] = imageRecord{
			ID:           image.ID,
			ImageKey:     image.ImageKey,
			IsCoverImage: image.IsCoverImage,
		}
	}

	return response.Success(c, http.StatusOK, records, "Images retrieved successfully")
}

// Delete handles the single image removal by storage key.
func (h *ImageHandler) Delete(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	if err := h.requireOwner(c, propertyID); err != nil {
		return err
	}

	imageKey := c.Param("imageKey")
	if imageKey == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "image key is required")
	}

	if err := h.imageUC.Delete(c.Request().Context(), imageKey); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted"}, "Image deleted successfully")
}

// SetCover handles the cover image toggle.
func (h *ImageHandler) SetCover(c echo.Context) error {
	propertyID, err := propertyIDParam(c)
	if err != nil {
		return err
	}

	if err := h.requireOwner(c, propertyID); err != nil {
		return err
	}

	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	cover, err := h.imageUC.SetCover(c.Request().Context(), imageID, propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cover, "Cover image updated successfully")
}
