package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/creative"
	"github.com/use-agent/brandscout/models"
)

const maxManualFiles = 3

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// UploadImage returns a handler for POST /api/v1/upload-image. The image
// is not stored; it comes back as a data URL the client can save on a brand.
func UploadImage(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			respondError(c, models.NewAPIError(models.ErrCodeInvalidInput, "No file uploaded", err))
			return
		}

		dataURL, err := readImage(fh, maxBytes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.UploadImageResponse{DataURL: dataURL})
	}
}

// UploadManualCreative returns a handler for POST /api/v1/upload-manual-creative.
func UploadManualCreative(gen *creative.Generator, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ManualCreativeForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err)
			return
		}

		mf, err := c.MultipartForm()
		if err != nil {
			badRequest(c, err)
			return
		}
		files := mf.File["files"]
		if len(files) == 0 || len(files) > maxManualFiles {
			respondError(c, models.NewAPIError(models.ErrCodeInvalidInput,
				fmt.Sprintf("between 1 and %d image files are required", maxManualFiles), nil))
			return
		}

		urls := make([]string, 0, len(files))
		for _, fh := range files {
			u, err := readImage(fh, maxBytes)
			if err != nil {
				respondError(c, err)
				return
			}
			urls = append(urls, u)
		}

		creatives, err := gen.UploadManual(c.Request.Context(), &form, urls)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, creatives)
	}
}

// readImage checks size and sniffed type of an uploaded file and encodes
// it as a base64 data URL.
func readImage(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh.Size > maxBytes {
		return "", models.NewAPIError(models.ErrCodeInvalidInput,
			fmt.Sprintf("%s is larger than %d bytes", fh.Filename, maxBytes), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	if int64(len(data)) > maxBytes {
		return "", models.NewAPIError(models.ErrCodeInvalidInput,
			fmt.Sprintf("%s is larger than %d bytes", fh.Filename, maxBytes), nil)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return "", models.NewAPIError(models.ErrCodeInvalidInput,
			fmt.Sprintf("%s: only JPEG, PNG and WebP images are allowed, got %s", fh.Filename, mt.String()), nil)
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
