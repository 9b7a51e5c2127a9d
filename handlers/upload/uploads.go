package upload

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/services/spaces"
	"github.com/greenvalley-school/school-cms-api/utils/pdfvalidation"
	"github.com/greenvalley-school/school-cms-api/utils/response"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler handles admin asset uploads to object storage
type UploadHandler struct {
	assets *spaces.Client
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(assets *spaces.Client) *UploadHandler {
	return &UploadHandler{assets: assets}
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// UploadImage handles POST /api/v1/uploads/image (admin).
// Accepts a multipart "file" field, validates the content type and size,
// and stores the image under the images/ prefix.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file provided")
	}

	if file.Size > maxImageSize {
		return response.BadRequest(c, "Image exceeds maximum allowed size of 5MB")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.BadRequest(c, fmt.Sprintf("Unsupported image type: %s", contentType))
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	key := spaces.GenerateKey("images", file.Filename)
	url, err := h.assets.Upload(c.Context(), key, src, contentType)
	if err != nil {
		log.Printf("Image upload failed for %s: %v", file.Filename, err)
		return response.InternalServerError(c, "Failed to store uploaded file")
	}

	return response.Created(c, UploadResponse{
		URL:      url,
		Filename: file.Filename,
		Size:     file.Size,
	})
}

// UploadPDF handles POST /api/v1/uploads/pdf (admin).
// Validates the PDF structure and page count before storing it under
// the documents/ prefix.
func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file provided")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return response.BadRequest(c, "Only PDF files are supported")
	}

	result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.NoticeLimits)
	if err != nil {
		log.Printf("PDF validation failed for %s: %v", file.Filename, err)
		return response.InternalServerError(c, "Failed to validate uploaded file")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	key := spaces.GenerateKey("documents", file.Filename)
	url, err := h.assets.Upload(c.Context(), key, src, "application/pdf")
	if err != nil {
		log.Printf("PDF upload failed for %s: %v", file.Filename, err)
		return response.InternalServerError(c, "Failed to store uploaded file")
	}

	return response.Created(c, UploadResponse{
		URL:      url,
		Filename: file.Filename,
		Size:     file.Size,
	})
}
