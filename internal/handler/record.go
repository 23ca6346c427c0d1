package handler

import (
	"errors"
	"io"
	"net/http"

	"teamroster/internal/model"
	"teamroster/internal/service"
	"teamroster/internal/validation"
	"teamroster/pkg/util"

	"github.com/gin-gonic/gin"
)

const maxPhotoSizeBytes = 10 << 20 // 10 MB

// RecordHandler handles record-related HTTP requests
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/records
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to fetch records", err.Error()))
		return
	}
	c.JSON(http.StatusOK, records)
}

// Create handles POST /api/records (multipart form)
func (h *RecordHandler) Create(c *gin.Context) {
	in, ok := h.saveInput(c)
	if !ok {
		return
	}

	outcome, err := h.recordService.Save(c.Request.Context(), in)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	resp := model.NewSuccessResponse(outcome.Message, outcome.Record)
	if outcome.PhotoURL != nil {
		resp.PhotoURL = *outcome.PhotoURL
	}
	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/records/:id (multipart form)
func (h *RecordHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !util.IsValidObjectID(id) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid record ID format", ""))
		return
	}

	in, ok := h.saveInput(c)
	if !ok {
		return
	}
	in.ID = id

	outcome, err := h.recordService.Save(c.Request.Context(), in)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	resp := model.NewSuccessResponse(outcome.Message, nil)
	if outcome.PhotoURL != nil {
		resp.PhotoURL = *outcome.PhotoURL
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/records/:id
func (h *RecordHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !util.IsValidObjectID(id) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid record ID format", ""))
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to delete record", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Record deleted successfully", nil))
}

// saveInput collects the multipart submission into a service input.
// Writes the error response itself and returns ok=false on a bad payload.
func (h *RecordHandler) saveInput(c *gin.Context) (service.SaveInput, bool) {
	in := service.SaveInput{
		Fields: map[string]string{
			validation.FieldCountry:       c.PostForm(validation.FieldCountry),
			validation.FieldAccountType:   c.PostForm(validation.FieldAccountType),
			validation.FieldUsername:      c.PostForm(validation.FieldUsername),
			validation.FieldFirstName:     c.PostForm(validation.FieldFirstName),
			validation.FieldLastName:      c.PostForm(validation.FieldLastName),
			validation.FieldEmail:         c.PostForm(validation.FieldEmail),
			validation.FieldContactNumber: c.PostForm(validation.FieldContactNumber),
		},
	}

	if existing := c.PostForm("existingPhotoUrl"); existing != "" {
		in.ExistingPhotoURL = &existing
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		// No photo part at all is fine; the photo is optional
		return in, true
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusBadRequest, model.NewValidationErrorResponse(
			map[string]string{"photo": "Photo exceeds maximum size"}))
		return in, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Failed to read photo upload", err.Error()))
		return in, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Failed to read photo upload", err.Error()))
		return in, false
	}

	in.Photo = &service.PhotoUpload{Name: fileHeader.Filename, Content: content}
	return in, true
}

// writeSaveError maps a save workflow error onto the uniform envelope
func (h *RecordHandler) writeSaveError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, model.NewValidationErrorResponse(verr.Fields))
	case errors.Is(err, service.ErrPhotoWrite):
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to save photo", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to save record", err.Error()))
	}
}
