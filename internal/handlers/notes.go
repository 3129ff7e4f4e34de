package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	notesService *services.NotesService
}

func NewNotesHandler(notesService *services.NotesService) *NotesHandler {
	return &NotesHandler{notesService: notesService}
}

type UploadNotesRequest struct {
	Title      string `form:"title" binding:"required,min=2,max=200" example:"Chapter 1 Notes"`
	CategoryID uint   `form:"categoryId" binding:"required" example:"1"`
}

// Upload godoc
// @Summary      Upload PDF notes
// @Tags         notes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "PDF file (max 10MB)"
// @Param        title formData string true "Notes title"
// @Param        categoryId formData int true "Category ID"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/notes [post]
func (h *NotesHandler) Upload(c *gin.Context) {
	var req UploadNotesRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// A missing file part is handled by the service's validation
	// chain, which owns the full error ordering.
	file, _ := c.FormFile("file")

	notes, err := h.notesService.UploadNotes(file, req.Title, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Notes uploaded successfully",
		"data":    notes,
	})
}

// List godoc
// @Summary      List notes, newest first
// @Description  Filters by category when categoryId is given
// @Tags         notes
// @Produce      json
// @Param        categoryId query int false "Category ID"
// @Param        page query int false "Page (0-based)"
// @Param        size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/notes [get]
func (h *NotesHandler) List(c *gin.Context) {
	page, size := pageParams(c)

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err == nil && categoryID > 0 {
			notes, err := h.notesService.GetNotesByCategory(uint(categoryID), page, size)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
			return
		}
	}

	notes, err := h.notesService.GetAllNotes(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
}

// Download godoc
// @Summary      Download a notes PDF
// @Tags         notes
// @Produce      application/pdf
// @Param        id path int true "Notes ID"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Router       /api/user/notes/{id}/download [get]
func (h *NotesHandler) Download(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	path, displayName, err := h.notesService.GetNotesFile(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, displayName)
}
