package handlers

import (
	"net/http"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"General Knowledge"`
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// ListActive godoc
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/categories [get]
func (h *CategoryHandler) ListActive(c *gin.Context) {
	categories, err := h.categoryService.GetActiveCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// Toggle godoc
// @Summary      Toggle category active status
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/categories/{id}/toggle [put]
func (h *CategoryHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.ToggleCategoryStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category status updated",
		"data":    category,
	})
}
