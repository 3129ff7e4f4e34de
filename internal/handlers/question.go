package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type CreateQuestionRequest struct {
	QuestionText  string `json:"questionText" binding:"required" example:"What is the capital of France?"`
	OptionA       string `json:"optionA" binding:"required" example:"Paris"`
	OptionB       string `json:"optionB" binding:"required" example:"London"`
	OptionC       string `json:"optionC" binding:"required" example:"Berlin"`
	OptionD       string `json:"optionD" binding:"required" example:"Madrid"`
	CorrectOption string `json:"correctOption" binding:"required" example:"A"`
	CategoryID    uint   `json:"categoryId" binding:"required" example:"1"`
}

// Create godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	question, err := h.questionService.CreateQuestion(services.QuestionInput{
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Question created successfully",
		"data":    question,
	})
}

// ListByCategory godoc
// @Summary      List active questions for a category, newest first
// @Tags         questions
// @Produce      json
// @Param        categoryId query int true "Category ID"
// @Param        page query int false "Page (0-based)"
// @Param        size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /api/admin/questions [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Query("categoryId"), 10, 32)
	if err != nil || categoryID == 0 {
		respondError(c, apperr.InvalidInput("categoryId is required"))
		return
	}
	page, size := pageParams(c)

	questions, err := h.questionService.GetQuestionsByCategory(uint(categoryID), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    questions,
	})
}

// Disable godoc
// @Summary      Disable a question (soft delete)
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [delete]
func (h *QuestionHandler) Disable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.questionService.DisableQuestion(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question disabled successfully",
	})
}
