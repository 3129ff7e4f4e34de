package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/middleware"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService     *services.QuizService
	questionService *services.QuestionService
}

func NewQuizHandler(quizService *services.QuizService, questionService *services.QuestionService) *QuizHandler {
	return &QuizHandler{quizService: quizService, questionService: questionService}
}

// QuizQuestionResponse is the question projection handed to quiz
// takers. It must never include the correct option.
type QuizQuestionResponse struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"questionText"`
	OptionA      string `json:"optionA"`
	OptionB      string `json:"optionB"`
	OptionC      string `json:"optionC"`
	OptionD      string `json:"optionD"`
	CategoryID   uint   `json:"categoryId"`
}

func toQuizQuestions(questions []models.Question) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuizQuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			CategoryID:   q.CategoryID,
		})
	}
	return out
}

type SubmitQuizRequest struct {
	CategoryID         uint            `json:"categoryId" binding:"required" example:"1"`
	Answers            map[uint]string `json:"answers"`
	TimeTakenInSeconds int             `json:"timeTakenInSeconds" binding:"gte=0" example:"120"`
}

// GetQuizQuestions godoc
// @Summary      Start a quiz: sample random questions for a category
// @Tags         quiz
// @Produce      json
// @Param        categoryId query int true "Category ID"
// @Param        limit query int false "Max questions" default(10)
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/user/quiz/questions [get]
func (h *QuizHandler) GetQuizQuestions(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Query("categoryId"), 10, 32)
	if err != nil || categoryID == 0 {
		respondError(c, apperr.InvalidInput("categoryId is required"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	questions, err := h.questionService.GetRandomQuestionsForQuiz(uint(categoryID), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	data := toQuizQuestions(questions)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"data":           data,
		"totalQuestions": len(data),
	})
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers and get the scored result
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body SubmitQuizRequest true "Submission"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/user/quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	result, err := h.quizService.SubmitQuiz(identity.UserID, req.CategoryID, req.Answers, req.TimeTakenInSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Quiz submitted successfully",
		"score":              result.Score,
		"totalQuestions":     result.TotalQuestions,
		"percentage":         result.Percentage,
		"timeTakenInSeconds": result.TimeTakenInSeconds,
	})
}

// GetHistory godoc
// @Summary      List the caller's own quiz attempts, newest first
// @Tags         quiz
// @Produce      json
// @Param        page query int false "Page (0-based)"
// @Param        size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/quiz/history [get]
func (h *QuizHandler) GetHistory(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	page, size := pageParams(c)

	history, err := h.quizService.GetQuizHistory(identity.UserID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    history,
	})
}
