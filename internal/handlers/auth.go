package handlers

import (
	"net/http"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/middleware"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=4" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func userInfo(u *models.User) UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// RegisterUser godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/user/auth/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registration successful",
		"user":    userInfo(user),
	})
}

// RegisterAdmin godoc
// @Summary      Register a new admin
// @Description  Requires the admin registration code as a query param
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        adminCode query string true "Admin registration code"
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/auth/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	admin, err := h.authService.RegisterAdmin(req.Name, req.Email, req.Password, c.Query("adminCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin registration successful",
		"admin":   userInfo(admin),
	})
}

// LoginUser godoc
// @Summary      Login as user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/user/auth/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.Login(req.Email, req.Password, models.RoleUser)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := middleware.SaveUserSession(c, user); err != nil {
		respondError(c, apperr.Unauthorized("Failed to establish session"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    userInfo(user),
	})
}

// LoginAdmin godoc
// @Summary      Login as admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/auth/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	admin, err := h.authService.Login(req.Email, req.Password, models.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := middleware.SaveAdminSession(c, admin); err != nil {
		respondError(c, apperr.Unauthorized("Failed to establish session"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"admin":   userInfo(admin),
	})
}

// LogoutUser godoc
// @Summary      Logout user
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/auth/logout [post]
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	// Unconditional and idempotent.
	_ = middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logout successful",
	})
}

// LogoutAdmin godoc
// @Summary      Logout admin
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/admin/auth/logout [post]
func (h *AuthHandler) LogoutAdmin(c *gin.Context) {
	_ = middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin logout successful",
	})
}
