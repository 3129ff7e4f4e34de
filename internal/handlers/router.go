package handlers

import (
	"net/http"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/config"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/middleware"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/services"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, handlers, session store and the
// role-segmented route groups into a ready gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, files *storage.FileStore) *gin.Engine {
	authService := services.NewAuthService(db, services.PlainTextVerifier{}, cfg.AdminRegCode)
	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)
	notesService := services.NewNotesService(db, files)
	dashboardService := services.NewDashboardService(db)

	authHandler := NewAuthHandler(authService)
	categoryHandler := NewCategoryHandler(categoryService)
	questionHandler := NewQuestionHandler(questionService)
	quizHandler := NewQuizHandler(quizService, questionService)
	notesHandler := NewNotesHandler(notesService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("QUIZSESSION", store))

	api := r.Group("/api")

	userAuth := api.Group("/user/auth")
	{
		userAuth.POST("/register", authHandler.RegisterUser)
		userAuth.POST("/login", authHandler.LoginUser)
		userAuth.POST("/logout", authHandler.LogoutUser)
	}

	adminAuth := api.Group("/admin/auth")
	{
		adminAuth.POST("/register", authHandler.RegisterAdmin)
		adminAuth.POST("/login", authHandler.LoginAdmin)
		adminAuth.POST("/logout", authHandler.LogoutAdmin)
	}

	user := api.Group("/user")
	user.Use(middleware.RequireUser())
	{
		user.GET("/categories", categoryHandler.ListActive)
		user.GET("/quiz/questions", quizHandler.GetQuizQuestions)
		user.POST("/quiz/submit", quizHandler.SubmitQuiz)
		user.GET("/quiz/history", quizHandler.GetHistory)
		user.GET("/notes", notesHandler.List)
		user.GET("/notes/:id/download", notesHandler.Download)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/categories", categoryHandler.ListActive)
		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id/toggle", categoryHandler.Toggle)
		admin.POST("/questions", questionHandler.Create)
		admin.GET("/questions", questionHandler.ListByCategory)
		admin.DELETE("/questions/:id", questionHandler.Disable)
		admin.POST("/notes", notesHandler.Upload)
		admin.GET("/notes", notesHandler.List)
		admin.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	return r
}
