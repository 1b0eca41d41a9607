package main

import (
	"context"
	"strings"
	"time"

	"campusbuild/config"
	"campusbuild/internal/ai"
	"campusbuild/internal/authz"
	"campusbuild/internal/cart"
	"campusbuild/internal/handler"
	"campusbuild/internal/middleware"
	"campusbuild/internal/models"
	"campusbuild/internal/ratelimit"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"
	"campusbuild/pkg/logger"
	"campusbuild/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Config loading logs, so a bootstrap logger comes first; it is rebuilt
	// once the configured environment is known.
	logger.Init("")
	config.LoadConfig()
	logger.Init(config.AppConfig.Server.Env)

	database.Connect()
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.LoginHistory{},
		&models.Employee{},
		&models.Project{},
		&models.Order{},
		&models.OrderItem{},
		&models.Consultation{},
	); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}
	database.SeedAdminRoster()

	rdb := redis.Connect(config.AppConfig.Redis)
	loginLimiter := ratelimit.New(rdb, "login", 10, 5*time.Minute)
	ideaLimiter := ratelimit.New(rdb, "ideas", 20, time.Hour)

	policy := buildPolicy()

	assistant, err := ai.NewAssistant(context.Background(), config.AppConfig.AI.GeminiAPIKey, config.AppConfig.AI.Model)
	if err != nil {
		logger.Log.Warn("idea assistant disabled", zap.Error(err))
	}

	hub := realtime.NewHub()
	carts := cart.NewStore()

	router := setupRouter(policy, assistant, hub, carts, loginLimiter, ideaLimiter)

	port := config.AppConfig.Server.Port
	logger.Log.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}

// buildPolicy assembles the role table from config and binds roster emails to
// roles.
func buildPolicy() *authz.Policy {
	users := make(map[string]string, len(config.AppConfig.Roster))
	for _, entry := range config.AppConfig.Roster {
		if entry.Email != "" {
			users[strings.ToLower(entry.Email)] = entry.Role
		}
	}
	return authz.New(config.AppConfig.Authz.Superadmin, config.AppConfig.Authz.Roles, users)
}

func setupRouter(policy *authz.Policy, assistant *ai.Assistant, hub *realtime.Hub, carts *cart.Store,
	loginLimiter, ideaLimiter *ratelimit.Limiter) *gin.Engine {

	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestMetrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", handler.SessionHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, handler.SessionHeader)
	router.Use(cors.New(corsConfig))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := &handler.AuthHandler{Policy: policy, Limiter: loginLimiter}
	publicHandler := &handler.PublicHandler{Hub: hub}
	cartHandler := &handler.CartHandler{Carts: carts, Hub: hub}
	aiHandler := &handler.AIHandler{Assistant: assistant, Limiter: ideaLimiter}
	orderHandler := &handler.OrderHandler{Hub: hub}
	consultationHandler := &handler.ConsultationHandler{Hub: hub}
	employeeHandler := &handler.EmployeeHandler{Hub: hub}
	projectHandler := &handler.ProjectHandler{Hub: hub}
	financialHandler := &handler.FinancialHandler{}
	subscribeHandler := &handler.SubscribeHandler{Hub: hub}

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authHandler.Login)
	v1.PUT("/user/password", middleware.AuthMiddleware(), authHandler.ChangePassword)

	public := v1.Group("/public")
	{
		public.GET("/site-info", publicHandler.GetSiteInfo)
		public.GET("/projects", publicHandler.ListProjects)
		public.GET("/projects/:id", publicHandler.GetProject)
		public.POST("/custom-orders", publicHandler.SubmitCustomOrder)
		public.POST("/consultations", publicHandler.ScheduleConsultation)
		public.POST("/ideas", aiHandler.GenerateIdea)
		public.POST("/ideas/structured", aiHandler.GenerateIdeaStructured)
	}

	cartGroup := v1.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.POST("/checkout", cartHandler.Checkout)
	}

	admin := v1.Group("/admin", middleware.AuthMiddleware())
	{
		orders := admin.Group("/orders")
		{
			orders.GET("", middleware.RequireCapability(policy, authz.CapManageOrders), orderHandler.ListOrders)
			orders.PUT("/:id/status", middleware.RequireCapability(policy, authz.CapManageOrders), orderHandler.UpdateStatus)
			orders.PUT("/:id/delivery", middleware.RequireCapability(policy, authz.CapManageDelivery), orderHandler.UpdateDeliveryStatus)
			orders.PUT("/:id/payment", middleware.RequireCapability(policy, authz.CapManagePayment), orderHandler.UpdatePaymentStatus)
			orders.PUT("/:id/costs", middleware.RequireCapability(policy, authz.CapManageCosts), orderHandler.UpdateCosts)
			orders.PUT("/:id/assign", middleware.RequireCapability(policy, authz.CapManageOrders), orderHandler.AssignOrder)
			orders.PUT("/:id/deadline", middleware.RequireCapability(policy, authz.CapManageOrders), orderHandler.UpdateDeadline)
			orders.DELETE("/:id", middleware.RequireCapability(policy, authz.CapSuperAdmin), orderHandler.DeleteOrder)
		}

		consultations := admin.Group("/consultations")
		{
			consultations.GET("", middleware.RequireCapability(policy, authz.CapManageConsultations), consultationHandler.ListConsultations)
			consultations.PUT("/:id/assign", middleware.RequireCapability(policy, authz.CapAssignConsultants), consultationHandler.AssignConsultant)
			consultations.PUT("/:id/meeting-link", middleware.RequireCapability(policy, authz.CapManageMeetings), consultationHandler.UpdateMeetingLink)
			consultations.PUT("/:id/meeting-status", middleware.RequireCapability(policy, authz.CapManageMeetings), consultationHandler.UpdateMeetingStatus)
			consultations.DELETE("/:id", middleware.RequireCapability(policy, authz.CapSuperAdmin), consultationHandler.DeleteConsultation)
		}

		employees := admin.Group("/employees")
		{
			employees.GET("", middleware.RequireCapability(policy, authz.CapManageEmployees), employeeHandler.ListEmployees)
			employees.POST("", middleware.RequireCapability(policy, authz.CapManageEmployees), employeeHandler.CreateEmployee)
			employees.PUT("/:id", middleware.RequireCapability(policy, authz.CapManageEmployees), employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", middleware.RequireCapability(policy, authz.CapManageEmployees), employeeHandler.DeleteEmployee)
			employees.GET("/salaries", middleware.RequireCapability(policy, authz.CapManageSalaries), employeeHandler.ListSalaries)
			employees.PUT("/:id/salary", middleware.RequireCapability(policy, authz.CapManageSalaries), employeeHandler.UpdateSalary)
		}
		admin.GET("/my-salary", employeeHandler.MySalary)

		projects := admin.Group("/projects", middleware.RequireCapability(policy, authz.CapManageProjects))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.POST("/bulk", projectHandler.BulkCreateProjects)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		admin.GET("/financials", middleware.RequireCapability(policy, authz.CapManageFinancials), financialHandler.GetSummary)
		admin.GET("/subscribe/:collection", subscribeHandler.Subscribe)
	}

	return router
}
