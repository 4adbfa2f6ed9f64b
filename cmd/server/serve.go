package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/MikhailEmv/SmartBudget/internal/config"
	"github.com/MikhailEmv/SmartBudget/internal/database"
	"github.com/MikhailEmv/SmartBudget/internal/handlers"
	"github.com/MikhailEmv/SmartBudget/internal/mail"
	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/MikhailEmv/SmartBudget/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SmartBudget web server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	var sender mail.Sender
	if cfg.TestMode {
		sender = mail.NewLogSender()
	} else {
		sender = mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	}

	verifyService := services.NewVerifyService(cfg.Token.Secret, time.Duration(cfg.Token.TTLHours)*time.Hour)
	categoryService := services.NewCategoryService(categoryRepo, cfg.MediaDir)
	authService := services.NewAuthService(userRepo, categoryService, verifyService, sender, cfg.BaseURL, db, cfg.TestMode)
	accountService := services.NewAccountService(accountRepo)
	transferService := services.NewTransferService(accountRepo, transactionRepo, db)
	profileService := services.NewProfileService(profileRepo)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, cfg.MediaDir)
	accountHandler := handlers.NewAccountHandler(accountService, cfg.MediaDir)
	transferHandler := handlers.NewTransferHandler(transferService, accountService)
	dashboardHandler := handlers.NewDashboardHandler(accountService, transferService)

	router := gin.Default()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("smartbudget_session", store))

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/media", cfg.MediaDir)

	router.GET("/login/", authHandler.ShowLogin)
	router.POST("/login/", authHandler.Login)
	router.GET("/register/", authHandler.ShowRegister)
	router.POST("/register/", authHandler.Register)
	router.GET("/confirm_email/", authHandler.ConfirmEmail)
	router.GET("/verify_email/:uid/:token/", authHandler.VerifyEmail)
	router.GET("/invalid_verify/", authHandler.InvalidVerify)
	router.GET("/logout/", authHandler.Logout)

	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireLogin())
	{
		authenticated.GET("/", dashboardHandler.Show)

		authenticated.GET("/profile/", profileHandler.Show)
		authenticated.POST("/profile/", profileHandler.Update)

		authenticated.GET("/categories/", categoryHandler.List)
		authenticated.GET("/categories/create/", categoryHandler.ShowCreate)
		authenticated.POST("/categories/create/", categoryHandler.Create)
		authenticated.GET("/categories/:id/edit/", categoryHandler.ShowEdit)
		authenticated.POST("/categories/:id/edit/", categoryHandler.Edit)
		authenticated.POST("/categories/:id/delete/", categoryHandler.Delete)

		authenticated.GET("/accounts/", accountHandler.List)
		authenticated.GET("/accounts/create/", accountHandler.ShowCreate)
		authenticated.POST("/accounts/create/", accountHandler.Create)
		authenticated.GET("/accounts/:id/edit/", accountHandler.ShowEdit)
		authenticated.POST("/accounts/:id/edit/", accountHandler.Edit)
		authenticated.POST("/accounts/delete/:id/", accountHandler.Delete)

		authenticated.GET("/transfer/", transferHandler.ShowForm)
		authenticated.POST("/transfer/", transferHandler.Submit)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting SmartBudget server on %s", addr)
	if cfg.TestMode {
		log.Println("TEST MODE ENABLED - mail is logged, new users are auto-verified")
	}
	return router.Run(addr)
}
