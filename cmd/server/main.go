package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/database"
	"photostudio-backend/internal/gallery"
	"photostudio-backend/internal/handlers"
	"photostudio-backend/internal/imaging"
	"photostudio-backend/internal/jobs"
	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/mail"
	"photostudio-backend/internal/middleware"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/payments"
	"photostudio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init("info", "development")
		logging.L().Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.LogLevel, cfg.Environment)
	log := logging.L()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	migrator := database.NewMigrator(db)
	if err := migrator.Run(); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	st := store.New(db)
	defer st.Close()

	objects, err := objectstore.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}
	if err := objects.EnsureBucket(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure storage bucket")
	}

	processor := imaging.NewProcessor(objects)
	gate := gallery.NewGate(st, st)
	stripeClient := payments.New(cfg.StripeSecretKey)
	mailer := mail.New(cfg)

	clientsHandler := handlers.NewClientsHandler(st, mailer)
	authHandler := handlers.NewAuthHandler(cfg, st)
	projectsHandler := handlers.NewProjectsHandler(st, objects, mailer, clientsHandler)
	mediaHandler := handlers.NewMediaHandler(st, objects, processor)
	invoicesHandler := handlers.NewInvoicesHandler(st, stripeClient, mailer)
	portfolioHandler := handlers.NewPortfolioHandler(st, objects, processor)
	marketingHandler := handlers.NewMarketingHandler(st)
	galleryHandler := handlers.NewGalleryHandler(st, objects, gate, mediaHandler)
	dashboardHandler := handlers.NewDashboardHandler(st)

	archiver := jobs.NewArchiver(st, objects)
	scheduler, err := archiver.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start archival scheduler")
	}
	defer func() { _ = scheduler.Shutdown() }()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// public surface: auth, the marketing site, share links and invoice links
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/setup-account", middleware.SanitizeInput(), authHandler.SetupAccount)

	public := api.Group("", middleware.SanitizeInput())
	public.GET("/portfolio", portfolioHandler.ListItemsPublic)
	public.GET("/portfolio/:item_id", portfolioHandler.GetItemPublic)
	public.GET("/pricing", marketingHandler.ListPricingPublic)
	public.GET("/reviews", marketingHandler.ListReviewsPublic)
	public.POST("/reviews", marketingHandler.CreateReview)
	public.POST("/inquiries", marketingHandler.CreateInquiry)
	public.GET("/settings/:key", marketingHandler.GetSetting)
	public.GET("/invoices/token/:token", invoicesHandler.GetInvoiceByToken)

	shared := api.Group("/gallery/:token", middleware.SanitizeInput())
	shared.GET("", galleryHandler.GetGallery)
	shared.GET("/media", galleryHandler.ListMedia)
	shared.POST("/select", galleryHandler.SelectMedia)
	shared.GET("/media/:media_id/download", galleryHandler.DownloadImage)
	shared.GET("/download", galleryHandler.DownloadZip)
	shared.GET("/export", galleryHandler.ExportForPrint)

	// client area
	client := api.Group("/client", middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleClient))
	client.GET("/projects", projectsHandler.ListMyProjects)
	client.GET("/projects/:project_id/media", mediaHandler.ListMyProjectMedia)
	client.GET("/invoices", invoicesHandler.ListMyInvoices)

	// admin back office
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin), middleware.SanitizeInput())
	admin.GET("/dashboard", dashboardHandler.GetDashboard)
	admin.GET("/clients", clientsHandler.ListClients)

	admin.POST("/projects", projectsHandler.CreateProject)
	admin.GET("/projects", projectsHandler.ListProjects)
	admin.GET("/projects/:project_id", projectsHandler.GetProject)
	admin.PATCH("/projects/:project_id", projectsHandler.UpdateProject)
	admin.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	admin.POST("/projects/:project_id/deliver", projectsHandler.DeliverProject)
	admin.POST("/projects/:project_id/rescind", projectsHandler.RescindDelivery)
	admin.POST("/projects/:project_id/archive", projectsHandler.ArchiveProject)

	admin.POST("/projects/:project_id/media", mediaHandler.UploadMedia)
	admin.POST("/projects/:project_id/media/presign", mediaHandler.PresignUpload)
	admin.GET("/projects/:project_id/media", mediaHandler.ListMedia)
	admin.PUT("/projects/:project_id/media/order", mediaHandler.ReorderMedia)
	admin.DELETE("/projects/:project_id/media/:media_id", mediaHandler.DeleteMedia)

	admin.POST("/invoices", invoicesHandler.CreateInvoice)
	admin.GET("/invoices", invoicesHandler.ListInvoices)
	admin.GET("/invoices/:invoice_id", invoicesHandler.GetInvoice)
	admin.PATCH("/invoices/:invoice_id/status", invoicesHandler.UpdateInvoiceStatus)

	admin.POST("/portfolio", portfolioHandler.CreateItem)
	admin.GET("/portfolio", portfolioHandler.ListItemsAdmin)
	admin.PATCH("/portfolio/:item_id", portfolioHandler.UpdateItem)
	admin.PUT("/portfolio/order", portfolioHandler.ReorderItems)
	admin.DELETE("/portfolio/:item_id", portfolioHandler.DeleteItem)

	admin.POST("/pricing", marketingHandler.CreatePricing)
	admin.GET("/pricing", marketingHandler.ListPricingAdmin)
	admin.PATCH("/pricing/:package_id", marketingHandler.UpdatePricing)
	admin.PUT("/pricing/order", marketingHandler.ReorderPricing)
	admin.DELETE("/pricing/:package_id", marketingHandler.DeletePricing)

	admin.GET("/inquiries", marketingHandler.ListInquiries)
	admin.PATCH("/inquiries/:inquiry_id/status", marketingHandler.UpdateInquiryStatus)

	admin.GET("/reviews", marketingHandler.ListReviewsAdmin)
	admin.POST("/reviews/:review_id/approve", marketingHandler.ApproveReview)
	admin.DELETE("/reviews/:review_id", marketingHandler.DeleteReview)

	admin.PUT("/settings/:key", marketingHandler.UpsertSetting)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
