package main

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/jackc/pgx/v5/stdlib"

	"staykedarnath/internal/config"
	"staykedarnath/internal/database"
	"staykedarnath/internal/middleware"
	"staykedarnath/internal/modules/auth"
	"staykedarnath/internal/modules/catalog"
	"staykedarnath/internal/modules/content"
	"staykedarnath/internal/modules/lead"
	"staykedarnath/internal/modules/news"
	"staykedarnath/internal/modules/notify"
	"staykedarnath/internal/modules/payment"
	"staykedarnath/internal/modules/plugin"
	"staykedarnath/internal/modules/track"
	"staykedarnath/internal/modules/weather"
	"staykedarnath/internal/modules/wishlist"
	jwtsvc "staykedarnath/internal/pkg/jwt"
	"staykedarnath/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "staykedarnath.db"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	loggerf := logrus.StandardLogger().Infof

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	contentRepo := repository.NewContentRepository(db)
	pluginRepo := repository.NewPluginRepository(db)
	helpRepo := repository.NewHelpRepository(db)
	bannerRepo := repository.NewBannerRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(packageRepo, helpRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	pluginRegistry := plugin.NewRegistry(pluginRepo)
	pluginHandler := plugin.NewHandler(pluginRegistry)

	emailClient := notify.NewResendClient(cfg.ResendAPIKey)
	waClient := notify.NewWhatsAppClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID)
	emailNotifier := notify.NewEmailNotifier(
		bookingRepo, packageRepo, templateRepo, emailClient,
		cfg.EmailFrom, cfg.EmailReplyTo, cfg.EmailBCC, loggerf,
	)
	waNotifier := notify.NewWhatsAppNotifier(
		bookingRepo, packageRepo, waClient,
		cfg.WhatsAppTemplateName, cfg.PhoneCountryCode, loggerf,
	)

	razorpay := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentService := payment.NewService(
		razorpay, bookingRepo,
		[]payment.Notifier{emailNotifier, waNotifier},
		cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.Currency, loggerf,
	)
	paymentHandler := payment.NewHandler(paymentService, loggerf)

	wishlistService := wishlist.NewService(wishlistRepo)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	recorder := track.NewRecorder(bannerRepo, cfg.TrackQueueSize, loggerf)
	defer recorder.Close()
	trackHandler := track.NewHandler(recorder, cfg.ImpressionDwell, cfg.VisibleRatio)

	newsService := news.NewService(news.NewClient(cfg.NewsAPIKey), loggerf)
	newsHandler := news.NewHandler(newsService)

	weatherHandler := weather.NewHandler(weather.NewClient())

	// Lead CRM runs on raw SQL and needs Postgres; local sqlite runs go
	// without it.
	var leadHandler *lead.Handler
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sdb, err := sqlx.Open("pgx", dsn)
		if err != nil {
			logrus.WithError(err).Fatal("sqlx connect failed")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := lead.EnsureSchema(ctx, sdb); err != nil {
			cancel()
			logrus.WithError(err).Fatal("lead schema failed")
		}
		cancel()
		leadHandler = lead.NewHandler(lead.NewService(lead.NewRepository(sdb)))
	} else {
		logrus.Warn("lead CRM disabled: DATABASE_URL is not Postgres")
	}

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger(), gin.Recovery(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		contentHandler.RegisterPublicRoutes(v1)
		pluginHandler.RegisterPublicRoutes(v1)
		trackHandler.RegisterRoutes(v1)
		newsHandler.RegisterRoutes(v1)
		weatherHandler.RegisterRoutes(v1)
		if leadHandler != nil {
			leadHandler.RegisterPublicRoutes(v1)
		}

		// payments identify the buyer when a token is present but accept
		// anonymous orders
		payments := v1.Group("/")
		payments.Use(middleware.OptionalAuth(j))
		{
			paymentHandler.RegisterRoutes(payments)
		}

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			wishlistHandler.RegisterRoutes(protected)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly(authService))
		{
			catalogHandler.RegisterAdminRoutes(admin)
			contentHandler.RegisterAdminRoutes(admin)
			pluginHandler.RegisterAdminRoutes(admin)
			if leadHandler != nil {
				leadHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logrus.WithField("env", cfg.AppEnv).Info("starting API on :8080")
	if err := r.Run(":8080"); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
