package routes

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/cache"
	"github.com/awaleed99/bite-back0/internal/config"
	dbpkg "github.com/awaleed99/bite-back0/internal/db"
	"github.com/awaleed99/bite-back0/internal/handlers"
	infraRepo "github.com/awaleed99/bite-back0/internal/infra/repository"
	"github.com/awaleed99/bite-back0/internal/middleware"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/notify"
	"github.com/awaleed99/bite-back0/internal/payment"
	"github.com/awaleed99/bite-back0/internal/security"
	"github.com/awaleed99/bite-back0/internal/storage"
	ucAuth "github.com/awaleed99/bite-back0/internal/usecase/auth"
	ucCart "github.com/awaleed99/bite-back0/internal/usecase/cart"
	ucLocation "github.com/awaleed99/bite-back0/internal/usecase/location"
	ucOrder "github.com/awaleed99/bite-back0/internal/usecase/order"
	ucPayment "github.com/awaleed99/bite-back0/internal/usecase/paymentmethod"
	ucUser "github.com/awaleed99/bite-back0/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store cache.Store, cfg *config.Config, logger *slog.Logger) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.LoggingMiddleware(logger, "/health"),
		middleware.RecoveryMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	authRepo := infraRepo.NewAuthGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	cartRepo := infraRepo.NewCartGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	locationRepo := infraRepo.NewLocationGormRepository(db)
	paymentMethodRepo := infraRepo.NewPaymentMethodGormRepository(db)

	auditLogger := audit.New(db, logger)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenManager(cfg)
	notifier := notify.NewService(cfg, logger)
	gateway := newGateway(cfg, logger)
	avatars := storage.New(cfg.S3)

	// ======================================================
	// USE CASES - AUTH
	// ======================================================
	otp := ucAuth.NewOTP(store, notifier, cfg, logger)

	signupUC := ucAuth.NewSignup(authRepo, hasher, tokens, otp, auditLogger, cfg)
	loginUC := ucAuth.NewLogin(authRepo, hasher, tokens)
	verifyPhoneUC := ucAuth.NewVerifyPhone(authRepo, otp)
	resendOTPUC := ucAuth.NewResendOTP(authRepo, otp)
	forgotPasswordUC := ucAuth.NewForgotPassword(authRepo, notifier, cfg)
	resetPasswordUC := ucAuth.NewResetPassword(authRepo, hasher, auditLogger)
	refreshTokenUC := ucAuth.NewRefreshToken(authRepo, tokens)
	logoutUC := ucAuth.NewLogout(authRepo, store, tokens, auditLogger)
	authenticateUC := ucAuth.NewAuthenticate(authRepo, store, tokens)

	// ======================================================
	// USE CASES - ORDERS / CART
	// ======================================================
	checkoutUC := ucOrder.NewCheckout(orderRepo, gateway, auditLogger, logger, cfg)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	getOrderUC := ucOrder.NewGetOrder(orderRepo)
	updateOrderStatusUC := ucOrder.NewUpdateStatus(orderRepo, auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		signupUC,
		loginUC,
		verifyPhoneUC,
		resendOTPUC,
		forgotPasswordUC,
		resetPasswordUC,
		refreshTokenUC,
		logoutUC,
		!cfg.IsProduction(),
	)

	meHandler := handlers.NewMeHandler(
		ucUser.NewGetProfile(userRepo),
		ucUser.NewUpdateProfile(userRepo),
		ucUser.NewChangePassword(userRepo, hasher, auditLogger),
		ucUser.NewUploadAvatar(userRepo, avatars, logger),
	)

	settingsHandler := handlers.NewSettingsHandler(
		ucUser.NewGetSettings(userRepo),
		ucUser.NewUpdateSettings(userRepo),
	)

	cartHandler := handlers.NewCartHandler(
		ucCart.NewGetCart(cartRepo),
		ucCart.NewAddItem(cartRepo),
		ucCart.NewUpdateItem(cartRepo),
		ucCart.NewRemoveItem(cartRepo),
		ucCart.NewClearCart(cartRepo),
	)

	orderHandler := handlers.NewOrderHandler(
		checkoutUC,
		listOrdersUC,
		getOrderUC,
		updateOrderStatusUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewAdd(paymentMethodRepo),
		ucPayment.NewList(paymentMethodRepo),
		ucPayment.NewRemove(paymentMethodRepo),
		ucPayment.NewSetDefault(paymentMethodRepo),
	)

	locationHandler := handlers.NewLocationHandler(
		ucLocation.NewCreate(locationRepo),
		ucLocation.NewList(locationRepo),
		ucLocation.NewGet(locationRepo),
		ucLocation.NewUpdate(locationRepo),
		ucLocation.NewRemove(locationRepo),
		ucLocation.NewSetDefault(locationRepo),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, cfg.Timezone)

	healthHandler := handlers.NewHealthHandler(map[string]handlers.Check{
		"database": func(ctx context.Context) error { return dbpkg.Ping(ctx, db) },
		"cache":    store.Ping,
	})

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", healthHandler.Info)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login",
				middleware.RateLimit(store, "login", cfg.LoginRateLimit, cfg.LoginRateWindow, logger),
				authHandler.Login,
			)
			auth.POST("/resend-otp",
				middleware.RateLimit(store, "resend-otp", cfg.ResendOTPRateLimit, cfg.ResendOTPRateWindow, logger),
				authHandler.ResendOTP,
			)
			auth.POST("/forgot-password",
				middleware.RateLimit(store, "forgot-password", cfg.ForgotPasswordRateLimit, cfg.ForgotPasswordRateWindow, logger),
				authHandler.ForgotPassword,
			)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(authenticateUC))
		{
			secured.POST("/auth/verify-phone",
				middleware.RateLimit(store, "verify-phone", cfg.VerifyPhoneRateLimit, cfg.VerifyPhoneRateWindow, logger),
				authHandler.VerifyPhone,
			)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/users/me", meHandler.GetMe)
			secured.PATCH("/users/me", meHandler.UpdateMe)
			secured.POST("/users/me/change-password", meHandler.ChangePassword)
			secured.PUT("/users/me/avatar", meHandler.UploadAvatar)

			secured.GET("/settings/notifications", settingsHandler.GetNotifications)
			secured.PATCH("/settings/notifications", settingsHandler.UpdateNotifications)

			secured.GET("/cart", cartHandler.Get)
			secured.POST("/cart/items", cartHandler.AddItem)
			secured.PATCH("/cart/items/:id", cartHandler.UpdateItem)
			secured.DELETE("/cart/items/:id", cartHandler.RemoveItem)
			secured.DELETE("/cart", cartHandler.Clear)

			secured.POST("/orders/checkout", orderHandler.Checkout)
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

			secured.GET("/payments/methods", paymentHandler.List)
			secured.POST("/payments/methods", paymentHandler.Add)
			secured.DELETE("/payments/methods/:id", paymentHandler.Remove)
			secured.PATCH("/payments/methods/:id/default", paymentHandler.SetDefault)

			secured.GET("/locations", locationHandler.List)
			secured.POST("/locations", locationHandler.Create)
			secured.GET("/locations/:id", locationHandler.Get)
			secured.PATCH("/locations/:id", locationHandler.Update)
			secured.DELETE("/locations/:id", locationHandler.Remove)
			secured.PATCH("/locations/:id/default", locationHandler.SetDefault)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin", middleware.RequireRole(models.RoleAdmin))
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// newGateway charges through Mercado Pago when a token is configured and
// falls back to the mock gateway otherwise.
func newGateway(cfg *config.Config, logger *slog.Logger) payment.Gateway {
	if cfg.MercadoPagoAccessToken == "" {
		return payment.NewMockGateway()
	}

	gw, err := payment.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Error("mercado pago unavailable, using mock gateway", "error", err)
		return payment.NewMockGateway()
	}
	return gw
}
