package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/auth"
	"github.com/BruksfildServices01/barbermatch/internal/config"
	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/handlers"
	"github.com/BruksfildServices01/barbermatch/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbermatch/internal/usecase/booking"
	ucHairstyle "github.com/BruksfildServices01/barbermatch/internal/usecase/hairstyle"
	ucProfile "github.com/BruksfildServices01/barbermatch/internal/usecase/profile"
	ucReview "github.com/BruksfildServices01/barbermatch/internal/usecase/review"
)

// Deps are the singletons the API is assembled from. Cache, Photos, Billing
// and Tokens are optional; leave them nil to disable the feature.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger

	Bookings booking.Repository
	Users    profile.Repository
	Reviews  review.Repository

	AuditStore audit.Store
	Audit      *audit.Dispatcher

	Verifier auth.Verifier
	Tokens   ucProfile.TokenIssuer

	Cache     profile.DirectoryCache
	Photos    profile.PhotoStore
	Encoder   profile.PhotoEncoder
	Billing   profile.Billing
	Generator hairstyle.Generator
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg, log := d.Config, d.Log

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(d.Bookings, d.Users, d.Audit, log, cfg.Timezone)
	proposePriceUC := ucBooking.NewProposePrice(d.Bookings, d.Audit, log)
	respondUC := ucBooking.NewRespondToProposal(d.Bookings, d.Audit, log)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(d.Bookings, d.Audit, log)
	getBookingUC := ucBooking.NewGetBooking(d.Bookings)
	listBookingsUC := ucBooking.NewListBookings(d.Bookings)
	freeSlotsUC := ucBooking.NewListFreeSlots(d.Bookings, d.Users, cfg.Timezone)

	submitReviewUC := ucReview.NewSubmitReview(d.Reviews, d.Bookings, d.Audit, log)
	barberReviewsUC := ucReview.NewListBarberReviews(d.Reviews)

	ensureProfileUC := ucProfile.NewEnsureProfile(d.Users, log)
	updateProfileUC := ucProfile.NewUpdateProfile(d.Users, d.Cache, d.Audit, log)
	uploadPhotoUC := ucProfile.NewUploadPhoto(d.Users, d.Photos, d.Encoder, d.Cache, d.Audit, log)
	directoryUC := ucProfile.NewDirectory(d.Users, d.Cache, cfg.DirectoryRequireSubscription, log)
	startSubscriptionUC := ucProfile.NewStartSubscription(d.Users, d.Billing, d.Audit, log)
	syncSubscriptionUC := ucProfile.NewSyncSubscription(d.Users, d.Billing, d.Cache, d.Audit, log)

	suggestUC := ucHairstyle.NewSuggest(d.Generator, log)
	tryOnUC := ucHairstyle.NewTryOn(d.Generator, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(d.Users, updateProfileUC, uploadPhotoUC)
	barberHandler := handlers.NewBarberHandler(directoryUC, barberReviewsUC, freeSlotsUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		proposePriceUC,
		respondUC,
		updateStatusUC,
		getBookingUC,
		listBookingsUC,
	)
	reviewHandler := handlers.NewReviewHandler(submitReviewUC)
	aiHandler := handlers.NewAIHandler(suggestUC, tryOnUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(startSubscriptionUC, syncSubscriptionUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.UploadDir != "" && !cfg.S3Enabled() {
		r.Static("/uploads", cfg.UploadDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (local provider only)
		// ------------------------------
		if d.Tokens != nil {
			authHandler := handlers.NewAuthHandler(
				ucProfile.NewRegister(d.Users, d.Tokens, d.Audit, log, cfg.ValidateEmailDomain),
				ucProfile.NewLogin(d.Users, d.Tokens),
			)
			api.POST("/auth/register", authHandler.Register)
			api.POST("/auth/login", authHandler.Login)
		}

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/reviews", barberHandler.Reviews)
		api.GET("/barbers/:id/slots", barberHandler.Slots)

		api.POST("/webhooks/mercadopago", subscriptionHandler.Webhook)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Verifier, ensureProfileUC))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)
			secured.PUT("/me/photo", meHandler.UploadPhoto)
			secured.POST("/me/subscription", subscriptionHandler.Start)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.POST("/bookings/:id/proposal", bookingHandler.ProposePrice)
			secured.POST("/bookings/:id/proposal/accept", bookingHandler.AcceptProposal)
			secured.POST("/bookings/:id/proposal/reject", bookingHandler.RejectProposal)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.POST("/reviews", reviewHandler.Submit)

			secured.POST("/ai/suggestions", aiHandler.Suggest)
			secured.POST("/ai/try-on", aiHandler.TryOn)
		}
	}
}
