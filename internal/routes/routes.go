package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/audit"
	"github.com/barberbook/booking-api/internal/cache"
	"github.com/barberbook/booking-api/internal/config"
	"github.com/barberbook/booking-api/internal/handlers"
	infraRepo "github.com/barberbook/booking-api/internal/infra/repository"
	"github.com/barberbook/booking-api/internal/middleware"
	"github.com/barberbook/booking-api/internal/notification"
	ucBooking "github.com/barberbook/booking-api/internal/usecase/booking"
	ucSchedule "github.com/barberbook/booking-api/internal/usecase/schedule"
	ucStatistics "github.com/barberbook/booking-api/internal/usecase/statistics"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	r.Use(limiter.Middleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	uow := infraRepo.NewGormUnitOfWork(db)

	scheduleCache := cache.NewScheduleCache(redisClient, time.Duration(cfg.CacheTTLSec)*time.Second)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	notifyDispatcher := notification.NewDispatcher(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo, uow, notifyDispatcher, auditDispatcher, scheduleCache,
	)
	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo, uow, notifyDispatcher, auditDispatcher, scheduleCache,
	)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo, notifyDispatcher, auditDispatcher, scheduleCache,
	)
	bulkUpdateStatusUC := ucBooking.NewBulkUpdateBookingStatus(
		uow, notifyDispatcher, auditDispatcher, scheduleCache,
	)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	weekScheduleUC := ucSchedule.NewGetWeekSchedule(bookingRepo, scheduleCache)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(bookingRepo, auditDispatcher, scheduleCache)

	statsUC := ucStatistics.NewGetBarberStats(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		rescheduleBookingUC,
		updateStatusUC,
		bulkUpdateStatusUC,
		listBookingsUC,
	)
	scheduleHandler := handlers.NewScheduleHandler(weekScheduleUC, updateScheduleUC)
	statisticsHandler := handlers.NewStatisticsHandler(statsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:barberID", barberHandler.Get)
		api.GET("/barbers/:barberID/services", serviceHandler.ListByBarber)
		api.GET("/barbers/:barberID/schedule", scheduleHandler.GetWeek)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// bookings (clients)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.PATCH("/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// notifications
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			// ------------------------------
			// BARBER ONLY
			// ------------------------------
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireRole(middleware.RoleBarber))
			{
				barber.GET("/bookings", bookingHandler.ListForBarber)
				barber.GET("/bookings/day", bookingHandler.ListDay)
				barber.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
				barber.PATCH("/bookings/bulk-status", bookingHandler.BulkUpdateStatus)

				barber.GET("/schedule", scheduleHandler.GetMineWeek)
				barber.PUT("/schedule", scheduleHandler.UpdateMine)

				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)

				barber.GET("/statistics", statisticsHandler.GetMine)
			}

			// ------------------------------
			// ADMIN ONLY
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
