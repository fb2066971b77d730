package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tableBooker/internal/auth"
	"tableBooker/internal/availability"
	"tableBooker/internal/booking"
	"tableBooker/internal/config"
	"tableBooker/internal/http-server/handlers/admin/bookingStats"
	"tableBooker/internal/http-server/handlers/admin/bookingsByDate"
	"tableBooker/internal/http-server/handlers/admin/listAllBookings"
	"tableBooker/internal/http-server/handlers/admin/updateStatus"
	"tableBooker/internal/http-server/handlers/booking/cancelBooking"
	"tableBooker/internal/http-server/handlers/booking/checkAvailability"
	"tableBooker/internal/http-server/handlers/booking/createBooking"
	"tableBooker/internal/http-server/handlers/booking/getBooking"
	"tableBooker/internal/http-server/handlers/booking/getTimeSlots"
	"tableBooker/internal/http-server/handlers/booking/listBookings"
	"tableBooker/internal/http-server/handlers/booking/updateBooking"
	"tableBooker/internal/http-server/handlers/menu/createMenuItem"
	"tableBooker/internal/http-server/handlers/menu/deleteMenuItem"
	"tableBooker/internal/http-server/handlers/menu/getMenuItem"
	"tableBooker/internal/http-server/handlers/menu/listCategories"
	"tableBooker/internal/http-server/handlers/menu/listMenuItems"
	"tableBooker/internal/http-server/handlers/menu/updateMenuItem"
	"tableBooker/internal/http-server/handlers/notification/listNotifications"
	"tableBooker/internal/http-server/handlers/notification/markAllAsRead"
	"tableBooker/internal/http-server/handlers/notification/markAsRead"
	"tableBooker/internal/http-server/handlers/user/getProfile"
	"tableBooker/internal/http-server/handlers/user/login"
	"tableBooker/internal/http-server/handlers/user/register"
	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/http-server/middleware/mwlogger"
	"tableBooker/internal/lib/logger/handlers/slogpretty"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/notifier"
	"tableBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting table booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	engine, err := availability.New(cfg.Restaurant, storage)
	if err != nil {
		log.Error("failed to init availability engine", sl.Err(err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	notifications := notifier.New(log, storage)
	bookings := booking.NewService(log, storage, engine, notifications)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/register", register.New(log, storage, tokens))
	router.Post("/login", login.New(log, storage, tokens))

	router.Route("/menu", func(r chi.Router) {
		r.Get("/items", listMenuItems.New(log, storage))
		r.Get("/items/{id}", getMenuItem.New(log, storage))
		r.Get("/categories", listCategories.New(log, storage))
	})

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, tokens))

		r.Get("/me", getProfile.New(log, storage))

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", listBookings.New(log, storage))
			r.Post("/", createBooking.New(log, bookings))
			r.Post("/check-availability", checkAvailability.New(log, engine))
			r.Get("/slots", getTimeSlots.New(log, engine))
			r.Get("/{id}", getBooking.New(log, storage))
			r.Put("/{id}", updateBooking.New(log, bookings))
			r.Delete("/{id}", cancelBooking.New(log, bookings))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", listNotifications.New(log, storage))
			r.Put("/read-all", markAllAsRead.New(log, storage))
			r.Put("/{id}/read", markAsRead.New(log, storage))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mwauth.AdminOnly())

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", listAllBookings.New(log, storage))
				r.Get("/stats", bookingStats.New(log, storage))
				r.Get("/date/{date}", bookingsByDate.New(log, storage))
				r.Put("/{id}/status", updateStatus.New(log, bookings))
			})

			r.Route("/menu", func(r chi.Router) {
				r.Post("/items", createMenuItem.New(log, storage))
				r.Put("/items/{id}", updateMenuItem.New(log, storage))
				r.Delete("/items/{id}", deleteMenuItem.New(log, storage))
			})
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
