package routes

import (
	"vetcare-web/internal/adapters/http/handlers"
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/config"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Dependencies are what the routes need from main
type Dependencies struct {
	Config   *config.Config
	Registry *services.BrowserRegistry
	Checks   map[string]handlers.HealthCheck
	Log      *logrus.Logger
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps Dependencies) {
	cfg := deps.Config
	wait := cfg.Session.StartupWait
	handlerLog := deps.Log.WithField("component", "http")

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, deps.Checks)
	pageHandler := handlers.NewPageHandler(handlerLog)
	authHandler := handlers.NewAuthHandler(handlerLog)
	profileHandler := handlers.NewProfileHandler(handlerLog)
	tutorHandler := handlers.NewTutorHandler(handlerLog)
	clinicaHandler := handlers.NewClinicaHandler(handlerLog)

	// ============================================================
	// Probes (no browser session)
	// ============================================================
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Every route below belongs to a browser
	app.Use(middleware.BrowserSession(deps.Registry, cfg), middleware.NoStore())

	guestOnly := middleware.Guard(services.GuestOnly(), wait)
	tutorOnly := middleware.Guard(services.RequireRole(domain.UserTypeTutor), wait)
	clinicaOnly := middleware.Guard(services.RequireRole(domain.UserTypeClinica), wait)

	// ============================================================
	// Public pages
	// ============================================================
	app.Get("/", pageHandler.Home)
	app.Get("/sobre", pageHandler.About)
	app.Get("/servicos", pageHandler.Services)
	app.Get("/contato", pageHandler.ContactPage)
	app.Post("/contato", pageHandler.SendContact)
	app.Get("/animal/:id", pageHandler.AnimalProfile)

	// ============================================================
	// Guest only: login and sign-up
	// ============================================================
	app.Get("/login", guestOnly, authHandler.LoginPage)
	app.Post("/login", middleware.AuthRateLimiter(), guestOnly, authHandler.Login)
	app.Get("/cadastro", guestOnly, authHandler.RegisterPage)

	cadastro := app.Group("/cadastro", middleware.AuthRateLimiter(), guestOnly)
	cadastro.Post("/tutor", authHandler.RegisterTutor)
	cadastro.Post("/clinica", authHandler.RegisterClinica)

	app.Post("/logout", authHandler.Logout)

	// ============================================================
	// Tutor dashboard
	// ============================================================
	tutor := app.Group("/dashboard/tutor", tutorOnly)
	tutor.Get("/", tutorHandler.Dashboard)
	tutor.Get("/animais", tutorHandler.Animals)
	tutor.Post("/animais", tutorHandler.CreateAnimal)
	tutor.Put("/animais/:id", tutorHandler.UpdateAnimal)
	tutor.Get("/agendamentos", tutorHandler.Appointments)
	tutor.Get("/agendamentos/horarios", tutorHandler.AvailableTimes)
	tutor.Post("/agendamentos", tutorHandler.CreateAppointment)
	tutor.Delete("/agendamentos/:id", tutorHandler.CancelAppointment)
	tutor.Get("/configuracoes", profileHandler.Settings)
	tutor.Post("/configuracoes/sincronizar", profileHandler.Refresh)

	// ============================================================
	// Clinic dashboard
	// ============================================================
	clinica := app.Group("/dashboard/clinica", clinicaOnly)
	clinica.Get("/", clinicaHandler.Dashboard)
	clinica.Get("/animais", clinicaHandler.Animals)
	clinica.Get("/agendamentos", clinicaHandler.Appointments)
	clinica.Put("/agendamentos/:id/status", clinicaHandler.UpdateStatus)
	clinica.Get("/configuracoes", profileHandler.Settings)
	clinica.Post("/configuracoes/sincronizar", profileHandler.Refresh)

	// 404 Handler
	app.Use(middleware.NotFound)
}
