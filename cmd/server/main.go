package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hemant-mistri/portfolio/internal/config"
	"github.com/hemant-mistri/portfolio/internal/domain/fiber/handler"
	"github.com/hemant-mistri/portfolio/internal/extractor"
	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/mailer"
	"github.com/hemant-mistri/portfolio/internal/middleware"
	"github.com/hemant-mistri/portfolio/internal/textsource"
	"github.com/hemant-mistri/portfolio/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	logger.Init(logger.Config{
		Level:  appConfig.LogLevel,
		Format: appConfig.LogFormat,
	})

	mailConfig := config.LoadMailConfig()
	if !mailConfig.Configured() {
		logger.Warn().Msg("GMAIL_USER or GMAIL_PASS not set, contact form will fail until configured")
	}

	sender, err := mailer.NewSMTPSender(mailConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create smtp sender")
	}

	var mailReady atomic.Bool
	go verifyMail(sender, mailConfig, &mailReady)

	contactUsecase := usecase.NewContactUsecase(sender, mailConfig)
	cvUsecase := usecase.NewCVUsecase(textsource.NewFitzDecoder(), extractor.New(), textsource.NewLoader(30*time.Second))

	app := newApp(appConfig, contactUsecase, cvUsecase, &mailReady)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("port", appConfig.Port).Str("env", appConfig.Env).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newApp assembles the middleware stack and routes.
func newApp(appConfig *config.AppConfig, contactUsecase *usecase.ContactUsecase, cvUsecase *usecase.CVUsecase, mailReady *atomic.Bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		BodyLimit:    6 * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"ok": false, "error": message})
		},
	})
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(appConfig.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(*fiber.Ctx) bool {
			return mailReady.Load()
		},
	}))

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	// Only the API is rate limited; the static site is not.
	app.Use("/api", middleware.RateLimiter(50, 1*time.Minute))

	handler.NewHealthHandler().RegisterRoutes(app)
	handler.NewContactHandler(contactUsecase).RegisterRoutes(app)
	handler.NewCVHandler(cvUsecase).RegisterRoutes(app)

	if appConfig.StaticDir != "" {
		serveSite(app, appConfig.StaticDir)
	}

	return app
}

// verifyMail dials the SMTP server once so a bad account shows up in the logs
// at boot. Failure does not stop the server; readiness just stays false.
func verifyMail(sender mailer.Sender, cfg config.MailConfig, ready *atomic.Bool) {
	if !cfg.Configured() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	if err := sender.Verify(ctx); err != nil {
		ev := logger.Error().Err(err).Str("host", cfg.Host).Int("port", cfg.Port)
		var se *mailer.SendError
		if errors.As(err, &se) {
			ev = ev.Str("code", se.Code).Str("response", se.Response)
		}
		ev.Msg("smtp verification failed")
		return
	}
	ready.Store(true)
	logger.Info().Str("host", cfg.Host).Msg("smtp server is ready to take messages")
}

// serveSite hosts the built single-page site and falls back to index.html
// for client-side routes.
func serveSite(app *fiber.App, dir string) {
	app.Static("/", dir, fiber.Static{
		Compress: true,
		Index:    "index.html",
	})
	index := filepath.Join(dir, "index.html")
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return fiber.ErrNotFound
		}
		return c.SendFile(index)
	})
	logger.Info().Str("dir", dir).Msg("serving static site")
}
