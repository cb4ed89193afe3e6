package main

import (
	"log"

	"github.com/gatherly/rsvp-service/config"
	"github.com/gatherly/rsvp-service/internal/handler"
	"github.com/gatherly/rsvp-service/internal/middleware"
	"github.com/gatherly/rsvp-service/internal/repository"
	"github.com/gatherly/rsvp-service/internal/service"
	"github.com/gatherly/rsvp-service/pkg/database"
	"github.com/gatherly/rsvp-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ carries side-channel domain messages only; the service runs
	// fine without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, continuing without publisher: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRsvpRepository(db)

	// Services
	eventSvc := service.NewEventService(eventRepo, publisher)
	rsvpSvc := service.NewRsvpService(rsvpRepo, eventRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "rsvp-service"})
	})

	api := e.Group("/api")
	handler.NewEventHandler(eventSvc).RegisterRoutes(api)
	handler.NewRsvpHandler(rsvpSvc).RegisterRoutes(api)

	log.Printf("RSVP Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
