package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{AppName: container.Config.App.AppName})

	registerGlobalMiddleware(f, container.Config)
	routes.NewRegistry(container.Config, container.DB).Register(f)

	return &App{Fiber: f, Container: container}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())

	// Credentialed CORS so the browser sends the token cookie along.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowCredentials: true,
	}))
}

// Run serves until the listener fails or the process receives SIGINT or
// SIGTERM, then drains in-flight requests for up to 10 seconds.
func (a *App) Run() error {
	addr, err := ListenAddr(a.Container.Config.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	log.Printf("job portal server listening on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Fiber.ShutdownWithContext(ctx)
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
