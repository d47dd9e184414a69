package app

import (
	"fmt"
	"os"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/circlo-community/haruhi-agent/internal/clients/circlo"
	"github.com/circlo-community/haruhi-agent/internal/config"
	"github.com/circlo-community/haruhi-agent/internal/controllers/agent"
	"github.com/circlo-community/haruhi-agent/internal/responder"
	"github.com/circlo-community/haruhi-agent/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// avatarPath is where an operator-supplied profile image is looked for.
const avatarPath = "static/haruhi.jpg"

// fallbackAvatarSVG is served at the avatar URL until the operator drops a
// real image into static/, so the URL given to Circlo is reachable
// immediately.
const fallbackAvatarSVG = `<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 600 1067'>` +
	`<rect width='100%' height='100%' fill='#f8f0ff'/>` +
	`<text x='50%' y='50%' dominant-baseline='middle' text-anchor='middle'` +
	` font-family='Arial, Helvetica, sans-serif' font-size='48' fill='#333'>Haruhi</text>` +
	`</svg>`

// CreateFiberApp sets up the API routes and returns the HTTP server.
func CreateFiberApp(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	logger.Info().Msg("Starting Haruhi Agent API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Haruhi Agent API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Get("/static/haruhi.jpg", serveAvatar)

	var registrar agent.Registrar
	var circloAPI agent.CircloAPI
	if token := settings.ResolveToken(); token == "" {
		logger.Warn().Msg("No Circlo token found in environment (CIRCLO_TOKEN or CIRCLO_API_TOKEN); registration is disabled")
	} else {
		client, err := circlo.New(settings.BaseURL(), token, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Circlo client: %w", err)
		}
		registrar = client
		circloAPI = client
	}

	controller := agent.NewController(responder.NewCanned(), registrar, settings.AgentName, settings.AgentAvatarURL)
	proxyController := agent.NewProxyController(circloAPI)
	logger.Info().Msg("Registering routes...")

	if settings.WebhookSecret != "" {
		app.Post("/agents/haruhi/hook", middleware.VerifySignature(settings.WebhookSecret), controller.HandleHook)
	} else {
		app.Post("/agents/haruhi/hook", controller.HandleHook)
	}
	app.Post("/agents/register", controller.RegisterAgent)

	// Circlo passthrough
	app.Get("/circlo/user-preferences", proxyController.ListUserPreferences)
	app.Get("/circlo/user-preferences/:userId", proxyController.UserPreferences)
	app.Get("/circlo/posts/by-keywords", proxyController.PostsByKeywords)
	app.Post("/circlo/posts/create", proxyController.CreatePost)

	return app, nil
}

func serveAvatar(c *fiber.Ctx) error {
	if _, err := os.Stat(avatarPath); err == nil {
		return c.SendFile(avatarPath)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(fallbackAvatarSVG)
}
