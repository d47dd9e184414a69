package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/circlo-community/haruhi-agent/internal/clients/circlo"
	"github.com/circlo-community/haruhi-agent/internal/responder"
	"github.com/gofiber/fiber/v2"
)

// Registrar creates agent profiles on the Circlo platform.
type Registrar interface {
	CreateAgent(ctx context.Context, req circlo.CreateAgentRequest) (*circlo.Result, error)
}

// Controller serves the agent's webhook and the registration passthrough.
type Controller struct {
	responder responder.Responder
	// registrar is nil when no Circlo credential is configured; the hook
	// keeps working, registration is refused.
	registrar Registrar
	agentName string
	avatarURL string
}

// NewController creates a new Controller. registrar may be nil when the
// service runs without a Circlo credential.
func NewController(resp responder.Responder, registrar Registrar, agentName, avatarURL string) *Controller {
	if agentName == "" {
		agentName = circlo.DefaultAgentName
	}
	if avatarURL == "" {
		avatarURL = circlo.DefaultAvatarURL(agentName)
	}
	return &Controller{
		responder: resp,
		registrar: registrar,
		agentName: agentName,
		avatarURL: avatarURL,
	}
}

// HandleHook godoc
// @Summary      Receive a conversation message
// @Description  Accepts a Circlo conversation payload and answers with the agent's reply. A missing or empty message is acknowledged rather than rejected.
// @Tags         Agent
// @Accept       json
// @Produce      json
// @Param        request  body      HookRequest   true  "Conversation payload"
// @Success      200      {object}  HookResponse  "Agent reply"
// @Failure      400      "Malformed payload"
// @Router       /agents/haruhi/hook [post]
func (a *Controller) HandleHook(c *fiber.Ctx) error {
	var payload HookRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	msg := responder.Message{Text: payload.Message}
	if payload.User != nil {
		msg.UserID = payload.User.ID
		msg.UserName = payload.User.Name
	}

	reply, err := a.responder.Reply(c.Context(), msg)
	if err != nil {
		return fmt.Errorf("failed to compute reply: %w", err)
	}
	return c.JSON(HookResponse{Response: reply})
}

// RegisterAgent godoc
// @Summary      Register the agent on Circlo
// @Description  Forwards a create-agent request to Circlo using the configured credential and mirrors the platform's status code and body back verbatim.
// @Tags         Agent
// @Accept       json
// @Produce      json
// @Param        request  body  RegisterAgentRequest  true  "Registration request"
// @Success      201  "Mirrored from Circlo"
// @Failure      400  "Invalid request payload or endpoint URL"
// @Failure      401  "No Circlo credential configured"
// @Failure      502  "Circlo could not be reached"
// @Router       /agents/register [post]
func (a *Controller) RegisterAgent(c *fiber.Ctx) error {
	var payload RegisterAgentRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if err := validateEndpointURL(payload.Endpoint); err != nil {
		return err
	}
	if err := validateUsername(payload.Username); err != nil {
		return err
	}

	if a.registrar == nil {
		return richerrors.Error{
			ExternalMsg: "No Circlo credential configured",
			Err:         circlo.ErrNoToken,
			Code:        fiber.StatusUnauthorized,
		}
	}

	niche := payload.Niche
	if niche == "" {
		niche = circlo.DefaultNiche
	}

	result, err := a.registrar.CreateAgent(c.Context(), circlo.CreateAgentRequest{
		Name:      a.agentName,
		Username:  payload.Username,
		Niche:     niche,
		AvatarURL: a.avatarURL,
		Endpoint:  payload.Endpoint,
	})
	if err != nil {
		return mirrorUpstreamError(c, err)
	}
	return mirrorUpstream(c, result.StatusCode, result.ContentType, result.Body)
}

// mirrorUpstream relays Circlo's status, content type and body bytes without
// re-serializing, so the caller sees exactly what the platform said.
func mirrorUpstream(c *fiber.Ctx, status int, contentType string, body []byte) error {
	if contentType == "" {
		contentType = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(status).Send(body)
}

// mirrorUpstreamError maps client failures: upstream rejections are mirrored
// like successes, everything else becomes a rich error of its own.
func mirrorUpstreamError(c *fiber.Ctx, err error) error {
	if upstreamErr, ok := circlo.AsUpstreamError(err); ok {
		return mirrorUpstream(c, upstreamErr.StatusCode, upstreamErr.ContentType, upstreamErr.Body)
	}
	if errors.Is(err, circlo.ErrNoToken) {
		return richerrors.Error{
			ExternalMsg: "No Circlo credential configured",
			Err:         err,
			Code:        fiber.StatusUnauthorized,
		}
	}
	return richerrors.Error{
		ExternalMsg: "Failed to reach Circlo",
		Err:         err,
		Code:        fiber.StatusBadGateway,
	}
}
