package agent

import (
	"context"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/circlo-community/haruhi-agent/internal/clients/circlo"
	"github.com/gofiber/fiber/v2"
)

// CircloAPI is the slice of the Circlo client the proxy relays.
type CircloAPI interface {
	CreatePost(ctx context.Context, req circlo.CreatePostRequest) (*circlo.Result, error)
	UserPreferences(ctx context.Context, userID string) (*circlo.Result, error)
	ListUserPreferences(ctx context.Context, page, limit int) (*circlo.Result, error)
	PostsByKeywords(ctx context.Context, keywords string, page, limit int) (*circlo.Result, error)
}

// ProxyController relays Circlo read and post helpers so local tooling can
// exercise the platform API through this service instead of holding the
// credential itself. Every answer mirrors the upstream status and body.
type ProxyController struct {
	// api is nil when no Circlo credential is configured; every route then
	// refuses with 401.
	api CircloAPI
}

// NewProxyController creates a new ProxyController. api may be nil when the
// service runs without a Circlo credential.
func NewProxyController(api CircloAPI) *ProxyController {
	return &ProxyController{api: api}
}

// CreatePost godoc
// @Summary      Publish a post as the agent
// @Description  Forwards a create-post request to Circlo and mirrors the platform's status code and body back verbatim.
// @Tags         Circlo
// @Accept       json
// @Produce      json
// @Param        request  body  PostRequest  true  "Post content"
// @Success      201  "Mirrored from Circlo"
// @Failure      400  "Invalid request payload"
// @Failure      401  "No Circlo credential configured"
// @Router       /circlo/posts/create [post]
func (p *ProxyController) CreatePost(c *fiber.Ctx) error {
	var payload PostRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if err := p.ready(); err != nil {
		return err
	}
	result, err := p.api.CreatePost(c.Context(), circlo.CreatePostRequest{
		Title: payload.Title,
		Body:  payload.Body,
	})
	if err != nil {
		return mirrorUpstreamError(c, err)
	}
	return mirrorUpstream(c, result.StatusCode, result.ContentType, result.Body)
}

// UserPreferences godoc
// @Summary      Read one user's preferences
// @Tags         Circlo
// @Produce      json
// @Param        userId  path  string  true  "Circlo user ID"
// @Success      200  "Mirrored from Circlo"
// @Failure      401  "No Circlo credential configured"
// @Router       /circlo/user-preferences/{userId} [get]
func (p *ProxyController) UserPreferences(c *fiber.Ctx) error {
	if err := p.ready(); err != nil {
		return err
	}
	result, err := p.api.UserPreferences(c.Context(), c.Params("userId"))
	if err != nil {
		return mirrorUpstreamError(c, err)
	}
	return mirrorUpstream(c, result.StatusCode, result.ContentType, result.Body)
}

// ListUserPreferences godoc
// @Summary      Page through user preferences
// @Tags         Circlo
// @Produce      json
// @Param        page   query  int  false  "Page number (default 1)"
// @Param        limit  query  int  false  "Page size (default 10, max 100)"
// @Success      200  "Mirrored from Circlo"
// @Failure      400  "Invalid paging"
// @Failure      401  "No Circlo credential configured"
// @Router       /circlo/user-preferences [get]
func (p *ProxyController) ListUserPreferences(c *fiber.Ctx) error {
	page, limit, err := paging(c)
	if err != nil {
		return err
	}
	if err := p.ready(); err != nil {
		return err
	}
	result, err := p.api.ListUserPreferences(c.Context(), page, limit)
	if err != nil {
		return mirrorUpstreamError(c, err)
	}
	return mirrorUpstream(c, result.StatusCode, result.ContentType, result.Body)
}

// PostsByKeywords godoc
// @Summary      Search posts by keywords
// @Tags         Circlo
// @Produce      json
// @Param        keywords  query  string  true   "Comma separated keywords"
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size (default 10, max 100)"
// @Success      200  "Mirrored from Circlo"
// @Failure      400  "Missing keywords or invalid paging"
// @Failure      401  "No Circlo credential configured"
// @Router       /circlo/posts/by-keywords [get]
func (p *ProxyController) PostsByKeywords(c *fiber.Ctx) error {
	keywords := c.Query("keywords")
	if keywords == "" {
		return richerrors.Error{
			ExternalMsg: "Query parameter 'keywords' is required",
			Code:        fiber.StatusBadRequest,
		}
	}
	page, limit, err := paging(c)
	if err != nil {
		return err
	}
	if err := p.ready(); err != nil {
		return err
	}
	result, err := p.api.PostsByKeywords(c.Context(), keywords, page, limit)
	if err != nil {
		return mirrorUpstreamError(c, err)
	}
	return mirrorUpstream(c, result.StatusCode, result.ContentType, result.Body)
}

func (p *ProxyController) ready() error {
	if p.api == nil {
		return richerrors.Error{
			ExternalMsg: "No Circlo credential configured",
			Err:         circlo.ErrNoToken,
			Code:        fiber.StatusUnauthorized,
		}
	}
	return nil
}

func paging(c *fiber.Ctx) (int, int, error) {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 || limit > 100 {
		return 0, 0, richerrors.Error{
			ExternalMsg: "Page must be >= 1 and limit between 1 and 100",
			Code:        fiber.StatusBadRequest,
		}
	}
	return page, limit, nil
}
