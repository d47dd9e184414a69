package agent

import (
	"fmt"
	"net/url"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

func validateEndpointURL(endpoint string) error {
	parsedURL, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid endpoint URL",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if parsedURL.Scheme != "https" {
		return richerrors.Error{
			ExternalMsg: "Endpoint URL must be HTTPS",
			Code:        fiber.StatusBadRequest,
		}
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Username is required, got '%s'", username),
			Code:        fiber.StatusBadRequest,
		}
	}
	return nil
}
