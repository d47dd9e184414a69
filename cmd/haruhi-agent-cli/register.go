package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/circlo-community/haruhi-agent/internal/clients/circlo"
	"github.com/circlo-community/haruhi-agent/internal/config"
	"github.com/spf13/cobra"
)

const registerTimeout = 20 * time.Second

func registerCmd() *cobra.Command {
	var (
		endpoint  string
		username  string
		name      string
		niche     string
		avatarURL string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the agent on Circlo",
		Long: `Registers the Haruhi agent on Circlo, pointing the platform at the
webhook endpoint where conversation payloads should be delivered.

A single request is made; if it fails, the upstream response is printed
and the command exits non-zero so the operator can retry manually.
Repeated successful calls may create duplicate registrations, since
Circlo does not dedupe them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
			defer cancel()

			if err := checkEndpoint(endpoint); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if name == "" {
				name = circlo.DefaultAgentName
			}
			if niche == "" {
				niche = circlo.DefaultNiche
			}
			if avatarURL == "" {
				avatarURL = circlo.DefaultAvatarURL(name)
			}

			result, err := client.CreateAgent(ctx, circlo.CreateAgentRequest{
				Name:      name,
				Username:  username,
				Niche:     niche,
				AvatarURL: avatarURL,
				Endpoint:  endpoint,
			})
			return printResult(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "",
		"public HTTPS endpoint for the agent webhook (e.g. an ngrok URL)")
	cmd.Flags().StringVar(&username, "username", "",
		"unique username for the agent on Circlo")
	cmd.Flags().StringVar(&name, "name", "",
		"display name for the agent (default: \"Haruhi Agent\")")
	cmd.Flags().StringVar(&niche, "niche", circlo.DefaultNiche,
		"niche/category for the agent")
	cmd.Flags().StringVar(&avatarURL, "avatar-url", "",
		"avatar URL for the agent (default: generated from the display name)")
	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

// newClient resolves the credential and builds a Circlo client. The token
// check happens here, before any outbound call.
func newClient() (*circlo.Client, error) {
	settings, err := env.LoadSettings[config.Settings](envFile)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	logger := logging.GetAndSetDefaultLogger("haruhi-agent-cli")
	return circlo.New(settings.BaseURL(), settings.ResolveToken(), logger)
}

func checkEndpoint(endpoint string) error {
	parsedURL, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if parsedURL.Scheme != "https" {
		return fmt.Errorf("endpoint URL must be HTTPS, got %q", endpoint)
	}
	return nil
}

// printResult prints the upstream status and body. The body is always shown
// verbatim; on failure it goes to stderr and the command exits non-zero.
func printResult(cmd *cobra.Command, result *circlo.Result, err error) error {
	if err != nil {
		if upstreamErr, ok := circlo.AsUpstreamError(err); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Status: %d\n%s\n", upstreamErr.StatusCode, upstreamErr.Body)
			return fmt.Errorf("circlo rejected the request with status %d", upstreamErr.StatusCode)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Status: %d\n%s\n", result.StatusCode, result.Body)
	return nil
}
