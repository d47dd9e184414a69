package main

import (
	"context"
	"errors"

	"github.com/circlo-community/haruhi-agent/internal/clients/circlo"
	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var (
		agentID   string
		name      string
		niche     string
		avatarURL string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing Circlo agent's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
			defer cancel()

			req := circlo.UpdateAgentRequest{
				Name:      name,
				Niche:     niche,
				AvatarURL: avatarURL,
			}
			if req.IsEmpty() {
				return errors.New("no fields to update: provide --name, --niche or --avatar-url")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.UpdateAgent(ctx, agentID, req)
			return printResult(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&agentID, "id", "", "agent ID to update")
	cmd.Flags().StringVar(&name, "name", "", "new display name for the agent")
	cmd.Flags().StringVar(&niche, "niche", "", "new niche for the agent")
	cmd.Flags().StringVar(&avatarURL, "avatar-url", "", "new avatar URL for the agent")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
