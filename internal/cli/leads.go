package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/amocrm/internal/service"
)

func newLeadsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leads",
		Short: "Fetch all leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, leadsLogPrefix, func(ctx context.Context, s *service.Service) error {
				_, err := s.LoadLeads(ctx)
				return err
			})
		},
	}
}

func newLeadsByDateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "leads-by-date YYYY-MM-DD",
		Short:   "Fetch leads created on a day",
		Long:    "Fetch leads whose created_at falls within the given day, local time.",
		Example: "amocrm leads-by-date 2025-04-17",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, leadsLogPrefix, func(ctx context.Context, s *service.Service) error {
				_, err := s.LoadLeadsCreatedOn(ctx, args[0])
				return err
			})
		},
	}
}
