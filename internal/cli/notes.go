package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/amocrm/internal/service"
)

func newNotesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "notes LEAD_ID",
		Short:   "Fetch lead notes and decode onlinePBX recording links",
		Example: "amocrm notes 23745341",
		Args:    cobra.MatchAll(cobra.ExactArgs(1), leadIDArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			leadID, _ := strconv.ParseInt(args[0], 10, 64)

			return a.run(cmd, notesLogPrefix, func(ctx context.Context, s *service.Service) error {
				_, err := s.LeadRecordings(ctx, leadID)
				return err
			})
		},
	}
}

func leadIDArg(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid lead id %q", args[0])
	}

	return nil
}
