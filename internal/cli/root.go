package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/amocrm/internal/clients/amocrm"
	"github.com/samandr77/microservices/amocrm/internal/service"
	"github.com/samandr77/microservices/amocrm/pkg/config"
	"github.com/samandr77/microservices/amocrm/pkg/logger"
	"github.com/samandr77/microservices/amocrm/pkg/security"
)

const (
	leadsLogPrefix = ""
	notesLogPrefix = "info_"
)

type app struct {
	fs      afero.Fs
	envPath string
}

// NewRoot builds the amocrm command. Log files are written to fs.
func NewRoot(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:           "amocrm",
		Short:         "Pull leads and notes from amoCRM",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.envPath, "env", ".env", "path to the .env file")

	root.AddCommand(
		newLeadsCommand(a),
		newLeadsByDateCommand(a),
		newNotesCommand(a),
	)

	return root
}

// run loads the configuration, builds the logger and the service and runs fn.
// An error returned by fn is logged and swallowed: the run ends, the process does not fail.
func (a *app) run(cmd *cobra.Command, logPrefix string, fn func(ctx context.Context, s *service.Service) error) error {
	cfg, err := config.New(a.envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	file := logger.NewDailyFileHandler(a.fs, cfg.Logger.Dir, logPrefix)

	l, err := logger.New(cmd.OutOrStdout(), cfg.Logger.Level, cfg.Logger.Format, file)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := logger.WithRequestID(cmd.Context(), uuid.Must(uuid.NewV4()).String())

	checkToken(ctx, l, cfg.AmoCRM.Token)

	l.InfoContext(ctx, fmt.Sprintf("Fetching leads from %s at %s", cfg.AmoCRM.Domain, time.Now().Format(time.DateTime)))

	s := service.New(amocrm.NewClient(cfg.AmoCRM), l)

	err = fn(ctx, s)
	if err != nil {
		l.ErrorContext(ctx, "Error: "+err.Error())
	}

	return nil
}

func checkToken(ctx context.Context, l *slog.Logger, token string) {
	exp, err := security.TokenExpiresAt(token)
	if err != nil {
		l.DebugContext(ctx, "token expiry unknown", "error", err)
		return
	}

	if time.Now().After(exp) {
		l.WarnContext(ctx, "Warning: access token expired at "+exp.Format(time.DateTime))
	}
}
