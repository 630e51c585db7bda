// Package cli implements multinavctl, the offline operator tool. Every
// command works against a SQLite snapshot of the CRM data and runs with full
// access, like an administrator.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/core/services"
	"github.com/SscSPs/multinav_crm/internal/repositories/database/sqlite"
)

const defaultDBPath = "multinav.db"

var (
	heading = color.New(color.FgHiCyan, color.Bold)
	success = color.New(color.FgHiGreen)
	muted   = color.New(color.FgHiBlack)
)

// nowFunc is the clock used for ages and report stamps.
var nowFunc = time.Now

// NewRootCmd builds the multinavctl command tree.
func NewRootCmd(version string) *cobra.Command {
	var (
		dbPath  string
		verbose bool
	)
	rootCmd := &cobra.Command{
		Use:           "multinavctl",
		Short:         "Offline reporting for the MultiNav CRM",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `multinavctl runs program reports and exports against a SQLite snapshot
of the CRM data, without the API server.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "path to the SQLite snapshot")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")

	path := func() string { return dbPath }
	rootCmd.AddCommand(InitCmd(path))
	rootCmd.AddCommand(CapabilitiesCmd())
	rootCmd.AddCommand(OverviewCmd(path))
	rootCmd.AddCommand(StaffReportCmd(path))
	rootCmd.AddCommand(ExportClientsCmd(path))
	rootCmd.AddCommand(ImportClientsCmd(path))
	return rootCmd
}

// store is an open snapshot and the repositories over it.
type store struct {
	db    *sql.DB
	repos portsrepo.RepositoryProvider
}

func openStore(ctx context.Context, path string) (*store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := sqlite.InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &store{db: db, repos: sqlite.NewRepositoryProvider(db)}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) reporting() portssvc.ReportingService {
	return services.NewReportingService(s.repos, services.WithReportingClock(nowFunc))
}
