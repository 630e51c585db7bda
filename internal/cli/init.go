package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// InitCmd returns the init command
func InitCmd(dbPath func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the snapshot schema",
		Long:  `Create the SQLite snapshot file and its tables. Existing data is left untouched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing snapshot at %s\n", dbPath())

			s, err := openStore(cmd.Context(), dbPath())
			if err != nil {
				return err
			}
			defer s.Close()

			success.Fprintln(out, "✓ Snapshot initialized")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  multinavctl import-clients --in clients.csv")
			fmt.Fprintln(out, "  multinavctl overview")
			return nil
		},
	}
}

// CapabilitiesCmd returns the capabilities command
func CapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities <role>",
		Short: "List the surfaces a role may open",
		Long:  `List the navigation surfaces a staff role may open. Unknown roles get none.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			role := domain.Role(args[0])
			caps := analytics.ScopeNavigation(role).List()

			heading.Fprintf(out, "Capabilities for %s\n", role)
			if !role.IsValid() {
				muted.Fprintln(out, "(unknown role, no access)")
				return nil
			}
			for _, c := range caps {
				fmt.Fprintf(out, "  %s\n", c)
			}
			return nil
		},
	}
}
