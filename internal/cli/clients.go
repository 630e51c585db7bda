package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/services"
	"github.com/SscSPs/multinav_crm/internal/export"
)

// ExportClientsCmd returns the export-clients command
func ExportClientsCmd(dbPath func() string) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export-clients",
		Short: "Write every client to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd.Context(), dbPath())
			if err != nil {
				return err
			}
			defer s.Close()

			clients, err := services.NewClientService(s.repos.ClientRepo, services.WithClock(nowFunc)).ListClients(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			if err := export.WriteClientsCSV(f, clients, nowFunc()); err != nil {
				f.Close()
				return fmt.Errorf("failed to write clients: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			success.Fprintf(cmd.OutOrStdout(), "✓ %d clients written to %s\n", len(clients), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", export.ClientsCSVFileName, "CSV file to write")
	return cmd
}

// ImportClientsCmd returns the import-clients command
func ImportClientsCmd(dbPath func() string) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import-clients",
		Short: "Load clients from a CSV export",
		Long: `Load clients from a file in the export-clients format. Rows without an ID
get a new one; rows whose ID already exists are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", inPath, err)
			}
			defer f.Close()
			clients, err := export.ParseClientsCSV(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", inPath, err)
			}

			s, err := openStore(cmd.Context(), dbPath())
			if err != nil {
				return err
			}
			defer s.Close()

			var imported, skipped int
			now := nowFunc().UTC()
			for _, c := range clients {
				if c.ID == "" {
					c.ID = uuid.NewString()
				}
				c.CreatedAt = now
				err := s.repos.ClientRepo.SaveClient(cmd.Context(), c)
				if errors.Is(err, apperrors.ErrDuplicate) {
					skipped++
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to save client %s: %w", c.ID, err)
				}
				imported++
			}

			out := cmd.OutOrStdout()
			success.Fprintf(out, "✓ %d clients imported\n", imported)
			if skipped > 0 {
				muted.Fprintf(out, "  %d already present, skipped\n", skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", export.ClientsCSVFileName, "CSV file to read")
	return cmd
}
