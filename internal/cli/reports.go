package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/export"
)

// OverviewCmd returns the overview command
func OverviewCmd(dbPath func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the program dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd.Context(), dbPath())
			if err != nil {
				return err
			}
			defer s.Close()

			report, err := s.reporting().Overview(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("failed to build overview: %w", err)
			}
			printOverview(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printOverview(out io.Writer, r *domain.OverviewReport) {
	heading.Fprintln(out, "Program overview")
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Clients\t%d\n", r.TotalClients)
	fmt.Fprintf(w, "Activities\t%d\n", r.TotalActivities)
	fmt.Fprintf(w, "Total FTE\t%s\n", r.TotalFTE.StringFixed(2))
	w.Flush()

	fmt.Fprintln(out)
	heading.Fprintln(out, "Ethnicity")
	printCounts(out, r.EthnicityDistribution)

	fmt.Fprintln(out)
	heading.Fprintln(out, "Top navigation assistance")
	printCounts(out, r.TopNavigation)

	fmt.Fprintln(out)
	heading.Fprintf(out, "Population pyramid (scale %d)\n", r.PyramidScale)
	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "AGE\tMALE\tFEMALE")
	fmt.Fprintln(w, "---\t----\t------")
	for _, row := range r.PopulationPyramid {
		fmt.Fprintf(w, "%s\t%d\t%d\n", row.Bracket, -row.Male, row.Female)
	}
	w.Flush()
}

func printCounts(out io.Writer, counts []domain.Count) {
	if len(counts) == 0 {
		muted.Fprintln(out, "  (none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s\t%d\n", c.Key, c.Count)
	}
	w.Flush()
}

// StaffReportCmd returns the staff-report command
func StaffReportCmd(dbPath func() string) *cobra.Command {
	var from, to, region, outPath string
	cmd := &cobra.Command{
		Use:   "staff-report",
		Short: "Print per-staff KPIs for a period",
		Long: `Print per-staff KPIs for a period. With --out the report is also written
as an Excel workbook; a directory gets the default file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := dto.ReportQuery{StartDate: from, EndDate: to, Region: region}.ToCriteria()
			if err != nil {
				return err
			}

			s, err := openStore(cmd.Context(), dbPath())
			if err != nil {
				return err
			}
			defer s.Close()

			report, err := s.reporting().StaffPerformance(cmd.Context(), nil, criteria)
			if err != nil {
				return fmt.Errorf("failed to build staff report: %w", err)
			}
			out := cmd.OutOrStdout()
			printStaffReport(out, report)

			if outPath == "" {
				return nil
			}
			if info, err := os.Stat(outPath); err == nil && info.IsDir() {
				outPath = filepath.Join(outPath, export.StaffWorkbookFileName(report))
			}
			workbook, err := export.StaffWorkbook(report)
			if err != nil {
				return fmt.Errorf("failed to render workbook: %w", err)
			}
			if err := os.WriteFile(outPath, workbook, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintln(out)
			success.Fprintf(out, "✓ Workbook written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&region, "region", "", "North, South or all")
	cmd.Flags().StringVar(&outPath, "out", "", "write the report as .xlsx to this path")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func printStaffReport(out io.Writer, r *domain.StaffPerformanceReport) {
	heading.Fprintf(out, "Staff performance %s to %s\n", r.Start.Format(dto.DateLayout), r.End.Format(dto.DateLayout))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE\tACTIVITIES\tCLIENTS\tDISCHARGES\tPER DAY")
	fmt.Fprintln(w, "----\t----\t----------\t-------\t----------\t-------")
	for _, row := range r.Rollups {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			row.Name, row.Role, row.TotalActivities, row.ClientsServed, row.Discharges, row.AveragePerDay.StringFixed(2))
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d activities, %d clients, %d staff, %s per staff\n",
		r.Overall.TotalActivities, r.Overall.TotalClients, r.Overall.TotalStaff, r.Overall.AveragePerStaff.StringFixed(1))
}
