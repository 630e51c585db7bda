package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

const (
	SummarySheetName  = "Staff KPI Summary"
	ActivitySheetName = "Detailed Activities"
	listSeparator     = ", "
)

var summaryHeader = []string{
	"Staff Name", "Email", "Role", "Assigned Locations", "Activity Locations",
	"Total Activities", "Navigation Assistance", "Services Accessed", "Discharges",
	"Clients Served", "Average Per Day", "Appointment Scheduling",
	"Medicare Enrollment", "Care Coordination", "Mental Health Services", "GP Services",
}

var summaryWidths = []float64{25, 30, 14, 28, 28, 16, 22, 18, 12, 15, 16, 22, 20, 18, 22, 14}

var activityHeader = []string{
	"Date", "Staff Name", "Staff Email", "Location", "Client ID", "Client Name",
	"Navigation Assistance", "Services Accessed", "Is Discharge", "Follow Up Actions",
}

var activityWidths = []float64{12, 25, 30, 14, 12, 25, 40, 40, 12, 40}

// StaffWorkbookFileName returns the download name for a report window.
func StaffWorkbookFileName(report *domain.StaffPerformanceReport) string {
	return fmt.Sprintf("Staff_Performance_Report_%s_to_%s.xlsx",
		report.Start.Format(dto.DateLayout), report.End.Format(dto.DateLayout))
}

// StaffWorkbook renders the staff performance report as an xlsx workbook with
// a KPI summary sheet and a detailed activity sheet.
func StaffWorkbook(report *domain.StaffPerformanceReport) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SummarySheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(ActivitySheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	summaryRows := make([][]any, 0, len(report.Rollups))
	for _, r := range report.Rollups {
		summaryRows = append(summaryRows, []any{
			r.Name,
			r.Email,
			string(r.Role),
			strings.Join(r.AssignedLocations, listSeparator),
			strings.Join(r.ActivityLocations, listSeparator),
			r.TotalActivities,
			r.NavigationItems,
			r.ServiceItems,
			r.Discharges,
			r.ClientsServed,
			r.AveragePerDay.InexactFloat64(),
			r.Breakdown.AppointmentScheduling,
			r.Breakdown.MedicareEnrollment,
			r.Breakdown.CareCoordination,
			r.Breakdown.MentalHealthServices,
			r.Breakdown.GPServices,
		})
	}
	if err := writeSheet(f, SummarySheetName, summaryHeader, summaryWidths, summaryRows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	activityRows := make([][]any, 0, len(report.Activities))
	for _, a := range report.Activities {
		discharge := "No"
		if a.IsDischarge {
			discharge = "Yes"
		}
		activityRows = append(activityRows, []any{
			a.Date.Format(dto.DateLayout),
			a.StaffName,
			a.StaffEmail,
			a.Location,
			a.ClientID,
			a.ClientName,
			strings.Join(a.NavigationAssistance, listSeparator),
			strings.Join(a.ServicesAccessed, listSeparator),
			discharge,
			a.FollowUpActions,
		})
	}
	if err := writeSheet(f, ActivitySheetName, activityHeader, activityWidths, activityRows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, widths []float64, rows [][]any, headerStyle int) error {
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+2, sheet, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
