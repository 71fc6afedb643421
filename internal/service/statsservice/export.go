package statsservice

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

const exportSheet = "Engineers"

var exportHeaders = []interface{}{
	"Engineer ID", "Engineer", "Sessions", "Completed orders", "Regular hours", "Overtime hours",
	"Total hours", "Earnings", "Zone surcharges", "Car payments", "Organization payments", "Profit",
}

// ExportFilename names the workbook produced for a period.
func ExportFilename(p Period) string {
	return fmt.Sprintf("engineers-%s.xlsx", p)
}

// ExportEngineers writes the engineers report as an XLSX workbook. The last
// row carries the period totals.
func (s *Service) ExportEngineers(ctx context.Context, sess access.Session, p Period, include domain.StatsInclusion, w io.Writer) error {
	report, err := s.Engineers(ctx, sess, p, include)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "L1", bold); err != nil {
		return err
	}

	for i, e := range report.Engineers {
		row := totalsRow(e.EngineerID, e.FullName, e.PeriodTotals)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	last := len(report.Engineers) + 2
	total := totalsRow(0, "Total", report.Totals)
	total[0] = ""
	cell, _ := excelize.CoordinatesToCellName(1, last)
	if err := f.SetSheetRow(exportSheet, cell, &total); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(len(exportHeaders), last)
	if err := f.SetCellStyle(exportSheet, cell, end, bold); err != nil {
		return err
	}

	_ = f.SetColWidth(exportSheet, "B", "B", 30)
	_ = f.SetColWidth(exportSheet, "C", "L", 18)

	return f.Write(w)
}

func totalsRow(engineerID int, name string, t domain.PeriodTotals) []interface{} {
	return []interface{}{
		engineerID,
		name,
		t.Sessions,
		t.CompletedOrders,
		t.RegularHours.InexactFloat64(),
		t.OvertimeHours.InexactFloat64(),
		t.TotalHours.InexactFloat64(),
		t.EngineerEarnings.InexactFloat64(),
		t.ZoneSurcharges.InexactFloat64(),
		t.CarEarnings.InexactFloat64(),
		t.OrganizationPayments.InexactFloat64(),
		t.Profit.InexactFloat64(),
	}
}
