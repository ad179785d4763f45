// Package report exports assessment results and learning plan progress as
// spreadsheet workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/lawrencedcodes/pathways/internal/plan"
	"github.com/lawrencedcodes/pathways/internal/recommend"
)

const (
	sheetRecommendations = "Recommendations"
	sheetPlanProgress    = "Plan Progress"
)

// WriteWorkbook writes an XLSX workbook with the user's career
// recommendations and learning plan progress to w. Either slice may be empty;
// the corresponding sheet then holds only its header row.
func WriteWorkbook(w io.Writer, recs []recommend.Recommendation, plans []plan.LearningPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetRecommendations)
	if _, err := f.NewSheet(sheetPlanProgress); err != nil {
		return fmt.Errorf("create plan sheet: %w", err)
	}

	if err := writeRecommendations(f, recs); err != nil {
		return err
	}
	if err := writePlans(f, plans); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRecommendations(f *excelize.File, recs []recommend.Recommendation) error {
	headers := []any{"Career", "Match %", "Explanation", "Generated"}
	if err := f.SetSheetRow(sheetRecommendations, "A1", &headers); err != nil {
		return fmt.Errorf("write recommendation header: %w", err)
	}

	for i, rec := range recs {
		row := []any{
			rec.CareerTitle,
			rec.MatchPercentage,
			rec.Explanation,
			rec.CreatedAt.Format("2006-01-02"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetRecommendations, cell, &row); err != nil {
			return fmt.Errorf("write recommendation row: %w", err)
		}
	}

	if err := f.SetColWidth(sheetRecommendations, "A", "A", 28); err != nil {
		return fmt.Errorf("size recommendation columns: %w", err)
	}
	return f.SetColWidth(sheetRecommendations, "C", "C", 64)
}

func writePlans(f *excelize.File, plans []plan.LearningPlan) error {
	headers := []any{"Plan", "Milestone", "Due", "Milestone Done", "Task", "Task Done"}
	if err := f.SetSheetRow(sheetPlanProgress, "A1", &headers); err != nil {
		return fmt.Errorf("write plan header: %w", err)
	}

	row := 2
	for _, p := range plans {
		for _, m := range p.Milestones {
			for _, task := range m.Tasks {
				values := []any{
					p.Title,
					m.Title,
					m.DueDate.Format("2006-01-02"),
					m.Completed,
					task.Title,
					task.Completed,
				}
				cell := fmt.Sprintf("A%d", row)
				if err := f.SetSheetRow(sheetPlanProgress, cell, &values); err != nil {
					return fmt.Errorf("write plan row: %w", err)
				}
				row++
			}
		}
	}

	if err := f.SetColWidth(sheetPlanProgress, "A", "B", 36); err != nil {
		return fmt.Errorf("size plan columns: %w", err)
	}
	return f.SetColWidth(sheetPlanProgress, "E", "E", 44)
}
