// Package report renders workforce exports as Excel workbooks.
package report

import (
	"fmt"
	"time"

	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	excelize "github.com/xuri/excelize/v2"
)

const (
	directorySheet  = "Directory"
	departmentSheet = "Departments"
)

var directoryHeaders = []string{
	"ID", "Name", "Role", "Department", "Email",
	"Leave Used", "Leave Total", "Half Days", "Collaboration Index", "Flight Risk Score",
}

var departmentHeaders = []string{"Department", "Headcount", "Flight Risk Flags", "Pending Requests"}

type Service struct {
	repo workforce.Repository
	now  func() time.Time
}

func NewService(repo workforce.Repository, now func() time.Time) *Service {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{repo: repo, now: now}
}

// AttendanceWorkbook builds the two-sheet export: a full directory with
// per-employee stats, and a per-department rollup.
func (s *Service) AttendanceWorkbook() ([]byte, string, error) {
	employees := s.repo.List(workforce.ListFilter{})

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", directorySheet)
	if _, err := f.NewSheet(departmentSheet); err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}

	if err := s.writeDirectory(f, employees); err != nil {
		return nil, "", fmt.Errorf("write directory: %w", err)
	}
	if err := s.writeDepartments(f, employees); err != nil {
		return nil, "", fmt.Errorf("write departments: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write to buffer: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", s.now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *Service) writeDirectory(f *excelize.File, employees []workforce.Employee) error {
	if err := writeHeaders(f, directorySheet, directoryHeaders); err != nil {
		return err
	}

	for i, e := range employees {
		row := i + 2
		risk := ""
		if e.FlightRisk != nil {
			risk = fmt.Sprintf("%d", e.FlightRisk.Score)
		}
		values := []any{
			e.ID, e.Name, e.Role, string(e.Department), e.Email,
			e.Stats.LeaveBalance.Used, e.Stats.LeaveBalance.Total,
			e.HalfDays, e.Stats.CollaborationIndex, risk,
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(directorySheet, cell, val); err != nil {
				return fmt.Errorf("employee %s, col %d: %w", e.ID, col, err)
			}
		}
	}

	widths := []float64{8, 24, 26, 14, 34, 11, 11, 10, 18, 16}
	return setColumnWidths(f, directorySheet, widths)
}

func (s *Service) writeDepartments(f *excelize.File, employees []workforce.Employee) error {
	if err := writeHeaders(f, departmentSheet, departmentHeaders); err != nil {
		return err
	}

	type rollup struct {
		headcount int
		flagged   int
		pending   int
	}
	byDept := map[workforce.Department]*rollup{}
	for _, e := range employees {
		r := byDept[e.Department]
		if r == nil {
			r = &rollup{}
			byDept[e.Department] = r
		}
		r.headcount++
		if e.FlightRisk != nil {
			r.flagged++
		}
		for _, req := range e.Requests {
			if req.Status == workforce.RequestStatusPending {
				r.pending++
			}
		}
	}

	row := 2
	for _, dept := range workforce.Departments() {
		r := byDept[dept]
		if r == nil {
			continue
		}
		values := []any{string(dept), r.headcount, r.flagged, r.pending}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(departmentSheet, cell, val); err != nil {
				return err
			}
		}
		row++
	}

	return setColumnWidths(f, departmentSheet, []float64{16, 12, 18, 18})
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
