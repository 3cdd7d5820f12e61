package service

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
)

const reportSheet = "Boletim"

// writeReportWorkbook renders a report as a single-sheet xlsx workbook
func writeReportWorkbook(w io.Writer, report *dto.ReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(reportSheet, "A", "A", 32)
	f.SetColWidth(reportSheet, "B", "B", 10)
	f.SetColWidth(reportSheet, "C", "C", 28)
	f.SetColWidth(reportSheet, "D", "D", 12)
	f.SetColWidth(reportSheet, "E", "H", 10)
	f.SetColWidth(reportSheet, "I", "I", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title rows
	f.SetCellValue(reportSheet, "A1", fmt.Sprintf("Boletim: %s", report.StudentName))
	f.MergeCell(reportSheet, "A1", "I1")
	f.SetCellStyle(reportSheet, "A1", "A1", headerStyle)
	f.SetCellValue(reportSheet, "A2", fmt.Sprintf("Matrícula: %s", report.RegistrationNumber))
	f.SetCellValue(reportSheet, "C2", fmt.Sprintf("Curso: %s", report.Program))

	headers := []string{"Disciplina", "Carga horária", "Professor", "Período", "Nota 1", "Nota 2", "Nota 3", "Média", "Situação"}
	for i, h := range headers {
		f.SetCellValue(reportSheet, cell(colName(i), 4), h)
	}
	f.SetCellStyle(reportSheet, "A4", "I4", headerStyle)

	row := 5
	for _, e := range report.Courses {
		values := []interface{}{
			e.CourseName, e.CreditHours, e.ProfessorName, e.Term,
			e.Score1, e.Score2, e.Score3, e.FinalAverage, e.FinalStatus,
		}
		for i, v := range values {
			f.SetCellValue(reportSheet, cell(colName(i), row), v)
		}
		row++
	}

	return f.Write(w)
}

// writeAnnouncementCalendar renders announcements as a published iCalendar
// feed, one event per announcement on the day it was created.
func writeAnnouncementCalendar(w io.Writer, list []dto.AnnouncementResponse) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//App Scholar//Avisos//PT")
	cal.SetName("Avisos")

	for _, a := range list {
		evt := cal.AddEvent(fmt.Sprintf("aviso-%d@app-scholar", a.ID))
		evt.SetDtStampTime(a.UpdatedAt.UTC())
		evt.SetCreatedTime(a.CreatedAt.UTC())
		evt.SetModifiedAt(a.UpdatedAt.UTC())
		day := time.Date(a.CreatedAt.Year(), a.CreatedAt.Month(), a.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1))
		evt.SetSummary(a.Title)
		evt.SetDescription(a.Body)
		evt.SetProperty(ics.ComponentPropertyCategories, a.Category)
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
