// Package export renders report data as Excel workbooks for download.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ClientsWorkbook builds a workbook with one row per client.
func ClientsWorkbook(clients []domain.ClientDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Clients"
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Client Name", "Payee", "Classification", "Address", "Contact",
		"Email", "Sector", "Number of Boilers", "Boiler Serial Numbers", "Burner Type",
	}
	if err := writeHeaderRow(f, sheet, headers, 1); err != nil {
		return nil, err
	}

	for i, c := range clients {
		row := i + 2
		values := []interface{}{
			c.Name, c.Payee, string(c.Classification), c.Address, c.Contact,
			c.Email, string(c.Sector), c.NumBoilers,
			strings.Join(c.BoilerSerialNumbers, ", "), string(c.BurnerType),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// SummaryWorkbook builds a workbook holding the offers/BC summary table on
// one sheet and the per-month tallies with an embedded bar chart on
// another.
func SummaryWorkbook(docType domain.DocType, summary *domain.SummaryResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	resultsSheet := "Results"
	if err := f.SetSheetName(defaultSheet, resultsSheet); err != nil {
		return nil, err
	}

	if err := writeHeaderRow(f, resultsSheet, []string{"Client", "Date", "Type", "Count", "File"}, 1); err != nil {
		return nil, err
	}
	for i, row := range summary.Rows {
		values := []interface{}{row.Client, row.Date, string(row.Type), row.Count, row.File}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	chartSheet := "By Month"
	if _, err := f.NewSheet(chartSheet); err != nil {
		return nil, err
	}
	if err := writeHeaderRow(f, chartSheet, []string{"Month", "Number of Documents"}, 1); err != nil {
		return nil, err
	}

	months := make([]string, 0, len(summary.MonthCounts))
	for month := range summary.MonthCounts {
		months = append(months, month)
	}
	sort.Strings(months)
	for i, month := range months {
		row := i + 2
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("A%d", row), month); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("B%d", row), summary.MonthCounts[month]); err != nil {
			return nil, err
		}
	}

	lastRow := len(months) + 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", chartSheet),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", chartSheet, lastRow),
				Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", chartSheet, lastRow),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: fmt.Sprintf("Summary of %s by Month", docType)},
		},
	}
	if err := f.AddChart(chartSheet, "D2", chart); err != nil {
		return nil, err
	}

	return f, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, row int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}
