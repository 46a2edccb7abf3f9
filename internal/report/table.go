package report

import (
	"fmt"

	"github.com/castingdesk/castmatch/internal/casting"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

const noValue = "-"

// Shortlist renders the ranked results as a terminal table.
func Shortlist(results []*casting.MatchResult) string {
	headers := []string{"#", "Talent", "Score", "Gender", "Measured", "Required", "AI"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(results))
	for i, result := range results {
		gender := "match"
		if !result.GenderMatch {
			gender = "mismatch"
		}

		ai := noValue
		if result.AI != nil {
			switch {
			case result.AI.Error != "":
				ai = "error"
			case result.AI.Fit:
				ai = fmt.Sprintf("fit %.2f", result.AI.Score)
			default:
				ai = "no fit"
			}
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			result.Talent.Name,
			fmt.Sprintf("%.2f", result.OverallScore),
			gender,
			fmt.Sprintf("%d", result.MeasuredFieldCount),
			fmt.Sprintf("%d", result.RequiredFieldCount),
			ai,
		})
	}

	return renderTable(headers, rows, aligns)
}

// Breakdown renders one result's per-field parse and score trace.
func Breakdown(result *casting.MatchResult) string {
	headers := []string{"Field", "Raw", "Parsed", "Required", "Score"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight}

	rows := make([][]string, 0, len(result.FieldDetails))
	for _, detail := range result.FieldDetails {
		raw := detail.Raw.Display()
		if raw == "" {
			raw = noValue
		}

		parsed := noValue
		if detail.Parsed != nil {
			parsed = fmt.Sprintf("%g", *detail.Parsed)
		}

		score := noValue
		if detail.Score != nil {
			score = fmt.Sprintf("%.2f", *detail.Score)
		}

		required := "no"
		if detail.Required {
			required = "yes"
		}

		rows = append(rows, []string{detail.Label, raw, parsed, required, score})
	}

	return renderTable(headers, rows, aligns)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
