// Package export writes ranked match results to an XLSX workbook.
package export

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

const (
	summarySheet = "Summary"
	rankedSheet  = "Ranked Candidates"
	skillsSheet  = "Skill Matches"
)

// Candidate is one scored résumé. Profile may be nil when parsing never ran.
type Candidate struct {
	File    string
	Profile *resume.Profile
	Result  matching.Result
}

// Rank orders candidates by overall score, highest first. Ties keep input order.
func Rank(candidates []Candidate) []Candidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Result.OverallScore, a.Result.OverallScore)
	})
	return ranked
}

// ExportToExcel ranks candidates and writes the report to outputPath, adding
// the .xlsx extension when missing. It returns the path written.
func ExportToExcel(candidates []Candidate, req matching.Requirement, outputPath string, generated time.Time) (string, error) {
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	ranked := Rank(candidates)

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("renaming default sheet: %w", err)
	}
	if err := createSummarySheet(f, ranked, req, generated); err != nil {
		return "", fmt.Errorf("creating summary sheet: %w", err)
	}

	if _, err := f.NewSheet(rankedSheet); err != nil {
		return "", fmt.Errorf("creating ranked sheet: %w", err)
	}
	if err := createRankedSheet(f, ranked); err != nil {
		return "", fmt.Errorf("filling ranked sheet: %w", err)
	}

	if _, err := f.NewSheet(skillsSheet); err != nil {
		return "", fmt.Errorf("creating skills sheet: %w", err)
	}
	if err := createSkillsSheet(f, ranked); err != nil {
		return "", fmt.Errorf("filling skills sheet: %w", err)
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("saving %s: %w", outputPath, err)
	}
	return outputPath, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func createSummarySheet(f *excelize.File, ranked []Candidate, req matching.Requirement, generated time.Time) error {
	f.SetColWidth(summarySheet, "A", "A", 30)
	f.SetColWidth(summarySheet, "B", "B", 40)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	f.SetCellValue(summarySheet, "A1", "Résumé Match Report")
	f.SetCellStyle(summarySheet, "A1", "B1", header)
	f.MergeCell(summarySheet, "A1", "B1")

	title := req.Title
	if title == "" {
		title = resume.NotSpecified
	}
	rows := [][2]any{
		{"Job Title:", title},
		{"Generated:", generated.Format(time.RFC3339)},
		{"Total Candidates:", len(ranked)},
	}
	row := 3
	for _, r := range rows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), r[0])
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), r[1])
		row++
	}
	if len(ranked) == 0 {
		return nil
	}

	row++
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Recommendation Statistics")
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row++

	counts := map[string]int{}
	var order []string
	var total float64
	for _, c := range ranked {
		status := statusOf(c.Result)
		if _, ok := counts[status]; !ok {
			order = append(order, status)
		}
		counts[status]++
		total += c.Result.OverallScore
	}
	for _, status := range order {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), status+":")
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), counts[status])
		row++
	}
	row++

	// ranked is sorted, so the extremes sit at either end.
	stats := [][2]any{
		{"Average Score:", fmt.Sprintf("%.2f", total/float64(len(ranked)))},
		{"Highest Score:", fmt.Sprintf("%.2f", ranked[0].Result.OverallScore)},
		{"Lowest Score:", fmt.Sprintf("%.2f", ranked[len(ranked)-1].Result.OverallScore)},
	}
	for _, s := range stats {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), s[0])
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s[1])
		row++
	}
	return nil
}

var rankedHeaders = []string{
	"Rank", "File", "Name", "Email", "Overall",
	"Skills", "Experience", "Education", "Recommendation", "Insights",
}

func createRankedSheet(f *excelize.File, ranked []Candidate) error {
	f.SetColWidth(rankedSheet, "A", "A", 8)
	f.SetColWidth(rankedSheet, "B", "D", 28)
	f.SetColWidth(rankedSheet, "E", "H", 12)
	f.SetColWidth(rankedSheet, "I", "I", 20)
	f.SetColWidth(rankedSheet, "J", "J", 50)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	for i, h := range rankedHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rankedSheet, cell, h)
		f.SetCellStyle(rankedSheet, cell, cell, header)
	}

	for i, c := range ranked {
		row := i + 2
		name, email := resume.NotSpecified, resume.NotSpecified
		if c.Profile != nil {
			name, email = c.Profile.CandidateName, c.Profile.ContactInfo.Email
		}
		values := []any{
			i + 1, c.File, name, email, c.Result.OverallScore,
			subScore(c.Result.Skills != nil, func() float64 { return c.Result.Skills.Overall }),
			subScore(c.Result.Experience != nil, func() float64 { return c.Result.Experience.Score }),
			subScore(c.Result.Education != nil, func() float64 { return c.Result.Education.Score }),
			statusOf(c.Result), insightsOf(c.Result),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(rankedSheet, cell, v)
		}
	}
	return nil
}

var skillsHeaders = []string{"File", "Job Skill", "Résumé Skill", "Similarity", "Type"}

func createSkillsSheet(f *excelize.File, ranked []Candidate) error {
	f.SetColWidth(skillsSheet, "A", "C", 28)
	f.SetColWidth(skillsSheet, "D", "E", 12)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	for i, h := range skillsHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(skillsSheet, cell, h)
		f.SetCellStyle(skillsSheet, cell, cell, header)
	}

	row := 2
	for _, c := range ranked {
		if c.Result.Skills == nil {
			continue
		}
		for _, m := range c.Result.Skills.MatchedSkills {
			values := []any{c.File, m.JobSkill, m.ResumeSkill, m.Similarity, string(m.Type)}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(skillsSheet, cell, v)
			}
			row++
		}
	}
	return nil
}

func subScore(ok bool, get func() float64) any {
	if !ok {
		return ""
	}
	return get()
}

func statusOf(r matching.Result) string {
	if r.Error != "" {
		return "Error"
	}
	if r.Recommendation == nil {
		return resume.NotSpecified
	}
	return r.Recommendation.Status
}

func insightsOf(r matching.Result) string {
	if r.Error != "" {
		return r.Error
	}
	if r.Recommendation == nil {
		return ""
	}
	return strings.Join(r.Recommendation.Insights, "; ")
}
