package service

import (
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/scoring"
)

// Severity labels are taken from the rounded mean that is displayed next to them.
func toScoreDTO(s scoring.Score) dto.ScoreDTO {
	mean := scoring.Round1(s.Mean())
	return dto.ScoreDTO{
		Mean:       mean,
		Percentage: scoring.Round1(s.Percentage()),
		Severity:   string(scoring.ClassifyMean(mean)),
	}
}

func toCategoryDTO(c scoring.CategoryStat) dto.CategoryScoreDTO {
	return dto.CategoryScoreDTO{
		Category: c.Name,
		Average:  c.Average,
		Severity: string(scoring.ClassifyMean(c.Average)),
	}
}

func toDepartmentStatDTO(d scoring.DepartmentStat) dto.DepartmentStatDTO {
	avg := scoring.Round1(d.AvgScore)
	return dto.DepartmentStatDTO{
		ID:            d.ID,
		Name:          d.Name,
		AvgScore:      avg,
		ResponseCount: d.ResponseCount,
		Severity:      string(scoring.ClassifyMean(avg)),
	}
}

func catalogOf(questions []model.Question) *scoring.Catalog {
	entries := make([]scoring.CatalogEntry, 0, len(questions))
	for _, q := range questions {
		entries = append(entries, scoring.CatalogEntry{ID: q.ID, Category: q.Category})
	}
	return scoring.NewCatalog(entries)
}

type responseView int

const (
	viewSummary responseView = iota
	// viewBreakdown adds the live category breakdown.
	viewBreakdown
	// viewDetail adds the raw answers and the lowest category on top of viewBreakdown.
	viewDetail
)

func toResponseDTO(r *model.SurveyResponse, catalog *scoring.Catalog, view responseView) dto.SurveyResponseDTO {
	out := dto.SurveyResponseDTO{
		ID:        r.ID,
		StudentID: r.StudentID,
		Score:     toScoreDTO(r.ScoreValue()),
		CreatedAt: r.CreatedAt,
	}
	if r.Student != nil {
		out.StudentName = r.Student.Name
		out.RollNo = r.Student.Username
		out.Department = r.Student.DepartmentName()
	}
	if view == viewSummary {
		return out
	}

	answers := r.AnswerMap()
	stats := scoring.CategoryStats([]scoring.Answers{answers}, catalog)
	out.Categories = make([]dto.CategoryScoreDTO, 0, len(stats))
	for _, c := range stats {
		out.Categories = append(out.Categories, toCategoryDTO(c))
	}
	if view == viewDetail {
		out.Answers = answers
		if low := scoring.LowestCategory(stats); low != nil {
			c := toCategoryDTO(*low)
			out.LowestCategory = &c
		}
	}
	return out
}
