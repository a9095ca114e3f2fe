package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
)

type InsightService interface {
	// Generate asks the text generator for recommendations targeting the weakest category and department.
	Generate(ctx context.Context) (*dto.InsightResponse, error)
}

type insightService struct {
	analytics AnalyticsService
	generator TextGenerator
	now       func() time.Time
}

// NewInsightService accepts a nil generator; Generate then returns ErrInsightUnavailable.
func NewInsightService(analytics AnalyticsService, generator TextGenerator) InsightService {
	return &insightService{analytics: analytics, generator: generator, now: time.Now}
}

func (s *insightService) Generate(ctx context.Context) (*dto.InsightResponse, error) {
	if s.generator == nil {
		return nil, ErrInsightUnavailable
	}
	r, err := s.analytics.Rollup(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.InsightResponse{GeneratedAt: s.now().UTC(), Recommendations: []string{}}
	if r.LowestCategory != nil {
		out.LowestCategory = r.LowestCategory.Name
	}
	if r.LowestDepartment != nil {
		out.LowestDepartment = r.LowestDepartment.Name
	}
	if r.TotalResponses == 0 {
		out.Summary = "No survey responses have been collected yet."
		return out, nil
	}

	raw, err := s.generator.GenerateText(ctx, buildInsightPrompt(r))
	if err != nil {
		log.Error().Err(err).Msg("Insight generation failed")
		return nil, NewBadGatewayError("insight generation failed")
	}
	summary, recs, err := parseInsight(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse insight response, returning raw text")
		out.Summary = strings.TrimSpace(raw)
		return out, nil
	}
	out.Summary = summary
	out.Recommendations = recs
	return out, nil
}

func buildInsightPrompt(r *scoring.Rollup) string {
	var b strings.Builder
	b.WriteString("You are advising a college administration on student well-being.\n")
	b.WriteString("Scores are averages of 1-5 Likert answers; higher is happier.\n\n")
	fmt.Fprintf(&b, "Responses: %d of %d students. Overall average: %.1f (%s).\n",
		r.TotalResponses, r.TotalStudents, r.AvgScore, scoring.ClassifyMean(r.AvgScore))

	b.WriteString("\nCategory averages:\n")
	for _, c := range r.CategoryStats {
		fmt.Fprintf(&b, "- %s: %.1f (%s)\n", c.Name, c.Average, scoring.ClassifyMean(c.Average))
	}
	b.WriteString("\nDepartment averages:\n")
	for _, d := range r.DepartmentStats {
		if d.ResponseCount == 0 {
			fmt.Fprintf(&b, "- %s: no responses\n", d.Name)
			continue
		}
		fmt.Fprintf(&b, "- %s: %.1f from %d responses\n", d.Name, d.AvgScore, d.ResponseCount)
	}
	if r.LowestCategory != nil {
		fmt.Fprintf(&b, "\nLowest category: %s.\n", r.LowestCategory.Name)
	}
	if r.LowestDepartment != nil {
		fmt.Fprintf(&b, "Lowest department: %s.\n", r.LowestDepartment.Name)
	}

	b.WriteString(`
Format your response strictly as:
Summary: [two sentences on the overall picture]
Recommendations:
- [concrete action]
- [concrete action]
- [concrete action]
`)
	return b.String()
}

// parseInsight splits a "Summary:" line and a "Recommendations:" bullet list.
func parseInsight(raw string) (summary string, recs []string, err error) {
	const summaryPrefix = "Summary:"
	const recsPrefix = "Recommendations:"

	si := strings.Index(raw, summaryPrefix)
	if si == -1 {
		return "", nil, fmt.Errorf("response does not contain %q", summaryPrefix)
	}
	rest := raw[si+len(summaryPrefix):]
	ri := strings.Index(rest, recsPrefix)
	if ri == -1 {
		return strings.TrimSpace(rest), []string{}, nil
	}
	summary = strings.TrimSpace(rest[:ri])

	recs = []string{}
	for _, line := range strings.Split(rest[ri+len(recsPrefix):], "\n") {
		line = stripBullet(strings.TrimSpace(line))
		if line != "" {
			recs = append(recs, line)
		}
	}
	return summary, recs, nil
}

// stripBullet removes a leading "-", "*" or "1." / "1)" marker.
func stripBullet(line string) string {
	for _, marker := range []string{"-", "*", "•"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
