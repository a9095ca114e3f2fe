package scoring

import "sort"

// CatalogEntry is the part of a question the aggregator needs.
type CatalogEntry struct {
	ID       string
	Category string
}

// Catalog is a snapshot of the question catalog, active and inactive questions alike.
// Lookups are weak references: a miss means the question is gone, not that data is corrupt.
type Catalog struct {
	byID map[string]string
	rank map[string]int
}

func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{byID: make(map[string]string, len(entries)), rank: map[string]int{}}
	for _, e := range entries {
		c.byID[e.ID] = e.Category
		if _, seen := c.rank[e.Category]; !seen {
			c.rank[e.Category] = len(c.rank)
		}
	}
	return c
}

// Lookup resolves a question id to its category.
func (c *Catalog) Lookup(questionID string) (category string, ok bool) {
	if c == nil {
		return "", false
	}
	category, ok = c.byID[questionID]
	return category, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// Categories lists category names in order of first appearance in the catalog.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.rank))
	for name, i := range c.rank {
		out[i] = name
	}
	return out
}

// CategoryStat is the mean of all resolved answers in one category.
type CategoryStat struct {
	Name        string  `json:"name"`
	Average     float64 `json:"average"`
	AnswerCount int     `json:"answer_count"`
}

type tally struct {
	sum   int
	count int
}

// CategoryStats pools the answers of every response and averages them per category.
// Keys that do not resolve against the catalog are dropped. Output follows catalog order.
func CategoryStats(responses []Answers, catalog *Catalog) []CategoryStat {
	totals := map[string]*tally{}
	for _, answers := range responses {
		for key, v := range answers {
			id, ok := QuestionID(key)
			if !ok {
				continue
			}
			category, ok := catalog.Lookup(id)
			if !ok {
				continue
			}
			t := totals[category]
			if t == nil {
				t = &tally{}
				totals[category] = t
			}
			t.sum += v
			t.count++
		}
	}

	out := make([]CategoryStat, 0, len(totals))
	for name, t := range totals {
		out = append(out, CategoryStat{
			Name:        name,
			Average:     Round1(float64(t.sum) / float64(t.count)),
			AnswerCount: t.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return catalog.rank[out[i].Name] < catalog.rank[out[j].Name]
	})
	return out
}

// CategoryBreakdown maps category name to the rounded mean of one response's resolved answers.
// Categories without a resolved answer are absent.
func CategoryBreakdown(answers Answers, catalog *Catalog) map[string]float64 {
	stats := CategoryStats([]Answers{answers}, catalog)
	out := make(map[string]float64, len(stats))
	for _, s := range stats {
		out[s.Name] = s.Average
	}
	return out
}
