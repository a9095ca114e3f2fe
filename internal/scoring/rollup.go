package scoring

import "slices"

// ResponseRecord is one stored survey response as seen by the rollup.
type ResponseRecord struct {
	StudentID string
	Score     Score
	Answers   Answers
}

// Member is a user row. Only students are counted in TotalStudents.
type Member struct {
	ID           string
	DepartmentID string
	IsStudent    bool
}

type Department struct {
	ID   string
	Name string
}

// DepartmentStat is the left-joined score summary of one department.
// AvgScore is on the mean scale and is 0 when the department has no responses.
type DepartmentStat struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AvgScore      float64 `json:"avg_score"`
	ResponseCount int     `json:"response_count"`
}

// Rollup is the read-side projection served on the admin dashboard.
type Rollup struct {
	TotalStudents    int              `json:"total_students"`
	TotalResponses   int              `json:"total_responses"`
	AvgScore         float64          `json:"avg_score"`
	DepartmentStats  []DepartmentStat `json:"department_stats"`
	CategoryStats    []CategoryStat   `json:"category_stats"`
	LowestDepartment *DepartmentStat  `json:"lowest_department,omitempty"`
	LowestCategory   *CategoryStat    `json:"lowest_category,omitempty"`
}

// ComputeRollup aggregates responses by department and category.
// Every department appears in DepartmentStats, in input order, even without responses.
// The lowest entries are picked by a stable ascending sort, so ties go to the earlier entry.
func ComputeRollup(responses []ResponseRecord, departments []Department, members []Member, catalog *Catalog) Rollup {
	r := Rollup{
		TotalResponses:  len(responses),
		DepartmentStats: make([]DepartmentStat, 0, len(departments)),
	}

	deptOf := make(map[string]string, len(members))
	for _, m := range members {
		if !m.IsStudent {
			continue
		}
		r.TotalStudents++
		deptOf[m.ID] = m.DepartmentID
	}

	type acc struct {
		sum   float64
		count int
	}
	perDept := map[string]*acc{}
	var total float64
	answerSets := make([]Answers, 0, len(responses))
	for _, resp := range responses {
		mean := resp.Score.Mean()
		total += mean
		answerSets = append(answerSets, resp.Answers)

		deptID, ok := deptOf[resp.StudentID]
		if !ok || deptID == "" {
			continue
		}
		a := perDept[deptID]
		if a == nil {
			a = &acc{}
			perDept[deptID] = a
		}
		a.sum += mean
		a.count++
	}
	if len(responses) > 0 {
		r.AvgScore = total / float64(len(responses))
	}

	for _, d := range departments {
		stat := DepartmentStat{ID: d.ID, Name: d.Name}
		if a := perDept[d.ID]; a != nil {
			stat.AvgScore = a.sum / float64(a.count)
			stat.ResponseCount = a.count
		}
		r.DepartmentStats = append(r.DepartmentStats, stat)
	}

	r.CategoryStats = CategoryStats(answerSets, catalog)
	r.LowestDepartment = LowestDepartment(r.DepartmentStats)
	r.LowestCategory = LowestCategory(r.CategoryStats)
	return r
}

// LowestDepartment picks the department with the smallest AvgScore; ties go to the earlier entry.
func LowestDepartment(stats []DepartmentStat) *DepartmentStat {
	return lowest(stats, func(d DepartmentStat) float64 { return d.AvgScore })
}

// LowestCategory picks the category with the smallest Average; ties go to the earlier entry.
func LowestCategory(stats []CategoryStat) *CategoryStat {
	return lowest(stats, func(c CategoryStat) float64 { return c.Average })
}

// lowest returns a copy of the first element after a stable ascending sort by key, or nil.
func lowest[T any](items []T, key func(T) float64) *T {
	if len(items) == 0 {
		return nil
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	out := sorted[0]
	return &out
}
