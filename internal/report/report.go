// Package report accumulates the per-category outcome of one organize run.
package report

import "sort"

// Failure records a single file whose move did not complete.
type Failure struct {
	Name string `json:"name"`
	Err  string `json:"error"`
}

// Row is one summary line: a category and how many files landed in it.
type Row struct {
	Category string `json:"category"`
	Moved    int    `json:"moved"`
}

// Report tracks what one organize run did. It lives only for the duration of
// that run.
type Report struct {
	Moved    map[string]int `json:"moved"`
	Renamed  int            `json:"renamed"`
	Failures []Failure      `json:"failures,omitempty"`
	DryRun   bool           `json:"dry_run,omitempty"`
}

// New returns an empty report.
func New() *Report {
	return &Report{Moved: make(map[string]int)}
}

// Add records one successfully moved file for the category. renamed marks a
// collision-resolved move.
func (r *Report) Add(categoryName string, renamed bool) {
	if r.Moved == nil {
		r.Moved = make(map[string]int)
	}
	r.Moved[categoryName]++
	if renamed {
		r.Renamed++
	}
}

// AddFailure records a file whose move failed.
func (r *Report) AddFailure(name string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	r.Failures = append(r.Failures, Failure{Name: name, Err: msg})
}

// Total returns the number of files moved across all categories.
func (r *Report) Total() int {
	total := 0
	for _, count := range r.Moved {
		total += count
	}
	return total
}

// Rows returns the non-zero categories sorted alphabetically.
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, len(r.Moved))
	for name, count := range r.Moved {
		if count == 0 {
			continue
		}
		rows = append(rows, Row{Category: name, Moved: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}
