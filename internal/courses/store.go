package courses

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// untitledCourse is substituted when a course has no usable title.
const untitledCourse = "Untitled Course"

// Source is one raw course row as loaded from the corpus, before any
// display cleaning. Description feeds the vector space; the remaining
// fields are display-only.
type Source struct {
	Title        string
	Instructor   string
	Organization string
	Level        string
	Enrolled     string
	Rating       string
	URL          string
	Description  string
}

// Store holds the course corpus. Row order defines the index space used
// by the recommender and lookup. The store is loaded once at startup and
// read-only afterwards.
type Store struct {
	courses []Source
}

// NewStore builds a Store from raw course rows.
func NewStore(courses []Source) (*Store, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("course corpus is empty")
	}
	return &Store{courses: courses}, nil
}

// LoadCSV reads the course corpus from a CSV file with a header row.
// Column lookup is case-insensitive; a description column is required,
// every other column is optional and resolves to the unknown sentinel at
// fetch time. Columns produced by dataframe exports ("Unnamed: 0") are
// ignored.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course corpus %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse course corpus %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("course corpus %s has no data rows", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if strings.HasPrefix(name, "unnamed") {
			continue
		}
		columns[name] = i
	}
	if _, ok := columns["description"]; !ok {
		return nil, fmt.Errorf("course corpus %s has no description column", path)
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	courses := make([]Source, 0, len(rows)-1)
	for _, row := range rows[1:] {
		courses = append(courses, Source{
			Title:        field(row, "title"),
			Instructor:   field(row, "instructor"),
			Organization: field(row, "organization"),
			Level:        field(row, "level"),
			Enrolled:     field(row, "enrolled"),
			Rating:       field(row, "rating"),
			URL:          field(row, "url"),
			Description:  field(row, "description"),
		})
	}

	return NewStore(courses)
}

// Size returns the number of courses in the corpus.
func (s *Store) Size() int {
	return len(s.courses)
}

// Descriptions returns every course description in corpus order, for
// building the vector space.
func (s *Store) Descriptions() []string {
	out := make([]string, len(s.courses))
	for i, course := range s.courses {
		out[i] = course.Description
	}
	return out
}

// Fetch returns display-ready records for the valid indices, preserving
// input order. Indices outside [0, Size) are filtered silently; the
// second return value counts how many were dropped so callers can warn
// the user. Every field passes through sentinel cleaning.
func (s *Store) Fetch(indices []int) ([]types.CourseRecord, int) {
	records := make([]types.CourseRecord, 0, len(indices))
	dropped := 0

	for _, idx := range indices {
		if idx < 0 || idx >= len(s.courses) {
			dropped++
			continue
		}
		records = append(records, s.record(idx))
	}

	return records, dropped
}

// record builds the cleaned, display-ready view of one course row.
func (s *Store) record(idx int) types.CourseRecord {
	course := s.courses[idx]

	title := CleanValue(course.Title)
	if title == types.UnknownValue {
		title = untitledCourse
	}

	return types.CourseRecord{
		Index:        idx,
		Title:        title,
		Instructor:   CleanValue(course.Instructor),
		Organization: CleanValue(course.Organization),
		Level:        CleanValue(course.Level),
		Enrolled:     FormatEnrolled(course.Enrolled),
		Rating:       FormatRating(course.Rating),
		URL:          CleanURL(course.URL),
	}
}

// Get returns the cleaned record for a single index.
func (s *Store) Get(idx int) (types.CourseRecord, bool) {
	if idx < 0 || idx >= len(s.courses) {
		return types.CourseRecord{}, false
	}
	return s.record(idx), true
}
