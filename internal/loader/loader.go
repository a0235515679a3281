// Package loader reads the training plan data repository: plan TOML files,
// the grades summary, the course-to-repo lookup table, shared category
// definitions, and the repos list. Everything is loaded up front in one pass.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
)

// GradesSummary maps course code -> plan variant key -> grade details.
type GradesSummary map[string]map[string][]model.GradeDetail

// LookupTable maps course code -> plan id (or DEFAULT) -> repo id.
type LookupTable map[string]map[string]string

// SharedCategories holds category definitions plus the repo ids whose pages
// are plain indexes without a course info block.
type SharedCategories struct {
	Categories          []model.SharedCategory `toml:"categories"`
	NoCourseInfoRepoIDs []string               `toml:"no_course_info_repo_ids"`
}

// LoadGradesSummary reads grades_summary.json from dataDir. A missing or
// unparsable file yields an empty summary.
func LoadGradesSummary(dataDir string) GradesSummary {
	content, err := os.ReadFile(filepath.Join(dataDir, "grades_summary.json"))
	if err != nil {
		return GradesSummary{}
	}

	var summary GradesSummary
	if err := json.Unmarshal(content, &summary); err != nil {
		return GradesSummary{}
	}
	return summary
}

// LoadLookupTable reads lookup_table.toml from dataDir. A missing or
// unparsable file yields an empty table.
func LoadLookupTable(dataDir string) LookupTable {
	content, err := os.ReadFile(filepath.Join(dataDir, "lookup_table.toml"))
	if err != nil {
		return LookupTable{}
	}

	var table LookupTable
	if err := toml.Unmarshal(content, &table); err != nil {
		return LookupTable{}
	}
	return table
}

// ResolveRepoID maps a course code to its repository id. Priority: exact
// plan id entry, then DEFAULT (either case), then the course code itself.
// The first key present in the mapping decides: a blank value there falls
// back to the course code, not to the next key.
func ResolveRepoID(table LookupTable, courseCode, planID string) string {
	mapping, ok := table[courseCode]
	if !ok {
		return courseCode
	}

	for _, key := range []string{planID, "DEFAULT", "default"} {
		repoID, ok := mapping[key]
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(repoID); trimmed != "" {
			return trimmed
		}
		return courseCode
	}
	return courseCode
}

// SelectGradeDetails picks the grade details for a course, most specific key
// first: {year}_{majorCode} or {year}_{majorName}, then {year}_default, then
// default. Empty detail lists do not match. Returns nil when nothing matches.
func SelectGradeDetails(summary GradesSummary, courseCode, year, majorCode, majorName string) []model.GradeDetail {
	entry, ok := summary[courseCode]
	if !ok {
		return nil
	}

	keys := []string{
		year + "_" + majorCode,
		year + "_" + majorName,
		year + "_default",
		"default",
	}
	for _, key := range keys {
		if details := entry[key]; len(details) > 0 {
			return details
		}
	}
	return nil
}

// LoadAllPlans walks the named plans subdirectory of dataDir for plan TOML
// files, resolves each course to its repository and enriches it with grade
// details. Plans come back sorted by year then major code.
func LoadAllPlans(dataDir, plansSubdir string) ([]model.Plan, error) {
	plansDir := filepath.Join(dataDir, plansSubdir)
	if _, err := os.Stat(plansDir); err != nil {
		return nil, fmt.Errorf("plans directory %s: %w", plansDir, err)
	}

	summary := LoadGradesSummary(dataDir)
	table := LoadLookupTable(dataDir)

	var plans []model.Plan
	err := filepath.Walk(plansDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || filepath.Ext(path) != ".toml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var planFile model.PlanFile
		if err := toml.Unmarshal(content, &planFile); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		pi := planFile.Info
		courses := make([]model.Course, 0, len(planFile.Courses))
		for _, c := range planFile.Courses {
			details := c.GradeDetails
			if len(details) == 0 {
				details = SelectGradeDetails(summary, c.CourseCode, pi.Year, pi.MajorCode, pi.MajorName)
			}
			courses = append(courses, model.Course{
				RepoID:              ResolveRepoID(table, c.CourseCode, pi.PlanID),
				Name:                c.CourseName,
				Credit:              c.Credit,
				AssessmentMethod:    c.AssessmentMethod,
				CourseNature:        c.CourseNature,
				RecommendedSemester: c.RecommendedYearSemester,
				Hours:               c.Hours,
				GradeDetails:        details,
			})
		}

		plans = append(plans, model.Plan{
			Year:      pi.Year,
			MajorCode: pi.MajorCode,
			MajorName: pi.MajorName,
			Courses:   courses,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Year != plans[j].Year {
			return plans[i].Year < plans[j].Year
		}
		return plans[i].MajorCode < plans[j].MajorCode
	})

	return plans, nil
}

// LoadSharedCategories reads shared_categories.toml from dataDir. A missing
// or unparsable file yields an empty config.
func LoadSharedCategories(dataDir string) SharedCategories {
	content, err := os.ReadFile(filepath.Join(dataDir, "shared_categories.toml"))
	if err != nil {
		return SharedCategories{}
	}

	var cfg SharedCategories
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return SharedCategories{}
	}
	return cfg
}

// NoCourseInfoSet returns the no_course_info repo ids as a set.
func (s SharedCategories) NoCourseInfoSet() map[string]bool {
	set := make(map[string]bool, len(s.NoCourseInfoRepoIDs))
	for _, id := range s.NoCourseInfoRepoIDs {
		set[id] = true
	}
	return set
}

// LoadReposList reads repos_list.txt from repoRoot: one repo id per line,
// whitespace trimmed, empty lines skipped. A missing file returns an empty
// set with a warning, meaning every course is processed.
func LoadReposList(repoRoot string) (map[string]bool, error) {
	path := filepath.Join(repoRoot, "repos_list.txt")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Warning: repos_list.txt not found, will process all available courses")
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	repos := map[string]bool{}
	for _, line := range strings.Split(string(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			repos[trimmed] = true
		}
	}
	return repos, nil
}
