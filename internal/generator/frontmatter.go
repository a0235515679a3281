package generator

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
)

// Frontmatter is the YAML header of a generated course page.
type Frontmatter struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Course      CourseMeta `yaml:"course"`
}

// CourseMeta carries the structured course attributes the site renders in
// the CourseInfo component.
type CourseMeta struct {
	Credit           uint32       `yaml:"credit"`
	AssessmentMethod string       `yaml:"assessmentMethod"`
	CourseNature     string       `yaml:"courseNature"`
	HourDistribution HourMeta     `yaml:"hourDistribution"`
	GradingScheme    []GradingItem `yaml:"gradingScheme"`
}

// HourMeta splits total hours by activity; absent values render as 0.
type HourMeta struct {
	Theory   uint32 `yaml:"theory"`
	Lab      uint32 `yaml:"lab"`
	Practice uint32 `yaml:"practice"`
	Exercise uint32 `yaml:"exercise"`
	Computer uint32 `yaml:"computer"`
	Tutoring uint32 `yaml:"tutoring"`
}

// GradingItem is one grading component with a parsed percentage.
type GradingItem struct {
	Name    string `yaml:"name"`
	Percent uint32 `yaml:"percent"`
}

// String renders the frontmatter as a fenced YAML block.
func (f Frontmatter) String() string {
	out, err := yaml.Marshal(f)
	if err != nil {
		return "---\ntitle: ''\ndescription: ''\n---"
	}
	return "---\n" + string(out) + "---"
}

// parsePercent turns "70%" into 70. Unparsable strings become 0.
func parsePercent(s string) uint32 {
	n, err := strconv.ParseUint(strings.TrimSuffix(strings.TrimSpace(s), "%"), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// gradingScheme converts grade details, dropping entries whose percent is
// zero or unparsable.
func gradingScheme(details []model.GradeDetail) []GradingItem {
	var items []GradingItem
	for _, d := range details {
		if d.Percent == nil {
			continue
		}
		if percent := parsePercent(*d.Percent); percent > 0 {
			items = append(items, GradingItem{Name: d.Name, Percent: percent})
		}
	}
	return items
}

func u32OrZero(v *uint32) uint32 {
	if v == nil {
		return 0
	}
	return *v
}

// buildFrontmatter assembles a course page header from plan data.
func buildFrontmatter(title string, course model.Course) string {
	var credit uint32
	if course.Credit != nil {
		credit = uint32(*course.Credit)
	}

	var hours HourMeta
	if h := course.Hours; h != nil {
		hours = HourMeta{
			Theory:   u32OrZero(h.Theory),
			Lab:      u32OrZero(h.Lab),
			Practice: u32OrZero(h.Practice),
			Exercise: u32OrZero(h.Exercise),
			Computer: u32OrZero(h.Computer),
			Tutoring: u32OrZero(h.Tutoring),
		}
	}

	fm := Frontmatter{
		Title: title,
		Course: CourseMeta{
			Credit:           credit,
			AssessmentMethod: strOrEmpty(course.AssessmentMethod),
			CourseNature:     strOrEmpty(course.CourseNature),
			HourDistribution: hours,
			GradingScheme:    gradingScheme(course.GradeDetails),
		},
	}
	return fm.String()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
