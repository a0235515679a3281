// Package semester maps the Chinese semester names used in training plans to
// docs folder slugs and display titles.
package semester

import "strings"

// Semester ties a plan-file semester name to its folder slug and page title.
type Semester struct {
	PlanName string
	Folder   string
	Title    string
}

// Ordered covers five academic years with three seasons each; the slice order
// is the navigation order.
var Ordered = []Semester{
	{"第一学年秋季", "fresh-autumn", "大一·秋"},
	{"第一学年春季", "fresh-spring", "大一·春"},
	{"第一学年夏季", "fresh-summer", "大一·夏"},
	{"第二学年秋季", "sophomore-autumn", "大二·秋"},
	{"第二学年春季", "sophomore-spring", "大二·春"},
	{"第二学年夏季", "sophomore-summer", "大二·夏"},
	{"第三学年秋季", "junior-autumn", "大三·秋"},
	{"第三学年春季", "junior-spring", "大三·春"},
	{"第三学年夏季", "junior-summer", "大三·夏"},
	{"第四学年秋季", "senior-autumn", "大四·秋"},
	{"第四学年春季", "senior-spring", "大四·春"},
	{"第四学年夏季", "senior-summer", "大四·夏"},
	{"第五学年秋季", "fifth-autumn", "大五·秋"},
	{"第五学年春季", "fifth-spring", "大五·春"},
	{"第五学年夏季", "fifth-summer", "大五·夏"},
}

// ByPlanName resolves a single plan-file semester name.
func ByPlanName(name string) (Semester, bool) {
	for _, s := range Ordered {
		if s.PlanName == name {
			return s, true
		}
	}
	return Semester{}, false
}

// TitleByFolder returns the display title for a folder slug, or the slug
// itself when unknown.
func TitleByFolder(folder string) string {
	for _, s := range Ordered {
		if s.Folder == folder {
			return s.Title
		}
	}
	return folder
}

// Parse splits a recommended-semester field that may hold several values
// (separated by ASCII or fullwidth commas or 、), resolving each and dropping
// duplicates and unknown names.
func Parse(recommended string) []Semester {
	var out []Semester
	seen := make(map[string]bool)

	tokens := strings.FieldsFunc(recommended, func(r rune) bool {
		return r == ',' || r == '，' || r == '、'
	})
	for _, token := range tokens {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		s, ok := ByPlanName(name)
		if !ok || seen[s.Folder] {
			continue
		}
		seen[s.Folder] = true
		out = append(out, s)
	}

	return out
}
