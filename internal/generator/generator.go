// Package generator assembles the Fumadocs content tree: one MDX page per
// course, semester and category index pages, and meta.json navigation files,
// laid out as docs/<year>/<major>/<semester-or-category>/<repo>.mdx.
package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/loader"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/semester"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/tree"
)

// Params bundles everything page generation needs.
type Params struct {
	Plans            []model.Plan
	SharedCategories []model.SharedCategory
	NoCourseInfo     map[string]bool
	GradesSummary    loader.GradesSummary
	ReposDir         string
	DocsDir          string
	ReposSet         map[string]bool
	FilesHost        string
	Mirror           tree.Mirror
}

// card is one entry of a Cards index page.
type card struct {
	title string
	href  string
}

// majorMeta is the meta.json layout for a major (and special category) root.
type majorMeta struct {
	Title       string   `json:"title"`
	Root        bool     `json:"root"`
	DefaultOpen bool     `json:"defaultOpen"`
	Pages       []string `json:"pages"`
}

type yearMeta struct {
	Title string `json:"title"`
}

// includeRepo applies the repos_list filter; an empty set admits everything.
func includeRepo(set map[string]bool, repoID string) bool {
	return len(set) == 0 || set[repoID]
}

// fileTreeSection renders the download section for a repo from its worktree
// manifest. Returns "" when the manifest is missing or unreadable.
func fileTreeSection(jsonPath, repoID, filesHost string, mirror tree.Mirror) string {
	content, err := os.ReadFile(jsonPath)
	if err != nil {
		return ""
	}
	var worktree model.Worktree
	if err := json.Unmarshal(content, &worktree); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: parsing %s: %v\n", jsonPath, err)
		return ""
	}

	nodes := tree.Build(worktree, repoID, mirror)
	rendered := tree.Render(nodes, 1)
	return fmt.Sprintf(
		"\n\n## 资源下载\n\n<Files url=\"https://%s/openauto/%s\">\n%s\n</Files>",
		filesHost, repoID, rendered,
	)
}

// cardsPage renders a titled index page of course cards.
func cardsPage(title string, cards []card) string {
	lines := []string{"---", "title: " + title, "---", "", "<Cards>"}
	for _, c := range cards {
		lines = append(lines, fmt.Sprintf("  <Card title=%q href=%q />", c.title, c.href))
	}
	lines = append(lines, "</Cards>")
	return strings.Join(lines, "\n")
}

func writeMeta(path string, meta any) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// coursePage assembles a full course page. The CourseInfo marker is omitted
// for repos flagged as plain index pages.
func coursePage(frontmatter, body, fileTree string, withCourseInfo bool) string {
	if withCourseInfo {
		return frontmatter + "\n\n<CourseInfo />\n\n" + body + fileTree
	}
	return frontmatter + "\n\n" + body + fileTree
}

// Generate writes the whole docs tree for the given plans.
func Generate(p Params) error {
	years := map[string]bool{}
	majorsByYear := map[string][]card{}

	for _, plan := range p.Plans {
		years[plan.Year] = true
		majorsByYear[plan.Year] = append(majorsByYear[plan.Year], card{
			title: plan.MajorName,
			href:  fmt.Sprintf("/docs/%s/%s", plan.Year, plan.MajorCode),
		})

		if err := generateMajor(p, plan); err != nil {
			return fmt.Errorf("generating %s/%s: %w", plan.Year, plan.MajorCode, err)
		}
	}

	yearList := make([]string, 0, len(years))
	for year := range years {
		yearList = append(yearList, year)
	}
	sort.Strings(yearList)

	for _, year := range yearList {
		yearDir := filepath.Join(p.DocsDir, year)
		if err := writeMeta(filepath.Join(yearDir, "meta.json"), yearMeta{Title: year}); err != nil {
			return fmt.Errorf("writing year meta for %s: %w", year, err)
		}
		page := cardsPage("目录", majorsByYear[year])
		if err := os.WriteFile(filepath.Join(yearDir, "index.mdx"), []byte(page), 0o644); err != nil {
			return fmt.Errorf("writing year index for %s: %w", year, err)
		}
	}

	return nil
}

// generateMajor writes one major's course pages, semester indexes, shared
// category pages, navigation meta and index page.
func generateMajor(p Params, plan model.Plan) error {
	majorDir := filepath.Join(p.DocsDir, plan.Year, plan.MajorCode)
	if err := os.MkdirAll(majorDir, 0o755); err != nil {
		return err
	}

	coursesBySemester := map[string][]card{}

	for _, course := range plan.Courses {
		if !includeRepo(p.ReposSet, course.RepoID) {
			continue
		}

		mdxPath := filepath.Join(p.ReposDir, course.RepoID+".mdx")
		readme, err := os.ReadFile(mdxPath)
		if err != nil {
			continue
		}
		body := readmeBody(string(readme), 2)

		var folders []semester.Semester
		if course.RecommendedSemester != nil {
			folders = semester.Parse(*course.RecommendedSemester)
		}

		var targetDirs []string
		if len(folders) == 0 {
			targetDirs = append(targetDirs, majorDir)
		} else {
			for _, sem := range folders {
				semDir := filepath.Join(majorDir, sem.Folder)
				if err := os.MkdirAll(semDir, 0o755); err != nil {
					return err
				}
				coursesBySemester[sem.Folder] = append(coursesBySemester[sem.Folder], card{
					title: course.Name,
					href:  fmt.Sprintf("/docs/%s/%s/%s/%s", plan.Year, plan.MajorCode, sem.Folder, course.RepoID),
				})
				targetDirs = append(targetDirs, semDir)
			}
		}

		jsonPath := filepath.Join(p.ReposDir, course.RepoID+".json")
		fileTree := fileTreeSection(jsonPath, course.RepoID, p.FilesHost, p.Mirror)
		page := coursePage(buildFrontmatter(course.Name, course), body, fileTree, true)

		for _, dir := range targetDirs {
			if err := os.WriteFile(filepath.Join(dir, course.RepoID+".mdx"), []byte(page), 0o644); err != nil {
				return err
			}
		}
	}

	// Navigation follows the fixed semester order, not map order.
	var orderedFolders []string
	for _, sem := range semester.Ordered {
		if _, ok := coursesBySemester[sem.Folder]; ok {
			orderedFolders = append(orderedFolders, sem.Folder)
		}
	}

	for _, folder := range orderedFolders {
		title := semester.TitleByFolder(folder)
		page := cardsPage(title, coursesBySemester[folder])
		if err := os.WriteFile(filepath.Join(majorDir, folder, "index.mdx"), []byte(page), 0o644); err != nil {
			return err
		}
	}

	categoryPages, err := generateSharedCategories(p, plan, majorDir)
	if err != nil {
		return err
	}

	pages := append([]string{"..."}, orderedFolders...)
	pages = append(pages, categoryPages...)
	meta := majorMeta{Title: plan.MajorName, Root: true, DefaultOpen: true, Pages: pages}
	if err := writeMeta(filepath.Join(majorDir, "meta.json"), meta); err != nil {
		return err
	}

	var indexCards []card
	for _, folder := range orderedFolders {
		indexCards = append(indexCards, card{
			title: semester.TitleByFolder(folder),
			href:  fmt.Sprintf("/docs/%s/%s/%s", plan.Year, plan.MajorCode, folder),
		})
	}
	for _, cat := range p.SharedCategories {
		if containsString(categoryPages, cat.ID) {
			indexCards = append(indexCards, card{
				title: cat.Title,
				href:  fmt.Sprintf("/docs/%s/%s/%s", plan.Year, plan.MajorCode, cat.ID),
			})
		}
	}
	page := cardsPage("目录", indexCards)
	return os.WriteFile(filepath.Join(majorDir, "index.mdx"), []byte(page), 0o644)
}

// generateSharedCategories writes category pages under one major and returns
// the ids of categories that produced at least one course page.
func generateSharedCategories(p Params, plan model.Plan, majorDir string) ([]string, error) {
	var categoryPages []string

	for _, cat := range p.SharedCategories {
		catDir := filepath.Join(majorDir, cat.ID)
		if err := os.MkdirAll(catDir, 0o755); err != nil {
			return nil, err
		}

		var cards []card
		for _, repoID := range cat.RepoIDs {
			if !includeRepo(p.ReposSet, repoID) {
				continue
			}

			mdxPath := filepath.Join(p.ReposDir, repoID+".mdx")
			readme, err := os.ReadFile(mdxPath)
			if err != nil {
				continue
			}

			title := TitleFromMDX(string(readme), repoID)
			body := readmeBody(string(readme), 2)
			fileTree := fileTreeSection(filepath.Join(p.ReposDir, repoID+".json"), repoID, p.FilesHost, p.Mirror)

			course := model.Course{
				RepoID:       repoID,
				Name:         title,
				GradeDetails: p.GradesSummary[repoID]["default"],
			}
			page := coursePage(buildFrontmatter(title, course), body, fileTree, !p.NoCourseInfo[repoID])
			if err := os.WriteFile(filepath.Join(catDir, repoID+".mdx"), []byte(page), 0o644); err != nil {
				return nil, err
			}

			cards = append(cards, card{
				title: title,
				href:  fmt.Sprintf("/docs/%s/%s/%s/%s", plan.Year, plan.MajorCode, cat.ID, repoID),
			})
		}

		if len(cards) > 0 {
			categoryPages = append(categoryPages, cat.ID)
			page := cardsPage(cat.Title, cards)
			if err := os.WriteFile(filepath.Join(catDir, "index.mdx"), []byte(page), 0o644); err != nil {
				return nil, err
			}
		}
	}

	return categoryPages, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
