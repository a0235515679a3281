package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/model"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/tree"
)

// SpecialCategory is a fixed course grouping outside any training plan.
type SpecialCategory struct {
	ID    string
	Title string
	Repos []string
}

// SpecialCategories lists the categories shared by all years and majors.
// Their repo sets are curated by hand, not derived from plan data.
var SpecialCategories = []SpecialCategory{
	{
		ID:    "cross-specialty",
		Title: "跨专业选修",
		Repos: []string{
			"CrossSpecialty", // overview page
			"CHEM1012",
			"COMP3043",
			"ECON2005F",
			"SPST1004",
		},
	},
	{
		ID:    "general-knowledge",
		Title: "文理通识与 MOOC",
		Repos: []string{
			"GeneralKnowledge", // overview page
			"MOOC",
			"SEIN1040",
			"WOCD1008",
			"WRIT0001",
		},
	},
}

// repoGrades reads <repo>.grades.json: an array of [name, percent] pairs.
// Returns nil when the file is absent or unparsable.
func repoGrades(reposDir, repoID string) []model.GradeDetail {
	content, err := os.ReadFile(filepath.Join(reposDir, repoID+".grades.json"))
	if err != nil {
		return nil
	}

	var pairs [][]string
	if err := json.Unmarshal(content, &pairs); err != nil {
		return nil
	}

	var details []model.GradeDetail
	for _, pair := range pairs {
		if len(pair) != 2 {
			continue
		}
		percent := pair[1]
		details = append(details, model.GradeDetail{Name: pair[0], Percent: &percent})
	}
	return details
}

// GenerateSpecialCategories writes the fixed category trees directly under
// the docs root: docs/<category>/<repo>.mdx plus meta.json and index.
func GenerateSpecialCategories(reposDir, docsDir, filesHost string, mirror tree.Mirror, reposSet map[string]bool) error {
	for _, category := range SpecialCategories {
		catDir := filepath.Join(docsDir, category.ID)
		if err := os.MkdirAll(catDir, 0o755); err != nil {
			return err
		}

		var cards []card
		var slugs []string

		for _, repoID := range category.Repos {
			if !includeRepo(reposSet, repoID) {
				continue
			}

			mdxPath := filepath.Join(reposDir, repoID+".mdx")
			readme, err := os.ReadFile(mdxPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: MDX file not found for %s: %s\n", repoID, mdxPath)
				continue
			}

			title := HeadingTitle(string(readme))
			body := readmeBody(string(readme), 1)
			fileTree := fileTreeSection(filepath.Join(reposDir, repoID+".json"), repoID, filesHost, mirror)

			course := model.Course{
				RepoID:       repoID,
				Name:         title,
				GradeDetails: repoGrades(reposDir, repoID),
			}
			page := coursePage(buildFrontmatter(title, course), body, fileTree, true)
			if err := os.WriteFile(filepath.Join(catDir, repoID+".mdx"), []byte(page), 0o644); err != nil {
				return err
			}

			slugs = append(slugs, repoID)
			cards = append(cards, card{
				title: title,
				href:  fmt.Sprintf("/docs/%s/%s", category.ID, repoID),
			})
		}

		meta := majorMeta{
			Title:       category.Title,
			Root:        true,
			DefaultOpen: true,
			Pages:       append([]string{"..."}, slugs...),
		}
		if err := writeMeta(filepath.Join(catDir, "meta.json"), meta); err != nil {
			return err
		}

		page := cardsPage(category.Title, cards)
		if err := os.WriteFile(filepath.Join(catDir, "index.mdx"), []byte(page), 0o644); err != nil {
			return err
		}

		fmt.Printf("Generated %d pages for category '%s'\n", len(slugs), category.ID)
	}

	return nil
}
