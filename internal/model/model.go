package model

// PlanFile mirrors the on-disk layout of a training plan TOML file.
type PlanFile struct {
	Info    PlanInfo     `toml:"info"`
	Courses []PlanCourse `toml:"courses"`
}

// PlanInfo identifies a training plan (admission year + major).
type PlanInfo struct {
	Year      string `toml:"year"`
	MajorCode string `toml:"major_code"`
	MajorName string `toml:"major_name"`
	PlanID    string `toml:"plan_ID"`
}

// PlanCourse is a single course row as written in the plan TOML.
type PlanCourse struct {
	CourseCode              string            `toml:"course_code"`
	CourseName              string            `toml:"course_name"`
	Credit                  *float64          `toml:"credit"`
	AssessmentMethod        *string           `toml:"assessment_method"`
	CourseNature            *string           `toml:"course_nature"`
	RecommendedYearSemester *string           `toml:"recommended_year_semester"`
	Hours                   *HourDistribution `toml:"hours"`
	GradeDetails            []GradeDetail     `toml:"grade_details"`
}

// GradeDetail is one grading component with its raw percent string (e.g. "30%").
type GradeDetail struct {
	Name    string  `toml:"name" json:"name"`
	Percent *string `toml:"percent" json:"percent"`
}

// HourDistribution splits total course hours by activity.
type HourDistribution struct {
	Theory   *uint32 `toml:"theory"`
	Lab      *uint32 `toml:"lab"`
	Practice *uint32 `toml:"practice"`
	Exercise *uint32 `toml:"exercise"`
	Computer *uint32 `toml:"computer"`
	Tutoring *uint32 `toml:"tutoring"`
}

// Plan is a loaded training plan with courses resolved to repositories.
type Plan struct {
	Year      string
	MajorCode string
	MajorName string
	Courses   []Course
}

// Course is a plan course after repo-id resolution and grade enrichment.
type Course struct {
	RepoID              string
	Name                string
	Credit              *float64
	AssessmentMethod    *string
	CourseNature        *string
	RecommendedSemester *string
	Hours               *HourDistribution
	GradeDetails        []GradeDetail
}

// SharedCategory groups repos that several majors share (e.g. PE, innovation).
type SharedCategory struct {
	ID      string   `toml:"id"`
	Title   string   `toml:"title"`
	RepoIDs []string `toml:"repo_ids"`
}

// FileEntry is one worktree manifest record. Size and ModTime may be absent;
// absence is distinct from zero until render time.
type FileEntry struct {
	Size    *uint64 `json:"size"`
	ModTime *int64  `json:"time"`
}

// Worktree is the flat path -> metadata manifest fetched per repository.
type Worktree map[string]FileEntry

// NodeType distinguishes folder and file tree nodes.
type NodeType int

const (
	Folder NodeType = iota
	File
)

// FileNode is one node of the compiled download tree. Children is populated
// for folders only; URL/Size/Date for files only.
type FileNode struct {
	Name     string
	Type     NodeType
	Children []FileNode
	URL      string
	Size     *uint64
	Date     string
}
