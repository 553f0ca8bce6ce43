package models

// Major is a field of study offered by the institution.
type Major struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Program is a curriculum belonging to a major.
type Program struct {
	ID      string `json:"id"`
	MajorID string `json:"major_id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Status  string `json:"status,omitempty"`
}

// ProgramBlock is a top-level section of a program structure.
type ProgramBlock struct {
	ID        string `json:"id"`
	ProgramID string `json:"program_id"`
	Name      string `json:"name"`
	Position  int    `json:"position,omitempty"`
}

// ProgramBlockGroup is a self-nesting grouping inside a block. ParentID is
// empty for groups attached directly to the block.
type ProgramBlockGroup struct {
	ID       string `json:"id"`
	BlockID  string `json:"block_id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Position int    `json:"position,omitempty"`
}

// ProgramCourseMap places a course inside a block group.
type ProgramCourseMap struct {
	ID       string `json:"id"`
	GroupID  string `json:"group_id"`
	CourseID string `json:"course_id"`
	Required bool   `json:"required,omitempty"`
}

// Course is a teachable unit referenced by program structures.
type Course struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits,omitempty"`
	Status  string `json:"status,omitempty"`
}

// CourseVersion is one revision of a course.
type CourseVersion struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Version  string `json:"version"`
	Status   string `json:"status,omitempty"`
}

// CourseSyllabus is the syllabus attached to a course version. At most one
// syllabus per version carries IsCurrent.
type CourseSyllabus struct {
	ID        string `json:"id"`
	VersionID string `json:"version_id"`
	Title     string `json:"title"`
	IsCurrent bool   `json:"is_current"`
}

// MajorFilter narrows major listings.
type MajorFilter struct {
	Status string
	Search string
	ListQuery
}

// ProgramFilter narrows program listings.
type ProgramFilter struct {
	MajorID string
	Status  string
	Search  string
	ListQuery
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Status string
	Search string
	ListQuery
}

// SyllabusFilter narrows syllabus listings.
type SyllabusFilter struct {
	VersionID string
	Current   *bool
	ListQuery
}
