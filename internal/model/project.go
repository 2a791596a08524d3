package model

// Project is a displayable portfolio entry.
type Project struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name"`
}

// Record is a project as the API sends it.
type Record struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Name     string `json:"name"`
}

// FromRecord renames the server fields into a Project.
func FromRecord(r Record) Project {
	return Project{ID: r.ID, ImageURL: r.ImageURL, Name: r.Name}
}

// FromRecords maps a whole response in order. A nil input maps to an
// empty, non-nil list so callers can tell "no projects" from "not fetched".
func FromRecords(rs []Record) []Project {
	out := make([]Project, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRecord(r))
	}
	return out
}
