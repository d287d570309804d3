package user

import "time"

// Default field lists for the CSV export, matching the embedded sub-entity
// shape the frontend consumes.
var (
	ExperienceExportFields = []string{"role", "company", "description", "area"}
	EducationExportFields  = []string{"school", "degree", "field", "grade"}
)

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ExportField resolves a projection field by name. Unknown fields resolve to
// the empty string so a caller-supplied field list can never fail mid-stream.
func (e Experience) ExportField(name string) string {
	switch name {
	case "id":
		return e.ID.String()
	case "role":
		return e.Role
	case "company":
		return e.Company
	case "start_date":
		return formatDate(e.StartDate)
	case "end_date":
		return formatDate(e.EndDate)
	case "description":
		return e.Description
	case "area":
		return e.Area
	case "image":
		return e.Image
	default:
		return ""
	}
}

func (e Education) ExportField(name string) string {
	switch name {
	case "id":
		return e.ID.String()
	case "school":
		return e.School
	case "degree":
		return e.Degree
	case "field":
		return e.Field
	case "start_date":
		return formatDate(e.StartDate)
	case "end_date":
		return formatDate(e.EndDate)
	case "grade":
		return e.Grade
	case "activity":
		return e.Activity
	case "description":
		return e.Description
	case "image":
		return e.Image
	default:
		return ""
	}
}
