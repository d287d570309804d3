package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoangnp/careernet/internal/domain/subresource"
)

func TestExperienceExportField(t *testing.T) {
	start := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	e := Experience{
		Role:        "Engineer",
		Company:     "Acme",
		StartDate:   &start,
		Description: "Built things",
		Area:        "Hanoi",
	}

	assert.Equal(t, "Engineer", e.ExportField("role"))
	assert.Equal(t, "Acme", e.ExportField("company"))
	assert.Equal(t, "2022-06-01", e.ExportField("start_date"))
	assert.Equal(t, "", e.ExportField("end_date"))
	assert.Equal(t, "", e.ExportField("no_such_field"))
}

func TestEducationExportField(t *testing.T) {
	e := Education{School: "HUST", Degree: "BSc", Field: "CS", Grade: "3.8"}

	assert.Equal(t, "HUST", e.ExportField("school"))
	assert.Equal(t, "3.8", e.ExportField("grade"))
	assert.Equal(t, "", e.ExportField("salary"))
}

func TestExportProjection_DefaultFields(t *testing.T) {
	u := validUser()
	now := time.Now().UTC()
	_, err := u.AddExperience(Experience{
		Role: "Engineer", Company: "Acme", Description: "Built things", Area: "Hanoi",
	}, now)
	assert.NoError(t, err)
	_, err = u.AddExperience(Experience{Role: "Lead", Company: "Beta"}, now)
	assert.NoError(t, err)

	records := subresource.Project(u.Experiences, ExperienceExportFields, Experience.ExportField)

	assert.Equal(t, [][]string{
		{"Engineer", "Acme", "Built things", "Hanoi"},
		{"Lead", "Beta", "", ""},
	}, records)
}
