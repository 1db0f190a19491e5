package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func janeDoe() model.ResumeData {
	return model.ResumeData{
		PersonalDetails: model.PersonalDetails{
			FullName: "Jane Doe",
			JobTitle: "Engineer",
			Email:    "jane@x.com",
		},
		WorkExperience: []model.WorkExperience{{
			ID:           "w1",
			JobTitle:     "Engineer",
			Company:      "Acme",
			StartDate:    "2020-01",
			Current:      true,
			Achievements: []string{"Shipped X"},
		}},
	}
}

func TestFormatYearMonth(t *testing.T) {
	cases := []struct {
		layout, in, want string
	}{
		{longMonth, "2021-03", "March 2021"},
		{shortMonth, "2021-03", "Mar 2021"},
		{shortMonth, "2020-12", "Dec 2020"},
		{longMonth, "", ""},
		{shortMonth, "", ""},
		{shortMonth, "garbage", ""},
		{shortMonth, "2021-13", ""},
		{longMonth, "03-2021", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatYearMonth(c.layout, c.in), "layout=%s in=%q", c.layout, c.in)
	}
}

func TestRender_Deterministic(t *testing.T) {
	d := janeDoe()
	for _, name := range Names() {
		a, err := Document(d, name)
		require.NoError(t, err)
		b, err := Document(d, name)
		require.NoError(t, err)
		assert.Equal(t, a, b, "template %s must be deterministic", name)
	}
}

func TestRender_UnknownTemplateFallsBack(t *testing.T) {
	d := janeDoe()
	fallback, err := Document(d, "does-not-exist")
	require.NoError(t, err)
	def, err := Document(d, DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, def, fallback)
}

func TestRender_EndToEndScenario(t *testing.T) {
	out, err := Document(janeDoe(), "modern")
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Present")
	assert.Contains(t, out, "Shipped X")
	assert.Contains(t, out, "Jan 2020")
	assert.NotContains(t, out, "Education", "empty sections are omitted entirely")
	assert.NotContains(t, out, "Projects")
	assert.NotContains(t, out, "Certifications")
}

func TestRender_MonthFormPerTemplate(t *testing.T) {
	d := janeDoe()
	d.WorkExperience[0].StartDate = "2021-03"

	long, err := Document(d, "classic")
	require.NoError(t, err)
	assert.Contains(t, long, "March 2021")

	short, err := Document(d, "modern")
	require.NoError(t, err)
	assert.Contains(t, short, "Mar 2021")
	assert.NotContains(t, short, "March 2021")
}

func TestRender_SelfContained(t *testing.T) {
	out, err := Document(janeDoe(), "modern")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "@media print")
	assert.NotContains(t, out, "<link", "no external references allowed")
	assert.NotContains(t, out, "<script")
}

func TestRender_SectionsAppearWhenPopulated(t *testing.T) {
	d := janeDoe()
	d.PersonalDetails.Summary = "Ten years of shipping."
	d.Education = []model.Education{{
		ID: "e1", Degree: "Bachelor's Degree", FieldOfStudy: "CS",
		Institution: "State University", GraduationYear: 2014, GPA: "3.9",
	}}
	d.Skills = model.Skills{
		Technical: []string{"Go", "PostgreSQL"},
		Soft:      []string{"Communication"},
		Languages: []model.LanguageSkill{{Language: "French", Proficiency: "Fluent"}},
	}
	d.Projects = []model.Project{{
		ID: "p1", Name: "Sidecar", Description: "A sidecar thing.",
		Technologies: []string{"Go", "Docker"}, StartDate: "2022-02", Current: true,
	}}
	d.Certifications = []model.Certification{{
		ID: "c1", Name: "CKA", Issuer: "CNCF", IssueDate: "2023-06",
	}}

	out, err := Document(d, "modern")
	require.NoError(t, err)

	assert.Contains(t, out, "Professional Summary")
	assert.Contains(t, out, "Ten years of shipping.")
	assert.Contains(t, out, "Education")
	assert.Contains(t, out, "Bachelor&#39;s Degree in CS")
	assert.Contains(t, out, "GPA: 3.9")
	assert.Contains(t, out, "2014")
	assert.Contains(t, out, "Technical Skills")
	assert.Contains(t, out, "French (Fluent)")
	assert.Contains(t, out, "Sidecar")
	assert.Contains(t, out, "Go, Docker")
	assert.Contains(t, out, "Feb 2022 - Present")
	assert.Contains(t, out, "CKA")
	assert.Contains(t, out, "Jun 2023")
}

func TestRender_EmptyDocumentPlaceholders(t *testing.T) {
	out, err := Document(model.ResumeData{}, "modern")
	require.NoError(t, err)
	assert.Contains(t, out, "Your Name")
	assert.Contains(t, out, "Your Job Title")
	assert.NotContains(t, out, "Work Experience")
}

func TestNames_StableAndComplete(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"academic", "classic", "creative", "elegant", "executive",
		"minimal", "modern", "modern-gradient", "professional", "tech",
	}, names)
	assert.Equal(t, names, Names())
}
