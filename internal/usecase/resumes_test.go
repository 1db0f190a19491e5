package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/errs"
	"resume-builder/internal/model"
)

func newService() *Resumes {
	return NewResumes(repository.NewMemoryRepo())
}

func validCreate() CreateResume {
	return CreateResume{
		Title: "My Resume",
		Data: model.ResumeData{
			PersonalDetails: model.PersonalDetails{
				FullName: "Jane Doe",
				JobTitle: "Engineer",
				Email:    "jane@x.com",
			},
			WorkExperience: []model.WorkExperience{{
				JobTitle:     "Engineer",
				Company:      "Acme",
				StartDate:    "2020-01",
				Current:      true,
				Achievements: []string{"Shipped X"},
			}},
		},
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, created.ShareID, 10)
	assert.Equal(t, "modern", created.Template, "empty template defaults")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ResumeData, got.ResumeData)
}

func TestCreate_MinimalDocument(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	// nothing but the required personal details: no sections at all
	created, err := svc.Create(ctx, CreateResume{
		Data: model.ResumeData{
			PersonalDetails: model.PersonalDetails{
				FullName: "Jane Doe",
				JobTitle: "Engineer",
				Email:    "jane@x.com",
			},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, created.ResumeData.WorkExperience)
	assert.NotNil(t, created.ResumeData.Education)
	assert.NotNil(t, created.ResumeData.Skills.Technical)
}

func TestCreate_AssignsItemIDs(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	require.Len(t, created.ResumeData.WorkExperience, 1)
	assert.NotEmpty(t, created.ResumeData.WorkExperience[0].ID)
}

func TestCreate_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	in := validCreate()
	in.Data.PersonalDetails.Email = "not-an-email"
	_, err := svc.Create(ctx, in)
	require.Error(t, err)

	ve, ok := errs.AsValidation(err)
	require.True(t, ok, "expected field-level validation error, got %T", err)
	assert.NotEmpty(t, ve.Fields)
}

func TestCreate_DefaultTitleFromName(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	in := validCreate()
	in.Title = ""
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", created.Title)
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	title := "Renamed"
	tmpl := "classic"
	updated, err := svc.Update(ctx, created.ID, model.UpdateResume{Title: &title, Template: &tmpl})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "classic", updated.Template)
	// untouched sections survive the merge
	assert.Equal(t, created.ResumeData.WorkExperience, updated.ResumeData.WorkExperience)
	assert.Equal(t, created.ResumeData.PersonalDetails, updated.ResumeData.PersonalDetails)
}

func TestUpdate_NeverRegeneratesShareID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		title := "pass"
		updated, err := svc.Update(ctx, created.ID, model.UpdateResume{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, created.ShareID, updated.ShareID)
	}
}

func TestUpdate_CurrentClearsEndDate(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	exp := created.ResumeData.WorkExperience
	exp[0].Current = true
	exp[0].EndDate = "2023-05"
	updated, err := svc.Update(ctx, created.ID, model.UpdateResume{WorkExperience: &exp})
	require.NoError(t, err)
	assert.True(t, updated.ResumeData.WorkExperience[0].Current)
	assert.Empty(t, updated.ResumeData.WorkExperience[0].EndDate)
}

func TestUpdate_Missing(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	title := "nope"
	_, err := svc.Update(ctx, 99, model.UpdateResume{Title: &title})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestVisibility_GatesSharedLookup(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	// private by default: existence must not leak
	_, err = svc.GetShared(ctx, created.ShareID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.SetVisibility(ctx, created.ID, true)
	require.NoError(t, err)
	shared, err := svc.GetShared(ctx, created.ShareID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, shared.ID)

	_, err = svc.SetVisibility(ctx, created.ID, false)
	require.NoError(t, err)
	_, err = svc.GetShared(ctx, created.ShareID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
