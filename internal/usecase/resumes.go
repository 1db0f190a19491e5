package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/errs"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// ResumeRepo is the storage port the resume service drives. Implementations
// report lookup misses as errs.ErrNotFound.
type ResumeRepo interface {
	Create(ctx context.Context, r model.Resume) (model.Resume, error)
	Get(ctx context.Context, id int) (model.Resume, error)
	GetByShareID(ctx context.Context, shareID string) (model.Resume, error)
	List(ctx context.Context) ([]model.Resume, error)
	Update(ctx context.Context, r model.Resume) (model.Resume, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Resumes implements the persistence gateway: validated creation, lookup,
// partial update with merge, deletion and visibility toggling.
type Resumes struct {
	repo ResumeRepo
}

func NewResumes(repo ResumeRepo) *Resumes {
	return &Resumes{repo: repo}
}

// CreateResume is the input for Create. Zero-value Title and Template get
// sensible defaults.
type CreateResume struct {
	Title    string
	Template string
	IsPublic bool
	Data     model.ResumeData
}

// Create validates the document, assigns a share token and stores the
// resume. The share token is generated exactly once here and survives every
// later update.
func (s *Resumes) Create(ctx context.Context, in CreateResume) (model.Resume, error) {
	fillItemIDs(&in.Data)
	in.Data.Normalize()
	if err := model.Validate(in.Data); err != nil {
		return model.Resume{}, err
	}

	title := in.Title
	if title == "" {
		title = in.Data.PersonalDetails.FullName
	}
	if title == "" {
		title = "Resume"
	}
	tmpl := in.Template
	if tmpl == "" {
		tmpl = render.DefaultTemplate
	}

	created, err := s.repo.Create(ctx, model.Resume{
		Title:      title,
		Template:   tmpl,
		ResumeData: in.Data,
		IsPublic:   in.IsPublic,
		ShareID:    repository.NewShareID(),
	})
	if err != nil {
		return model.Resume{}, err
	}
	slog.Info("resume created", "id", created.ID, "template", created.Template)
	return created, nil
}

func (s *Resumes) Get(ctx context.Context, id int) (model.Resume, error) {
	return s.repo.Get(ctx, id)
}

// GetShared resolves a resume by its public share token. Private records
// behave exactly like missing ones so their existence never leaks.
func (s *Resumes) GetShared(ctx context.Context, shareID string) (model.Resume, error) {
	res, err := s.repo.GetByShareID(ctx, shareID)
	if err != nil {
		return model.Resume{}, err
	}
	if !res.IsPublic {
		return model.Resume{}, errs.ErrNotFound
	}
	return res, nil
}

func (s *Resumes) List(ctx context.Context) ([]model.Resume, error) {
	return s.repo.List(ctx)
}

// Update merges the partial update into the stored record field by field,
// re-validates the merged document and persists it. ShareID and CreatedAt
// are untouched; UpdatedAt is bumped by the repository.
func (s *Resumes) Update(ctx context.Context, id int, upd model.UpdateResume) (model.Resume, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Resume{}, err
	}

	merged := mergeUpdate(existing, upd)
	fillItemIDs(&merged.ResumeData)
	merged.ResumeData.Normalize()
	if err := model.Validate(merged.ResumeData); err != nil {
		return model.Resume{}, err
	}
	return s.repo.Update(ctx, merged)
}

// Delete removes the record. Deleting an absent id reports false without
// an error.
func (s *Resumes) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Info("resume deleted", "id", id)
	}
	return deleted, nil
}

// SetVisibility toggles public sharing. Turning it on makes the existing
// share token externally resolvable; the token itself never changes.
func (s *Resumes) SetVisibility(ctx context.Context, id int, isPublic bool) (model.Resume, error) {
	return s.Update(ctx, id, model.UpdateResume{IsPublic: &isPublic})
}

func mergeUpdate(existing model.Resume, upd model.UpdateResume) model.Resume {
	if upd.Title != nil {
		existing.Title = *upd.Title
	}
	if upd.Template != nil {
		existing.Template = *upd.Template
	}
	if upd.PersonalDetails != nil {
		existing.ResumeData.PersonalDetails = *upd.PersonalDetails
	}
	if upd.WorkExperience != nil {
		existing.ResumeData.WorkExperience = *upd.WorkExperience
	}
	if upd.Education != nil {
		existing.ResumeData.Education = *upd.Education
	}
	if upd.Skills != nil {
		existing.ResumeData.Skills = *upd.Skills
	}
	if upd.Projects != nil {
		existing.ResumeData.Projects = *upd.Projects
	}
	if upd.Certifications != nil {
		existing.ResumeData.Certifications = *upd.Certifications
	}
	if upd.IsPublic != nil {
		existing.IsPublic = *upd.IsPublic
	}
	return existing
}

// fillItemIDs assigns identifiers to list entries that arrived without one.
// Existing ids are kept so they stay stable across edits.
func fillItemIDs(d *model.ResumeData) {
	for i := range d.WorkExperience {
		if d.WorkExperience[i].ID == "" {
			d.WorkExperience[i].ID = uuid.NewString()
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = uuid.NewString()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = uuid.NewString()
		}
	}
}
