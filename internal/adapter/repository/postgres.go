package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/errs"
	"resume-builder/internal/model"
)

const resumeColumns = `id, title, template, personal_details, work_experience, education, skills, projects, certifications, is_public, share_id, created_at, updated_at`

// PostgresRepo stores resumes in a resumes table with one JSONB column per
// content section.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func (r *PostgresRepo) Create(ctx context.Context, res model.Resume) (model.Resume, error) {
	s, err := marshalSections(res.ResumeData)
	if err != nil {
		return model.Resume{}, err
	}
	row := r.pool.QueryRow(ctx, `INSERT INTO resumes (title, template, personal_details, work_experience, education, skills, projects, certifications, is_public, share_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING `+resumeColumns,
		res.Title, res.Template, s.personal, s.experience, s.education, s.skills, s.projects, s.certifications, res.IsPublic, res.ShareID)
	return scanResume(row)
}

func (r *PostgresRepo) Get(ctx context.Context, id int) (model.Resume, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	return scanResume(row)
}

func (r *PostgresRepo) GetByShareID(ctx context.Context, shareID string) (model.Resume, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE share_id = $1`, shareID)
	return scanResume(row)
}

func (r *PostgresRepo) List(ctx context.Context) ([]model.Resume, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resumeColumns+` FROM resumes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, res model.Resume) (model.Resume, error) {
	s, err := marshalSections(res.ResumeData)
	if err != nil {
		return model.Resume{}, err
	}
	// share_id and created_at stay as written at creation
	row := r.pool.QueryRow(ctx, `UPDATE resumes
		SET title = $2, template = $3, personal_details = $4, work_experience = $5, education = $6, skills = $7, projects = $8, certifications = $9, is_public = $10, updated_at = now()
		WHERE id = $1
		RETURNING `+resumeColumns,
		res.ID, res.Title, res.Template, s.personal, s.experience, s.education, s.skills, s.projects, s.certifications, res.IsPublic)
	return scanResume(row)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type sections struct {
	personal, experience, education, skills, projects, certifications []byte
}

func marshalSections(d model.ResumeData) (sections, error) {
	var s sections
	var err error
	if s.personal, err = json.Marshal(d.PersonalDetails); err != nil {
		return s, err
	}
	if s.experience, err = json.Marshal(d.WorkExperience); err != nil {
		return s, err
	}
	if s.education, err = json.Marshal(d.Education); err != nil {
		return s, err
	}
	if s.skills, err = json.Marshal(d.Skills); err != nil {
		return s, err
	}
	if s.projects, err = json.Marshal(d.Projects); err != nil {
		return s, err
	}
	if s.certifications, err = json.Marshal(d.Certifications); err != nil {
		return s, err
	}
	return s, nil
}

func scanResume(row pgx.Row) (model.Resume, error) {
	var res model.Resume
	var personal, experience, education, skills, projects, certifications []byte
	err := row.Scan(&res.ID, &res.Title, &res.Template,
		&personal, &experience, &education, &skills, &projects, &certifications,
		&res.IsPublic, &res.ShareID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resume{}, errs.ErrNotFound
		}
		return model.Resume{}, err
	}
	if err := unmarshalInto(personal, &res.ResumeData.PersonalDetails); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalInto(experience, &res.ResumeData.WorkExperience); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalInto(education, &res.ResumeData.Education); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalInto(skills, &res.ResumeData.Skills); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalInto(projects, &res.ResumeData.Projects); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalInto(certifications, &res.ResumeData.Certifications); err != nil {
		return model.Resume{}, err
	}
	return res, nil
}

func unmarshalInto(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}
