package autosave_test

import (
	"context"
	"fmt"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/autosave"
)

// A Saver sits between an editing session and the resume service: every
// edit feeds Change, and the service sees at most one Update per settled
// burst of typing.
func ExampleSaver() {
	svc := usecase.NewResumes(repository.NewMemoryRepo())
	created, _ := svc.Create(context.Background(), usecase.CreateResume{
		Data: model.ResumeData{
			PersonalDetails: model.PersonalDetails{
				FullName: "Jane Doe",
				JobTitle: "Engineer",
				Email:    "jane@x.com",
			},
		},
	})

	save := func(ctx context.Context, data model.ResumeData) error {
		_, err := svc.Update(ctx, created.ID, model.UpdateResume{
			PersonalDetails: &data.PersonalDetails,
			WorkExperience:  &data.WorkExperience,
			Education:       &data.Education,
			Skills:          &data.Skills,
			Projects:        &data.Projects,
			Certifications:  &data.Certifications,
		})
		return err
	}
	saver := autosave.NewSaver(save, 0, nil)
	defer saver.Stop()

	draft := created.ResumeData
	draft.PersonalDetails.Summary = "Ships things."
	saver.Change(draft)
	saver.Flush()

	got, _ := svc.Get(context.Background(), created.ID)
	fmt.Println(got.PersonalDetails.Summary)
	// Output: Ships things.
}
