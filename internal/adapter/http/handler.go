package http

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/errs"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

type Handler struct {
	resumes  *usecase.Resumes
	exporter *usecase.Exporter
}

func NewHandler(resumes *usecase.Resumes, exporter *usecase.Exporter) *Handler {
	return &Handler{resumes: resumes, exporter: exporter}
}

func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/resumes", h.ListResumes)
	api.Post("/resumes", h.CreateResume)
	api.Get("/resumes/:id", h.GetResume)
	api.Patch("/resumes/:id", h.UpdateResume)
	api.Delete("/resumes/:id", h.DeleteResume)
	api.Patch("/resumes/:id/visibility", h.SetVisibility)
	api.Get("/resumes/:id/export", h.ExportResume)
	api.Get("/shared/:shareId", h.GetShared)
}

type resumePayload struct {
	Title           string                 `json:"title"`
	Template        string                 `json:"template"`
	IsPublic        bool                   `json:"isPublic"`
	PersonalDetails model.PersonalDetails  `json:"personalDetails"`
	WorkExperience  []model.WorkExperience `json:"workExperience"`
	Education       []model.Education      `json:"education"`
	Skills          model.Skills           `json:"skills"`
	Projects        []model.Project        `json:"projects"`
	Certifications  []model.Certification  `json:"certifications"`
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	resumes, err := h.resumes.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resumes)
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req resumePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}

	created, err := h.resumes.Create(c.Context(), usecase.CreateResume{
		Title:    req.Title,
		Template: req.Template,
		IsPublic: req.IsPublic,
		Data: model.ResumeData{
			PersonalDetails: req.PersonalDetails,
			WorkExperience:  req.WorkExperience,
			Education:       req.Education,
			Skills:          req.Skills,
			Projects:        req.Projects,
			Certifications:  req.Certifications,
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume ID"})
	}
	res, err := h.resumes.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume ID"})
	}
	var upd model.UpdateResume
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	res, err := h.resumes.Update(c.Context(), id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume ID"})
	}
	deleted, err := h.resumes.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Resume not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SetVisibility(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume ID"})
	}
	var req struct {
		IsPublic *bool `json:"isPublic"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsPublic == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "isPublic must be a boolean"})
	}
	res, err := h.resumes.SetVisibility(c.Context(), id, *req.IsPublic)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) ExportResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume ID"})
	}
	pdf, filename, err := h.exporter.ExportPDF(c.Context(), id, c.Query("template"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *Handler) GetShared(c *fiber.Ctx) error {
	res, err := h.resumes.GetShared(c.Context(), c.Params("shareId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Resume not found or not public"})
		}
		return respondError(c, err)
	}
	return c.JSON(res)
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errs.ErrInvalidID
	}
	return id, nil
}

func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := errs.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  ve.Fields,
		})
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Resume not found"})
	case errors.Is(err, errs.ErrExportSurface):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to export resume"})
	}
	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
