package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"resume-builder/internal/errs"
	"resume-builder/internal/render"
)

// PDFRenderer turns a standalone HTML document into PDF bytes inside an
// isolated browser context.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter is the export pipeline: stored resume -> template HTML -> PDF.
type Exporter struct {
	resumes *Resumes
	pdf     PDFRenderer
}

func NewExporter(resumes *Resumes, pdf PDFRenderer) *Exporter {
	return &Exporter{resumes: resumes, pdf: pdf}
}

// ExportPDF renders the resume through its selected template (or the
// override, when given) and prints it to PDF. A failure to create or drive
// the print surface is reported as errs.ErrExportSurface; the caller can
// simply retry.
func (e *Exporter) ExportPDF(ctx context.Context, id int, templateOverride string) ([]byte, string, error) {
	res, err := e.resumes.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	name := res.Template
	if templateOverride != "" {
		name = templateOverride
	}
	html, err := render.Document(res.ResumeData, name)
	if err != nil {
		return nil, "", err
	}

	pdf, err := e.pdf.RenderHTMLToPDF(ctx, html)
	if err != nil {
		slog.Warn("pdf export failed", "id", id, "template", name, "error", err)
		return nil, "", fmt.Errorf("%w: %v", errs.ErrExportSurface, err)
	}
	return pdf, exportFilename(res.Title), nil
}

func exportFilename(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "resume"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".pdf"
}
