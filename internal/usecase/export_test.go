package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/errs"
)

type fakePDF struct {
	gotHTML string
	out     []byte
	err     error
}

func (f *fakePDF) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.gotHTML = html
	return f.out, f.err
}

func TestExportPDF(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	pdf := &fakePDF{out: []byte("%PDF-1.4 fake")}
	exp := NewExporter(svc, pdf)

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	out, filename, err := exp.ExportPDF(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, pdf.out, out)
	assert.Equal(t, "My_Resume.pdf", filename)
	assert.Contains(t, pdf.gotHTML, "Jane Doe")
	assert.True(t, strings.HasPrefix(pdf.gotHTML, "<!DOCTYPE html>"))
}

func TestExportPDF_TemplateOverride(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	pdf := &fakePDF{out: []byte("ok")}
	exp := NewExporter(svc, pdf)

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, _, err = exp.ExportPDF(ctx, created.ID, "classic")
	require.NoError(t, err)
	assert.Contains(t, pdf.gotHTML, `class="resume-container classic"`)
}

func TestExportPDF_MissingResume(t *testing.T) {
	exp := NewExporter(newService(), &fakePDF{})
	_, _, err := exp.ExportPDF(context.Background(), 7, "")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestExportPDF_SurfaceFailure(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	exp := NewExporter(svc, &fakePDF{err: errors.New("chrome refused to start")})

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, _, err = exp.ExportPDF(ctx, created.ID, "")
	assert.ErrorIs(t, err, errs.ErrExportSurface)
}
