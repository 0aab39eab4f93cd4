// Package pdf converts exported Markdown files to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

type Options struct {
	// PageSize is a gofpdf page size such as A4 or Letter. Empty means A4.
	PageSize string
	Dark     bool
}

// ConvertMarkdownToPDF writes the PDF next to the Markdown file and returns its absolute path.
func ConvertMarkdownToPDF(markdownPath string, opts Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	pageSize := opts.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}
	theme := mdtopdf.LIGHT
	if opts.Dark {
		theme = mdtopdf.DARK
	}

	renderer := mdtopdf.NewPdfRenderer("P", pageSize, pdfPath, "", nil, theme)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
