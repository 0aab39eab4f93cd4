package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"definition": func(word fwew.Word, languageCode string) string {
		return word.Definition(languageCode)
	},
	"languageName": fwew.LanguageName,
}

// parseTemplateWithFallback prefers the template at templatePath and falls back to the
// embedded one when the file is missing or broken.
func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
