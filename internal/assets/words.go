package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
)

const wordsTemplateName = "words.md.go.tmpl"

//go:embed templates/words.md.go.tmpl
var fallbackWordsTemplate string

// WordsTemplate is the data passed to the words export template.
type WordsTemplate struct {
	Query        string
	Reverse      bool
	LanguageCode string
	Words        []fwew.Word
}

func (t WordsTemplate) DirectionLabel() string {
	language := fwew.LanguageName(t.LanguageCode)
	if t.Reverse {
		return language + " to Na'vi"
	}
	return "Na'vi to " + language
}

func WriteWords(output io.Writer, templatePath string, templateData WordsTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, wordsTemplateName, fallbackWordsTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
