// https://github.com/fwew/fwew-api
package fwew

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Word is a single dictionary entry returned by the fwew API.
type Word struct {
	ID             string `json:"ID"`
	Navi           string `json:"Navi"`
	IPA            string `json:"IPA"`
	InfixLocations string `json:"InfixLocations"`
	PartOfSpeech   string `json:"PartOfSpeech"`
	Source         string `json:"Source"`
	Stressed       string `json:"Stressed"`
	Syllables      string `json:"Syllables"`
	InfixDots      string `json:"InfixDots"`
	DE             string `json:"DE"`
	EN             string `json:"EN"`
	ET             string `json:"ET"`
	FR             string `json:"FR"`
	HU             string `json:"HU"`
	NL             string `json:"NL"`
	PL             string `json:"PL"`
	RU             string `json:"RU"`
	SV             string `json:"SV"`
	TR             string `json:"TR"`

	// Raw keeps the record as the API sent it, including fields unknown to this client.
	Raw json.RawMessage `json:"-"`
}

func (w *Word) UnmarshalJSON(data []byte) error {
	type word Word
	var decoded word
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*w = Word(decoded)
	w.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (w Word) definitions() map[string]string {
	return map[string]string{
		"de": w.DE,
		"en": w.EN,
		"et": w.ET,
		"fr": w.FR,
		"hu": w.HU,
		"nl": w.NL,
		"pl": w.PL,
		"ru": w.RU,
		"sv": w.SV,
		"tr": w.TR,
	}
}

// Definition returns the definition in the given language, or the English one when the
// entry has no translation for it.
func (w Word) Definition(languageCode string) string {
	if definition := w.definitions()[strings.ToLower(languageCode)]; definition != "" {
		return definition
	}
	return w.EN
}

type Field struct {
	Name  string
	Value string
}

// Fields lists the non-empty attributes of the entry in display order.
func (w Word) Fields() []Field {
	candidates := []Field{
		{Name: "Na'vi", Value: w.Navi},
		{Name: "IPA", Value: w.IPA},
		{Name: "Part of speech", Value: w.PartOfSpeech},
		{Name: "Syllables", Value: w.Syllables},
		{Name: "Stressed", Value: w.Stressed},
		{Name: "Infixes", Value: w.InfixDots},
		{Name: "Source", Value: w.Source},
	}
	definitions := w.definitions()
	for _, language := range Languages {
		candidates = append(candidates, Field{
			Name:  language.Name,
			Value: definitions[language.Code],
		})
	}

	fields := make([]Field, 0, len(candidates))
	for _, field := range candidates {
		if field.Value == "" {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// ErrorPayload is the JSON object the API responds with on failures.
type ErrorPayload struct {
	Message string `json:"message"`

	Raw json.RawMessage `json:"-"`
}

func (p ErrorPayload) String() string {
	if p.Message != "" {
		return p.Message
	}
	return string(p.Raw)
}

// ParseErrorPayload reports whether body is a structured error object.
func ParseErrorPayload(body []byte) (ErrorPayload, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrorPayload{}, false
	}

	var payload ErrorPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return ErrorPayload{}, false
	}
	payload.Raw = append(json.RawMessage(nil), trimmed...)
	return payload, true
}
