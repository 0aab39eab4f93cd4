package fwew

import "strings"

type Language struct {
	Code string
	Name string
}

// Languages are the display languages the API has definitions for.
var Languages = []Language{
	{Code: "de", Name: "Deutsch"},
	{Code: "en", Name: "English"},
	{Code: "et", Name: "Eesti"},
	{Code: "fr", Name: "Français"},
	{Code: "hu", Name: "Magyar"},
	{Code: "nl", Name: "Nederlands"},
	{Code: "pl", Name: "Polski"},
	{Code: "ru", Name: "Русский"},
	{Code: "sv", Name: "Svenska"},
	{Code: "tr", Name: "Türkçe"},
}

// LanguageCodes returns the codes of Languages, e.g. for validation messages.
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for _, language := range Languages {
		codes = append(codes, language.Code)
	}
	return codes
}

func LanguageName(code string) string {
	for _, language := range Languages {
		if strings.EqualFold(language.Code, code) {
			return language.Name
		}
	}
	return code
}
