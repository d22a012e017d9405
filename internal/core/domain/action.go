package domain

import (
	"fmt"
	"strings"
)

const (
	languagePrefix = "lang_"
	formatPrefix   = "convert_"
)

// Action is the typed form of an inline button payload. The set of
// implementations is closed to this package.
type Action interface {
	isAction()
}

type SelectLanguage struct {
	Language Language
}

type SelectFormat struct {
	Format Format
}

// UnknownAction carries a payload that did not decode into any known action.
type UnknownAction struct {
	Data string
}

func (SelectLanguage) isAction() {}
func (SelectFormat) isAction()   {}
func (UnknownAction) isAction()  {}

// ParseAction decodes a raw callback payload. Language codes are not checked
// against the catalog here; formats are.
func ParseAction(data string) (Action, error) {
	switch {
	case strings.HasPrefix(data, languagePrefix):
		code := strings.TrimPrefix(data, languagePrefix)
		if code == "" {
			return UnknownAction{Data: data}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
		return SelectLanguage{Language: Language(code)}, nil
	case strings.HasPrefix(data, formatPrefix):
		f, err := ParseFormat(strings.TrimPrefix(data, formatPrefix))
		if err != nil {
			return UnknownAction{Data: data}, fmt.Errorf("%w: %w", ErrUnknownAction, err)
		}
		return SelectFormat{Format: f}, nil
	default:
		return UnknownAction{Data: data}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
	}
}

func LanguageCallbackData(lang Language) string {
	return languagePrefix + string(lang)
}

func FormatCallbackData(f Format) string {
	return formatPrefix + string(f)
}
