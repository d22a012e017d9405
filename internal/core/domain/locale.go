package domain

import (
	"errors"
	"fmt"
)

type Language string

const (
	English   Language = "en"
	Russian   Language = "ru"
	Ukrainian Language = "uk"

	DefaultLanguage = English
)

type Key string

const (
	KeyGreeting        Key = "start"
	KeyChooseFormat    Key = "choose_format"
	KeyConverted       Key = "converted"
	KeyNoImage         Key = "no_image"
	KeyInvalidLanguage Key = "invalid_language"
	KeyDecodeFailed    Key = "decode_failed"
	KeyEncodeFailed    Key = "encode_failed"
	KeyTransportFailed Key = "transport_failed"
	KeyFileTooLarge    Key = "file_too_large"
)

var keys = []Key{
	KeyGreeting, KeyChooseFormat, KeyConverted, KeyNoImage,
	KeyInvalidLanguage, KeyDecodeFailed, KeyEncodeFailed, KeyTransportFailed, KeyFileTooLarge,
}

// Locale holds the user-facing strings of one language.
type Locale struct {
	Label   string
	Strings map[Key]string
}

// Catalog is the immutable localization table.
type Catalog struct {
	order   []Language
	locales map[Language]Locale
}

// NewCatalog validates that every language defines a label and every key,
// and that the default language is present.
func NewCatalog(order []Language, locales map[Language]Locale) (*Catalog, error) {
	if _, ok := locales[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default language %q missing from catalog", DefaultLanguage)
	}

	if len(order) != len(locales) {
		return nil, errors.New("language order does not match catalog entries")
	}

	for _, lang := range order {
		locale, ok := locales[lang]
		if !ok {
			return nil, fmt.Errorf("language %q has no strings", lang)
		}

		if locale.Label == "" {
			return nil, fmt.Errorf("language %q has no label", lang)
		}

		for _, k := range keys {
			if locale.Strings[k] == "" {
				return nil, fmt.Errorf("language %q is missing key %q", lang, k)
			}
		}
	}

	c := &Catalog{
		order:   make([]Language, len(order)),
		locales: make(map[Language]Locale, len(locales)),
	}
	copy(c.order, order)
	for lang, locale := range locales {
		c.locales[lang] = locale
	}

	return c, nil
}

// Lookup returns the string for key in lang, falling back to the default
// language for unknown codes.
func (c *Catalog) Lookup(lang Language, key Key) string {
	locale, ok := c.locales[lang]
	if !ok {
		locale = c.locales[DefaultLanguage]
	}

	return locale.Strings[key]
}

func (c *Catalog) Supported(lang Language) bool {
	_, ok := c.locales[lang]
	return ok
}

func (c *Catalog) Languages() []Language {
	out := make([]Language, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Label(lang Language) string {
	return c.locales[lang].Label
}

// KeyForError picks the message shown to the user for a failure.
func KeyForError(err error) Key {
	switch {
	case errors.Is(err, ErrNoPendingImage):
		return KeyNoImage
	case errors.Is(err, ErrInvalidLanguage):
		return KeyInvalidLanguage
	case errors.Is(err, ErrDecode):
		return KeyDecodeFailed
	case errors.Is(err, ErrEncode):
		return KeyEncodeFailed
	case errors.Is(err, ErrFileTooLarge):
		return KeyFileTooLarge
	default:
		return KeyTransportFailed
	}
}

// DefaultCatalog builds the bot's built-in English, Russian and Ukrainian table.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog([]Language{English, Russian, Ukrainian}, map[Language]Locale{
		English: {
			Label: "English",
			Strings: map[Key]string{
				KeyGreeting:        "Send me an image and I'll convert it to another format.",
				KeyChooseFormat:    "Choose format to convert to:",
				KeyConverted:       "Here is your converted image:",
				KeyNoImage:         "No image found.",
				KeyInvalidLanguage: "This language is not supported.",
				KeyDecodeFailed:    "Could not read the image.",
				KeyEncodeFailed:    "Could not convert the image to this format.",
				KeyTransportFailed: "Could not fetch the file. Please try again.",
			KeyFileTooLarge:    "The file is too large. Send an image under 20 MB.",
			},
		},
		Russian: {
			Label: "Русский",
			Strings: map[Key]string{
				KeyGreeting:        "Отправь мне изображение, и я сконвертирую его в другой формат.",
				KeyChooseFormat:    "Выберите формат для конвертации:",
				KeyConverted:       "Вот ваше сконвертированное изображение:",
				KeyNoImage:         "Изображение не найдено.",
				KeyInvalidLanguage: "Этот язык не поддерживается.",
				KeyDecodeFailed:    "Не удалось распознать изображение.",
				KeyEncodeFailed:    "Не удалось сконвертировать изображение в этот формат.",
				KeyTransportFailed: "Не удалось получить файл. Попробуйте ещё раз.",
			KeyFileTooLarge:    "Файл слишком большой. Отправьте изображение меньше 20 МБ.",
			},
		},
		Ukrainian: {
			Label: "Українська",
			Strings: map[Key]string{
				KeyGreeting:        "Надішліть мені зображення, і я конвертую його в інший формат.",
				KeyChooseFormat:    "Оберіть формат для конвертації:",
				KeyConverted:       "Ось ваше конвертоване зображення:",
				KeyNoImage:         "Зображення не знайдено.",
				KeyInvalidLanguage: "Ця мова не підтримується.",
				KeyDecodeFailed:    "Не вдалося розпізнати зображення.",
				KeyEncodeFailed:    "Не вдалося конвертувати зображення в цей формат.",
				KeyTransportFailed: "Не вдалося отримати файл. Спробуйте ще раз.",
			KeyFileTooLarge:    "Файл завеликий. Надішліть зображення менше 20 МБ.",
			},
		},
	})
}
