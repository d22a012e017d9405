package command

import "convbot/internal/core/domain"

// languageMenu lays all supported languages out in a single row.
func languageMenu(catalog *domain.Catalog) *domain.Menu {
	langs := catalog.Languages()
	row := make([]domain.Button, 0, len(langs))
	for _, lang := range langs {
		row = append(row, domain.Button{Text: catalog.Label(lang), Data: domain.LanguageCallbackData(lang)})
	}

	return &domain.Menu{Rows: [][]domain.Button{row}}
}

// formatMenu puts every output format on its own row.
func formatMenu() *domain.Menu {
	formats := domain.Formats()
	rows := make([][]domain.Button, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []domain.Button{{Text: string(f), Data: domain.FormatCallbackData(f)}})
	}

	return &domain.Menu{Rows: rows}
}
