package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Action
		wantErr bool
	}{
		{
			name: "language",
			data: "lang_ru",
			want: SelectLanguage{Language: Russian},
		},
		{
			name: "unsupported language is still decoded",
			data: "lang_de",
			want: SelectLanguage{Language: "de"},
		},
		{
			name:    "language without code",
			data:    "lang_",
			want:    UnknownAction{Data: "lang_"},
			wantErr: true,
		},
		{
			name: "format",
			data: "convert_PNG",
			want: SelectFormat{Format: FormatPNG},
		},
		{
			name:    "unsupported format",
			data:    "convert_GIF",
			want:    UnknownAction{Data: "convert_GIF"},
			wantErr: true,
		},
		{
			name:    "unknown prefix",
			data:    "delete_all",
			want:    UnknownAction{Data: "delete_all"},
			wantErr: true,
		},
		{
			name:    "empty payload",
			data:    "",
			want:    UnknownAction{Data: ""},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAction(tc.data)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownAction)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCallbackDataRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseAction(FormatCallbackData(f))
		require.NoError(t, err)
		assert.Equal(t, SelectFormat{Format: f}, got)
	}

	got, err := ParseAction(LanguageCallbackData(Ukrainian))
	require.NoError(t, err)
	assert.Equal(t, SelectLanguage{Language: Ukrainian}, got)
}
