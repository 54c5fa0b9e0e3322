package parser

import (
	"errors"
	"testing"
	"time"

	"retention-scraper/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "28/11/2025",
			want:  time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "first of month",
			input: "01/01/2024",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "29/02/2024",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  15/11/2025 ",
			want:  time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "impossible day in month",
			input:   "31/02/2025",
			wantErr: true,
		},
		{
			name:    "leap day in non-leap year",
			input:   "29/02/2025",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "15/13/2025",
			wantErr: true,
		},
		{
			name:    "day zero",
			input:   "00/11/2025",
			wantErr: true,
		},
		{
			name:    "single-digit day not padded",
			input:   "5/11/2025",
			wantErr: true,
		},
		{
			name:    "two-digit year",
			input:   "28/11/25",
			wantErr: true,
		},
		{
			name:    "ISO shape",
			input:   "2025-11-28",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var formatErr *domain.FormatError
				assert.True(t, errors.As(err, &formatErr), "expected a FormatError, got %T", err)
			} else {
				assert.NoError(t, err)
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	inputs := []string{"01/01/2020", "29/02/2020", "31/12/2025", "28/11/2025"}
	for _, input := range inputs {
		got, err := ParseDate(input)
		assert.NoError(t, err)
		assert.Equal(t, input, got.Format(domain.DateLayout))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // decimal string, fixed to 2 places
		wantErr bool
	}{
		{
			name:  "negative with currency and thousands",
			input: "-$10.035,36",
			want:  "10035.36",
		},
		{
			name:  "positive with currency",
			input: "$50,00",
			want:  "50.00",
		},
		{
			name:  "no currency marker",
			input: "1.234,56",
			want:  "1234.56",
		},
		{
			name:  "plain integer",
			input: "500",
			want:  "500.00",
		},
		{
			name:  "millions",
			input: "-$1.234.567,89",
			want:  "1234567.89",
		},
		{
			name:  "bare decimals",
			input: "0,99",
			want:  "0.99",
		},
		{
			name:    "words",
			input:   "Transferencia",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "lone sign",
			input:   "-",
			wantErr: true,
		},
		{
			name:    "lone currency marker",
			input:   "$",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var formatErr *domain.FormatError
				assert.True(t, errors.As(err, &formatErr), "expected a FormatError, got %T", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
			assert.False(t, got.IsNegative(), "magnitude must be non-negative")
		})
	}
}
