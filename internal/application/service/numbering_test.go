package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	date := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		sequence int
		want     string
	}{
		{
			name:     "year and sequence",
			format:   "FAC-{YEAR}-{SEQUENCE}",
			sequence: 7,
			want:     "FAC-2026-0007",
		},
		{
			name:     "all placeholders",
			format:   "{YEAR}/{MONTH}/{DAY}/{SEQUENCE}",
			sequence: 42,
			want:     "2026/09/01/0042",
		},
		{
			name:     "empty format falls back",
			format:   "",
			sequence: 3,
			want:     "DOC-0003",
		},
		{
			name:     "no placeholders returns format unchanged",
			format:   "STATIC-REF",
			sequence: 99,
			want:     "STATIC-REF",
		},
		{
			name:     "sequence beyond padding width",
			format:   "DEV-{SEQUENCE}",
			sequence: 12345,
			want:     "DEV-12345",
		},
		{
			name:     "repeated placeholder",
			format:   "{YEAR}-{YEAR}-{SEQUENCE}",
			sequence: 1,
			want:     "2026-2026-0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatReference(tt.format, tt.sequence, date)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatReferenceIsIdempotent(t *testing.T) {
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	once := FormatReference("FAC-{YEAR}-{SEQUENCE}", 12, date)
	twice := FormatReference(once, 99, date)

	assert.Equal(t, once, twice)
}
