package Controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "1", "20", 1, 20, 0},
		{"second page", "2", "20", 2, 20, 20},
		{"custom limit", "3", "50", 3, 50, 100},
		{"zero page", "0", "20", 1, 20, 0},
		{"negative page", "-4", "20", 1, 20, 0},
		{"limit over cap", "1", "500", 1, 20, 0},
		{"zero limit", "1", "0", 1, 20, 0},
		{"garbage page", "abc", "20", 1, 20, 0},
		{"garbage limit", "2", "xyz", 2, 20, 20},
		{"empty values", "", "", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := parsePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
