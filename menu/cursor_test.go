package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{0, 3, 1},
		{-5, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{7, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.page, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.total))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		stored   int // 0 means nothing stored
		arg      string
		total    int
		want     int
		wantWarn bool
	}{
		{"empty defaults to first page", 0, "", 3, 1, false},
		{"empty returns stored page", 2, "", 3, 2, false},
		{"empty clamps stale cursor", 5, "", 3, 3, false},
		{"next", 1, "next", 3, 2, false},
		{"next alias", 1, "n", 3, 2, false},
		{"next is case insensitive", 1, " NEXT ", 3, 2, false},
		{"next from last page stays", 3, "next", 3, 3, false},
		{"prev", 3, "prev", 3, 2, false},
		{"prev alias", 3, "-", 3, 2, false},
		{"prev from first page stays", 0, "prev", 3, 1, false},
		{"absolute page", 1, "2", 2, 2, false},
		{"absolute ignores cursor", 2, "1", 3, 1, false},
		{"absolute clamps high", 1, "99", 2, 2, false},
		{"absolute clamps zero", 2, "0", 2, 1, false},
		{"absolute overflow", 1, "99999999999999999999999", 4, 4, false},
		{"unknown token", 3, "banana", 3, 1, true},
		{"negative number is unknown", 3, "-1", 3, 1, true},
		{"single page next", 0, "next", 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCursorStore()
			if tt.stored != 0 {
				cs.Set("s1", tt.stored)
			}

			page, warning := cs.Resolve("s1", tt.arg, tt.total)
			assert.Equal(t, tt.want, page)
			assert.Equal(t, tt.want, cs.Get("s1"), "resolved page is stored")
			if tt.wantWarn {
				assert.Contains(t, warning, fmt.Sprintf("%q", tt.arg))
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestResolveAlwaysInRange(t *testing.T) {
	args := []string{"", "next", "prev", "0", "1", "2", "3", "4", "1000", "junk"}
	for total := 1; total <= 4; total++ {
		cs := NewCursorStore()
		for _, arg := range args {
			page, _ := cs.Resolve("s", arg, total)
			assert.GreaterOrEqual(t, page, 1)
			assert.LessOrEqual(t, page, total)
		}
	}
}

func TestCursorSessionsAreIndependent(t *testing.T) {
	cs := NewCursorStore()
	cs.Resolve("a", "3", 5)
	cs.Resolve("b", "next", 5)

	assert.Equal(t, 3, cs.Get("a"))
	assert.Equal(t, 2, cs.Get("b"))
	assert.Equal(t, 2, cs.Len())

	cs.Clear()
	assert.Equal(t, 0, cs.Len())
	assert.Equal(t, FirstPage, cs.Get("a"))
}
