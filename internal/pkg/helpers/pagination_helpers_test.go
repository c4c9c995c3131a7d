package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		offset     uint64
		limit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, uint64(DefaultPageSize), DefaultPageSize},
		{"oversized page size is capped", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(c.page, c.size)
			if offset != c.offset || limit != c.limit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					c.page, c.size, offset, limit, c.offset, c.limit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalItems != 45 {
		t.Errorf("TotalItems = %d, want 45", info.TotalItems)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("empty result TotalPages = %d, want 1", empty.TotalPages)
	}

	beyond := NewPaginationInfo(10, 9, 20)
	if beyond.CurrentPage != 1 {
		t.Errorf("CurrentPage past the end = %d, want 1", beyond.CurrentPage)
	}
}
