package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"vitalog/internal/store"
)

func TestPaginatePartitions(t *testing.T) {
	recs := []store.Record{
		testRecord(1, 3), testRecord(2, 3), testRecord(3, 3),
		testRecord(4, 3), testRecord(5, 3),
	}

	// 5 records at 2 per page: 3 pages, the last with a single record
	var seen []string
	total := 0
	for p := 1; ; p++ {
		page := Paginate(recs, p, 2)
		assert.Equal(t, 3, page.Total)
		for _, r := range page.Records {
			seen = append(seen, r.ID)
		}
		total += len(page.Records)
		if p == page.Total {
			assert.Len(t, page.Records, 1)
			break
		}
	}
	assert.Equal(t, 5, total, "pages must partition the set without overlap")
	assert.Equal(t, []string{"rec-01", "rec-02", "rec-03", "rec-04", "rec-05"}, seen)
}

func TestPaginateEmptySet(t *testing.T) {
	page := Paginate(nil, 1, 10)
	assert.Equal(t, 1, page.Total, "total pages is at least 1")
	assert.Equal(t, 1, page.Number)
	assert.Empty(t, page.Records)
}

func TestPaginateClampsPage(t *testing.T) {
	recs := []store.Record{testRecord(1, 3), testRecord(2, 3), testRecord(3, 3)}
	page := Paginate(recs, 99, 2)
	assert.Equal(t, 2, page.Number)
	page = Paginate(recs, -4, 2)
	assert.Equal(t, 1, page.Number)
	// nonsense perPage falls back to 1
	page = Paginate(recs, 1, 0)
	assert.Len(t, page.Records, 1)
	assert.Equal(t, 3, page.Total)
}

func TestPageButtonsWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []PageButton
	}{
		{
			name: "few pages, no ellipsis", current: 2, total: 3,
			want: []PageButton{{Page: 1}, {Page: 2, Current: true}, {Page: 3}},
		},
		{
			name: "middle of long list", current: 10, total: 20,
			want: []PageButton{
				{Page: 1}, {Ellipsis: true},
				{Page: 8}, {Page: 9}, {Page: 10, Current: true}, {Page: 11}, {Page: 12},
				{Ellipsis: true}, {Page: 20},
			},
		},
		{
			name: "window clamped at the start", current: 1, total: 20,
			want: []PageButton{
				{Page: 1, Current: true}, {Page: 2}, {Page: 3}, {Page: 4}, {Page: 5},
				{Ellipsis: true}, {Page: 20},
			},
		},
		{
			name: "window clamped at the end", current: 20, total: 20,
			want: []PageButton{
				{Page: 1}, {Ellipsis: true},
				{Page: 16}, {Page: 17}, {Page: 18}, {Page: 19}, {Page: 20, Current: true},
			},
		},
		{
			name: "adjacent to first, no gap ellipsis", current: 4, total: 20,
			want: []PageButton{
				{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4, Current: true}, {Page: 5}, {Page: 6},
				{Ellipsis: true}, {Page: 20},
			},
		},
		{
			name: "single page", current: 1, total: 1,
			want: []PageButton{{Page: 1, Current: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageButtons(tt.current, tt.total)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PageButtons(%d, %d) mismatch (-want +got):\n%s",
					tt.current, tt.total, diff)
			}
		})
	}
}
