package pagination

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := intRange(25)

	t.Run("first page", func(t *testing.T) {
		p := Paginate(items, 1, 10)
		if p.TotalPages != 3 {
			t.Fatalf("want 3 total pages, got %d", p.TotalPages)
		}
		if !p.HasMultiplePages {
			t.Error("expected HasMultiplePages")
		}
		if len(p.Items) != 10 || p.Items[0] != 1 || p.Items[9] != 10 {
			t.Errorf("unexpected first page: %v", p.Items)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		p := Paginate(items, 3, 10)
		if len(p.Items) != 5 || p.Items[0] != 21 || p.Items[4] != 25 {
			t.Errorf("unexpected last page: %v", p.Items)
		}
	})

	t.Run("page out of range yields empty slice", func(t *testing.T) {
		p := Paginate(items, 4, 10)
		if len(p.Items) != 0 {
			t.Errorf("want empty page, got %v", p.Items)
		}
		if p.TotalPages != 3 {
			t.Errorf("total pages should be unchanged, got %d", p.TotalPages)
		}
	})

	t.Run("single page", func(t *testing.T) {
		p := Paginate(intRange(5), 1, 10)
		if p.TotalPages != 1 {
			t.Errorf("want 1 total page, got %d", p.TotalPages)
		}
		if p.HasMultiplePages {
			t.Error("did not expect HasMultiplePages")
		}
		if len(p.Items) != 5 {
			t.Errorf("want 5 items, got %d", len(p.Items))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		p := Paginate([]int{}, 1, 10)
		if p.TotalPages != 0 || len(p.Items) != 0 {
			t.Errorf("unexpected page for empty input: %+v", p)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		p := Paginate(items, 0, 0)
		if p.Page != 1 || p.PerPage != DefaultPerPage {
			t.Errorf("defaults not applied: %+v", p)
		}
	})
}
