package hv

import (
	"testing"
	"time"
)

func TestAlignUp4K(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0, 0},
		{1, 0x1000},
		{0x1000, 0x1000},
		{0x1001, 0x2000},
	}

	for _, c := range cases {
		if got := alignUp4K(c.in); got != c.want {
			t.Errorf("alignUp4K(0x%x) = 0x%x, want 0x%x", c.in, got, c.want)
		}
	}
}

func TestBuildBootPageTablesIdentityMaps(t *testing.T) {
	start := uint64(0x40080000)
	end := uint64(0x40082000) // two pages

	tree := buildBootPageTables(start, end, 0)

	for p := start; p < end; p += pageSize {
		if !tree.Mapped(p) {
			t.Errorf("page 0x%x: not mapped", p)
		}
	}
}

func TestBuildBootPageTablesOffsetMapping(t *testing.T) {
	start := uint64(0x40080000)
	end := uint64(0x40081000)
	offset := uint64(0x40000000)

	tree := buildBootPageTables(start, end, offset)

	if !tree.Mapped(start + offset) {
		t.Errorf("offset mapping not installed at vaddr 0x%x", start+offset)
	}
}

// violatesAndHangs calls fn and reports whether it returned within a short
// deadline. buildBootPageTables has no recoverable error path: a
// precondition violation halts in an infinite loop by design (see
// panicLoop), so the only observable behavior from a test is that the
// call never returns.
func violatesAndHangs(t *testing.T, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
		t.Errorf("expected precondition violation to halt, but the call returned")
	case <-time.After(50 * time.Millisecond):
		// expected: still spinning in panicLoop
	}
}

func TestBuildBootPageTablesRejectsOversizedImage(t *testing.T) {
	violatesAndHangs(t, func() {
		buildBootPageTables(0x40000000, 0x40000000+maxImageSize+pageSize, 0)
	})
}

func TestBuildBootPageTablesRejectsMisalignedOffset(t *testing.T) {
	violatesAndHangs(t, func() {
		buildBootPageTables(0x40080000, 0x40081000, 0x40000400)
	})
}
