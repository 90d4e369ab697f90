package mmu

import "testing"

func TestPageTableTreeMapReusesUpperLevels(t *testing.T) {
	tree := &PageTableTree{}

	tree.Map(0x40000000, 0x40000000)
	tree.Map(0x40001000, 0x40001000)

	i0 := index(0x40000000, idxShift0)
	i1 := index(0x40000000, idxShift1)
	i2 := index(0x40000000, idxShift2)

	if tree.Zeroeth[i0] == 0 {
		t.Fatalf("level 0 entry not installed")
	}
	if tree.First[i1] == 0 {
		t.Fatalf("level 1 entry not installed")
	}
	if tree.Second[i2] == 0 {
		t.Fatalf("level 2 entry not installed")
	}

	i3a := index(0x40000000, idxShift3)
	i3b := index(0x40001000, idxShift3)

	if i3a == i3b {
		t.Fatalf("test addresses collide at level 3, fix the test")
	}
	if tree.Third[i3a] == 0 || tree.Third[i3b] == 0 {
		t.Errorf("both level 3 entries should be populated")
	}
}

func TestPageTableTreeMapIdempotent(t *testing.T) {
	a := &PageTableTree{}
	b := &PageTableTree{}

	a.Map(0x40000000, 0x40000000)
	a.Map(0x40000000, 0x40000000)

	b.Map(0x40000000, 0x40000000)

	if *a != *b {
		t.Errorf("mapping the same vaddr/paddr twice changed the tree")
	}
}

func TestIndexExtraction(t *testing.T) {
	vaddr := uint64(0x1_2345_6789)

	got := []int{
		index(vaddr, idxShift0),
		index(vaddr, idxShift1),
		index(vaddr, idxShift2),
		index(vaddr, idxShift3),
	}
	want := []int{
		int((vaddr >> 39) & 0x1ff),
		int((vaddr >> 30) & 0x1ff),
		int((vaddr >> 21) & 0x1ff),
		int((vaddr >> 12) & 0x1ff),
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index level %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStage2TreeConcatBitSelectsHalf(t *testing.T) {
	tree := &PageTableTreeStage2{}

	tree.Map(0x40000000, 0x40000000) // bit 39 clear: first half
	tree.Map(0x80_0000_0000, 0x40000000)

	lowerIdx := int((uint64(0x40000000) >> idxShift1) & (2*entriesPerTable - 1))
	upperIdx := int((uint64(0x80_0000_0000) >> idxShift1) & (2*entriesPerTable - 1))

	if lowerIdx >= entriesPerTable {
		t.Fatalf("test setup error: expected lower half index")
	}
	if upperIdx < entriesPerTable {
		t.Fatalf("test setup error: expected upper half index")
	}
	if tree.Root[lowerIdx] == 0 {
		t.Errorf("lower half entry not installed")
	}
	if tree.Root[upperIdx] == 0 {
		t.Errorf("upper half entry not installed")
	}
}
