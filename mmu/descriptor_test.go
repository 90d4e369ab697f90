package mmu

import "testing"

func TestStage1BlockRoundTrip(t *testing.T) {
	addrs := []uint64{0, 0x1000, 0x40000000, 0x40001000, (1 << 40) - 0x1000}

	for _, addr := range addrs {
		d := uint64(Stage1Block(addr))

		if got := d & tableRes0; got != 0 {
			t.Errorf("Stage1Block(0x%x): RES0 bits set: 0x%x", addr, got)
		}
		if got := d & 0xfff_0000_0000_0000; got != 0 {
			t.Errorf("Stage1Block(0x%x): bits [59:48] set: 0x%x", addr, got)
		}
		if got := d & outputAddrField; got != addr&outputAddrField {
			t.Errorf("Stage1Block(0x%x): output address field = 0x%x, want 0x%x", addr, got, addr&outputAddrField)
		}
		if d&pteValid == 0 {
			t.Errorf("Stage1Block(0x%x): valid bit clear", addr)
		}
		if d&pteTable == 0 {
			t.Errorf("Stage1Block(0x%x): page bit clear", addr)
		}
	}
}

const outputAddrField = 0xffff_ffff_f000 // bits [47:12] at their native position

func TestStage1TableLeavesRes0Clear(t *testing.T) {
	d := uint64(Stage1Table(0x41000000))
	if d&tableRes0 != 0 {
		t.Errorf("Stage1Table: RES0 bits set: 0x%x", d&tableRes0)
	}
}

func TestStage2BlockAlignsDown(t *testing.T) {
	d := uint64(Stage2Block(0x40000400))
	want := uint64(0x40000000)
	if got := d & outputAddrField; got != want {
		t.Errorf("Stage2Block(0x40000400) output field = 0x%x, want 0x%x", got, want)
	}
	if d&pteTable != 0 {
		t.Errorf("Stage2Block must not set the table bit (it is a block)")
	}
}

func TestValidOutputAddress(t *testing.T) {
	cases := []struct {
		addr uint64
		want bool
	}{
		{0, true},
		{0x1000, true},
		{0xfff, false},        // not aligned
		{1 << 40, false},      // at the boundary, out of range
		{(1 << 40) - 0x1000, true},
	}

	for _, c := range cases {
		if got := ValidOutputAddress(c.addr); got != c.want {
			t.Errorf("ValidOutputAddress(0x%x) = %v, want %v", c.addr, got, c.want)
		}
	}
}
