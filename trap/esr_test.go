package trap

import "testing"

func TestECExtraction(t *testing.T) {
	// Instruction Abort, current EL, with some arbitrary ISS bits set.
	esr := uint64(ecIabtCurrent)<<ecShift | 0b000100
	if got := EC(esr); got != ecIabtCurrent {
		t.Errorf("EC(0x%x) = 0x%x, want 0x%x", esr, got, ecIabtCurrent)
	}
	if got := FaultStatus(esr); got != 0b000100 {
		t.Errorf("FaultStatus(0x%x) = 0x%x, want 0x4", esr, got)
	}
}

func TestECNameCompleteness(t *testing.T) {
	seen := map[string]bool{}
	for ec := uint64(0); ec <= ecMask; ec++ {
		name := ECName(ec)
		if name == "" {
			t.Errorf("EC 0x%x has empty name", ec)
		}
		if _, known := ecNames[ec]; !known && name != "Unknown Exception Class" {
			t.Errorf("EC 0x%x unexpectedly has a name: %q", ec, name)
		}
		seen[name] = true
	}

	// Every defined EC must produce a name distinct from every other
	// defined EC; only the "unknown" fallback is shared across values.
	byName := map[string]int{}
	for ec, name := range ecNames {
		byName[name]++
		_ = ec
	}
	for name, count := range byName {
		if count > 1 {
			t.Errorf("EC name %q is shared by %d distinct Exception Classes", name, count)
		}
	}
}

func TestFaultStatusNameFallback(t *testing.T) {
	if got := FaultStatusName(0b111111); got != "Other" {
		t.Errorf("FaultStatusName(0x3f) = %q, want %q", got, "Other")
	}
}

func TestIsAbortCurrentEL(t *testing.T) {
	cases := []struct {
		ec   uint64
		want bool
	}{
		{ecIabtCurrent, true},
		{ecDabtCurrent, true},
		{ecIabtLower, false},
		{ecSVC64, false},
	}

	for _, c := range cases {
		if got := IsAbortCurrentEL(c.ec); got != c.want {
			t.Errorf("IsAbortCurrentEL(0x%x) = %v, want %v", c.ec, got, c.want)
		}
	}
}
