package types

import "testing"

func TestMagicString(t *testing.T) {
	if got := Magic64.String(); got != "64-bit MachO" {
		t.Errorf("Magic64.String() = %q, want 64-bit MachO", got)
	}
	if got := MagicFat.String(); got != "Fat MachO" {
		t.Errorf("MagicFat.String() = %q, want Fat MachO", got)
	}
}

func TestHeaderFileTypeString(t *testing.T) {
	if got := MH_EXECUTE.String(); got != "MH_EXECUTE" {
		t.Errorf("MH_EXECUTE.String() = %q, want MH_EXECUTE", got)
	}
	if got := MH_DYLIB.String(); got != "MH_DYLIB" {
		t.Errorf("MH_DYLIB.String() = %q, want MH_DYLIB", got)
	}
}

func TestHeaderFlagGetters(t *testing.T) {
	f := PIE | NoUndefs | TwoLevel

	if !f.PIE() || !f.NoUndefs() || !f.TwoLevel() {
		t.Fatalf("expected PIE, NoUndefs and TwoLevel set in %#x", uint32(f))
	}
	if f.BindAtLoad() {
		t.Fatalf("BindAtLoad should not be set in %#x", uint32(f))
	}
	if HeaderFlag(0).None() == false {
		t.Fatalf("zero HeaderFlag.None() should be true")
	}
}

func TestHeaderFlagSet(t *testing.T) {
	var f HeaderFlag
	f.Set(PIE, true)
	if !f.PIE() {
		t.Fatalf("Set(PIE, true) did not set the bit")
	}
	f.Set(PIE, false)
	if f.PIE() {
		t.Fatalf("Set(PIE, false) did not clear the bit")
	}
}

func TestHeaderFlagListAndFlags(t *testing.T) {
	f := PIE | TwoLevel
	list := f.List()
	if len(list) != 2 {
		t.Fatalf("List() = %v, want 2 entries", list)
	}
	want := "TwoLevel, PIE"
	if got := f.Flags(); got != want {
		t.Fatalf("Flags() = %q, want %q", got, want)
	}
}

func TestFileHeaderString(t *testing.T) {
	h := FileHeader{
		Magic:        Magic64,
		CPU:          CPUArm64,
		SubCPU:       CPUSubtypeArm64All,
		Type:         MH_EXECUTE,
		NCommands:    3,
		SizeCommands: 512,
		Flags:        PIE | TwoLevel,
	}
	out := h.String()
	if out == "" {
		t.Fatalf("FileHeader.String() returned empty string")
	}
}
