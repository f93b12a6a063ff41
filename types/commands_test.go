package types

import "testing"

func TestLoadCmdString(t *testing.T) {
	tests := []struct {
		c    LoadCmd
		want string
	}{
		{LC_SEGMENT_64, "LC_SEGMENT_64"},
		{LC_LOAD_DYLIB, "LC_LOAD_DYLIB"},
		{LC_MAIN, "LC_MAIN"},
		{LC_RPATH, "LC_RPATH"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("LoadCmd(%#x).String() = %q, want %q", uint32(tt.c), got, tt.want)
		}
	}
}

func TestLoadCmdReqDyldBit(t *testing.T) {
	// Commands documented with LC_REQ_DYLD set carry the bit in their
	// numeric value, not just in a comment.
	if LC_MAIN&LC_REQ_DYLD == 0 {
		t.Errorf("LC_MAIN should have the LC_REQ_DYLD bit set")
	}
	if LC_RPATH&LC_REQ_DYLD == 0 {
		t.Errorf("LC_RPATH should have the LC_REQ_DYLD bit set")
	}
	if LC_SEGMENT_64&LC_REQ_DYLD != 0 {
		t.Errorf("LC_SEGMENT_64 should not have the LC_REQ_DYLD bit set")
	}
}

func TestIsSingleton(t *testing.T) {
	singletons := []LoadCmd{LC_UUID, LC_MAIN, LC_SYMTAB, LC_DYSYMTAB, LC_ID_DYLIB, LC_DYLD_INFO, LC_DYLD_INFO_ONLY}
	for _, c := range singletons {
		if !c.IsSingleton() {
			t.Errorf("%s.IsSingleton() = false, want true", c)
		}
	}
	if LC_RPATH.IsSingleton() {
		t.Errorf("LC_RPATH.IsSingleton() = true, want false")
	}
	if LC_LOAD_DYLIB.IsSingleton() {
		t.Errorf("LC_LOAD_DYLIB.IsSingleton() = true, want false")
	}
}

func TestSectionFlagTypeAndAttribute(t *testing.T) {
	f := SectionFlag(uint32(SCStringLiterals) | uint32(AttrPureInstructions) | uint32(AttrNoDeadStrip))

	if got := f.Type(); got != SCStringLiterals {
		t.Errorf("Type() = %#x, want %#x", uint32(got), uint32(SCStringLiterals))
	}
	if !f.Attribute(AttrPureInstructions) {
		t.Errorf("Attribute(AttrPureInstructions) = false, want true")
	}
	if !f.Attribute(AttrNoDeadStrip) {
		t.Errorf("Attribute(AttrNoDeadStrip) = false, want true")
	}
	if f.Attribute(AttrDebug) {
		t.Errorf("Attribute(AttrDebug) = true, want false")
	}
	if got := f.String(); got != "CStringLiterals" {
		t.Errorf("String() = %q, want CStringLiterals", got)
	}
}
