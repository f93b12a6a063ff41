package types

import "testing"

func TestVmProtectionString(t *testing.T) {
	tests := []struct {
		v    VmProtection
		want string
	}{
		{0, "---"},
		{0x01, "r--"},
		{0x02, "-w-"},
		{0x04, "--x"},
		{0x07, "rwx"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("VmProtection(%#x).String() = %q, want %q", uint32(tt.v), got, tt.want)
		}
	}
}

func TestUUIDString(t *testing.T) {
	var u UUID
	for i := range u {
		u[i] = byte(i + 1)
	}
	want := "01020304-0506-0708-090A-0B0C0D0E0F10"
	if got := u.String(); got != want {
		t.Errorf("UUID.String() = %q, want %q", got, want)
	}
}

func TestUUIDIsNull(t *testing.T) {
	var zero UUID
	if !zero.IsNull() {
		t.Errorf("zero UUID.IsNull() = false, want true")
	}
	nonzero := UUID{1}
	if nonzero.IsNull() {
		t.Errorf("non-zero UUID.IsNull() = true, want false")
	}
}

func TestPlatformString(t *testing.T) {
	if got := PlatformIOS.String(); got != "iOS" {
		t.Errorf("PlatformIOS.String() = %q, want iOS", got)
	}
	if got := Platform(0xdead).String(); got != "0xdead" {
		t.Errorf("unrecognized Platform.String() = %q, want 0xdead", got)
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{0x000E0400, "14.4"},
		{0x000E0401, "14.4.1"},
		{0x000F0000, "15.0"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Version(%#x).String() = %q, want %q", uint32(tt.v), got, tt.want)
		}
	}
}

func TestSrcVersionString(t *testing.T) {
	v := SrcVersion((1 << 40) | (2 << 30) | (3 << 20) | (4 << 10) | 5)
	want := "1.2.3.4.5"
	if got := v.String(); got != want {
		t.Errorf("SrcVersion.String() = %q, want %q", got, want)
	}
}

func TestToolString(t *testing.T) {
	if got := ToolLd.String(); got != "ld" {
		t.Errorf("ToolLd.String() = %q, want ld", got)
	}
	if got := ToolClang.String(); got != "clang" {
		t.Errorf("ToolClang.String() = %q, want clang", got)
	}
}

func TestStringName(t *testing.T) {
	names := []IntName{{1, "one"}, {2, "two"}}
	if got := StringName(1, names, false); got != "one" {
		t.Errorf("StringName(1) = %q, want one", got)
	}
	if got := StringName(99, names, false); got != "0x63" {
		t.Errorf("StringName(99) = %q, want 0x63", got)
	}
	if got := StringName(1, names, true); got != "macho.one" {
		t.Errorf("StringName(1, goSyntax) = %q, want macho.one", got)
	}
}

func TestMaskAndExtractBits(t *testing.T) {
	if got := MaskLSB64(0xFFFF, 8); got != 0xFF {
		t.Errorf("MaskLSB64(0xFFFF, 8) = %#x, want 0xff", got)
	}
	if got := ExtractBits(0xABCD, 4, 8); got != 0xBC {
		t.Errorf("ExtractBits(0xABCD, 4, 8) = %#x, want 0xbc", got)
	}
}
