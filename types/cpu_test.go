package types

import "testing"

func TestCPUString(t *testing.T) {
	tests := []struct {
		c    CPU
		want string
	}{
		{CPUArm64, "AARCH64"},
		{CPUAmd64, "Amd64"},
		{CPU386, "i386"},
		{CPUAny, "any"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CPU(%#x).String() = %q, want %q", uint32(tt.c), got, tt.want)
		}
	}
}

func TestCPUGoString(t *testing.T) {
	if got := CPUArm64.GoString(); got != "macho.AARCH64" {
		t.Errorf("CPUArm64.GoString() = %q, want macho.AARCH64", got)
	}
}

func TestCPUSubtypeStringX86(t *testing.T) {
	if got := CPUSubtypeX8664All.String(CPUAmd64); got != "x86_64" {
		t.Errorf("CPUSubtypeX8664All.String(Amd64) = %q, want x86_64", got)
	}
}

func TestCPUSubtypeStringArm(t *testing.T) {
	if got := CPUSubtypeArmV7.String(CPUArm); got != "ARMv7" {
		t.Errorf("CPUSubtypeArmV7.String(Arm) = %q, want ARMv7", got)
	}
}

func TestCPUSubtypeStringArm64NoCaps(t *testing.T) {
	got := CPUSubtypeArm64All.String(CPUArm64)
	want := "ARM64 caps: PAC00"
	if got != want {
		t.Errorf("CPUSubtypeArm64All.String(Arm64) = %q, want %q", got, want)
	}
}

func TestCPUSubtypeCaps(t *testing.T) {
	if got := CPUSubtypeArm64All.Caps(CPUArm64); got != "" {
		t.Errorf("Caps() with no feature bits = %q, want empty", got)
	}
	if got := CPUSubtypeArm64All.Caps(CPU386); got != "" {
		t.Errorf("Caps() for non-ARM64 CPU = %q, want empty", got)
	}

	withPAC := CPUSubtypeArm64E | (2 << 24)
	if got := withPAC.Caps(CPUArm64); got != "caps: PAC02" {
		t.Errorf("Caps() with PAC bits = %q, want caps: PAC02", got)
	}

	withPAK := CPUSubtypeArm64E | CpuSubtypePtrauthAbiUser | (3 << 24)
	if got := withPAK.Caps(CPUArm64); got != "caps: PAK03" {
		t.Errorf("Caps() with PAK bits = %q, want caps: PAK03", got)
	}
}
