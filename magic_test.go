package macho

import (
	"encoding/binary"
	"testing"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

func TestIdentifyMagic(t *testing.T) {
	tests := []struct {
		name      string
		bytes     [4]byte
		wantKind  HeaderKind
		wantOrder binary.ByteOrder
	}{
		{"thin32 be", magicBytes(binary.BigEndian, uint32(types.Magic32)), Thin32, binary.BigEndian},
		{"thin32 le", magicBytes(binary.LittleEndian, uint32(types.Magic32)), Thin32, binary.LittleEndian},
		{"thin64 be", magicBytes(binary.BigEndian, uint32(types.Magic64)), Thin64, binary.BigEndian},
		{"thin64 le", magicBytes(binary.LittleEndian, uint32(types.Magic64)), Thin64, binary.LittleEndian},
		{"fat be", magicBytes(binary.BigEndian, uint32(types.MagicFat)), Fat, binary.BigEndian},
		{"fat le", magicBytes(binary.LittleEndian, uint32(types.MagicFat)), Fat, binary.LittleEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, order, _, err := identifyMagic(tt.bytes)
			if err != nil {
				t.Fatalf("identifyMagic: %v", err)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", kind, tt.wantKind)
			}
			if order != tt.wantOrder {
				t.Errorf("order = %v, want %v", order, tt.wantOrder)
			}
		})
	}
}

func TestIdentifyMagic_Unrecognized(t *testing.T) {
	_, _, _, err := identifyMagic([4]byte{0x01, 0x02, 0x03, 0x04})
	assertKind(t, err, BadMagic)
}

func TestHeaderKindString(t *testing.T) {
	tests := []struct {
		k    HeaderKind
		want string
	}{
		{Thin32, "thin32"},
		{Thin64, "thin64"},
		{Fat, "fat"},
		{Unknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("HeaderKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func magicBytes(order binary.ByteOrder, v uint32) [4]byte {
	var b [4]byte
	order.PutUint32(b[:], v)
	return b
}
