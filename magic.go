package macho

import (
	"encoding/binary"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

// HeaderKind classifies what the first four bytes of a container turned
// out to be.
type HeaderKind int

const (
	Unknown HeaderKind = iota
	Thin32
	Thin64
	Fat
)

func (k HeaderKind) String() string {
	switch k {
	case Thin32:
		return "thin32"
	case Thin64:
		return "thin64"
	case Fat:
		return "fat"
	default:
		return "unknown"
	}
}

// identifyMagic classifies the first four bytes of a container and
// returns the byte order those bytes imply. Mach-O magic numbers come in
// native and byte-swapped forms (the file was written on a machine of
// the opposite endianness from the one decoding it); a swapped magic
// still names the same HeaderKind, just with the opposite ByteOrder.
func identifyMagic(b [4]byte) (HeaderKind, binary.ByteOrder, types.Magic, error) {
	be := binary.BigEndian.Uint32(b[:])
	le := binary.LittleEndian.Uint32(b[:])

	switch types.Magic(be) {
	case types.Magic32:
		return Thin32, binary.BigEndian, types.Magic(be), nil
	case types.Magic64:
		return Thin64, binary.BigEndian, types.Magic(be), nil
	case types.MagicFat:
		return Fat, binary.BigEndian, types.Magic(be), nil
	}
	switch types.Magic(le) {
	case types.Magic32:
		return Thin32, binary.LittleEndian, types.Magic(le), nil
	case types.Magic64:
		return Thin64, binary.LittleEndian, types.Magic(le), nil
	case types.MagicFat:
		return Fat, binary.LittleEndian, types.Magic(le), nil
	}
	return Unknown, nil, types.Magic(be), newError(BadMagic, 0, "unrecognized magic number")
}
