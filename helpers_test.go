package macho

import (
	"encoding/binary"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

// buildHeader returns a 32-byte thin-64 mach_header_64 in the given order,
// always tagged with the 64-bit magic (the order itself signals which of
// the two on-disk magic byte sequences this corresponds to).
func buildHeader(order binary.ByteOrder, cputype, subtype, ftype, ncmds, sizeofcmds, flags uint32) []byte {
	buf := make([]byte, 32)
	order.PutUint32(buf[0:4], uint32(types.Magic64))
	order.PutUint32(buf[4:8], cputype)
	order.PutUint32(buf[8:12], subtype)
	order.PutUint32(buf[12:16], ftype)
	order.PutUint32(buf[16:20], ncmds)
	order.PutUint32(buf[20:24], sizeofcmds)
	order.PutUint32(buf[24:28], flags)
	order.PutUint32(buf[28:32], 0)
	return buf
}

// buildCmd wraps payload in a cmd/cmdsize header and pads to an 8-byte
// boundary, the way a real linker lays out load commands in a 64-bit
// Mach-O.
func buildCmd(order binary.ByteOrder, cmd types.LoadCmd, payload []byte) []byte {
	total := 8 + len(payload)
	if pad := total % 8; pad != 0 {
		total += 8 - pad
	}
	buf := make([]byte, total)
	order.PutUint32(buf[0:4], uint32(cmd))
	order.PutUint32(buf[4:8], uint32(total))
	copy(buf[8:], payload)
	return buf
}

func putName(dst []byte, name string) {
	copy(dst, name)
}

func buildSegmentPayload(order binary.ByteOrder, segname string, vmaddr, vmsize, fileoff, filesize uint64, maxprot, initprot uint32, sections [][]byte) []byte {
	buf := make([]byte, 16)
	putName(buf, segname)
	u64 := make([]byte, 8)
	app64 := func(v uint64) {
		order.PutUint64(u64, v)
		buf = append(buf, u64...)
	}
	app64(vmaddr)
	app64(vmsize)
	app64(fileoff)
	app64(filesize)
	u32 := make([]byte, 4)
	app32 := func(v uint32) {
		order.PutUint32(u32, v)
		buf = append(buf, u32...)
	}
	app32(maxprot)
	app32(initprot)
	app32(uint32(len(sections)))
	app32(0)
	for _, s := range sections {
		buf = append(buf, s...)
	}
	return buf
}

func buildSection(order binary.ByteOrder, sectname, segname string, addr, size uint64, offset, align, reloff, nreloc, flags uint32) []byte {
	buf := make([]byte, 80)
	putName(buf[0:16], sectname)
	putName(buf[16:32], segname)
	order.PutUint64(buf[32:40], addr)
	order.PutUint64(buf[40:48], size)
	order.PutUint32(buf[48:52], offset)
	order.PutUint32(buf[52:56], align)
	order.PutUint32(buf[56:60], reloff)
	order.PutUint32(buf[60:64], nreloc)
	order.PutUint32(buf[64:68], flags)
	return buf
}

func buildSymtabPayload(order binary.ByteOrder, symoff, nsyms, stroff, strsize uint32) []byte {
	buf := make([]byte, 16)
	order.PutUint32(buf[0:4], symoff)
	order.PutUint32(buf[4:8], nsyms)
	order.PutUint32(buf[8:12], stroff)
	order.PutUint32(buf[12:16], strsize)
	return buf
}

func buildNlist64(order binary.ByteOrder, strx uint32, typ, sect uint8, desc uint16, value uint64) []byte {
	buf := make([]byte, 16)
	order.PutUint32(buf[0:4], strx)
	buf[4] = typ
	buf[5] = sect
	order.PutUint16(buf[6:8], desc)
	order.PutUint64(buf[8:16], value)
	return buf
}

func buildDylibPayload(order binary.ByteOrder, nameOff, timestamp, current, compat uint32, name string) []byte {
	buf := make([]byte, 16)
	order.PutUint32(buf[0:4], nameOff)
	order.PutUint32(buf[4:8], timestamp)
	order.PutUint32(buf[8:12], current)
	order.PutUint32(buf[12:16], compat)
	buf = append(buf, []byte(name)...)
	buf = append(buf, 0)
	return buf
}

func buildRpathPayload(order binary.ByteOrder, path string) []byte {
	buf := make([]byte, 4)
	order.PutUint32(buf[0:4], 12) // path_off: cmd+cmdsize+path_off precede the string
	buf = append(buf, []byte(path)...)
	buf = append(buf, 0)
	return buf
}

func buildUUIDPayload(id [16]byte) []byte {
	return id[:]
}

func buildBuildVersionPayload(order binary.ByteOrder, platform, minos, sdk uint32, tools [][2]uint32) []byte {
	buf := make([]byte, 16)
	order.PutUint32(buf[0:4], platform)
	order.PutUint32(buf[4:8], minos)
	order.PutUint32(buf[8:12], sdk)
	order.PutUint32(buf[12:16], uint32(len(tools)))
	u32 := make([]byte, 4)
	for _, t := range tools {
		order.PutUint32(u32, t[0])
		buf = append(buf, u32...)
		order.PutUint32(u32, t[1])
		buf = append(buf, u32...)
	}
	return buf
}

func buildEntryPointPayload(order binary.ByteOrder, off, stacksize uint64) []byte {
	buf := make([]byte, 16)
	order.PutUint64(buf[0:8], off)
	order.PutUint64(buf[8:16], stacksize)
	return buf
}

func buildSourceVersionPayload(order binary.ByteOrder, v uint64) []byte {
	buf := make([]byte, 8)
	order.PutUint64(buf, v)
	return buf
}

func buildLinkEditDataPayload(order binary.ByteOrder, off, size uint32) []byte {
	buf := make([]byte, 8)
	order.PutUint32(buf[0:4], off)
	order.PutUint32(buf[4:8], size)
	return buf
}

func buildDyldInfoPayload(order binary.ByteOrder, vals [10]uint32) []byte {
	buf := make([]byte, 40)
	for i, v := range vals {
		order.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}
