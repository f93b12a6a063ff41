package macho

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

// A FatArch describes one architecture slice inside a fat (universal)
// Mach-O container, without eagerly decoding it.
type FatArch struct {
	CPU    types.CPU
	SubCPU types.CPUSubtype
	Offset uint64
	Size   uint64
	Align  uint32

	r io.ReaderAt
}

// Arch lazily decodes this arch's thin Mach-O slice.
func (a *FatArch) Arch() (*File, error) {
	return NewFile(a.r, FileConfig{Offset: int64(a.Offset)})
}

func (a *FatArch) String() string {
	return a.CPU.String() + " " + a.SubCPU.String(a.CPU)
}

// FatFile is a universal (fat) Mach-O: a small arch table followed by
// one thin Mach-O per listed architecture.
type FatFile struct {
	Arches []FatArch

	closer io.Closer
}

// Close releases the underlying file, if OpenFat opened one. It is a
// no-op for a FatFile built over a caller-supplied reader.
func (f *FatFile) Close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}

// OpenFat opens the named file and decodes it as a fat Mach-O.
func OpenFat(name string) (*FatFile, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	f, err := NewFatFile(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	f.closer = fp
	return f, nil
}

// NewFatFile decodes a fat Mach-O read through r.
func NewFatFile(r io.ReaderAt) (*FatFile, error) {
	size := readerSize(r)
	src := newFileSource(r, size)

	magicBytes, err := src.ReadAt(0, 4)
	if err != nil {
		return nil, wrapError(Truncated, 0, "reading magic", err)
	}
	kind, order, _, err := identifyMagic([4]byte(magicBytes))
	if err != nil {
		return nil, err
	}
	if kind != Fat {
		return nil, newError(BadMagic, 0, "not a fat Mach-O")
	}

	hdr, err := src.ReadAt(4, 4)
	if err != nil {
		return nil, wrapError(Truncated, 4, "reading fat_header.nfat_arch", err)
	}
	nArch := order.Uint32(hdr)

	const archSize = 20 // cputype4 + cpusubtype4 + offset4 + size4 + align4
	buf, err := src.ReadAt(8, uint64(nArch)*archSize)
	if err != nil {
		return nil, wrapError(Truncated, 8, "reading fat_arch table", err)
	}

	ff := &FatFile{}
	br := bytes.NewReader(buf)
	for i := uint32(0); i < nArch; i++ {
		var raw struct {
			CPU    uint32
			SubCPU uint32
			Offset uint32
			Size   uint32
			Align  uint32
		}
		if err := binary.Read(br, order, &raw); err != nil {
			return nil, wrapError(MalformedLoadCommand, int64(8+i*archSize), "decoding fat_arch", err)
		}
		arch := FatArch{
			CPU:    types.CPU(raw.CPU),
			SubCPU: types.CPUSubtype(raw.SubCPU),
			Offset: uint64(raw.Offset),
			Size:   uint64(raw.Size),
			Align:  raw.Align,
			r:      r,
		}
		if arch.Offset > size || arch.Size > size-arch.Offset {
			return nil, newError(IoOutOfRange, int64(arch.Offset), "fat arch slice extends past end of file")
		}
		ff.Arches = append(ff.Arches, arch)
	}

	for i := 0; i < len(ff.Arches); i++ {
		for j := i + 1; j < len(ff.Arches); j++ {
			a, b := ff.Arches[i], ff.Arches[j]
			if a.Offset < b.Offset+b.Size && b.Offset < a.Offset+a.Size {
				return nil, newError(MalformedLoadCommand, int64(b.Offset), "overlapping fat arch slices")
			}
		}
	}

	return ff, nil
}
