package macho

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

// FileConfig configures (*File) construction. The zero value is valid:
// every load command is decoded against the reader passed to
// NewFile/Open.
type FileConfig struct {
	// Offset is the byte offset into the reader at which the thin
	// Mach-O begins. Nonzero when decoding one arch sliced out of a fat
	// binary (see (*FatArch).Arch).
	Offset int64
	// LoadFilter restricts decoding to the given set of commands; every
	// other command is still walked (so ncmds/sizeofcmds bookkeeping
	// stays correct) but returned as LoadCmdBytes. Empty means decode
	// every recognized family.
	LoadFilter []types.LoadCmd
	// SectionReader, if set, is used instead of the reader passed to
	// NewFile/Open whenever section contents are read.
	SectionReader io.ReaderAt
}

func (c FileConfig) wants(cmd types.LoadCmd) bool {
	if len(c.LoadFilter) == 0 {
		return true
	}
	for _, f := range c.LoadFilter {
		if f == cmd {
			return true
		}
	}
	return false
}

// FileTOC is the decoded table of contents of a thin Mach-O: its header
// and its ordered load-command stream.
type FileTOC struct {
	types.FileHeader
	ByteOrder binary.ByteOrder
	Loads     []Load
}

// File is a single thin 64-bit Mach-O. Once NewFile/Open returns
// successfully a File is immutable and every method is safe to call
// concurrently from multiple goroutines.
type File struct {
	FileTOC
	cfg    FileConfig
	src    ByteSource
	sr     io.ReaderAt
	closer io.Closer
}

// Close releases the underlying file, if Open opened one. It is a no-op
// for a File built over a caller-supplied reader.
func (f *File) Close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}

// Open opens the named file and decodes it as a thin Mach-O.
func Open(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	f, err := NewFile(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	f.closer = fp
	return f, nil
}

func readerSize(r io.ReaderAt) uint64 {
	if s, ok := r.(interface{ Size() int64 }); ok {
		return uint64(s.Size())
	}
	if f, ok := r.(*os.File); ok {
		if fi, err := f.Stat(); err == nil {
			return uint64(fi.Size())
		}
	}
	return 1<<63 - 1
}

// NewFile decodes a thin Mach-O read through r. A 32-bit Mach-O is
// recognized but returns Error{Kind: UnsupportedFormat}: this library
// decodes 64-bit containers only.
func NewFile(r io.ReaderAt, config ...FileConfig) (*File, error) {
	var cfg FileConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	size := readerSize(r)
	if cfg.Offset != 0 {
		if cfg.Offset < 0 || uint64(cfg.Offset) > size {
			return nil, newError(IoOutOfRange, cfg.Offset, "arch offset past end of reader")
		}
		r = io.NewSectionReader(r, cfg.Offset, int64(size)-cfg.Offset)
		size -= uint64(cfg.Offset)
	}
	src := newFileSource(r, size)

	magicBytes, err := src.ReadAt(0, 4)
	if err != nil {
		return nil, wrapError(Truncated, 0, "reading magic", err)
	}
	kind, order, magic, err := identifyMagic([4]byte(magicBytes))
	if err != nil {
		return nil, err
	}
	if kind == Fat {
		return nil, newError(BadMagic, 0, "fat magic passed to NewFile; use NewFatFile")
	}

	hdrSize := uint64(types.FileHeaderSize64)
	if kind == Thin32 {
		hdrSize = uint64(types.FileHeaderSize32)
	}
	hdrBytes, err := src.ReadAt(0, hdrSize)
	if err != nil {
		return nil, wrapError(Truncated, 0, "reading file header", err)
	}
	br := bytes.NewReader(hdrBytes[4:])
	if kind == Thin32 {
		return nil, newError(UnsupportedFormat, 0, "32-bit Mach-O is detected but not decoded")
	}

	var hdr types.FileHeader
	if err := binary.Read(br, order, &hdr.CPU); err != nil {
		return nil, wrapError(Truncated, 4, "reading header", err)
	}
	binary.Read(br, order, &hdr.SubCPU)
	binary.Read(br, order, &hdr.Type)
	binary.Read(br, order, &hdr.NCommands)
	binary.Read(br, order, &hdr.SizeCommands)
	binary.Read(br, order, &hdr.Flags)
	binary.Read(br, order, &hdr.Reserved)
	hdr.Magic = magic

	f := &File{
		FileTOC: FileTOC{FileHeader: hdr, ByteOrder: order},
		cfg:     cfg,
		src:     src,
	}
	if cfg.SectionReader != nil {
		f.sr = cfg.SectionReader
	} else {
		f.sr = r
	}

	if err := f.loadCommands(hdrSize); err != nil {
		return nil, err
	}
	return f, nil
}

// loadCommands reads the whole sizeofcmds-byte command stream in a
// single call and walks it, borrowing slices of that one buffer for each
// command's raw bytes rather than allocating per command.
func (f *File) loadCommands(hdrSize uint64) error {
	buf, err := f.src.ReadAt(hdrSize, uint64(f.SizeCommands))
	if err != nil {
		return wrapError(Truncated, int64(hdrSize), "reading load command stream", err)
	}

	seen := map[types.LoadCmd]bool{}
	cursor := uint64(0)
	for i := uint32(0); i < f.NCommands; i++ {
		if cursor+8 > uint64(len(buf)) {
			return newError(MalformedLoadCommand, int64(hdrSize+cursor), "command stream ran past sizeofcmds")
		}
		cmd := types.LoadCmd(f.ByteOrder.Uint32(buf[cursor:]))
		cmdsize := f.ByteOrder.Uint32(buf[cursor+4:])
		if cmdsize < 8 || cursor+uint64(cmdsize) > uint64(len(buf)) {
			return newError(MalformedLoadCommand, int64(hdrSize+cursor), "cmdsize out of bounds")
		}
		if cmdsize%8 != 0 {
			return newError(MalformedLoadCommand, int64(hdrSize+cursor), "cmdsize not a multiple of 8")
		}
		raw := buf[cursor : cursor+uint64(cmdsize)]

		if cmd.IsSingleton() && seen[cmd] {
			f.Loads = append(f.Loads, LoadCmdBytes{LoadCmd: cmd, LoadBytes: raw})
			cursor += uint64(cmdsize)
			continue
		}
		seen[cmd] = true

		l, derr := f.decodeCommand(cmd, raw)
		if derr != nil {
			return derr
		}
		f.Loads = append(f.Loads, l)
		cursor += uint64(cmdsize)
	}
	if cursor != uint64(len(buf)) {
		return newError(MalformedLoadCommand, int64(hdrSize+cursor), "sizeofcmds not fully consumed by ncmds commands")
	}
	return nil
}

func (f *File) decodeCommand(cmd types.LoadCmd, raw []byte) (Load, error) {
	if !f.cfg.wants(cmd) {
		return LoadCmdBytes{LoadCmd: cmd, LoadBytes: raw}, nil
	}

	switch cmd {
	case types.LC_SEGMENT_64:
		return f.decodeSegment(raw)
	case types.LC_SYMTAB:
		return f.decodeSymtab(raw)
	case types.LC_DYSYMTAB:
		return f.decodeDysymtab(raw)
	case types.LC_ID_DYLIB, types.LC_LOAD_DYLIB, types.LC_LOAD_WEAK_DYLIB,
		types.LC_REEXPORT_DYLIB, types.LC_LAZY_LOAD_DYLIB, types.LC_LOAD_UPWARD_DYLIB:
		return f.decodeDylib(cmd, raw)
	case types.LC_LOAD_DYLINKER, types.LC_ID_DYLINKER, types.LC_DYLD_ENVIRONMENT:
		return f.decodeDylinker(cmd, raw)
	case types.LC_RPATH:
		return f.decodeRpath(raw)
	case types.LC_UUID:
		return f.decodeUUID(raw)
	case types.LC_SOURCE_VERSION:
		return f.decodeSourceVersion(raw)
	case types.LC_BUILD_VERSION:
		return f.decodeBuildVersion(raw)
	case types.LC_DYLD_INFO, types.LC_DYLD_INFO_ONLY:
		return f.decodeDyldInfo(cmd, raw)
	case types.LC_MAIN:
		return f.decodeEntryPoint(raw)
	case types.LC_CODE_SIGNATURE, types.LC_SEGMENT_SPLIT_INFO, types.LC_FUNCTION_STARTS,
		types.LC_DATA_IN_CODE, types.LC_DYLIB_CODE_SIGN_DRS, types.LC_LINKER_OPTIMIZATION_HINT,
		types.LC_DYLD_EXPORTS_TRIE, types.LC_DYLD_CHAINED_FIXUPS:
		return f.decodeLinkEditData(cmd, raw)
	default:
		Log.Warnw("unrecognized load command retained as raw bytes", "cmd", cmd.String())
		return LoadCmdBytes{LoadCmd: cmd, LoadBytes: raw}, nil
	}
}

func cstr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

func (f *File) decodeSegment(raw []byte) (Load, error) {
	var s types.Segment64
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &s); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding segment_64", err)
	}
	const fixedSize = 72
	const sectionSize = 80

	seg := &Segment{Segment64: s, Name: cstr(s.Name[:]), raw: raw}
	off := fixedSize
	for i := uint32(0); i < s.Nsect; i++ {
		if off+sectionSize > len(raw) {
			return nil, newError(MalformedLoadCommand, 0, "section table runs past segment command")
		}
		var sh types.Section64
		if err := binary.Read(bytes.NewReader(raw[off:off+sectionSize]), f.ByteOrder, &sh); err != nil {
			return nil, wrapError(MalformedLoadCommand, 0, "decoding section_64", err)
		}
		seg.Sections = append(seg.Sections, &Section{
			Section64: sh,
			SegName:   cstr(sh.Seg[:]),
			Name:      cstr(sh.Name[:]),
		})
		off += sectionSize
	}
	return seg, nil
}

func (f *File) decodeSymtab(raw []byte) (Load, error) {
	var s types.SymtabCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &s); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding symtab_command", err)
	}
	st := &Symtab{SymtabCmd: s, raw: raw}
	if s.Nsyms == 0 {
		return st, nil
	}
	const nlistSize = 16
	data, err := f.src.ReadAt(uint64(s.Symoff), uint64(s.Nsyms)*nlistSize)
	if err != nil {
		return nil, wrapError(Truncated, int64(s.Symoff), "reading symbol table", err)
	}
	br := bytes.NewReader(data)
	for i := uint32(0); i < s.Nsyms; i++ {
		var n types.Nlist64
		if err := binary.Read(br, f.ByteOrder, &n); err != nil {
			return nil, wrapError(MalformedLoadCommand, int64(s.Symoff), "decoding nlist_64", err)
		}
		name := ""
		if n.Name != 0 {
			if uint64(n.Name) >= uint64(s.Strsize) {
				return nil, newError(MalformedLoadCommand, int64(s.Stroff), "n_strx past end of string table")
			}
			strOff := uint64(s.Stroff) + uint64(n.Name)
			max := uint64(s.Strsize) - uint64(n.Name)
			name, err = f.src.ReadCString(strOff, max)
			if err != nil {
				return nil, err
			}
		}
		st.Syms = append(st.Syms, Symbol{
			Name:  name,
			Type:  n.Type,
			Sect:  n.Sect,
			Desc:  n.Desc,
			Value: n.Value,
		})
	}
	return st, nil
}

func (f *File) decodeDysymtab(raw []byte) (Load, error) {
	var d types.DysymtabCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &d); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding dysymtab_command", err)
	}
	dy := &Dysymtab{DysymtabCmd: d, raw: raw}
	if d.Nindirectsyms == 0 {
		return dy, nil
	}
	data, err := f.src.ReadAt(uint64(d.Indirectsymoff), uint64(d.Nindirectsyms)*4)
	if err != nil {
		return nil, wrapError(Truncated, int64(d.Indirectsymoff), "reading indirect symbol table", err)
	}
	br := bytes.NewReader(data)
	for i := uint32(0); i < d.Nindirectsyms; i++ {
		var v uint32
		binary.Read(br, f.ByteOrder, &v)
		dy.IndirectSyms = append(dy.IndirectSyms, v)
	}
	return dy, nil
}

func (f *File) decodeDylib(cmd types.LoadCmd, raw []byte) (Load, error) {
	var d types.DylibCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &d); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding dylib_command", err)
	}
	if int(d.Name) >= len(raw) {
		return nil, newError(MalformedLoadCommand, 0, "dylib name offset out of bounds")
	}
	return &Dylib{
		cmd:            cmd,
		Name:           cstr(raw[d.Name:]),
		Timestamp:      d.Time,
		CurrentVersion: d.CurrentVersion,
		CompatVersion:  d.CompatVersion,
		raw:            raw,
	}, nil
}

func (f *File) decodeDylinker(cmd types.LoadCmd, raw []byte) (Load, error) {
	var d types.DylinkerCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &d); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding dylinker_command", err)
	}
	if int(d.Name) >= len(raw) {
		return nil, newError(MalformedLoadCommand, 0, "dylinker name offset out of bounds")
	}
	return &DylinkerID{cmd: cmd, Name: cstr(raw[d.Name:]), raw: raw}, nil
}

func (f *File) decodeRpath(raw []byte) (Load, error) {
	var r types.RpathCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &r); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding rpath_command", err)
	}
	if int(r.Path) >= len(raw) {
		return nil, newError(MalformedLoadCommand, 0, "rpath offset out of bounds")
	}
	return &Rpath{Path: cstr(raw[r.Path:]), raw: raw}, nil
}

func (f *File) decodeUUID(raw []byte) (Load, error) {
	var u types.UUIDCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &u); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding uuid_command", err)
	}
	return &UUID{UUID: u.UUID, raw: raw}, nil
}

func (f *File) decodeSourceVersion(raw []byte) (Load, error) {
	var s types.SourceVersionCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &s); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding source_version_command", err)
	}
	return &SourceVersion{Version: s.Version, raw: raw}, nil
}

func (f *File) decodeBuildVersion(raw []byte) (Load, error) {
	var b types.BuildVersionCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &b); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding build_version_command", err)
	}
	bv := &BuildVersion{Platform: b.Platform, Minos: b.Minos, Sdk: b.Sdk, raw: raw}
	const fixedSize = 24
	const toolSize = 8
	off := fixedSize
	for i := uint32(0); i < b.NumTools; i++ {
		if off+toolSize > len(raw) {
			return nil, newError(MalformedLoadCommand, 0, "build tool table runs past command")
		}
		var t types.BuildToolVersion
		binary.Read(bytes.NewReader(raw[off:off+toolSize]), f.ByteOrder, &t)
		bv.Tools = append(bv.Tools, t)
		off += toolSize
	}
	return bv, nil
}

func (f *File) decodeDyldInfo(cmd types.LoadCmd, raw []byte) (Load, error) {
	var d types.DyldInfoCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &d); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding dyld_info_command", err)
	}
	return &DyldInfo{
		Only:         cmd == types.LC_DYLD_INFO_ONLY,
		RebaseOff:    d.RebaseOff,
		RebaseSize:   d.RebaseSize,
		BindOff:      d.BindOff,
		BindSize:     d.BindSize,
		WeakBindOff:  d.WeakBindOff,
		WeakBindSize: d.WeakBindSize,
		LazyBindOff:  d.LazyBindOff,
		LazyBindSize: d.LazyBindSize,
		ExportOff:    d.ExportOff,
		ExportSize:   d.ExportSize,
		raw:          raw,
	}, nil
}

func (f *File) decodeEntryPoint(raw []byte) (Load, error) {
	var e types.EntryPointCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &e); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding entry_point_command", err)
	}
	return &EntryPoint{EntryOffset: e.Offset, StackSize: e.StackSize, raw: raw}, nil
}

func (f *File) decodeLinkEditData(cmd types.LoadCmd, raw []byte) (Load, error) {
	var l types.LinkEditDataCmd
	if err := binary.Read(bytes.NewReader(raw), f.ByteOrder, &l); err != nil {
		return nil, wrapError(MalformedLoadCommand, 0, "decoding linkedit_data_command", err)
	}
	return &LinkEditData{cmd: cmd, Offset: l.Offset, Size: l.Size, raw: raw}, nil
}
