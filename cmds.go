package macho

import (
	"fmt"

	"github.com/dothanthitiendiettiende/gomacho/types"
)

// A Load is one decoded load command. Every recognized command family
// and the raw fallback both satisfy it; callers type-switch (or use the
// FindCommand/FindAll query helpers) to reach a family's own fields.
type Load interface {
	// Command returns the LC_* value this record was decoded from.
	Command() types.LoadCmd
	// Raw returns the exact bytes of the command, including its
	// LoadCmd+cmdsize header, borrowed from the single buffer read for
	// the whole command stream.
	Raw() []byte
	// String renders a short, human-readable summary of the command.
	String() string
}

// LoadCmdBytes is the fallback record for a load command this library
// does not decode into a typed family below. The command's own header
// (cmd, cmdsize) is still available; the rest of the payload is exposed
// only as raw bytes.
type LoadCmdBytes struct {
	types.LoadCmd
	LoadBytes []byte
}

func (s LoadCmdBytes) Command() types.LoadCmd { return s.LoadCmd }
func (s LoadCmdBytes) Raw() []byte            { return s.LoadBytes }
func (s LoadCmdBytes) String() string {
	return fmt.Sprintf("%s (unrecognized, %d bytes)", s.LoadCmd, len(s.LoadBytes))
}

// Section is a decoded 64-bit section header.
type Section struct {
	types.Section64
	SegName string
	Name    string
}

func (s *Section) String() string {
	return fmt.Sprintf("%s.%s addr=0x%x size=0x%x off=0x%x flags=%s",
		s.SegName, s.Name, s.Addr, s.Size, s.Offset, s.Flags.Type())
}

// Segment is a decoded LC_SEGMENT_64 command and its trailing section
// headers.
type Segment struct {
	types.Segment64
	Name     string
	Sections []*Section
	raw      []byte
}

func (s *Segment) Command() types.LoadCmd { return types.LC_SEGMENT_64 }
func (s *Segment) Raw() []byte            { return s.raw }
func (s *Segment) String() string {
	return fmt.Sprintf("%-16s addr=0x%016x size=0x%016x off=0x%08x prot=%s/%s nsect=%d",
		s.Name, s.Addr, s.Memsz, s.Offset, s.Prot, s.Maxprot, s.Nsect)
}

// Symbol is one decoded nlist_64 record plus its resolved name.
type Symbol struct {
	Name  string
	Type  uint8
	Sect  uint8
	Desc  uint16
	Value uint64
}

// Symtab is a decoded LC_SYMTAB command together with its resolved
// symbol records.
type Symtab struct {
	types.SymtabCmd
	Syms []Symbol
	raw  []byte
}

func (s *Symtab) Command() types.LoadCmd { return types.LC_SYMTAB }
func (s *Symtab) Raw() []byte            { return s.raw }
func (s *Symtab) String() string {
	return fmt.Sprintf("symtab: %d symbols at off=0x%x, strtab at off=0x%x size=0x%x",
		s.Nsyms, s.Symoff, s.Stroff, s.Strsize)
}

// Dysymtab is a decoded LC_DYSYMTAB command.
type Dysymtab struct {
	types.DysymtabCmd
	IndirectSyms []uint32
	raw          []byte
}

func (d *Dysymtab) Command() types.LoadCmd { return types.LC_DYSYMTAB }
func (d *Dysymtab) Raw() []byte            { return d.raw }
func (d *Dysymtab) String() string {
	return fmt.Sprintf("dysymtab: %d local, %d extdef, %d undef, %d indirect",
		d.Nlocalsym, d.Nextdefsym, d.Nundefsym, d.Nindirectsyms)
}

// Dylib is a decoded dynamic-library load command: LC_ID_DYLIB,
// LC_LOAD_DYLIB, LC_LOAD_WEAK_DYLIB, LC_REEXPORT_DYLIB,
// LC_LAZY_LOAD_DYLIB or LC_LOAD_UPWARD_DYLIB.
type Dylib struct {
	cmd            types.LoadCmd
	Name           string
	Timestamp      uint32 // raw dylib build timestamp, not interpreted
	CurrentVersion types.Version
	CompatVersion  types.Version
	raw            []byte
}

func (d *Dylib) Command() types.LoadCmd { return d.cmd }
func (d *Dylib) Raw() []byte            { return d.raw }
func (d *Dylib) String() string {
	return fmt.Sprintf("%s %s (compatibility version %s, current version %s)",
		d.cmd, d.Name, d.CompatVersion, d.CurrentVersion)
}

// DylinkerID is a decoded dynamic-linker load command: LC_LOAD_DYLINKER,
// LC_ID_DYLINKER or LC_DYLD_ENVIRONMENT.
type DylinkerID struct {
	cmd  types.LoadCmd
	Name string
	raw  []byte
}

func (d *DylinkerID) Command() types.LoadCmd { return d.cmd }
func (d *DylinkerID) Raw() []byte            { return d.raw }
func (d *DylinkerID) String() string         { return fmt.Sprintf("%s %s", d.cmd, d.Name) }

// Rpath is a decoded LC_RPATH command.
type Rpath struct {
	Path string
	raw  []byte
}

func (r *Rpath) Command() types.LoadCmd { return types.LC_RPATH }
func (r *Rpath) Raw() []byte            { return r.raw }
func (r *Rpath) String() string         { return r.Path }

// UUID is a decoded LC_UUID command.
type UUID struct {
	types.UUID
	raw []byte
}

func (u *UUID) Command() types.LoadCmd { return types.LC_UUID }
func (u *UUID) Raw() []byte            { return u.raw }
func (u *UUID) String() string         { return u.UUID.String() }

// SourceVersion is a decoded LC_SOURCE_VERSION command.
type SourceVersion struct {
	Version types.SrcVersion
	raw     []byte
}

func (s *SourceVersion) Command() types.LoadCmd { return types.LC_SOURCE_VERSION }
func (s *SourceVersion) Raw() []byte            { return s.raw }
func (s *SourceVersion) String() string         { return s.Version.String() }

// BuildVersion is a decoded LC_BUILD_VERSION command plus its trailing
// build_tool_version records.
type BuildVersion struct {
	Platform types.Platform
	Minos    types.Version
	Sdk      types.Version
	Tools    []types.BuildToolVersion
	raw      []byte
}

func (b *BuildVersion) Command() types.LoadCmd { return types.LC_BUILD_VERSION }
func (b *BuildVersion) Raw() []byte            { return b.raw }
func (b *BuildVersion) String() string {
	return fmt.Sprintf("platform=%s minos=%s sdk=%s tools=%d", b.Platform, b.Minos, b.Sdk, len(b.Tools))
}

// DyldInfo is a decoded LC_DYLD_INFO or LC_DYLD_INFO_ONLY command. The
// rebase/bind/export opcode streams are recorded only as offset/size
// pairs; decoding the compressed opcodes is out of scope.
type DyldInfo struct {
	Only         bool
	RebaseOff    uint32
	RebaseSize   uint32
	BindOff      uint32
	BindSize     uint32
	WeakBindOff  uint32
	WeakBindSize uint32
	LazyBindOff  uint32
	LazyBindSize uint32
	ExportOff    uint32
	ExportSize   uint32
	raw          []byte
}

func (d *DyldInfo) Command() types.LoadCmd {
	if d.Only {
		return types.LC_DYLD_INFO_ONLY
	}
	return types.LC_DYLD_INFO
}
func (d *DyldInfo) Raw() []byte { return d.raw }
func (d *DyldInfo) String() string {
	return fmt.Sprintf("rebase_off=0x%x bind_off=0x%x lazy_bind_off=0x%x export_off=0x%x",
		d.RebaseOff, d.BindOff, d.LazyBindOff, d.ExportOff)
}

// EntryPoint is a decoded LC_MAIN command.
type EntryPoint struct {
	EntryOffset uint64
	StackSize   uint64
	raw         []byte
}

func (e *EntryPoint) Command() types.LoadCmd { return types.LC_MAIN }
func (e *EntryPoint) Raw() []byte            { return e.raw }
func (e *EntryPoint) String() string {
	return fmt.Sprintf("offset=0x%x stacksize=0x%x", e.EntryOffset, e.StackSize)
}

// LinkEditData is a decoded {dataoff,datasize} command: LC_CODE_SIGNATURE,
// LC_SEGMENT_SPLIT_INFO, LC_FUNCTION_STARTS, LC_DATA_IN_CODE,
// LC_DYLIB_CODE_SIGN_DRS, LC_LINKER_OPTIMIZATION_HINT,
// LC_DYLD_EXPORTS_TRIE or LC_DYLD_CHAINED_FIXUPS. Every one of these
// families shares the same on-disk layout and differs only in what the
// offset/size pair points at, which this library never interprets.
type LinkEditData struct {
	cmd    types.LoadCmd
	Offset uint32
	Size   uint32
	raw    []byte
}

func (l *LinkEditData) Command() types.LoadCmd { return l.cmd }
func (l *LinkEditData) Raw() []byte            { return l.raw }
func (l *LinkEditData) String() string {
	return fmt.Sprintf("%s off=0x%x size=0x%x", l.cmd, l.Offset, l.Size)
}
