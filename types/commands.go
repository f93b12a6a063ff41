package types

// A LoadCmd is a Mach-O load command.
type LoadCmd uint32

func (c LoadCmd) Command() LoadCmd { return c }

// The full LC_* namespace. Only a subset is decoded into a typed record
// (see cmds.go); everything else is retained as a raw descriptor, but the
// full set is needed so String() and the singleton-duplicate rule (spec
// walker) can name any command found in the wild.
const (
	LC_REQ_DYLD       LoadCmd = 0x80000000
	LC_SEGMENT        LoadCmd = 0x1
	LC_SYMTAB         LoadCmd = 0x2
	LC_SYMSEG         LoadCmd = 0x3
	LC_THREAD         LoadCmd = 0x4
	LC_UNIXTHREAD     LoadCmd = 0x5
	LC_LOADFVMLIB     LoadCmd = 0x6
	LC_IDFVMLIB       LoadCmd = 0x7
	LC_IDENT          LoadCmd = 0x8
	LC_FVMFILE        LoadCmd = 0x9
	LC_PREPAGE        LoadCmd = 0xa
	LC_DYSYMTAB       LoadCmd = 0xb
	LC_LOAD_DYLIB     LoadCmd = 0xc
	LC_ID_DYLIB       LoadCmd = 0xd
	LC_LOAD_DYLINKER  LoadCmd = 0xe
	LC_ID_DYLINKER    LoadCmd = 0xf
	LC_PREBOUND_DYLIB LoadCmd = 0x10
	LC_ROUTINES       LoadCmd = 0x11
	LC_SUB_FRAMEWORK  LoadCmd = 0x12
	LC_SUB_UMBRELLA   LoadCmd = 0x13
	LC_SUB_CLIENT     LoadCmd = 0x14
	LC_SUB_LIBRARY    LoadCmd = 0x15
	LC_TWOLEVEL_HINTS LoadCmd = 0x16
	LC_PREBIND_CKSUM  LoadCmd = 0x17

	LC_LOAD_WEAK_DYLIB          LoadCmd = 0x18 | LC_REQ_DYLD
	LC_SEGMENT_64               LoadCmd = 0x19
	LC_ROUTINES_64              LoadCmd = 0x1a
	LC_UUID                     LoadCmd = 0x1b
	LC_RPATH                    LoadCmd = 0x1c | LC_REQ_DYLD
	LC_CODE_SIGNATURE           LoadCmd = 0x1d
	LC_SEGMENT_SPLIT_INFO       LoadCmd = 0x1e
	LC_REEXPORT_DYLIB           LoadCmd = 0x1f | LC_REQ_DYLD
	LC_LAZY_LOAD_DYLIB          LoadCmd = 0x20
	LC_ENCRYPTION_INFO          LoadCmd = 0x21
	LC_DYLD_INFO                LoadCmd = 0x22
	LC_DYLD_INFO_ONLY           LoadCmd = 0x22 | LC_REQ_DYLD
	LC_LOAD_UPWARD_DYLIB        LoadCmd = 0x23 | LC_REQ_DYLD
	LC_VERSION_MIN_MACOSX       LoadCmd = 0x24
	LC_VERSION_MIN_IPHONEOS     LoadCmd = 0x25
	LC_FUNCTION_STARTS          LoadCmd = 0x26
	LC_DYLD_ENVIRONMENT         LoadCmd = 0x27
	LC_MAIN                     LoadCmd = 0x28 | LC_REQ_DYLD
	LC_DATA_IN_CODE             LoadCmd = 0x29
	LC_SOURCE_VERSION           LoadCmd = 0x2A
	LC_DYLIB_CODE_SIGN_DRS      LoadCmd = 0x2B
	LC_ENCRYPTION_INFO_64       LoadCmd = 0x2C
	LC_LINKER_OPTION            LoadCmd = 0x2D
	LC_LINKER_OPTIMIZATION_HINT LoadCmd = 0x2E
	LC_VERSION_MIN_TVOS         LoadCmd = 0x2F
	LC_VERSION_MIN_WATCHOS      LoadCmd = 0x30
	LC_NOTE                     LoadCmd = 0x31
	LC_BUILD_VERSION            LoadCmd = 0x32
	LC_DYLD_EXPORTS_TRIE        LoadCmd = 0x33 | LC_REQ_DYLD
	LC_DYLD_CHAINED_FIXUPS      LoadCmd = 0x34 | LC_REQ_DYLD
	LC_FILESET_ENTRY            LoadCmd = 0x35 | LC_REQ_DYLD
)

// singletonCmds are load commands that are only meaningful once per file;
// a second occurrence is tolerated by the walker and surfaced only through
// FindAll, never through FindCommand.
var singletonCmds = map[LoadCmd]bool{
	LC_UUID:           true,
	LC_MAIN:           true,
	LC_DYSYMTAB:       true,
	LC_SYMTAB:         true,
	LC_ID_DYLIB:       true,
	LC_DYLD_INFO:      true,
	LC_DYLD_INFO_ONLY: true,
}

// IsSingleton reports whether only the first occurrence of this command
// kind in a file is meaningful.
func (c LoadCmd) IsSingleton() bool { return singletonCmds[c] }

var loadCmdStrings = []IntName{
	{uint32(LC_SEGMENT), "LC_SEGMENT"},
	{uint32(LC_SYMTAB), "LC_SYMTAB"},
	{uint32(LC_SYMSEG), "LC_SYMSEG"},
	{uint32(LC_THREAD), "LC_THREAD"},
	{uint32(LC_UNIXTHREAD), "LC_UNIXTHREAD"},
	{uint32(LC_LOADFVMLIB), "LC_LOADFVMLIB"},
	{uint32(LC_IDFVMLIB), "LC_IDFVMLIB"},
	{uint32(LC_IDENT), "LC_IDENT"},
	{uint32(LC_FVMFILE), "LC_FVMFILE"},
	{uint32(LC_PREPAGE), "LC_PREPAGE"},
	{uint32(LC_DYSYMTAB), "LC_DYSYMTAB"},
	{uint32(LC_LOAD_DYLIB), "LC_LOAD_DYLIB"},
	{uint32(LC_ID_DYLIB), "LC_ID_DYLIB"},
	{uint32(LC_LOAD_DYLINKER), "LC_LOAD_DYLINKER"},
	{uint32(LC_ID_DYLINKER), "LC_ID_DYLINKER"},
	{uint32(LC_PREBOUND_DYLIB), "LC_PREBOUND_DYLIB"},
	{uint32(LC_ROUTINES), "LC_ROUTINES"},
	{uint32(LC_SUB_FRAMEWORK), "LC_SUB_FRAMEWORK"},
	{uint32(LC_SUB_UMBRELLA), "LC_SUB_UMBRELLA"},
	{uint32(LC_SUB_CLIENT), "LC_SUB_CLIENT"},
	{uint32(LC_SUB_LIBRARY), "LC_SUB_LIBRARY"},
	{uint32(LC_TWOLEVEL_HINTS), "LC_TWOLEVEL_HINTS"},
	{uint32(LC_PREBIND_CKSUM), "LC_PREBIND_CKSUM"},
	{uint32(LC_LOAD_WEAK_DYLIB), "LC_LOAD_WEAK_DYLIB"},
	{uint32(LC_SEGMENT_64), "LC_SEGMENT_64"},
	{uint32(LC_ROUTINES_64), "LC_ROUTINES_64"},
	{uint32(LC_UUID), "LC_UUID"},
	{uint32(LC_RPATH), "LC_RPATH"},
	{uint32(LC_CODE_SIGNATURE), "LC_CODE_SIGNATURE"},
	{uint32(LC_SEGMENT_SPLIT_INFO), "LC_SEGMENT_SPLIT_INFO"},
	{uint32(LC_REEXPORT_DYLIB), "LC_REEXPORT_DYLIB"},
	{uint32(LC_LAZY_LOAD_DYLIB), "LC_LAZY_LOAD_DYLIB"},
	{uint32(LC_ENCRYPTION_INFO), "LC_ENCRYPTION_INFO"},
	{uint32(LC_DYLD_INFO), "LC_DYLD_INFO"},
	{uint32(LC_DYLD_INFO_ONLY), "LC_DYLD_INFO_ONLY"},
	{uint32(LC_LOAD_UPWARD_DYLIB), "LC_LOAD_UPWARD_DYLIB"},
	{uint32(LC_VERSION_MIN_MACOSX), "LC_VERSION_MIN_MACOSX"},
	{uint32(LC_VERSION_MIN_IPHONEOS), "LC_VERSION_MIN_IPHONEOS"},
	{uint32(LC_FUNCTION_STARTS), "LC_FUNCTION_STARTS"},
	{uint32(LC_DYLD_ENVIRONMENT), "LC_DYLD_ENVIRONMENT"},
	{uint32(LC_MAIN), "LC_MAIN"},
	{uint32(LC_DATA_IN_CODE), "LC_DATA_IN_CODE"},
	{uint32(LC_SOURCE_VERSION), "LC_SOURCE_VERSION"},
	{uint32(LC_DYLIB_CODE_SIGN_DRS), "LC_DYLIB_CODE_SIGN_DRS"},
	{uint32(LC_ENCRYPTION_INFO_64), "LC_ENCRYPTION_INFO_64"},
	{uint32(LC_LINKER_OPTION), "LC_LINKER_OPTION"},
	{uint32(LC_LINKER_OPTIMIZATION_HINT), "LC_LINKER_OPTIMIZATION_HINT"},
	{uint32(LC_VERSION_MIN_TVOS), "LC_VERSION_MIN_TVOS"},
	{uint32(LC_VERSION_MIN_WATCHOS), "LC_VERSION_MIN_WATCHOS"},
	{uint32(LC_NOTE), "LC_NOTE"},
	{uint32(LC_BUILD_VERSION), "LC_BUILD_VERSION"},
	{uint32(LC_DYLD_EXPORTS_TRIE), "LC_DYLD_EXPORTS_TRIE"},
	{uint32(LC_DYLD_CHAINED_FIXUPS), "LC_DYLD_CHAINED_FIXUPS"},
	{uint32(LC_FILESET_ENTRY), "LC_FILESET_ENTRY"},
}

func (c LoadCmd) String() string   { return StringName(uint32(c), loadCmdStrings, false) }
func (c LoadCmd) GoString() string { return StringName(uint32(c), loadCmdStrings, true) }

type SegFlag uint32

// Constants for the flags field of the segment command.
const (
	HighVM            SegFlag = 0x1
	FvmLib            SegFlag = 0x2
	NoReLoc           SegFlag = 0x4
	ProtectedVersion1 SegFlag = 0x8
	ReadOnly          SegFlag = 0x10
)

// A Segment64 is a 64-bit Mach-O segment load command.
type Segment64 struct {
	LoadCmd         /* LC_SEGMENT_64 */
	Len     uint32  /* includes sizeof section_64 structs */
	Name    [16]byte
	Addr    uint64
	Memsz   uint64
	Offset  uint64
	Filesz  uint64
	Maxprot VmProtection
	Prot    VmProtection
	Nsect   uint32
	Flag    SegFlag
}

// A SectionFlag is the packed {type, attributes} flags word of a section
// header: the low byte is the section type, the remaining three bytes are
// an attribute bitmask.
type SectionFlag uint32

const SectionTypeMask SectionFlag = 0x000000ff

// Recognized section types (low byte of SectionFlag).
const (
	SRegular             SectionFlag = 0x0
	SZeroFill            SectionFlag = 0x1
	SCStringLiterals     SectionFlag = 0x2
	S4ByteLiterals       SectionFlag = 0x3
	S8ByteLiterals       SectionFlag = 0x4
	SLiteralPointers     SectionFlag = 0x5
	SNonLazySymbolPtrs   SectionFlag = 0x6
	SLazySymbolPtrs      SectionFlag = 0x7
	SSymbolStubs         SectionFlag = 0x8
	SModInitFuncPtrs     SectionFlag = 0x9
	SModTermFuncPtrs     SectionFlag = 0xa
	SCoalesced           SectionFlag = 0xb
	SGBZeroFill          SectionFlag = 0xc
	SInterposing         SectionFlag = 0xd
	S16ByteLiterals      SectionFlag = 0xe
	SDtraceDof           SectionFlag = 0xf
	SThreadLocalRegular  SectionFlag = 0x11
	SThreadLocalZerofill SectionFlag = 0x12
)

// Attribute bits, upper three bytes of SectionFlag.
const (
	AttrPureInstructions   SectionFlag = 0x80000000
	AttrNoTOC              SectionFlag = 0x40000000
	AttrStripStaticSyms    SectionFlag = 0x20000000
	AttrNoDeadStrip        SectionFlag = 0x10000000
	AttrLiveSupport        SectionFlag = 0x08000000
	AttrSelfModifyingCode  SectionFlag = 0x04000000
	AttrDebug              SectionFlag = 0x02000000
	AttrSomeInstructions   SectionFlag = 0x00000400
	AttrExtReloc           SectionFlag = 0x00000200
	AttrLocReloc           SectionFlag = 0x00000100
)

// Type returns the section type, the low byte of the flags word.
func (f SectionFlag) Type() SectionFlag { return f & SectionTypeMask }

// Attribute reports whether the given attribute bit is set.
func (f SectionFlag) Attribute(bit SectionFlag) bool { return f&bit != 0 }

var sectionTypeStrings = []IntName{
	{uint32(SRegular), "Regular"},
	{uint32(SZeroFill), "ZeroFill"},
	{uint32(SCStringLiterals), "CStringLiterals"},
	{uint32(S4ByteLiterals), "4ByteLiterals"},
	{uint32(S8ByteLiterals), "8ByteLiterals"},
	{uint32(SLiteralPointers), "LiteralPointers"},
	{uint32(SNonLazySymbolPtrs), "NonLazySymbolPointers"},
	{uint32(SLazySymbolPtrs), "LazySymbolPointers"},
	{uint32(SSymbolStubs), "SymbolStubs"},
	{uint32(SModInitFuncPtrs), "ModInitFuncPointers"},
	{uint32(SModTermFuncPtrs), "ModTermFuncPointers"},
	{uint32(SCoalesced), "Coalesced"},
	{uint32(SGBZeroFill), "GBZeroFill"},
	{uint32(SInterposing), "Interposing"},
	{uint32(S16ByteLiterals), "16ByteLiterals"},
	{uint32(SDtraceDof), "DtraceDof"},
	{uint32(SThreadLocalRegular), "ThreadLocalRegular"},
	{uint32(SThreadLocalZerofill), "ThreadLocalZerofill"},
}

// String renders the section type name (the flags word's low byte).
func (f SectionFlag) String() string {
	return StringName(uint32(f.Type()), sectionTypeStrings, false)
}

// A Section64 is a 64-bit Mach-O section header, as it appears trailing
// an LC_SEGMENT_64 command.
type Section64 struct {
	Name      [16]byte
	Seg       [16]byte
	Addr      uint64
	Size      uint64
	Offset    uint32
	Align     uint32
	Reloff    uint32
	Nreloc    uint32
	Flags     SectionFlag
	Reserve1  uint32
	Reserve2  uint32
	Reserve3  uint32
}

// A SymtabCmd is a Mach-O symbol table command.
type SymtabCmd struct {
	LoadCmd // LC_SYMTAB
	Len     uint32
	Symoff  uint32
	Nsyms   uint32
	Stroff  uint32
	Strsize uint32
}

// A DysymtabCmd is a Mach-O dynamic symbol table command.
type DysymtabCmd struct {
	LoadCmd // LC_DYSYMTAB
	Len     uint32

	Ilocalsym  uint32
	Nlocalsym  uint32
	Iextdefsym uint32
	Nextdefsym uint32
	Iundefsym  uint32
	Nundefsym  uint32

	Tocoffset uint32
	Ntoc      uint32

	Modtaboff uint32
	Nmodtab   uint32

	Extrefsymoff uint32
	Nextrefsyms  uint32

	Indirectsymoff uint32
	Nindirectsyms  uint32

	Extreloff uint32
	Nextrel   uint32

	Locreloff uint32
	Nlocrel   uint32
}

// A Nlist64 is a 64-bit Mach-O symbol table entry.
type Nlist64 struct {
	Name  uint32
	Type  uint8
	Sect  uint8
	Desc  uint16
	Value uint64
}

// A DylibCmd is a Mach-O load dynamic library command, shared by
// LC_ID_DYLIB, LC_LOAD_DYLIB, LC_LOAD_WEAK_DYLIB, LC_REEXPORT_DYLIB,
// LC_LAZY_LOAD_DYLIB and LC_LOAD_UPWARD_DYLIB.
type DylibCmd struct {
	LoadCmd
	Len            uint32
	Name           uint32
	Time           uint32
	CurrentVersion Version
	CompatVersion  Version
}

// A DylinkerCmd is shared by LC_LOAD_DYLINKER, LC_ID_DYLINKER and
// LC_DYLD_ENVIRONMENT.
type DylinkerCmd struct {
	LoadCmd
	Len  uint32
	Name uint32
}

// A RpathCmd is a Mach-O rpath command.
type RpathCmd struct {
	LoadCmd // LC_RPATH
	Len     uint32
	Path    uint32
}

// A UUIDCmd is a Mach-O uuid load command.
type UUIDCmd struct {
	LoadCmd // LC_UUID
	Len     uint32
	UUID    UUID
}

// A SourceVersionCmd is a Mach-O source version command.
type SourceVersionCmd struct {
	LoadCmd // LC_SOURCE_VERSION
	Len     uint32
	Version SrcVersion // A.B.C.D.E packed as a24.b10.c10.d10.e10
}

// A BuildVersionCmd contains the min OS version on which this binary was
// built to run for its platform. Followed by NumTools build_tool_version
// records.
type BuildVersionCmd struct {
	LoadCmd
	Len      uint32
	Platform Platform
	Minos    Version // X.Y.Z encoded in nibbles xxxx.yy.zz
	Sdk      Version // X.Y.Z encoded in nibbles xxxx.yy.zz
	NumTools uint32
}

// A DyldInfoCmd is shared by LC_DYLD_INFO and LC_DYLD_INFO_ONLY.
type DyldInfoCmd struct {
	LoadCmd
	Len          uint32
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
}

// A EntryPointCmd is a Mach-O LC_MAIN command.
type EntryPointCmd struct {
	LoadCmd
	Len       uint32
	Offset    uint64 // file (__TEXT) offset of main()
	StackSize uint64 // if not zero, initial stack size
}

// A LinkEditDataCmd is the shared {dataoff,datasize} layout for
// LC_CODE_SIGNATURE, LC_SEGMENT_SPLIT_INFO, LC_FUNCTION_STARTS,
// LC_DATA_IN_CODE, LC_DYLIB_CODE_SIGN_DRS, LC_LINKER_OPTIMIZATION_HINT,
// LC_DYLD_EXPORTS_TRIE and LC_DYLD_CHAINED_FIXUPS.
type LinkEditDataCmd struct {
	LoadCmd
	Len    uint32
	Offset uint32
	Size   uint32
}

