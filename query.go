package macho

import "github.com/dothanthitiendiettiende/gomacho/types"

// FindCommand returns the first decoded load command of the given kind,
// or nil if none was found. For a singleton command (LC_UUID, LC_MAIN,
// LC_SYMTAB, LC_DYSYMTAB, LC_ID_DYLIB, LC_DYLD_INFO[_ONLY]) this is the
// only occurrence that matters; any later duplicate was retained as raw
// bytes by the load-command walker and is only reachable via FindAll.
func (f *File) FindCommand(cmd types.LoadCmd) Load {
	for _, l := range f.Loads {
		if l.Command() == cmd {
			return l
		}
	}
	return nil
}

// FindAll returns every decoded load command of the given kind, in
// load-command order, including any raw duplicate of a singleton.
func (f *File) FindAll(cmd types.LoadCmd) []Load {
	var out []Load
	for _, l := range f.Loads {
		if l.Command() == cmd {
			out = append(out, l)
		}
	}
	return out
}

// Segments returns every decoded LC_SEGMENT_64 command, in load-command
// order.
func (f *File) Segments() []*Segment {
	var out []*Segment
	for _, l := range f.Loads {
		if s, ok := l.(*Segment); ok {
			out = append(out, s)
		}
	}
	return out
}

// Segment returns the first segment with the given name, or nil.
func (f *File) Segment(name string) *Segment {
	for _, s := range f.Segments() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Sections returns every section header across every segment, in
// segment-then-section order. A section's 1-based global index (as used
// by Symbol.Sect / n_sect) is its position in this slice plus one.
func (f *File) Sections() []*Section {
	var out []*Section
	for _, s := range f.Segments() {
		out = append(out, s.Sections...)
	}
	return out
}

// Section returns the section with the given segment and section name,
// or nil.
func (f *File) Section(segName, name string) *Section {
	for _, s := range f.Sections() {
		if s.SegName == segName && s.Name == name {
			return s
		}
	}
	return nil
}

// Symtab returns the decoded LC_SYMTAB command, or nil if the file has
// none.
func (f *File) Symtab() *Symtab {
	if s, ok := f.FindCommand(types.LC_SYMTAB).(*Symtab); ok {
		return s
	}
	return nil
}

// Dysymtab returns the decoded LC_DYSYMTAB command, or nil if the file
// has none.
func (f *File) Dysymtab() *Dysymtab {
	if d, ok := f.FindCommand(types.LC_DYSYMTAB).(*Dysymtab); ok {
		return d
	}
	return nil
}

// Dylibs returns every dynamic-library load command (LC_LOAD_DYLIB and
// its weak/re-export/lazy/upward variants, but not LC_ID_DYLIB), in
// load-command order.
func (f *File) Dylibs() []*Dylib {
	var out []*Dylib
	for _, l := range f.Loads {
		if d, ok := l.(*Dylib); ok && d.cmd != types.LC_ID_DYLIB {
			out = append(out, d)
		}
	}
	return out
}

// DylibID returns the file's own LC_ID_DYLIB record, or nil if this is
// not a dylib.
func (f *File) DylibID() *Dylib {
	for _, l := range f.Loads {
		if d, ok := l.(*Dylib); ok && d.cmd == types.LC_ID_DYLIB {
			return d
		}
	}
	return nil
}

// UUID returns the file's LC_UUID payload, or nil if it has none.
func (f *File) UUID() *UUID {
	if u, ok := f.FindCommand(types.LC_UUID).(*UUID); ok {
		return u
	}
	return nil
}

// EntryPoint returns the file's decoded LC_MAIN command, or nil if it
// has none.
func (f *File) EntryPoint() *EntryPoint {
	if e, ok := f.FindCommand(types.LC_MAIN).(*EntryPoint); ok {
		return e
	}
	return nil
}

// BuildVersion returns the file's decoded LC_BUILD_VERSION command, or
// nil if it has none.
func (f *File) BuildVersion() *BuildVersion {
	if b, ok := f.FindCommand(types.LC_BUILD_VERSION).(*BuildVersion); ok {
		return b
	}
	return nil
}

// Rpaths returns every decoded LC_RPATH command, in load-command order.
func (f *File) Rpaths() []*Rpath {
	var out []*Rpath
	for _, l := range f.Loads {
		if r, ok := l.(*Rpath); ok {
			out = append(out, r)
		}
	}
	return out
}
