package macho

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Dump renders a human-readable summary table of the file's header,
// segments/sections, and load commands.
func (f *File) Dump() string {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, f.FileHeader.String())

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Segment", "Section", "Addr", "Size", "Offset", "Flags"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, seg := range f.Segments() {
		if len(seg.Sections) == 0 {
			table.Append([]string{seg.Name, "", fmt.Sprintf("0x%016x", seg.Addr), fmt.Sprintf("0x%x", seg.Memsz), fmt.Sprintf("0x%x", seg.Offset), ""})
			continue
		}
		for _, sec := range seg.Sections {
			table.Append([]string{
				seg.Name, sec.Name,
				fmt.Sprintf("0x%016x", sec.Addr),
				fmt.Sprintf("0x%x", sec.Size),
				fmt.Sprintf("0x%x", sec.Offset),
				sec.Flags.Type().String(),
			})
		}
	}
	table.Render()

	fmt.Fprintln(&buf, "Load commands:")
	lt := tablewriter.NewWriter(&buf)
	lt.SetHeader([]string{"Command", "Summary"})
	lt.SetAutoWrapText(false)
	lt.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, l := range f.Loads {
		lt.Append([]string{l.Command().String(), l.String()})
	}
	lt.Render()

	return buf.String()
}
