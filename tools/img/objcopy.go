package img

import (
	"debug/elf"
	"fmt"
	"io"
	"sort"
	"strings"
)

type section struct {
	name string
	addr uint64
	data []byte
}

// collect returns the allocatable progbits sections of f, the only
// parts that end up in a flat image.
func collect(f *elf.File) ([]section, error) {
	var sections []section
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Name, err)
		}
		sections = append(sections, section{s.Name, s.Addr, data})
	}
	return sections, nil
}

var zeros [4096]byte

// flatten writes sections to w as a flat binary starting at the entry
// address, zero-filling any gaps. The firmware jumps to the image's
// first byte, so nothing may be placed below the entry point.
func flatten(w io.Writer, entry uint64, sections []section) error {
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].addr < sections[j].addr
	})

	next := entry
	for _, s := range sections {
		if s.addr < next {
			if s.addr < entry {
				return fmt.Errorf("section %s at %#x below entry point %#x", s.name, s.addr, entry)
			}
			return fmt.Errorf("section %s at %#x overlaps previous section", s.name, s.addr)
		}
		for pad := s.addr - next; pad > 0; {
			n := min(pad, uint64(len(zeros)))
			if _, err := w.Write(zeros[:n]); err != nil {
				return err
			}
			pad -= n
		}
		if _, err := w.Write(s.data); err != nil {
			return err
		}
		next = s.addr + uint64(len(s.data))
	}

	return nil
}

// verifyLoadAddr checks that the ELF was linked for the address the
// firmware loads flat images to. A mismatch produces an image that
// boots but branches into garbage on the first absolute jump.
func verifyLoadAddr(entry, load uint64) error {
	if entry != load {
		return fmt.Errorf("entry point %#x is not the load address %#x, check the linker's -T flag", entry, load)
	}
	return nil
}

// verifyEntry checks that the image is entered through the one symbol
// the firmware's jump expects: sym must exist exactly once and sit at
// the ELF entry address.
func verifyEntry(entry uint64, syms []elf.Symbol, sym string) error {
	var found []elf.Symbol
	for _, s := range syms {
		if s.Name == sym {
			found = append(found, s)
		}
	}
	switch {
	case len(found) == 0:
		return fmt.Errorf("entry symbol %q not found", sym)
	case len(found) > 1:
		return fmt.Errorf("entry symbol %q defined %d times", sym, len(found))
	case found[0].Value != entry:
		return fmt.Errorf("entry point %#x is not %q (%#x)", entry, sym, found[0].Value)
	}
	return nil
}

// verifyResolved checks that the image does not reference anything a
// loader would have to resolve. There is no loader, only the firmware
// copying raw bytes, so any unresolved symbol outside the allow list
// means the program depends on runtime services that are not there.
func verifyResolved(syms []elf.Symbol, allow []string) error {
	allowed := make(map[string]bool, len(allow))
	for _, name := range allow {
		allowed[name] = true
	}

	var unresolved []string
	for _, s := range syms {
		if s.Section == elf.SHN_UNDEF && s.Name != "" && !allowed[s.Name] {
			unresolved = append(unresolved, s.Name)
		}
	}
	if len(unresolved) > 0 {
		return fmt.Errorf("unresolved symbols: %s", strings.Join(unresolved, ", "))
	}
	return nil
}
