package img

import (
	"bytes"
	"debug/elf"
	"testing"
)

const loadAddr = 0x8000

func TestFlatten(t *testing.T) {
	sections := []section{
		{".rodata", loadAddr + 8, []byte{5, 6}},
		{".text", loadAddr, []byte{1, 2, 3, 4}},
	}

	var buf bytes.Buffer
	if err := flatten(&buf, loadAddr, sections); err != nil {
		t.Fatal(err)
	}

	want := []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("image %v, want %v", buf.Bytes(), want)
	}
}

func TestFlattenBelowEntry(t *testing.T) {
	sections := []section{
		{".text", loadAddr - 4, []byte{1, 2, 3, 4}},
	}
	if err := flatten(&bytes.Buffer{}, loadAddr, sections); err == nil {
		t.Error("section below entry point not rejected")
	}
}

func TestFlattenOverlap(t *testing.T) {
	sections := []section{
		{".text", loadAddr, []byte{1, 2, 3, 4}},
		{".rodata", loadAddr + 2, []byte{5, 6}},
	}
	if err := flatten(&bytes.Buffer{}, loadAddr, sections); err == nil {
		t.Error("overlapping sections not rejected")
	}
}

func TestVerifyLoadAddr(t *testing.T) {
	if err := verifyLoadAddr(loadAddr, loadAddr); err != nil {
		t.Error(err)
	}
	if err := verifyLoadAddr(0x10000, loadAddr); err == nil {
		t.Error("mislinked entry point not rejected")
	}
}

func TestVerifyEntry(t *testing.T) {
	rt0 := elf.Symbol{Name: "_rt0_arm_noos", Value: loadAddr, Section: 1}
	other := elf.Symbol{Name: "main.main", Value: loadAddr + 0x100, Section: 1}

	if err := verifyEntry(loadAddr, []elf.Symbol{other, rt0}, "_rt0_arm_noos"); err != nil {
		t.Error(err)
	}
	if err := verifyEntry(loadAddr, []elf.Symbol{other}, "_rt0_arm_noos"); err == nil {
		t.Error("missing entry symbol not rejected")
	}
	if err := verifyEntry(loadAddr, []elf.Symbol{rt0, rt0}, "_rt0_arm_noos"); err == nil {
		t.Error("duplicate entry symbol not rejected")
	}
	if err := verifyEntry(loadAddr+4, []elf.Symbol{rt0}, "_rt0_arm_noos"); err == nil {
		t.Error("entry point not at entry symbol not rejected")
	}
}

func TestVerifyResolved(t *testing.T) {
	syms := []elf.Symbol{
		{Name: "_rt0_arm_noos", Value: loadAddr, Section: 1},
		{Name: "malloc", Section: elf.SHN_UNDEF},
		{Name: "fwrite", Section: elf.SHN_UNDEF},
	}

	if err := verifyResolved(syms, nil); err == nil {
		t.Error("unresolved symbols not rejected")
	}
	if err := verifyResolved(syms, []string{"malloc", "fwrite"}); err != nil {
		t.Error(err)
	}
	if err := verifyResolved(syms[:1], nil); err != nil {
		t.Error(err)
	}
}
