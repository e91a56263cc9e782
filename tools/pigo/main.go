package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/blinken/rpi/tools/bootfs"
	"github.com/blinken/rpi/tools/emu"
	"github.com/blinken/rpi/tools/img"
	"github.com/blinken/rpi/tools/sd"
)

const usageString = `pigo is a tool for development of bare-metal Raspberry Pi kernels.

Usage:

	%s <command> [arguments]

The commands are:

	img      convert elf binaries to flat kernel images
	sd       build bootable SD card images
	bootfs   modify and inspect SD card images
	emu      run kernel images under qemu
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "img":
		img.Main(flag.Args())
	case "sd":
		sd.Main(flag.Args())
	case "bootfs":
		bootfs.Main(flag.Args())
	case "emu":
		emu.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
