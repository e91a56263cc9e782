//go:build linux || darwin

// Package bootfs serves the boot partition of an SD card image as a
// read-only filesystem, to inspect what the firmware will see without
// loopback-mounting the image.
package bootfs

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	diskfs "github.com/diskfs/go-diskfs"
	"rsc.io/rsc/fuse"
)

func must[T any](ret T, err error) T {
	if err != nil {
		fmt.Print(err)
		os.Exit(1)
	}
	return ret
}

const usageString = `Boot Partition Utility.

Usage:

	%s <command> [arguments]

The commands are:

	mount <image> <dir>	serve the image's boot partition via fuse
`

var flags = flag.NewFlagSet("bootfs", flag.ExitOnError)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "bootfs")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(1)
	}

	sigintr := make(chan os.Signal)
	signal.Notify(sigintr, os.Interrupt)

	switch flags.Arg(0) {
	case "mount":
		if flags.NArg() < 3 {
			flags.Usage()
			os.Exit(1)
		}
		image := flags.Arg(1)
		dir := flags.Arg(2)
		c := must(fuse.Mount(dir))
		d := must(diskfs.Open(image, diskfs.WithOpenMode(diskfs.ReadOnly)))
		fs := must(d.GetFilesystem(1))

		go c.Serve(&FS{fs})
		<-sigintr

		cmd := exec.Command("/bin/umount", dir)
		must(cmd.CombinedOutput())
	default:
		fmt.Fprintf(flags.Output(), "unknown command: %s\n", flags.Arg(0))
		flags.Usage()
		os.Exit(1)
	}
}
