//go:build !linux && !darwin

// Package bootfs serves the boot partition of an SD card image as a
// read-only filesystem, to inspect what the firmware will see without
// loopback-mounting the image.
package bootfs

import (
	"fmt"
	"os"
)

func Main(args []string) {
	fmt.Fprintln(os.Stderr, "bootfs: fuse mounts are only supported on linux and darwin")
	os.Exit(1)
}
