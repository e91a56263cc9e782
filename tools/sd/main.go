// Package sd builds bootable SD card images.
//
// The Raspberry Pi firmware boots from a FAT32 partition holding the
// GPU firmware blobs and kernel.img. Writing the produced image to a
// card with dd is all the "flashing" there is.
package sd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const usageString = `Bootable SD card image builder.

Usage: %s [flags] <kernel.img>

`

var (
	flags = flag.NewFlagSet("sd", flag.ExitOnError)

	outfile  = flags.String("o", "sdcard.img", "output image")
	sizeMB   = flags.Int64("size", 64, "image size in MiB")
	firmware = flags.String("firmware", "", "directory with bootcode.bin, start.elf and fixup.dat")
	config   = flags.String("config", "", "config.txt to include")
)

// The boot files the firmware looks for, in load order.
var firmwareFiles = []string{"bootcode.bin", "start.elf", "fixup.dat"}

const (
	sectorSize  = 512
	partStart   = 2048 // first partition sector, leaves room for the MBR
	volumeLabel = "boot"
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "sd")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}
	kernel := flags.Arg(0)

	size := *sizeMB << 20
	d, err := diskfs.Create(*outfile, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		log.Fatalln(err)
	}
	defer d.File.Close()

	table := &mbr.Table{
		LogicalSectorSize:  sectorSize,
		PhysicalSectorSize: sectorSize,
		Partitions: []*mbr.Partition{{
			Bootable: true,
			Type:     mbr.Fat32LBA,
			Start:    partStart,
			Size:     uint32(size/sectorSize - partStart),
		}},
	}
	if err := d.Partition(table); err != nil {
		log.Fatalln("partition:", err)
	}

	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: volumeLabel,
	})
	if err != nil {
		log.Fatalln("mkfs:", err)
	}

	if *firmware != "" {
		for _, name := range firmwareFiles {
			err := copyIn(fs, "/"+name, filepath.Join(*firmware, name))
			if err != nil {
				log.Fatalln(err)
			}
		}
	}
	if *config != "" {
		if err := copyIn(fs, "/config.txt", *config); err != nil {
			log.Fatalln(err)
		}
	}
	if err := copyIn(fs, "/kernel.img", kernel); err != nil {
		log.Fatalln(err)
	}
}

func copyIn(fs filesystem.FileSystem, dst, src string) error {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := fs.OpenFile(dst, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return fmt.Errorf("%s: %w", dst, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("%s: %w", dst, err)
	}
	return nil
}
