// Package emu runs a kernel image under qemu with the serial console
// on the terminal.
package emu

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
)

const usageString = `Run a kernel image under qemu.

Usage: %s [flags] <kernel.img>

`

var (
	flags = flag.NewFlagSet("emu", flag.ExitOnError)

	qemu     = flags.String("qemu", "qemu-system-arm", "qemu binary")
	machtype = flags.String("machine", "raspi1ap", "qemu machine type")
	scan     = flags.Bool("test", false, "exit when a test binary prints PASS or FAIL")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "emu")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	ptmx, err := pty.New()
	if err != nil {
		log.Fatalln(err)
	}
	defer ptmx.Close()

	cmd := ptmx.Command(*qemu,
		"-M", *machtype,
		"-kernel", flags.Arg(0),
		"-serial", "stdio",
		"-display", "none",
	)
	if err := cmd.Start(); err != nil {
		log.Fatalln("start qemu:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	go func() {
		<-sigintr
		ptmx.Close()
	}()
	go io.Copy(ptmx, os.Stdin)

	scanner := bufio.NewScanner(ptmx)
	exiting := false
	code := 0
	for scanner.Scan() {
		log.Println(scanner.Text())
		if !*scan || exiting {
			continue
		}
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			code = 1
			fallthrough
		case line == "PASS":
			exiting = true
			go func() {
				// give panic() time to print the stacktrace
				time.Sleep(500 * time.Millisecond)
				ptmx.Close()
			}()
		}
	}
	cmd.Wait()
	os.Exit(code)
}
