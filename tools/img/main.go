package img

import (
	"bufio"
	"debug/elf"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/blinken/rpi/machine"
)

const usageString = `ELF to flat kernel image converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("img", flag.ExitOnError)

	infile string
	entry  = flags.String("entry", machine.EntrySymbol, "expected entry symbol")
	load   = flags.Uint64("load", machine.LoadAddr, "expected load address")
	allow  = flags.String("allow", "", "comma separated unresolved symbols to permit")
	run    = flags.String("run", "", "Run the image with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "img")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	outfile, _ := strings.CutSuffix(infile, ".elf")
	outfile += ".img"

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	syms, err := elffile.Symbols()
	if err != nil {
		log.Fatalln("read symbols:", err)
	}
	if err := verifyLoadAddr(elffile.Entry, *load); err != nil {
		log.Fatalln(err)
	}
	if err := verifyEntry(elffile.Entry, syms, *entry); err != nil {
		log.Fatalln(err)
	}
	var allowed []string
	if *allow != "" {
		allowed = strings.Split(*allow, ",")
	}
	if err := verifyResolved(syms, allowed); err != nil {
		log.Fatalln(err)
	}

	sections, err := collect(elffile)
	if err != nil {
		log.Fatalln(err)
	}

	out, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := flatten(w, elffile.Entry, sections); err != nil {
		log.Fatalln("objcopy:", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}

	if *run != "" {
		runImage(*run, outfile)
	}
}

func runImage(cmdpath, imgpath string) {
	args, err := shellquote.Split(cmdpath)
	if err != nil {
		log.Fatal("run:", err)
	}
	args = append(args, imgpath)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	processGroupEnable(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatal("open stdout:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)

	err = cmd.Start()
	if err != nil {
		log.Fatal("start command:", err)
	}

	go func() {
		<-sigintr
		stdout.Close()
		err := processGroupKill(cmd)
		if err != nil {
			log.Println(err)
		}
	}()

	scanner := bufio.NewScanner(stdout)
	exiting := false
	code := 0
	for scanner.Scan() {
		log.Println(scanner.Text())
		if exiting {
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
				stdout.Close()
				err := processGroupKill(cmd)
				if err != nil {
					log.Println(err)
				}
			}()
		}
	}
	cmd.Wait()
	os.Exit(code)
}
