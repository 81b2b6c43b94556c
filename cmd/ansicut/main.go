// ABOUTME: CLI entry point exposing cut, chunk, strip, and measure operations
// ABOUTME: One-shot filter reading the styled string from an argument or stdin

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	ansicut "github.com/mauromedda/ansicut-go"
	"github.com/mauromedda/ansicut-go/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliArgs struct {
	cutRange    string
	chunkSize   int
	strip       bool
	width       bool
	length      bool
	demo        bool
	showVersion bool
	verbose     bool
}

func parseFlags() cliArgs {
	var args cliArgs
	flag.StringVar(&args.cutRange, "cut", "", "cut the character range A:B (either side may be empty)")
	flag.IntVar(&args.chunkSize, "chunks", 0, "split into chunks of N characters, one per line")
	flag.BoolVar(&args.strip, "strip", false, "print the input with escape sequences removed")
	flag.BoolVar(&args.width, "width", false, "print the display width in terminal columns")
	flag.BoolVar(&args.length, "length", false, "print the de-styled character count")
	flag.BoolVar(&args.demo, "demo", false, "print a colored sample, its 4:8 cut, and its 4-chunks")
	flag.BoolVar(&args.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&args.verbose, "v", false, "enable debug logging")
	flag.Parse()
	return args
}

func main() {
	args := parseFlags()

	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if args.showVersion {
		fmt.Printf("ansicut %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	modes := 0
	for _, on := range []bool{args.cutRange != "", args.chunkSize != 0, args.strip, args.width, args.length, args.demo} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		return errors.New("choose exactly one of -cut, -chunks, -strip, -width, -length, -demo")
	}

	if args.demo {
		return runDemo()
	}

	input, err := readInput()
	if err != nil {
		return err
	}
	log.Debug("input: %d bytes, %d characters", len(input), ansicut.Length(input))

	switch {
	case args.cutRange != "":
		lower, upper, err := parseRange(args.cutRange, input)
		if err != nil {
			return err
		}
		log.Debug("cutting [%d, %d)", lower, upper)
		fmt.Println(ansicut.Cut(input, lower, upper))
	case args.chunkSize != 0:
		if args.chunkSize < 0 {
			return fmt.Errorf("chunk size must be positive, got %d", args.chunkSize)
		}
		for _, chunk := range ansicut.Chunks(input, args.chunkSize) {
			fmt.Println(chunk)
		}
	case args.strip:
		fmt.Println(ansicut.Strip(input))
	case args.width:
		fmt.Println(ansicut.Width(input))
	case args.length:
		fmt.Println(ansicut.Length(input))
	}
	return nil
}

// readInput takes the styled string from the first positional argument, or
// from stdin with a single trailing newline trimmed.
func readInput() (string, error) {
	if flag.NArg() > 0 {
		return flag.Arg(0), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// parseRange parses "A:B" into a half-open character range over input's
// de-styled text. An empty A means 0; an empty B means the de-styled length.
func parseRange(spec, input string) (lower, upper int, err error) {
	lo, hi, found := strings.Cut(spec, ":")
	if !found {
		return 0, 0, fmt.Errorf("invalid range %q: want A:B", spec)
	}

	if lo == "" {
		lower = 0
	} else if lower, err = strconv.Atoi(lo); err != nil || lower < 0 {
		return 0, 0, fmt.Errorf("invalid range lower bound %q", lo)
	}

	if hi == "" {
		upper = ansicut.Length(input)
		if lower > upper {
			upper = lower
		}
	} else if upper, err = strconv.Atoi(hi); err != nil || upper < 0 {
		return 0, 0, fmt.Errorf("invalid range upper bound %q", hi)
	}

	if lower > upper {
		return 0, 0, fmt.Errorf("invalid range %q: lower bound exceeds upper bound", spec)
	}
	return lower, upper, nil
}

// runDemo prints a colored sample string, a cut of it, and its chunks.
func runDemo() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Debug("stdout is not a terminal; demo output will be unstyled")
	}

	hello := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("7")).
		Render("Hello")
	world := lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Background(lipgloss.Color("2")).
		Render("World")
	colored := hello + " " + world

	fmt.Printf("text=%s\n", colored)
	fmt.Printf("cut 4:8=%s\n", ansicut.Cut(colored, 4, 8))
	fmt.Println("chunks of 4:")
	for _, chunk := range ansicut.Chunks(colored, 4) {
		fmt.Println(chunk)
	}
	return nil
}
