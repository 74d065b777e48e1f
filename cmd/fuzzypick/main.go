package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick"
	"github.com/darksworm/fuzzypick/internal/config"
)

const exitCancelled = 130

// overrideFlags collects repeated -o key=value flags
type overrideFlags map[string]string

func (o overrideFlags) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (o overrideFlags) Set(s string) error {
	key, value, err := config.ParseOverride(s)
	if err != nil {
		return err
	}
	o[key] = value
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		dir        string
		configPath string
		logPath    string
		view       bool
		lineNumber bool
		overrides  = overrideFlags{}
	)
	flag.StringVar(&dir, "dir", "", "Pick a file under this directory instead of a line from stdin")
	flag.StringVar(&dir, "d", "", "Directory to pick from (shorthand)")
	flag.StringVar(&configPath, "config", ".fuzzypick.toml", "TOML file with picker options")
	flag.StringVar(&logPath, "log", "", "Write debug logs to this file")
	flag.BoolVar(&view, "view", false, "Open the picked file in a pager instead of printing it")
	flag.BoolVar(&lineNumber, "n", false, "Print the line number of the picked line instead of its text")
	flag.Var(overrides, "o", "Option override key=value, repeatable ("+strings.Join(config.Keys(), ", ")+")")
	flag.Parse()

	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	// Set up logging; the TUI owns the terminal
	if logPath != "" {
		logFile, err := tea.LogToFile(logPath, "fuzzypick")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	fileOverrides, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	defaults := config.Default()
	defaults.MatchPaths = dir != ""
	opts := config.Load(defaults, config.Merge(fileOverrides, overrides))
	log.Printf("Options: %+v", opts)

	picker := fuzzypick.NewWithOptions[item](opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newModel(picker),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
	)

	// Stream entries in while the user is already typing
	go func() {
		send := func(batch entriesMsg) { p.Send(batch) }
		var err error
		if dir != "" {
			err = loadDir(ctx, dir, send)
		} else {
			err = loadLines(ctx, os.Stdin, send)
		}
		if err != nil {
			log.Printf("Loading entries: %v", err)
		}
		p.Send(loadDoneMsg{err: err})
	}()

	final, err := p.Run()
	cancel()
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	m := final.(model)
	if m.selected == nil {
		return exitCancelled
	}

	entry := *m.selected
	switch {
	case entry.Data.Path != "" && view:
		if err := viewFile(entry.Data.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Error viewing file: %v\n", err)
			return 1
		}
	case entry.Data.Path != "":
		fmt.Println(entry.Data.Path)
	case lineNumber:
		fmt.Println(strconv.Itoa(entry.Data.Line))
	default:
		fmt.Println(entry.String)
	}
	return 0
}
