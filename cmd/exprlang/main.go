package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/exprlang"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	echo       = flag.Bool("echo", false, "print the value of the last expression")
	trace      = flag.Bool("trace", false, "log tokens and syntax trees to stderr")
	noPrelude  = flag.Bool("noprelude", false, "do not load the embedded prelude")
	source     = flag.String("e", "", "evaluate `source` instead of a file")
)

func loadConfig() *exprlang.Config {
	cfg := exprlang.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = exprlang.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "echo":
			cfg.Echo = *echo
		case "trace":
			cfg.Trace = *trace
		case "noprelude":
			prelude := !*noPrelude
			cfg.Prelude = &prelude
		}
	})
	return cfg
}

func newSession(cfg *exprlang.Config, interactive bool) *exprlang.Session {
	s := exprlang.NewSession(cfg)
	if cfg.WantsPrelude(interactive) {
		if err := exprlang.LoadLib(s); err != nil {
			log.Fatal(err)
		}
	}
	return s
}

func repl(cfg *exprlang.Config) {
	s := newSession(cfg, true)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return
		case ":env":
			s.DumpEnv(os.Stdout)
			continue
		}
		ln.AppendHistory(line)

		if _, err := s.Echo("<stdin>", strings.NewReader(line)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	log.SetFlags(0)
	cfg := loadConfig()

	var f io.Reader
	name := "<stdin>"

	switch {
	case *source != "":
		f = strings.NewReader(*source)
		name = "<arg>"
	case flag.NArg() == 1:
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		f = file
		name = flag.Arg(0)
	default:
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl(cfg)
			return
		}
		f = os.Stdin
	}

	s := newSession(cfg, false)
	if _, err := s.Run(name, f); err != nil {
		log.Fatal(err)
	}
}
