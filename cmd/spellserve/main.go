/*
Package main implements the spell checking server and CLI application.

SpellServe provides approximate word matching against a static word list:
given an input token it reports whether the token is a known word, and if
not, a ranked list of plausible corrections under a restricted
Damerau-Levenshtein metric. It can operate as a MessagePack IPC server for
integration with host applications, or as a CLI for testing and debugging.

# Usage

Start the server with a word list:

	spellserve -dict /usr/share/dict/words

Run in CLI mode with custom tolerances and debug logging:

	spellserve -dict words.txt -c -t 2 -lt 1 -d

The word list is a plain text file with one word per line, arbitrary order,
mixed case tolerated. Lines longer than the shared word length bound are
excluded at load time. The dictionary can also be loaded (and replaced at
runtime) through the IPC "load" op.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, dictionary settings, and CLI defaults:

	[server]
	max_results = 24
	default_tolerance = 3
	default_length_tolerance = 2

	[dict]
	path = ""
	allow_shorter = false

	[cli]
	default_tolerance = 3
	default_length_tolerance = 2
	default_limit = 10

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
suggestion responses.

Send a suggestion request:

	{"id": "req1", "op": "suggest", "w": "nayway", "t": 3, "wl": 6, "lt": 2}

Receive candidates ranked by distance, ties alphabetical:

	{"id": "req1", "s": [{"w": "anyway", "d": 1}], "c": 1, "t": 145}

Membership checks and dictionary management use the "check", "load" and
"info" ops. See the server package documentation for the full message set.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Path to the word list file (one word per line)
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-t int
	    Maximum edit distance for suggestions (CLI mode)
	-lt int
	    Maximum candidate length deviation (CLI mode)
	-limit int
	    Number of suggestions to display (CLI mode)
	-allow-shorter
	    Admit candidates shorter than the input word
	-no-filter
	    Disable input filtering for debugging
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the store, checker and interface mode together.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to the word list file (one word per line)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tolerance := flag.Int("t", defaultConfig.CLI.DefaultTolerance, "Maximum edit distance for suggestions")
	lengthTolerance := flag.Int("lt", defaultConfig.CLI.DefaultLengthTolerance, "Maximum candidate length deviation")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to display")
	allowShorter := flag.Bool("allow-shorter", defaultConfig.Dict.AllowShorter, "Admit candidates shorter than the input word")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	store := dictionary.NewStore()
	manager := dictionary.NewManager(store)
	checker := spell.NewCheckerWithOptions(store, spell.Options{
		AllowShorter: *allowShorter || appConfig.Dict.AllowShorter,
	})

	wordList := *dictPath
	if wordList == "" {
		wordList = appConfig.Dict.Path
	}
	if wordList != "" {
		resolved := pathResolver.ResolveWordListPath(wordList)
		if err := manager.Load(resolved); err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		log.Debugf("Dictionary ready: %d words", store.Len())
	} else {
		log.Warn("No word list specified, running with empty dictionary...")
	}

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"tolerance", *tolerance,
			"lengthTolerance", *lengthTolerance,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(checker, *tolerance, *lengthTolerance, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, manager, appConfig)

	showStartupInfo(manager)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ SpellServe ] Fuzzy word matching over a static word list")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(manager *dictionary.Manager) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	info := manager.GetInfo()

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	if info.Loaded {
		log.Infof("dictionary: ( %s ) %d words", info.Path, info.Words)
	} else {
		log.Info("dictionary: none loaded")
	}
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
