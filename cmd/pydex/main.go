/*
Package main implements the pydex launcher backend and CLI [DBG] application.

pydex lets a desktop launcher jump from a partially typed Python module
name straight to that module's documentation page, served by a local pydoc
HTTP server. The heavy lifting is the ranking core in pkg/search; this
binary wires it to a module name registry, a description provider, the
pydoc child process and the launcher IPC loop.

# Usage

Start the backend with default settings (enumerates modules via python3,
spawns pydoc on an arbitrary port):

	pydex

Point it at an already running pydoc server and a frozen names file:

	pydex -url http://localhost:45373/ -names /path/to/names.txt

Run in CLI mode for interactive testing:

	pydex -c -limit 15

# Query modes

A query without a wildcard is matched segment by segment against the
dotted module names, never showing names nested deeper than the query:

	http.cl   ->  http.client

A query containing '*' searches full names at any depth; the characters
before the wildcard must appear in order, the part after is ranked against
the rest of the name:

	ht*error  ->  http.client.HTTPException, ...

# Configuration

Runtime configuration lives in a TOML file that is created with defaults
when missing:

	[server]
	max_results = 9
	min_query = 1
	max_query = 120

	[docs]
	python = "python3"
	port = 0
	docs_url = ""
	names_file = ""

	[cli]
	default_limit = 9

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A query request

	{"id": "req1", "q": "http.cl", "l": 9}

is answered with ranked result items carrying doc page URLs and module
descriptions. An empty query returns the idle-screen status (index counts
and docs URL), and registry actions (get_info, reload) manage the module
index at runtime. See pkg/server for the message types.

# Command Line Flags

	-version    Show current version
	-d          Enable debug mode with detailed logging
	-c          Run in CLI mode instead of server mode
	-config     Path to a custom config.toml
	-names      Load module names from a file instead of enumerating
	-python     Python interpreter to enumerate with and run pydoc
	-url        Use an already running pydoc server at this URL
	-limit      Number of results to show (CLI mode)

The first module enumeration of an environment is slow; the registry keeps
the result in memory so later queries within the session are instant.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fenlog/pydex/internal/cli"
	"github.com/fenlog/pydex/internal/pydoc"
	"github.com/fenlog/pydex/pkg/config"
	"github.com/fenlog/pydex/pkg/docs"
	"github.com/fenlog/pydex/pkg/fuzzy"
	"github.com/fenlog/pydex/pkg/registry"
	"github.com/fenlog/pydex/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "pydex"
	gh      = "https://github.com/fenlog/pydex"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cleanup func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cleanup()
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	namesFile := flag.String("names", "", "Load module names from a file (name<TAB>path per line)")
	pythonBin := flag.String("python", "", "Python interpreter for enumeration and pydoc")
	docsURL := flag.String("url", "", "URL of an already running pydoc server")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to show in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// Flags override the config file.
	if *pythonBin != "" {
		appConfig.Docs.Python = *pythonBin
	}
	if *namesFile != "" {
		appConfig.Docs.NamesFile = *namesFile
	}
	if *docsURL != "" {
		appConfig.Docs.DocsURL = *docsURL
	}

	var source registry.Source
	if appConfig.Docs.NamesFile != "" {
		source = registry.FileSource{Path: appConfig.Docs.NamesFile}
	} else {
		source = registry.Enumerator{Python: appConfig.Docs.Python}
	}

	// The first module walk is slow - later ones will be much faster.
	reg := registry.New()
	count, err := reg.Reload(source)
	if err != nil {
		log.Fatalf("Failed to build module registry: %v", err)
	}
	log.Debugf("Indexed %d module names (%d top-level)", count, reg.TopLevelCount())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(reg, fuzzy.Score, *limit, appConfig.Server.MaxQuery)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	// Launch the pydoc HTTP server unless one is already running.
	baseURL := appConfig.Docs.DocsURL
	var docServer *pydoc.Server
	if baseURL == "" {
		docServer, err = pydoc.Start(appConfig.Docs.Python, appConfig.Docs.Port)
		if err != nil {
			log.Fatalf("Failed to start pydoc server: %v", err)
		}
		baseURL = docServer.URL
	}
	sigHandler(func() { docServer.Stop() })

	descriptions := docs.NewDocstringProvider(reg)
	srv := server.NewServer(reg, descriptions, fuzzy.Score, baseURL, appConfig, source)

	if err := srv.Start(); err != nil {
		docServer.Stop()
		log.Fatalf("IPC server error: %v", err)
	}
	docServer.Stop()
}

// printVersion displays version info with some flair.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ pydex ] Jump to Python docs from your launcher!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
