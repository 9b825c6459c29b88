// Package cli handles cmd line input and search queries for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fenlog/pydex/internal/logger"
	"github.com/fenlog/pydex/internal/utils"
	"github.com/fenlog/pydex/pkg/registry"
	"github.com/fenlog/pydex/pkg/search"
)

// InputHandler reads queries from stdin and prints the ranked results.
// Useful for poking at the ranking without a launcher attached.
type InputHandler struct {
	reg         *registry.Registry
	scorer      search.Scorer
	limit       int
	maxQueryLen int
	out         *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(reg *registry.Registry, scorer search.Scorer, limit, maxQueryLen int) *InputHandler {
	return &InputHandler{
		reg:         reg,
		scorer:      scorer,
		limit:       limit,
		maxQueryLen: maxQueryLen,
		out:         logger.NewWithConfig("", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin, and runs the matching engine on it.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	h.out.Printf("pydex CLI -- %d module names indexed", h.reg.Len())
	h.out.Print("type a partial module name and press Enter (use * for wildcard search, Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query := utils.NormalizeQuery(line)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery runs one query through the same engine selection the server
// uses and prints the ranked names.
func (h *InputHandler) handleQuery(query string) {
	if len(query) > h.maxQueryLen {
		log.Errorf("Query too long: %s", query)
		return
	}
	if !utils.IsValidQuery(query) {
		log.Errorf("Query contains invalid characters: %q", query)
		return
	}

	start := time.Now()
	names := h.reg.Names()

	var ranked []string
	var exact bool
	if utils.HasWildcard(query) {
		ranked = search.SearchFullName(query, names, h.scorer)
	} else {
		exact, ranked = search.SearchNested(query, names, h.scorer)
	}
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(ranked) == 0 {
		log.Warnf("No matches for query: '%s'", query)
		return
	}

	shown := ranked
	if len(shown) > h.limit {
		shown = shown[:h.limit]
	}

	h.out.Printf("Found %d matches for '%s':", len(ranked), query)
	for i, name := range shown {
		marker := " "
		if exact && i == 0 {
			marker = "*"
		}
		clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", name)
		h.out.Printf("%2d.%s %s", i+1, marker, clName)
	}
	if len(ranked) > h.limit {
		h.out.Printf("    %d more results not shown..", len(ranked)-h.limit)
	}
}
