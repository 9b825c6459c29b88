package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/fenlog/pydex/internal/utils"
	"github.com/fenlog/pydex/pkg/config"
	"github.com/fenlog/pydex/pkg/docs"
	"github.com/fenlog/pydex/pkg/registry"
	"github.com/fenlog/pydex/pkg/search"
)

// Server handles the IPC between the launcher front end and the search
// engines. One instance serves one launcher session over stdin/stdout.
type Server struct {
	reg     *registry.Registry
	sources []registry.Source
	desc    docs.DescriptionProvider
	scorer  search.Scorer
	baseURL string
	cfg     *config.Config

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a launcher IPC server over stdin/stdout. The sources
// are kept around for the reload action.
func NewServer(reg *registry.Registry, desc docs.DescriptionProvider, scorer search.Scorer, baseURL string, cfg *config.Config, sources ...registry.Source) *Server {
	return &Server{
		reg:     reg,
		sources: sources,
		desc:    desc,
		scorer:  scorer,
		baseURL: baseURL,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(os.Stdin),
		enc:     msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF, when the
// launcher side closed the pipe.
func (s *Server) Start() error {
	log.Debug("Starting launcher IPC server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var req QueryRequest
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			// A framing error poisons the rest of the stream, so bail
			// out instead of spinning on the same bad bytes.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(req QueryRequest) {
	switch req.Action {
	case "":
		s.handleQuery(req)
	case "get_info":
		s.send(RegistryResponse{ID: req.ID, Status: "ok", TotalCount: s.reg.Len()})
	case "reload":
		s.handleReload(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

// handleQuery runs one search round trip: validate, rank, decorate, trim.
func (s *Server) handleQuery(req QueryRequest) {
	query := utils.NormalizeQuery(req.Query)

	if query == "" {
		s.send(StatusResponse{
			ID:            req.ID,
			Status:        "ok",
			TopLevelCount: s.reg.TopLevelCount(),
			TotalCount:    s.reg.Len(),
			DocsURL:       s.baseURL,
		})
		return
	}

	if len(query) < s.cfg.Server.MinQuery {
		s.sendError(req.ID, "Query is too short", 400)
		return
	}
	if len(query) > s.cfg.Server.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQuery), 400)
		return
	}
	if !utils.IsValidQuery(query) {
		s.sendError(req.ID, "Query contains characters module names never do", 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Server.MaxResults
	}

	start := time.Now()
	names := s.reg.Names()

	var ranked []string
	var exact bool
	if utils.HasWildcard(query) {
		ranked = search.SearchFullName(query, names, s.scorer)
	} else {
		exact, ranked = search.SearchNested(query, names, s.scorer)
	}
	elapsed := time.Since(start)
	log.Debugf("Query %q ranked %d of %d names in %v", query, len(ranked), len(names), elapsed)

	hidden := 0
	if len(ranked) > limit {
		hidden = len(ranked) - limit
		ranked = ranked[:limit]
	}

	items := make([]ResultItem, len(ranked))
	for i, name := range ranked {
		items[i] = ResultItem{
			Name:        name,
			Description: s.desc.Description(name),
			URL:         docs.PageURL(s.baseURL, name),
		}
	}

	resp := QueryResponse{
		ID:        req.ID,
		Items:     items,
		Count:     len(items),
		Exact:     exact,
		Hidden:    hidden,
		TimeTaken: elapsed.Milliseconds(),
	}
	if exact {
		// Offer the source file of the exactly matched module for opening.
		if path, ok := s.reg.SourcePath(exactName(query)); ok {
			resp.SourcePath = path
		}
	}
	s.send(resp)
}

// handleReload re-runs the module enumeration sources.
func (s *Server) handleReload(req QueryRequest) {
	if len(s.sources) == 0 {
		s.send(RegistryResponse{ID: req.ID, Status: "error", Error: "no registry sources configured"})
		return
	}
	count, err := s.reg.Reload(s.sources...)
	if err != nil {
		log.Errorf("Registry reload failed: %v", err)
		s.send(RegistryResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	s.send(RegistryResponse{ID: req.ID, Status: "ok", TotalCount: count})
}

// exactName is the registry key an exact-matching query refers to: the
// query with any trailing delimiter stripped.
func exactName(query string) string {
	for len(query) > 0 && query[len(query)-1] == '.' {
		query = query[:len(query)-1]
	}
	return query
}

// send marshals a response and writes it to the launcher.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
