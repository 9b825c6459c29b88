/*
Package server implements msgpack IPC for the launcher front end.

The server speaks a request/response protocol over stdin/stdout using
binary msgpack encoding. The launcher extension sends one message per
keystroke and renders whatever comes back; all ranking happens here.

# IPC

Each message carries an ID the response echoes back. A query request looks
like:

	{"id": "req_001", "q": "http.cl", "l": 9}

The server picks the engine from the query shape: a '*' anywhere selects
the full-name wildcard search, everything else goes through the nested
dot-delimited search. The response carries ranked result items with their
doc page URLs and descriptions:

	{"id": "req_001", "items": [{"n": "http.client", "u": "http://localhost:45373/http.client.html"}], "c": 1, "exact": false, "t": 2}

An empty query yields a status response instead (interpreter summary and
index counts), which the front end renders as its idle screen.

Registry management requests use an action field:

	{"id": "reg_001", "action": "get_info"}
	{"id": "reg_002", "action": "reload"}

Errors come back as {"id": ..., "e": "message", "c": code} and never
terminate the loop.
*/
package server

// QueryRequest asks for ranked module name matches.
type QueryRequest struct {
	ID     string `msgpack:"id"`
	Query  string `msgpack:"q"`
	Limit  int    `msgpack:"l,omitempty"`
	Action string `msgpack:"action,omitempty"`
}

// ResultItem is one ranked match, ready for the launcher to render.
type ResultItem struct {
	Name        string `msgpack:"n"`
	Description string `msgpack:"d,omitempty"`
	URL         string `msgpack:"u,omitempty"`
}

// QueryResponse carries the ranked results for one query.
type QueryResponse struct {
	ID    string       `msgpack:"id"`
	Items []ResultItem `msgpack:"items"`
	Count int          `msgpack:"c"`
	// Exact reports that some indexed name equals the query exactly;
	// SourcePath is then the module source file to offer for opening.
	Exact      bool   `msgpack:"exact"`
	SourcePath string `msgpack:"src,omitempty"`
	// Hidden counts ranked results beyond the visible limit.
	Hidden    int   `msgpack:"hidden,omitempty"`
	TimeTaken int64 `msgpack:"t"`
}

// StatusResponse answers an empty query with idle-screen info.
type StatusResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	TopLevelCount int    `msgpack:"toplevel"`
	TotalCount    int    `msgpack:"total"`
	DocsURL       string `msgpack:"url,omitempty"`
}

// RegistryResponse answers registry management actions.
type RegistryResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	Error      string `msgpack:"error,omitempty"`
	TotalCount int    `msgpack:"total,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
