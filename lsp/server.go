// Package lsp is a language server that reports syntax errors in documents
// handled by a registered grammar.
package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/dhamidi/comb/document"
	"github.com/dhamidi/comb/internal/config"
	"github.com/dhamidi/comb/internal/grammars"
	"github.com/tliron/commonlog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "comb"

var log = commonlog.GetLogger("comb.lsp")

// Server publishes syntax diagnostics for open documents.
type Server struct {
	config  *config.Config
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[string]string
}

// NewServer builds a server that picks grammars through cfg.
func NewServer(cfg *config.Config, version string) *Server {
	ls := &Server{
		config:    cfg,
		version:   version,
		documents: make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves the protocol over standard input and output.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("grammars: %s", strings.Join(grammars.Names(), ", "))
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	ls.mu.Lock()
	text, ok := ls.documents[params.TextDocument.URI]
	ls.mu.Unlock()
	if ok {
		ls.update(ctx, params.TextDocument.URI, text)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri string, text string) {
	ls.mu.Lock()
	ls.documents[uri] = text
	ls.mu.Unlock()

	g, ok := ls.grammarFor(uri)
	if !ok {
		return
	}
	diagnostics := Diagnose(g, uri, text)
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *Server) grammarFor(uri string) (grammars.Grammar, bool) {
	path, err := uriToPath(uri)
	if err != nil {
		log.Warningf("%s: %s", uri, err)
		return grammars.Grammar{}, false
	}
	name, ok := ls.config.GrammarFor(path)
	if !ok {
		return grammars.Grammar{}, false
	}
	g, err := grammars.Lookup(name)
	if err != nil {
		log.Warningf("%s: %s", path, err)
		return grammars.Grammar{}, false
	}
	return g, true
}

// Diagnose parses text with g and returns one error diagnostic where the
// parse stopped, or an empty list when the whole text matches.
func Diagnose(g grammars.Grammar, filename string, text string) []protocol.Diagnostic {
	_, _, err := g.Parse(text, document.WithFile(filename))
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var syntaxErr *document.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return []protocol.Diagnostic{newDiagnostic(protocol.Range{}, g.Name, err.Error())}
	}

	start := position(text, syntaxErr.Position.Offset)
	end := start
	line, _, _ := strings.Cut(syntaxErr.Near, "\n")
	end.Character += protocol.UInteger(len(utf16.Encode([]rune(line))))

	message := "unexpected end of input"
	switch {
	case errors.Is(err, document.ErrTrailingInput):
		message = "trailing input after " + g.Name + " document"
	case strings.TrimSpace(line) != "":
		message = "unexpected " + strings.TrimSpace(line)
	case syntaxErr.Near != "":
		message = "unexpected line break"
	}
	return []protocol.Diagnostic{newDiagnostic(protocol.Range{Start: start, End: end}, g.Name, message)}
}

func newDiagnostic(r protocol.Range, source string, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// position converts a byte offset into a zero-based line and a character
// offset counted in UTF-16 code units.
func position(text string, offset int) protocol.Position {
	before := text[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(len(utf16.Encode([]rune(before[lineStart:])))),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
