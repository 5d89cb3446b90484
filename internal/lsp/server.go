package lsp

import (
	"net/url"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const serverName = "themekit-lsp"

var log = commonlog.GetLogger("themekit.lsp")

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	version string

	mu      sync.Mutex
	results map[string]*AnalysisResult
}

func NewServer(version string) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		version: version,
		results: make(map[string]*AnalysisResult),
	}

	s.handler = protocol.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		SetTrace:                       s.setTrace,
		TextDocumentDidOpen:            s.textDocumentDidOpen,
		TextDocumentDidChange:          s.textDocumentDidChange,
		TextDocumentDidClose:           s.textDocumentDidClose,
		TextDocumentColor:              s.textDocumentDocumentColor,
		TextDocumentColorPresentation:  s.textDocumentColorPresentation,
		TextDocumentHover:              s.textDocumentHover,
		TextDocumentCompletion:         s.textDocumentCompletion,
		TextDocumentFormatting:         s.textDocumentFormatting,
		TextDocumentSemanticTokensFull: s.textDocumentSemanticTokensFull,
	}

	return s
}

func (s *Server) Run(verbosity int) error {
	commonlog.Configure(verbosity, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"."},
	}
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: semanticTokensLegend(),
		Full:   true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Open(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publish(ctx, uri, s.analyze(uri, params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	version := params.TextDocument.Version
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			if !s.docs.Update(uri, c.Text, version) {
				log.Debugf("dropping stale change to %s (version %d)", uri, version)
				return nil
			}
		}
	}
	if content, ok := s.docs.Get(uri); ok {
		s.publish(ctx, uri, s.analyze(uri, content))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Close(uri)

	s.mu.Lock()
	delete(s.results, uri)
	s.mu.Unlock()

	// Clear diagnostics for the closed document.
	s.publish(ctx, uri, &AnalysisResult{})
	return nil
}

// analyze runs Analyze on content and caches the result for uri.
func (s *Server) analyze(uri, content string) *AnalysisResult {
	result := Analyze(uriFilename(uri), content)

	s.mu.Lock()
	s.results[uri] = result
	s.mu.Unlock()

	log.Debugf("analyzed %s: %d diagnostics, %d colors", uri, len(result.Diagnostics), len(result.Colors))
	return result
}

// getResult returns the cached analysis for uri, analyzing the stored
// document if there is no cached result. It returns nil for unknown
// documents.
func (s *Server) getResult(uri string) *AnalysisResult {
	s.mu.Lock()
	result, ok := s.results[uri]
	s.mu.Unlock()
	if ok {
		return result
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil
	}
	return s.analyze(uri, content)
}

func (s *Server) publish(ctx *glsp.Context, uri string, result *AnalysisResult) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diagnostics,
	}
	if doc, ok := s.docs.Document(uri); ok && doc.Version >= 0 {
		version := protocol.UInteger(doc.Version)
		params.Version = &version
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

// uriFilename turns a file:// URI into a path for diagnostics. Other URIs
// are returned unchanged.
func uriFilename(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return u.Path
}
