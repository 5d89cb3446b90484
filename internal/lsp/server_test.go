package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params any
}

func recordingContext(out *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*out = append(*out, notification{method: method, params: params})
		},
	}
}

func TestServer_PublishesDiagnosticsOnOpenAndChange(t *testing.T) {
	s := NewServer("test")
	var sent []notification
	ctx := recordingContext(&sent)
	uri := protocol.DocumentUri("file:///themes/rose.theme.hcl")

	err := s.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: validTheme, Version: 1},
	})
	if err != nil {
		t.Fatalf("didOpen error: %v", err)
	}

	err = s.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: edit(t, `mode = "dark"`, `mode = "dim"`)},
		},
	})
	if err != nil {
		t.Fatalf("didChange error: %v", err)
	}

	if len(sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(sent))
	}
	for _, n := range sent {
		if n.method != protocol.ServerTextDocumentPublishDiagnostics {
			t.Errorf("method = %q, want %q", n.method, protocol.ServerTextDocumentPublishDiagnostics)
		}
	}

	first := sent[0].params.(protocol.PublishDiagnosticsParams)
	if first.URI != uri || len(first.Diagnostics) != 0 {
		t.Errorf("open: expected no diagnostics for %s, got %+v", uri, first)
	}
	if first.Diagnostics == nil {
		t.Error("open: expected an empty, non-nil diagnostics slice")
	}

	second := sent[1].params.(protocol.PublishDiagnosticsParams)
	if len(second.Diagnostics) != 1 {
		t.Fatalf("change: expected 1 diagnostic, got %+v", second.Diagnostics)
	}
	if second.Version == nil || *second.Version != 2 {
		t.Errorf("change: expected diagnostics for version 2, got %v", second.Version)
	}
}

func TestServer_StaleChangeIsIgnored(t *testing.T) {
	s := NewServer("test")
	var sent []notification
	ctx := recordingContext(&sent)
	uri := "file:///themes/rose.theme.hcl"

	_ = s.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: protocol.DocumentUri(uri), Text: validTheme, Version: 3},
	})
	_ = s.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "colors {"}},
	})

	if len(sent) != 1 {
		t.Errorf("expected only the open notification, got %d", len(sent))
	}
	if content, _ := s.docs.Get(uri); content != validTheme {
		t.Error("stale change replaced the document")
	}
	if result := s.getResult(uri); len(result.Diagnostics) != 0 {
		t.Errorf("expected the cached analysis of version 3, got %+v", result.Diagnostics)
	}
}

func TestServer_CloseClearsDiagnostics(t *testing.T) {
	s := NewServer("test")
	var sent []notification
	ctx := recordingContext(&sent)
	uri := "file:///themes/broken.theme.hcl"

	_ = s.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: protocol.DocumentUri(uri), Text: "colors {"},
	})
	_ = s.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})

	if len(sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(sent))
	}
	if got := sent[1].params.(protocol.PublishDiagnosticsParams); len(got.Diagnostics) != 0 {
		t.Errorf("expected close to clear diagnostics, got %+v", got.Diagnostics)
	}
	if s.getResult(uri) != nil {
		t.Error("expected no result for a closed document")
	}
}

func TestServer_GetResult(t *testing.T) {
	s := NewServer("test")
	uri := "file:///themes/rose.theme.hcl"

	if s.getResult(uri) != nil {
		t.Fatal("expected nil result for an unknown document")
	}

	// Documents opened without a context are analyzed lazily.
	s.docs.Open(uri, validTheme, 1)
	result := s.getResult(uri)
	if result == nil {
		t.Fatal("expected a result for an open document")
	}
	if len(result.Colors) != 15 {
		t.Errorf("expected 15 colors, got %d", len(result.Colors))
	}
	if again := s.getResult(uri); again != result {
		t.Error("expected the cached result to be reused")
	}
}

func TestServer_PublishWithoutNotify(t *testing.T) {
	s := NewServer("test")
	err := s.textDocumentDidOpen(&glsp.Context{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.theme.hcl", Text: validTheme},
	})
	if err != nil {
		t.Fatalf("didOpen error: %v", err)
	}
}

func TestURIFilename(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/me/themes/rose.theme.hcl", "/home/me/themes/rose.theme.hcl"},
		{"file:///home/me/my%20themes/rose.hcl", "/home/me/my themes/rose.hcl"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			if got := uriFilename(tt.uri); got != tt.want {
				t.Errorf("uriFilename(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestInitialize_Capabilities(t *testing.T) {
	s := NewServer("1.2.3")
	res, err := s.initialize(nil, &protocol.InitializeParams{})
	if err != nil {
		t.Fatalf("initialize error: %v", err)
	}
	result := res.(protocol.InitializeResult)
	caps := result.Capabilities

	if caps.ColorProvider == nil {
		t.Error("expected color provider")
	}
	if caps.HoverProvider == nil {
		t.Error("expected hover provider")
	}
	if caps.DocumentFormattingProvider == nil {
		t.Error("expected formatting provider")
	}
	if caps.CompletionProvider == nil || len(caps.CompletionProvider.TriggerCharacters) != 1 {
		t.Errorf("expected completion provider triggered by '.', got %+v", caps.CompletionProvider)
	}
	opts, ok := caps.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	if !ok || len(opts.Legend.TokenTypes) != len(semanticTokenTypes) {
		t.Errorf("expected semantic tokens legend, got %+v", caps.SemanticTokensProvider)
	}
	if result.ServerInfo == nil || result.ServerInfo.Name != "themekit-lsp" || *result.ServerInfo.Version != "1.2.3" {
		t.Errorf("unexpected server info %+v", result.ServerInfo)
	}
}
