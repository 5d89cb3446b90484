package lsp

import (
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is the last known state of an open text document.
type Document struct {
	Text    string
	Version int32
}

// DocumentStore holds open documents keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]Document)}
}

func (s *DocumentStore) Open(uri, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = Document{Text: text, Version: version}
}

// Update replaces the text of uri. A change older than the stored version
// is dropped and Update returns false.
func (s *DocumentStore) Update(uri, text string, version int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[uri]; ok && version < doc.Version {
		return false
	}
	s.docs[uri] = Document{Text: text, Version: version}
	return true
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the text of uri.
func (s *DocumentStore) Get(uri string) (string, bool) {
	doc, ok := s.Document(uri)
	return doc.Text, ok
}

func (s *DocumentStore) Document(uri string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

// offsetAt converts pos into a byte offset in text. Characters past the end
// of a line clamp to the line end; lines past the end clamp to len(text).
func offsetAt(text string, pos protocol.Position) int {
	off := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[off:], '\n')
		if i < 0 {
			return len(text)
		}
		off += i + 1
	}

	end := len(text)
	if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
		end = off + i
	}
	return min(off+int(pos.Character), end)
}

// textInRange returns the text of content covered by r.
func textInRange(content string, r protocol.Range) string {
	start, end := offsetAt(content, r.Start), offsetAt(content, r.End)
	if start >= end {
		return ""
	}
	return content[start:end]
}

// before reports whether a sorts before b.
func before(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

// inRange reports whether pos lies in [r.Start, r.End).
func inRange(pos protocol.Position, r protocol.Range) bool {
	return !before(pos, r.Start) && before(pos, r.End)
}
