// Copyright © 2025 The ruff authors

package lsp

import (
	"sync"

	"github.com/tomasr8/ruff/analysis"
	"github.com/tomasr8/ruff/python"
)

// Document represents an open text document tracked by the LSP server.
type Document struct {
	mu        sync.Mutex
	URI       string
	Version   int32
	Content   string
	tree      *python.Tree
	semantics *analysis.SemanticModel
	parseErr  error
}

// parse parses the document content and caches the tree and semantic
// model. Parsing is fault tolerant, so a tree is produced even for
// documents with syntax errors.
func (d *Document) parse() {
	tree, err := python.Parse([]byte(d.Content), uriToPath(d.URI))
	d.parseErr = err
	d.tree = tree
	d.semantics = nil
	if tree != nil {
		d.semantics = analysis.Analyze(tree)
	}
}

// DocumentStore manages open documents with thread-safe access.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds a document to the store and parses it.
func (s *DocumentStore) Open(uri string, version int32, content string) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Content: content,
	}
	doc.parse()
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change updates a document's content (full sync) and re-parses it.
func (s *DocumentStore) Change(uri string, version int32, content string) *Document {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri}
		s.docs[uri] = doc
	}
	s.mu.Unlock()

	doc.mu.Lock()
	doc.Version = version
	doc.Content = content
	doc.parse()
	doc.mu.Unlock()
	return doc
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns a snapshot of all open documents.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs
}
