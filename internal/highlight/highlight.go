// Package highlight runs chroma over a document and attaches the
// resulting attribute runs to each line. Attribute values are stable
// small ints so consumers can map them to styles without importing
// chroma themselves.
package highlight

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/scribe-edit/scribe/internal/buffer"
	"github.com/scribe-edit/scribe/internal/logger"
	"github.com/scribe-edit/scribe/internal/textline"
)

// Attribute values written into line runs. AttrNone spans are not
// stored; a lookup in such a gap returns 0.
const (
	AttrNone = iota
	AttrKeyword
	AttrString
	AttrNumber
	AttrComment
	AttrFunction
	AttrType
	AttrOperator
)

// Highlighter tokenizes documents and fills in per-line attribute runs.
// A content hash per file path skips re-highlighting unchanged text.
type Highlighter struct {
	mu    sync.Mutex
	cache map[string][32]byte
}

// New creates a highlighter.
func New() *Highlighter {
	return &Highlighter{cache: make(map[string][32]byte)}
}

// DetectLanguage returns the chroma lexer name for a filename, or ""
// when no lexer matches.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if cfg == nil {
		return ""
	}
	return cfg.Name
}

// InvalidateCache forgets the cached content hash for a path.
func (h *Highlighter) InvalidateCache(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.cache, path)
}

// HighlightDocument tokenizes the document with the named lexer and
// replaces every line's attribute runs. An unknown lang falls back to
// chroma's plaintext lexer, which clears all runs.
func (h *Highlighter) HighlightDocument(doc *buffer.Document, lang string) error {
	text := doc.Text()
	sum := sha256.Sum256([]byte(lang + "\x00" + text))

	h.mu.Lock()
	if prev, ok := h.cache[doc.FilePath()]; ok && prev == sum {
		h.mu.Unlock()
		logger.DebugTagf("highlight", "content unchanged, skipping %s", doc.FilePath())
		return nil
	}
	h.mu.Unlock()

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("tokenizing %q: %w", doc.FilePath(), err)
	}

	for i := 0; i < doc.LineCount(); i++ {
		doc.Line(i).ClearAttributes()
	}

	line := 0
	col := 0
	for _, tok := range iter.Tokens() {
		attr := attributeFor(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				line++
				col = 0
			}
			if line >= doc.LineCount() {
				break
			}
			length := len([]rune(part))
			if length == 0 {
				continue
			}
			if attr != AttrNone {
				doc.Line(line).AddAttribute(textline.Attribute{Offset: col, Length: length, Value: attr})
			}
			col += length
		}
	}

	h.mu.Lock()
	h.cache[doc.FilePath()] = sum
	h.mu.Unlock()

	logger.DebugTagf("highlight", "highlighted %d lines as %s", doc.LineCount(), lang)
	return nil
}

func attributeFor(t chroma.TokenType) int {
	switch {
	case t.InCategory(chroma.Keyword):
		return AttrKeyword
	case t.InSubCategory(chroma.LiteralString):
		return AttrString
	case t.InSubCategory(chroma.LiteralNumber):
		return AttrNumber
	case t.InCategory(chroma.Comment):
		return AttrComment
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return AttrFunction
	case t == chroma.NameClass || t == chroma.NameException || t == chroma.NameDecorator:
		return AttrType
	case t.InCategory(chroma.Operator):
		return AttrOperator
	default:
		return AttrNone
	}
}
