package highlight_test

import (
	"testing"

	"github.com/scribe-edit/scribe/internal/buffer"
	"github.com/scribe-edit/scribe/internal/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "Go", highlight.DetectLanguage("main.go"))
	assert.Equal(t, "Python", highlight.DetectLanguage("script.py"))
	assert.Equal(t, "", highlight.DetectLanguage("mystery.zzz"))
}

func TestHighlightDocumentGo(t *testing.T) {
	d := buffer.New(nil)
	d.SetText("package main\n\n// a comment\nconst answer = 42")

	h := highlight.New()
	require.NoError(t, h.HighlightDocument(d, "Go"))

	// "package" on line 0
	assert.Equal(t, highlight.AttrKeyword, d.Line(0).AttributeAt(0))
	assert.Equal(t, highlight.AttrKeyword, d.Line(0).AttributeAt(6))

	// empty line carries no runs
	assert.Empty(t, d.Line(1).Attributes())

	// "// a comment" on line 2
	assert.Equal(t, highlight.AttrComment, d.Line(2).AttributeAt(0))
	assert.Equal(t, highlight.AttrComment, d.Line(2).AttributeAt(5))

	// "const answer = 42" on line 3
	assert.Equal(t, highlight.AttrKeyword, d.Line(3).AttributeAt(0))
	assert.Equal(t, highlight.AttrNumber, d.Line(3).AttributeAt(15))
}

func TestHighlightRunsAreOrdered(t *testing.T) {
	d := buffer.New(nil)
	d.SetText(`const s = "a string" // trailing`)

	h := highlight.New()
	require.NoError(t, h.HighlightDocument(d, "Go"))

	runs := d.Line(0).Attributes()
	require.NotEmpty(t, runs)
	prevEnd := 0
	for _, r := range runs {
		assert.GreaterOrEqual(t, r.Offset, prevEnd, "runs must not overlap")
		assert.Positive(t, r.Length)
		prevEnd = r.Offset + r.Length
	}
	assert.LessOrEqual(t, prevEnd, d.Line(0).Length())
}

func TestHighlightUnknownLanguageClearsRuns(t *testing.T) {
	d := buffer.New(nil)
	d.SetText("const x = 1")

	h := highlight.New()
	require.NoError(t, h.HighlightDocument(d, "Go"))
	require.NotEmpty(t, d.Line(0).Attributes())

	require.NoError(t, h.HighlightDocument(d, ""))
	assert.Empty(t, d.Line(0).Attributes())
}

func TestHighlightCacheSkipsUnchangedContent(t *testing.T) {
	d := buffer.New(nil)
	d.SetText("package main")

	h := highlight.New()
	require.NoError(t, h.HighlightDocument(d, "Go"))

	// wipe the runs behind the highlighter's back; an unchanged document
	// is skipped, so they stay gone
	d.Line(0).ClearAttributes()
	require.NoError(t, h.HighlightDocument(d, "Go"))
	assert.Empty(t, d.Line(0).Attributes())

	// invalidating forces a re-highlight
	h.InvalidateCache(d.FilePath())
	require.NoError(t, h.HighlightDocument(d, "Go"))
	assert.NotEmpty(t, d.Line(0).Attributes())
}

func TestHighlightAfterEdit(t *testing.T) {
	d := buffer.New(nil)
	d.SetText("const x = 1")

	h := highlight.New()
	require.NoError(t, h.HighlightDocument(d, "Go"))
	require.Equal(t, highlight.AttrKeyword, d.Line(0).AttributeAt(0))

	d.InsertText(0, 0, "// ")
	require.NoError(t, h.HighlightDocument(d, "Go"))
	assert.Equal(t, highlight.AttrComment, d.Line(0).AttributeAt(0))
}
