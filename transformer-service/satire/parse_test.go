package satire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompletionMarkers(t *testing.T) {
	reply := `TITLE: Moon Declares Independence From Tides
DESCRIPTION: In a bold move, the moon has had enough.
Sources say gravity was not consulted.
CONTENT: The moon announced today that it would no longer participate.

Observers were unsurprised.`

	got := ParseCompletion(reply)

	assert.Equal(t, "Moon Declares Independence From Tides", got.Title)
	assert.Equal(t, "In a bold move, the moon has had enough. Sources say gravity was not consulted.", got.Description)
	assert.Equal(t, "The moon announced today that it would no longer participate.\nObservers were unsurprised.", got.Content)
}

func TestParseCompletionBlankLineFallback(t *testing.T) {
	reply := `A Headline Without Markers

A description paragraph that sets things up.

The actual body of the article goes here.`

	got := ParseCompletion(reply)

	assert.Equal(t, "A Headline Without Markers", got.Title)
	assert.Equal(t, "A description paragraph that sets things up.", got.Description)
	assert.Equal(t, "The actual body of the article goes here.", got.Content)
}

func TestParseCompletionGenericFallback(t *testing.T) {
	reply := "just one unstructured blob of text"

	got := ParseCompletion(reply)

	assert.Equal(t, fallbackTitle, got.Title)
	assert.Equal(t, fallbackDescription, got.Description)
	// the raw reply is preserved as the body
	assert.Equal(t, reply, got.Content)
}

func TestParseCompletionMarkersOnOneLineEach(t *testing.T) {
	reply := "TITLE: T\nDESCRIPTION: D\nCONTENT: C"

	got := ParseCompletion(reply)

	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "D", got.Description)
	assert.Equal(t, "C", got.Content)
}

func TestParseCompletionEmptyReply(t *testing.T) {
	got := ParseCompletion("")

	assert.Equal(t, fallbackTitle, got.Title)
	assert.Equal(t, fallbackDescription, got.Description)
}
