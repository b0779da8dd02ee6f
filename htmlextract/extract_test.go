package htmlextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<!DOCTYPE html>
<html>
<head>
  <title> GridMaster EA - Grid Trading Robot for MT5 </title>
  <meta name="description" content="Automated grid trading for MetaTrader 5.">
  <meta name="keywords" content="grid trading, expert advisor, MT5">
</head>
<body>
  <h1>GridMaster EA</h1>
  <p>Grid trading
     automates entries   across price levels.</p>
</body>
</html>`

func TestExtract(t *testing.T) {
	content, err := Extract(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, "GridMaster EA - Grid Trading Robot for MT5", content.Title)
	assert.Equal(t, "Automated grid trading for MetaTrader 5.", content.Description)
	assert.Equal(t, "grid trading", content.Keyword)

	// Whitespace runs collapse so word counts match rendered text.
	assert.Contains(t, content.Body, "Grid trading automates entries across price levels.")
	assert.NotContains(t, content.Body, "\n")
}

func TestExtractEmptyDocument(t *testing.T) {
	content, err := Extract(strings.NewReader("<html><head></head><body></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, content.Title)
	assert.Empty(t, content.Description)
	assert.Empty(t, content.Keyword)
	assert.Empty(t, content.Body)
}

func TestExtractBareText(t *testing.T) {
	// html.Parse wraps fragments in a document, so even bare text parses.
	content, err := Extract(strings.NewReader("just some text"))
	require.NoError(t, err)
	assert.Equal(t, "just some text", content.Body)
}
