package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "Hello world\n\nNext", CleanText("  Hello \t  world \r\n\r\n\r\n\r\nNext  "))
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>Hi</p>"))
	assert.True(t, LooksLikeHTML("line<br/>line"))
	assert.False(t, LooksLikeHTML("C++ < Java > Go"))
	assert.False(t, LooksLikeHTML("plain text"))
}

func TestPlainText_PlainInputIsCleaned(t *testing.T) {
	got, err := PlainText("Need   Go\r\nand SQL")
	require.NoError(t, err)
	assert.Equal(t, "Need Go\nand SQL", got)
}

func TestPlainText_HTMLUsesDescriptionBlock(t *testing.T) {
	html := `<html><body><nav>Jobs | Login</nav>` +
		`<div class="job-description"><h2>About</h2><p>We use  React</p><ul><li>Go</li><li>SQL</li></ul></div>` +
		`<footer>Apply now</footer><script>track()</script></body></html>`

	got, err := PlainText(html)
	require.NoError(t, err)
	assert.Equal(t, "About\nWe use React\n- Go\n- SQL", got)
}

func TestPlainText_FallsBackToBody(t *testing.T) {
	got, err := PlainText(`<body><p>First</p>line one<br>line two</body>`)
	require.NoError(t, err)
	assert.Equal(t, "First\nline one\nline two", got)
}
