package extract_test

import (
	"testing"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Markdown(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as markdown", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Routing - Laravel</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Routing</h1>
<p>The most basic Laravel routes accept a URI and a closure.</p>
<pre><code>Route::get('/greeting', function () {
    return 'Hello World';
});</code></pre>
</article>
<footer>Copyright Laravel</footer>
</body>
</html>`

		ext := extract.NewExtractor()
		_, md, err := ext.Markdown(html)

		require.NoError(t, err)
		assert.Contains(t, md, "most basic Laravel routes")
		assert.Contains(t, md, "Route::get")
	})

	t.Run("strips navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/docs/12.x/installation">Installation</a></li>
<li><a href="/docs/12.x/routing">Routing</a></li>
</ul>
</nav>
<main>
<h1>Middleware</h1>
<p>Middleware provide a convenient mechanism for inspecting requests.</p>
</main>
</body>
</html>`

		ext := extract.NewExtractor()
		_, md, err := ext.Markdown(html)

		require.NoError(t, err)
		assert.Contains(t, md, "convenient mechanism")
		assert.NotContains(t, md, "main-nav")
	})

	t.Run("returns the page title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Validation - Laravel</title>
<meta property="og:title" content="Validation">
</head>
<body>
<article>
<h1>Validation</h1>
<p>Laravel provides several different approaches to validate your application's incoming data.</p>
</article>
</body>
</html>`

		ext := extract.NewExtractor()
		title, _, err := ext.Markdown(html)

		require.NoError(t, err)
		assert.NotEmpty(t, title)
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		_, _, err := ext.Markdown("   ")

		require.Error(t, err)
		assert.Equal(t, laradoc.EINVALID, laradoc.ErrorCode(err))
	})
}
