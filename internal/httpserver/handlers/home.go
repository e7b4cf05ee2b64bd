package handlers

import (
	"fmt"
	"net/http"

	"github.com/wajeht/bang/internal/httpserver/deps"
)

// home renders the minimal search page. The app is meant to sit behind a
// browser's default-search-engine setting, so this page is mostly a fallback.
func home(w http.ResponseWriter, d deps.Deps) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Bang</title>
</head>
<body>
	<main style="max-width: 40rem; margin: 4rem auto; font-family: sans-serif;">
		<h1>Bang</h1>
		<form action="/" method="get">
			<input type="search" name="q" placeholder="Search or !bang" autofocus
				style="width: 100%%; padding: 0.5rem; font-size: 1rem;">
		</form>
		<p style="color: #666;">%d bangs loaded. Try <code>!g golang</code> or add this page as a custom search engine.</p>
	</main>
</body>
</html>
`, d.Catalog.Len())
}
