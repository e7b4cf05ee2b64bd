package search

import "fmt"

// The search bar is the whole UI, so validation feedback and rate-limit
// notices ship as tiny inline scripts instead of rendered error pages: the
// browser alerts and then navigates (or goes back) on its own.

// redirectScript alerts message (when non-empty) and navigates to url.
func redirectScript(url, message string) string {
	alert := ""
	if message != "" {
		alert = fmt.Sprintf("alert(%q);", message)
	}
	return fmt.Sprintf(`
		<script>
			%s
			window.location.href = %q;
		</script>
	`, alert, url)
}

// goBackScript alerts message and navigates back in browser history.
func goBackScript(message string) string {
	return fmt.Sprintf(`
		<script>
			alert(%q);
			window.history.back();
		</script>
	`, message)
}

// goBackOnlyScript navigates back without a message.
func goBackOnlyScript() string {
	return `
		<script>
			window.history.back();
		</script>
	`
}

// promptScript asks the user for a replacement trigger and rebuilds the
// corrected !add query as the next navigation target. Cancelling the prompt
// goes back instead.
func promptScript(message, bangURL string) string {
	return fmt.Sprintf(`
		<script>
			const bangUrl = %q;
			const newTrigger = prompt(%q);
			if (newTrigger) {
				const domain = window.location.origin;
				window.location.href = `+"`${domain}/?q=!add ${newTrigger} ${bangUrl}`"+`;
			} else {
				window.history.back();
			}
		</script>
	`, bangURL, message)
}
