// Command enginectl applies a persisted override log to an HTML file and
// writes the patched document.
//
// Usage:
//
//	enginectl -html page.html -overrides edits.json -out patched.html
//
// Override logs may be JSON, YAML, or TOML, optionally gzip-compressed
// (edits.json.gz). Without -out the patched document goes to stdout.
package main
