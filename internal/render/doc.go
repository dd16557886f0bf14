// Package render defines the injected render-target interface the engine
// writes into, with two implementations: DocumentTarget over a parsed HTML
// document (CSS and XPath selector resolution) and MemoryTarget, a headless
// in-memory surface for tests and non-browser hosts.
package render
