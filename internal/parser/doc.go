// Package parser turns raw HTML into the parse handle the sync engine
// consumes: a queryable document, its root node, a selector index, and
// extracted style/script/resource lists.
//
// Parsing is charset-aware (chardet detection with UTF-8 fallback) and
// size-capped. The engine treats the resulting handle as opaque; only the
// render and diff layers resolve selectors against it.
package parser
