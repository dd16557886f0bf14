// Package diff applies merged element overrides onto a render target.
//
// Application is partial-failure tolerant: an override whose selector
// matches nothing is logged and skipped, never aborting the rest of the
// batch. Per matched node, fields apply in a fixed order — attributes,
// then styles, then content — and a full-subtree html replacement
// supersedes a text write when both are present. Geometry fields are
// ignored here; the sync engine writes those directly onto the bound root.
package diff
