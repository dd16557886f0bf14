// Package override defines the serializable element-override record, the
// per-selector append-only store, and the merge fold that collapses a
// selector's log into one effective override.
//
// Merge Contract:
//   - Scalar fields (text, html): last entry in application order wins,
//     regardless of timestamp values.
//   - Map fields (styles, attributes): key-wise union, later entries
//     overwrite only the keys they set.
//   - timestamp: taken from the last entry in the bucket.
//   - aiGenerated: true if any entry set it.
//   - original: per field, the earliest recorded baseline is preserved.
//
// The package also provides a codec for persisting override logs as JSON,
// YAML, or TOML, with transparent gzip by file extension.
package override
