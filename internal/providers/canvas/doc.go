// Package canvas exposes the override and synchronization engine as a
// tool provider: surface initialization, root binding, shape geometry
// sync, override application, restore, validation, and recovery.
package canvas
