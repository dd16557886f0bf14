// Package sync orchestrates per-surface override state: it binds render
// targets, mirrors host shape geometry onto the DOM, delegates override
// application to the store and diff engine, and implements history,
// restore-to-version, and error recovery.
//
// Surface Lifecycle:
//
//	idle -> syncing -> synced -> error -> synced (via Recover)
//
// The error state is never terminal; a surface persists until ClearAll.
// Every operation on an unknown surface id other than InitSync is a safe
// no-op, because canvas surfaces can be deleted concurrently with
// in-flight calls.
package sync
