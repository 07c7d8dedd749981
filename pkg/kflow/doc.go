// Package kflow runs a fixed set of prioritized hooks over a typed context,
// choosing which hooks apply by a bitmask path selector.
//
// Hooks are registered once on a Builder, each tagged with the paths it
// belongs to. Build freezes them into a Pipeline sorted by priority, and the
// same Pipeline is then executed against any path:
// - PathMask/Of/Bit/Union: declare and combine paths
// - PathNames: map names to bits for config driven selection
// - Builder.Register/RegisterTry: add pure or fallible transforms
// - Builder.Build: stable sort by priority into an immutable Pipeline
// - Pipeline.Execute/Run/MustExecute: fold the context through matching hooks
//
// Equal priorities run in registration order. A hook with a zero mask never
// runs.
package kflow
