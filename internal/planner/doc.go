// Package planner handles the planning phase of batch rename operations.
//
// The planner turns a list of candidate files into a deterministic list of
// planned renames and verifies that executing them cannot silently destroy
// data. It never touches the filesystem: candidates and the set of
// pre-existing files are supplied by the caller.
//
// Key responsibilities:
//   - Apply a per-path Transform to every candidate (Plan)
//   - Provide the stock transforms (ToRoot, StripPrefix)
//   - Detect overwrite hazards between planned tasks and against untouched
//     files (ConflictChecker)
package planner
