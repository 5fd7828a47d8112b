package platform

// Package platform contains OS integration glue: revealing paths in the
// native file manager, spawning detached helper processes, and resolving the
// application cache directory.
