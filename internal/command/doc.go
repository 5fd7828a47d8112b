package command

// Package command implements the dispatch bridge between the UI layer and
// backend operations. Handlers are registered by name, invoked with JSON
// arguments, and their outcome is folded into a Result whose error is a plain
// string the UI can show as-is.
