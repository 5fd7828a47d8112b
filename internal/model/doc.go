package model

// Package model defines the data passed across the command bridge: command
// invocations with their lifecycle status, and the report produced by a
// cache clear. Structures are plain values so the UI can render them directly.
