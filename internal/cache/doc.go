// Package cache clears transient files from the application cache directory.
// Only direct entries whose name contains the configured marker are removed,
// and processing stops at the first error.
package cache
