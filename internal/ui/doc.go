package ui

// Package ui contains the Fyne-based window that drives the backend commands.
// It only talks to the command bridge and the capability plugins; all UI
// strings are localized via Localization.
