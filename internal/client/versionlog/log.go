// Package versionlog keeps the append-only sequence of generation
// snapshots for one day, with a navigable cursor.
//
// The log never reorders or truncates entries: "regenerate" appends a
// brand-new complete Generation rather than patching an old one. Side
// effects (such as refreshing publish status after the cursor moves) are
// left to the caller.
package versionlog

import "github.com/daycast-app/daycast/internal/client/models"

// Log is the cursor-addressed generation history for one day.
// The zero value is an empty log.
type Log struct {
	generations []models.Generation
	cursor      int
}

func New() *Log {
	return &Log{cursor: -1}
}

// Load replaces the log contents. The cursor moves to the last entry, or
// becomes meaningless when generations is empty.
func (l *Log) Load(generations []models.Generation) {
	l.generations = append([]models.Generation(nil), generations...)
	l.cursor = len(l.generations) - 1
}

// Append pushes a generation to the end and moves the cursor onto it.
func (l *Log) Append(generation models.Generation) {
	l.generations = append(l.generations, generation)
	l.cursor = len(l.generations) - 1
}

// Navigate moves the cursor by delta, clamped to the valid range.
// A no-op on an empty log or at either boundary.
func (l *Log) Navigate(delta int) {
	if len(l.generations) == 0 {
		return
	}
	next := l.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(l.generations)-1 {
		next = len(l.generations) - 1
	}
	l.cursor = next
}

// Current returns the generation under the cursor, or false when the log
// is empty.
func (l *Log) Current() (models.Generation, bool) {
	if len(l.generations) == 0 {
		return models.Generation{}, false
	}
	return l.generations[l.cursor], true
}

// At returns the generation at position i, or false when out of range.
func (l *Log) At(i int) (models.Generation, bool) {
	if i < 0 || i >= len(l.generations) {
		return models.Generation{}, false
	}
	return l.generations[i], true
}

// Cursor returns the current position, or -1 when the log is empty.
func (l *Log) Cursor() int {
	if len(l.generations) == 0 {
		return -1
	}
	return l.cursor
}

func (l *Log) Len() int {
	return len(l.generations)
}
