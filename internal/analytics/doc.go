// Package analytics derives challenge metrics (day numbers, completion
// scores, streaks and aggregates) from records that have already been loaded
// from storage. Every function is pure: it never mutates its input, performs
// no I/O and degrades to zero values on empty input.
package analytics
