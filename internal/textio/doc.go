// Package textio holds the stdin/stdout conventions shared by the drills
// programs: a strict integer scanner, line reads, the n/a sentinel and
// space-joined output.
package textio
