// Package domain defines the sentinel errors and contracts shared by the
// drills programs. It contains plain types and interfaces only.
package domain
