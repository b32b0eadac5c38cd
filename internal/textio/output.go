package textio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NA is the sentinel printed in place of a result that cannot be produced.
const NA = "n/a"

// WriteNA prints the sentinel line.
func WriteNA(w io.Writer) error {
	_, err := fmt.Fprintln(w, NA)
	return err
}

// WriteInts prints xs on one line separated by single spaces.
func WriteInts(w io.Writer, xs []int) error {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
