package textio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"drills/internal/domain"
)

// Scanner reads tokens from a text stream the way scanf("%d") does: leading
// whitespace, newlines included, is skipped before each integer.
type Scanner struct {
	r *bufio.Reader
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	if br, ok := r.(*bufio.Reader); ok {
		return &Scanner{r: br}
	}
	return &Scanner{r: bufio.NewReader(r)}
}

// Int reads the next optionally signed decimal integer.
func (s *Scanner) Int() (int, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}
	var tok []byte
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if !isDigit(c) && !(len(tok) == 0 && (c == '-' || c == '+')) {
			if err := s.r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		tok = append(tok, c)
	}
	n, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, errors.Wrapf(domain.ErrParse, "not an integer: %q", tok)
	}
	return n, nil
}

// End checks that the stream holds nothing but a line terminator after the
// last token: a newline, a CRLF pair, or end of input.
func (s *Scanner) End() error {
	c, err := s.r.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if c == '\r' {
		c, err = s.r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	if c != '\n' {
		return errors.Wrapf(domain.ErrParse, "trailing %q", c)
	}
	return nil
}

// Line reads up to and including the next newline. End of input terminates
// the last line and is not an error.
func (s *Scanner) Line() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == io.EOF {
		err = nil
	}
	return line, err
}

func (s *Scanner) skipSpace() error {
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return errors.Wrap(domain.ErrParse, "unexpected end of input")
		}
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return s.r.UnreadByte()
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
