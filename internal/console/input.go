package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/example/hotel-desk/internal/calendar"
)

// maxTokenBytes bounds a single token. Longer tokens are consumed and
// reported as an InputFormatError.
const maxTokenBytes = 4096

// InputFormatError reports a token that does not parse as the expected kind
// of value.
type InputFormatError struct {
	Input    string
	Expected string
}

// Error implements the error interface.
func (e *InputFormatError) Error() string {
	return fmt.Sprintf("console: %q is not a valid %s", e.Input, e.Expected)
}

func isInputFormatError(err error) bool {
	var fmtErr *InputFormatError
	return errors.As(err, &fmtErr)
}

// tokenReader splits the input into whitespace-delimited tokens.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// next returns the next token, or io.EOF once the input is exhausted. A
// token over maxTokenBytes is skipped whole and returned as an
// *InputFormatError so the following tokens stay aligned.
func (t *tokenReader) next() (string, error) {
	var buf []byte
	tooLong := false

	for {
		r, size, err := t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}

		if unicode.IsSpace(r) {
			if len(buf) == 0 && !tooLong {
				continue
			}
			break
		}
		if tooLong {
			continue
		}
		if len(buf)+size > maxTokenBytes {
			tooLong = true
			continue
		}
		buf = utf8.AppendRune(buf, r)
	}

	switch {
	case tooLong:
		return "", &InputFormatError{Input: fmt.Sprintf("%.32s...", buf), Expected: "token"}
	case len(buf) == 0:
		return "", io.EOF
	}
	return string(buf), nil
}

func parseInt(token string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, &InputFormatError{Input: token, Expected: "number"}
	}
	return value, nil
}

// parseNumber parses token unless reading it already failed with an
// *InputFormatError.
func parseNumber(token string, readErr error) (int, error) {
	if readErr != nil {
		return 0, readErr
	}
	return parseInt(token)
}

func parseDate(token string) (calendar.Date, error) {
	d, err := calendar.ParseDate(token)
	if err != nil {
		return calendar.Date{}, &InputFormatError{Input: token, Expected: "date"}
	}
	return d, nil
}
