package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category groups errors by the subsystem that raised them.
type Category string

const (
	CategoryMerge   Category = "merge"
	CategoryRender  Category = "render"
	CategoryConfig  Category = "config"
	CategoryFixture Category = "fixture"
	CategoryGallery Category = "gallery"
	CategoryCLI     Category = "cli"
)

// Location points into a file. Line and Column are 1-based; zero means
// unknown.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l *Location) String() string {
	switch {
	case l == nil:
		return ""
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Error is a coded error. Code and Category come from the registry; the
// remaining fields are filled in by the With* builders at the failure
// site and rendered by Format.
type Error struct {
	Code     string
	Category Category
	Message  string
	Detail   string

	Location *Location
	// Context holds the source lines around Location, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	Suggestion string
	Example    string
	Wrapped    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is matches any *Error carrying the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation records where the error happened and captures up to five
// lines of the file around it.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.ContextStart, e.Context = sourceWindow(file, line, 2)
	return e
}

func (e *Error) WithSuggestion(s string) *Error { e.Suggestion = s; return e }
func (e *Error) WithExample(ex string) *Error   { e.Example = ex; return e }
func (e *Error) WithDetail(d string) *Error     { e.Detail = d; return e }
func (e *Error) Wrap(err error) *Error          { e.Wrapped = err; return e }

func (e *Error) WithDetailf(format string, args ...any) *Error {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// sourceWindow returns the lines line-radius through line+radius of file
// and the number of the first one. Unreadable files yield no lines.
func sourceWindow(file string, line, radius int) (int, []string) {
	if line <= 0 {
		return 0, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return 0, nil
	}
	defer f.Close()

	first := max(1, line-radius)
	var lines []string
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan() && n <= line+radius; n++ {
		if n >= first {
			lines = append(lines, sc.Text())
		}
	}
	if len(lines) == 0 {
		return 0, nil
	}
	return first, lines
}

// New returns a fresh Error for a registered code. Unregistered codes
// produce an "Unknown error" carrying the code.
func New(code string) *Error {
	def, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:     code,
		Category: def.Category,
		Message:  def.Message,
		Detail:   def.Detail,
	}
}

// Newf returns an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// FromError returns the *Error inside err if there is one, otherwise a
// new Error with code wrapping err.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &Error{Code: code})
}
