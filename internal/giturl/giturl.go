package giturl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/raphi011/clg/internal/log"
)

// DefaultBase is the base URL bare "owner/repo" references resolve against.
const DefaultBase = "https://github.com/"

// Kind identifies which input form a reference was recognised as.
type Kind int

const (
	// Absolute is a URL with an explicit scheme.
	Absolute Kind = iota
	// SCPLike is the "[user@]host:path" shorthand.
	SCPLike
	// Shorthand is a path relative to DefaultBase.
	Shorthand
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute URI"
	case SCPLike:
		return "scp-like URI"
	case Shorthand:
		return "GitHub.com URI"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError reports a repository reference that cannot be turned into a URL.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid repository URL %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize parses input into a canonical absolute URL and logs the form
// it was recognised as.
func Normalize(ctx context.Context, input string) (*url.URL, error) {
	u, kind, err := Classify(input)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("parsed repository URL", "input", input, "kind", kind, "url", u)
	return u, nil
}

// Classify parses input into a canonical absolute URL and reports which
// form it was recognised as. It has no side effects.
func Classify(input string) (*url.URL, Kind, error) {
	u, err := url.Parse(input)
	if err == nil && u.Scheme != "" && u.Opaque == "" {
		return u, Absolute, nil
	}

	// "host:path" parses as scheme "host" with an opaque part. Git reads it
	// as scp-like, so only hierarchical URLs count as absolute.
	if err != nil && hasScheme(input) {
		return nil, Absolute, &ParseError{Input: input, Err: err}
	}

	if colon := strings.IndexByte(input, ':'); colon >= 0 {
		slash := strings.IndexByte(input, '/')
		if slash < 0 || colon < slash {
			u, err := parseSCPLike(input, colon)
			return u, SCPLike, err
		}
	}

	if err != nil {
		return nil, Shorthand, &ParseError{Input: input, Err: err}
	}
	base, err := url.Parse(DefaultBase)
	if err != nil {
		return nil, Shorthand, &ParseError{Input: DefaultBase, Err: err}
	}
	return base.ResolveReference(u), Shorthand, nil
}

func parseSCPLike(input string, colon int) (*url.URL, error) {
	userAndHost := input[:colon]
	path := input[colon+1:]
	u, err := url.Parse("ssh://" + userAndHost + "/" + path)
	if err != nil {
		return nil, &ParseError{Input: input, Err: err}
	}
	return u, nil
}

// hasScheme reports whether s starts with a syntactically valid
// "scheme:" prefix (RFC 3986 section 3.1).
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}
