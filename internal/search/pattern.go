package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Syntax selects how a search pattern is interpreted.
type Syntax string

const (
	SyntaxRegex Syntax = "regex"
	SyntaxGlob  Syntax = "glob"
	SyntaxFuzzy Syntax = "fuzzy"
)

// ParseSyntax validates a syntax name from configuration.
func ParseSyntax(name string) (Syntax, error) {
	switch s := Syntax(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return SyntaxRegex, nil
	case SyntaxRegex, SyntaxGlob, SyntaxFuzzy:
		return s, nil
	default:
		return "", fmt.Errorf("unknown search syntax %q", name)
	}
}

// Matcher reports whether an entry name matches a compiled pattern.
type Matcher interface {
	Match(name string) bool
	Pattern() string
}

// Compile builds a Matcher for pattern in the given syntax.
func Compile(pattern string, syntax Syntax, caseSensitive bool) (Matcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}

	switch syntax {
	case SyntaxRegex, "":
		expr := pattern
		if !caseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		return regexMatcher{pattern: pattern, re: re}, nil

	case SyntaxGlob:
		source := pattern
		if !caseSensitive {
			source = strings.ToLower(source)
		}
		g, err := glob.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		return globMatcher{pattern: pattern, g: g, fold: !caseSensitive}, nil

	case SyntaxFuzzy:
		return fuzzyMatcher{pattern: pattern, fold: !caseSensitive}, nil
	}

	return nil, fmt.Errorf("unknown search syntax %q", syntax)
}

type regexMatcher struct {
	pattern string
	re      *regexp.Regexp
}

func (m regexMatcher) Match(name string) bool { return m.re.MatchString(name) }
func (m regexMatcher) Pattern() string        { return m.pattern }

type globMatcher struct {
	pattern string
	g       glob.Glob
	fold    bool
}

func (m globMatcher) Match(name string) bool {
	if m.fold {
		name = strings.ToLower(name)
	}
	return m.g.Match(name)
}

func (m globMatcher) Pattern() string { return m.pattern }

type fuzzyMatcher struct {
	pattern string
	fold    bool
}

func (m fuzzyMatcher) Match(name string) bool {
	if m.fold {
		return fuzzy.MatchFold(m.pattern, name)
	}
	return fuzzy.Match(m.pattern, name)
}

func (m fuzzyMatcher) Pattern() string { return m.pattern }
