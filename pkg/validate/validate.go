// Package validate classifies untrusted dependency names and option
// tokens before they are allowed anywhere near a shell. It is a
// syntactic shell-safety filter, not a package-name correctness filter:
// registry existence and scope well-formedness are out of scope.
//
// Known laxity: names like "../evil" or "@scope/../evil" pass the name
// filter because '.' and '/' are individually permitted characters.
// This matches the documented behavior of the public API and is pinned
// by regression tests; tightening it would be a breaking change.
package validate

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/depot/pkg/errors"
)

var (
	// namePattern admits registry names, scoped names, and path-ish
	// segments. One or more characters; the empty name is rejected.
	namePattern = regexp.MustCompile(`^[A-Za-z0-9@._/-]+$`)

	// shortFlagPattern matches "-x" style flags, any letter case.
	shortFlagPattern = regexp.MustCompile(`^-[A-Za-z]+$`)

	// longFlagPattern matches "--save-dev" style flags. Lowercase only,
	// single hyphens between letter groups.
	longFlagPattern = regexp.MustCompile(`^--[a-z]+(-[a-z]+)*$`)
)

// shellMetacharacters never appear in an accepted token, whatever its
// shape.
const shellMetacharacters = ";&|$`<>\\*?(){}[]~"

// Name reports whether a dependency identifier is acceptable. Accept
// iff the name is non-empty and every character is one of
// [A-Za-z0-9@._/-].
func Name(name string) error {
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidName, "invalid dependency name: %q", name).
			WithDetail("name", name)
	}
	return nil
}

// Token reports whether a single option token is acceptable. A token
// must both avoid shell metacharacters and match a flag shape: short
// ("-S", letters in any case) or long ("--save-dev", lowercase letter
// groups joined by single hyphens). Mixed-case long flags are rejected.
func Token(token string) error {
	if strings.ContainsAny(token, shellMetacharacters) {
		return errors.Newf(errors.ErrInvalidOptions, "option token %q contains a shell metacharacter", token).
			WithDetail("token", token)
	}
	if shortFlagPattern.MatchString(token) || longFlagPattern.MatchString(token) {
		return nil
	}
	return errors.Newf(errors.ErrInvalidOptions, "option token %q is not a valid flag", token).
		WithDetail("token", token)
}

// Tokenize normalizes caller-supplied option input into single tokens.
// Each element may carry several whitespace-separated tokens (the
// string form of the public API); elements are split, emptied entries
// dropped, and the result flattened in order. A nil or all-blank input
// yields a nil slice, which is "no options supplied" and distinct from
// a rejected option list.
func Tokenize(raw []string) []string {
	var tokens []string
	for _, element := range raw {
		tokens = append(tokens, strings.Fields(element)...)
	}
	return tokens
}

// Options tokenizes raw option input and validates every resulting
// token. On success it returns the normalized token list; on the first
// bad token it returns a coded error naming that token. The (nil, nil)
// return means no options were supplied; an error return means options
// were supplied and rejected. Callers must not conflate the two.
func Options(raw []string) ([]string, error) {
	tokens := Tokenize(raw)
	for _, token := range tokens {
		if err := Token(token); err != nil {
			return nil, err
		}
	}
	return tokens, nil
}
