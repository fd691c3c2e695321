// Package ia provides the instant answer model.
package ia

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zeroclickinfo/duckgen/cli/repository"
)

// nameRe describes valid instant answer names: words of letters and digits
// separated by single spaces, starting with a letter.
var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*( [A-Za-z0-9]+)*$`)

// InstantAnswer describes the instant answer being scaffolded.
type InstantAnswer struct {
	// Name is a human readable name, e.g. "Is Awesome".
	Name string
	// ID is a lower snake case identifier, e.g. "is_awesome".
	ID string
	// Module is a namespaced module identifier, e.g. "DDG::Goodie::IsAwesome".
	Module string
	// Kind of the instant answer.
	Kind repository.Kind
}

// ValidateName checks an instant answer name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("instant answer name cannot be empty")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("invalid instant answer name '%s': "+
			"only letters, digits and spaces are allowed", name)
	}
	return nil
}

// New creates an instant answer from a user-entered name and repository kind.
func New(name string, kind repository.Kind) (InstantAnswer, error) {
	if err := ValidateName(name); err != nil {
		return InstantAnswer{}, err
	}

	words := strings.Fields(name)

	loweredWords := make([]string, len(words))
	camelWords := make([]string, len(words))
	for i, word := range words {
		loweredWords[i] = strings.ToLower(word)
		camelWords[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	answer := InstantAnswer{
		Name: name,
		ID:   strings.Join(loweredWords, "_"),
		Kind: kind,
	}
	if kindPackage := kind.Package(); kindPackage != "" {
		answer.Module = fmt.Sprintf("DDG::%s::%s",
			kindPackage, strings.Join(camelWords, ""))
	}

	return answer, nil
}
