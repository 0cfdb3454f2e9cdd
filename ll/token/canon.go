package token

import "fmt"

// UnrecognizedTokenKindError is returned by Canonicalize for a raw kind name
// which is not a member of the enumeration.
type UnrecognizedTokenKindError struct {
	Position int
	Name     string
}

func (e *UnrecognizedTokenKindError) Error() string {
	return fmt.Sprintf("no way to handle tokenizer output %q (token #%d)", e.Name, e.Position)
}

// InvalidTerminalError is returned by Canonicalize if a mapped terminal is not
// part of the grammar's terminal alphabet. It means the kind table and the
// grammar have drifted apart.
type InvalidTerminalError struct {
	Position int
	Kind     Kind
	Terminal string
}

func (e *InvalidTerminalError) Error() string {
	return fmt.Sprintf("token #%d: %s maps to %q, which is not a terminal of the grammar",
		e.Position, e.Kind, e.Terminal)
}

// Canonicalize maps a sequence of raw kind names onto grammar terminals. All
// names are mapped before any terminal is validated against alphabet, so an
// unknown kind is reported even if an earlier token would fail validation.
func Canonicalize(raw []string, alphabet []string) ([]string, error) {
	mapped := make([]Kind, len(raw))
	for i, name := range raw {
		k, ok := Lookup(name)
		if !ok {
			err := &UnrecognizedTokenKindError{Position: i, Name: name}
			tracer().Errorf("%v", err)
			return nil, err
		}
		mapped[i] = k
	}
	return CanonicalizeKinds(mapped, alphabet)
}

// CanonicalizeKinds maps kinds onto grammar terminals, validating every
// terminal against alphabet.
func CanonicalizeKinds(mapped []Kind, alphabet []string) ([]string, error) {
	valid := make(map[string]struct{}, len(alphabet))
	for _, a := range alphabet {
		valid[a] = struct{}{}
	}
	terminals := make([]string, len(mapped))
	for i, k := range mapped {
		if !k.IsValid() {
			err := &UnrecognizedTokenKindError{Position: i, Name: k.String()}
			tracer().Errorf("%v", err)
			return nil, err
		}
		a := k.Terminal()
		if _, ok := valid[a]; !ok {
			err := &InvalidTerminalError{Position: i, Kind: k, Terminal: a}
			tracer().Errorf("%v", err)
			return nil, err
		}
		terminals[i] = a
	}
	tracer().Debugf("canonicalized %d tokens", len(terminals))
	return terminals, nil
}
