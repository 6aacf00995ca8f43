// Package validation checks if a JSON payload can replace a previously stored one without breaking
// its structure. Only the first level is inspected: objects must have the same properties with the
// same kinds and arrays are checked element by element against the first stored element.
package validation

import (
	"fmt"
	"strings"
)

const (
	msgInputNotArray   = "Input Json data definition is not an Array."
	msgStoredNotArray  = "Stored data definition is not an Array."
	msgInputArrayEmpty = "Input data array is empty."
	msgInputNotObject  = "Input Json data definition is not an Object."
	msgStoredNotObject = "Stored data definition is not an Object."
)

// Outcome is the result of a structural comparison. The zero value is a valid outcome.
type Outcome struct {
	Errors []string
}

// Valid indicates if no mismatch was found.
func (o Outcome) Valid() bool { return len(o.Errors) == 0 }

// Message return all the mismatches joined by a new line.
func (o Outcome) Message() string { return strings.Join(o.Errors, "\n") }

// Invalid creates a outcome with the given mismatches.
func Invalid(errors ...string) Outcome { return Outcome{Errors: errors} }

// Combine two outcomes. The result is valid only if both are valid and the errors are
// concatenated preserving the order.
func Combine(a, b Outcome) Outcome {
	if len(a.Errors) == 0 {
		return b
	}
	if len(b.Errors) == 0 {
		return a
	}

	errors := make([]string, 0, len(a.Errors)+len(b.Errors))
	errors = append(errors, a.Errors...)
	errors = append(errors, b.Errors...)
	return Outcome{Errors: errors}
}

// Validate check if input is structurally compatible with source. Arrays are validated as arrays,
// any other kind is validated as a object.
func Validate(input, source []byte) Outcome {
	in, src := Parse(input), Parse(source)
	if in.Kind() == Array {
		return ValidateArray(in, src)
	}
	return ValidateObject(in, src)
}

// ValidateArray check every input element against the first source element. A empty source has
// no element to compare against, so any non empty input is accepted. The validation stops at the
// first invalid element.
func ValidateArray(input, source Value) Outcome {
	if input.Kind() != Array {
		return Invalid(msgInputNotArray)
	}

	if source.Kind() != Array {
		return Invalid(msgStoredNotArray)
	}

	elements := input.Elements()
	if len(elements) == 0 {
		return Invalid(msgInputArrayEmpty)
	}

	reference := source.Elements()
	if len(reference) == 0 {
		return Outcome{}
	}

	for _, element := range elements {
		if outcome := ValidateObject(element, reference[0]); !outcome.Valid() {
			return outcome
		}
	}
	return Outcome{}
}

// ValidateObject compares the properties of both objects in both directions. Nested objects and
// arrays are not inspected, only their kind is compared.
func ValidateObject(input, source Value) Outcome {
	if input.Kind() != Object {
		return Invalid(msgInputNotObject)
	}

	if source.Kind() != Object {
		return Invalid(msgStoredNotObject)
	}

	inputMembers, sourceMembers := input.Members(), source.Members()
	return Combine(
		checkInputAgainstSource(inputMembers, sourceMembers),
		checkSourceAgainstInput(inputMembers, sourceMembers),
	)
}

func checkInputAgainstSource(input, source []Member) Outcome {
	index := indexMembers(source)

	var outcome Outcome
	for _, member := range input {
		stored, ok := index[member.Name]
		switch {
		case !ok:
			outcome = Combine(outcome, Invalid(fmt.Sprintf(
				"Json property '%s' is missing from the stored data definition.", member.Name,
			)))
		case stored.Kind() != member.Value.Kind():
			outcome = Combine(outcome, Invalid(fmt.Sprintf(
				"Json property %s has a differing data type.", member.Name,
			)))
		}
	}
	return outcome
}

func checkSourceAgainstInput(input, source []Member) Outcome {
	index := indexMembers(input)

	var outcome Outcome
	for _, member := range source {
		if _, ok := index[member.Name]; !ok {
			outcome = Combine(outcome, Invalid(fmt.Sprintf(
				"Json property '%s' is missing from the input model.", member.Name,
			)))
		}
	}
	return outcome
}

func indexMembers(members []Member) map[string]Value {
	index := make(map[string]Value, len(members))
	for _, member := range members {
		if _, ok := index[member.Name]; ok {
			continue
		}
		index[member.Name] = member.Value
	}
	return index
}
