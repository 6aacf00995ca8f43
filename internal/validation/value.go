package validation

import "github.com/tidwall/gjson"

// Kind is the JSON kind of a value.
type Kind int

// The possible kinds of a JSON value. Undefined is used for absent or malformed values.
const (
	Undefined Kind = iota
	Object
	Array
	String
	Number
	Bool
	Null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Null:
		return "null"
	default:
		return "undefined"
	}
}

// Value is a JSON value tagged with its kind.
type Value struct {
	kind   Kind
	result gjson.Result
}

// Member is a object property.
type Member struct {
	Name  string
	Value Value
}

// Parse classify a raw JSON. Malformed content results in a Undefined value.
func Parse(raw []byte) Value {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Value{}
	}
	return newValue(gjson.ParseBytes(raw))
}

func newValue(result gjson.Result) Value {
	return Value{kind: kindOf(result), result: result}
}

// Kind return the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Members return the object properties in document order. It's empty if the value is not a
// object.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}

	var members []Member
	v.result.ForEach(func(key, value gjson.Result) bool {
		members = append(members, Member{Name: key.String(), Value: newValue(value)})
		return true
	})
	return members
}

// Elements return the array elements in order. It's empty if the value is not a array.
func (v Value) Elements() []Value {
	if v.kind != Array {
		return nil
	}

	var elements []Value
	v.result.ForEach(func(_, value gjson.Result) bool {
		elements = append(elements, newValue(value))
		return true
	})
	return elements
}

func kindOf(result gjson.Result) Kind {
	if !result.Exists() {
		return Undefined
	}

	switch result.Type {
	case gjson.Null:
		return Null
	case gjson.True, gjson.False:
		return Bool
	case gjson.Number:
		return Number
	case gjson.String:
		return String
	case gjson.JSON:
		if result.IsObject() {
			return Object
		}
		if result.IsArray() {
			return Array
		}
	}
	return Undefined
}
