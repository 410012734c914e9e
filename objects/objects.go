/*
File    : go-lotus/objects/objects.go
Project : Lotus Interpreter
*/

// Package objects defines the runtime value model of the Lotus interpreter:
// the tagged object types produced by evaluation, the insertion-ordered
// dictionary, and the builtin function plumbing.
package objects

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/multipixels/go-lotus/lexer"
)

// LotusType tags a runtime value. Atomic and container tags double as the
// type names used in user-facing error messages; the internal return,
// function, error, and builtin tags keep their historical uppercase names,
// while the break and continue tags are lowercase.
type LotusType string

const (
	IntegerType    LotusType = "integer"
	FloatType      LotusType = "float"
	BooleanType    LotusType = "boolean"
	CharacterType  LotusType = "character"
	CollectionType LotusType = "collection"
	DictionaryType LotusType = "dictionary"
	StringType     LotusType = "string"
	NullType       LotusType = "null"
	ReturnType     LotusType = "RETURN"
	FunctionType   LotusType = "FUNCTION"
	ErrorType      LotusType = "ERROR"
	BuiltinType    LotusType = "BUILTIN_FUNCTION"
	BreakType      LotusType = "break"
	ContinueType   LotusType = "continue"
)

// TokenTypeToLotusType maps type keyword tokens to the runtime type they
// declare. Used by declaration and signature checks in the evaluator.
var TokenTypeToLotusType = map[lexer.TokenType]LotusType{
	lexer.INTEGER_TYPE:    IntegerType,
	lexer.FLOAT_TYPE:      FloatType,
	lexer.BOOLEAN_TYPE:    BooleanType,
	lexer.CHARACTER_TYPE:  CharacterType,
	lexer.COLLECTION_TYPE: CollectionType,
	lexer.DICTIONARY_TYPE: DictionaryType,
	lexer.STRING_TYPE:     StringType,
}

// LotusObject is the interface implemented by every runtime value.
// GetType returns the value's type tag; Inspect returns its display string.
type LotusObject interface {
	GetType() LotusType
	Inspect() string
}

// HashKey is the comparable identity of an atomic value, used to key
// dictionary entries.
type HashKey struct {
	Type  LotusType
	Value uint64
}

// Hashable is implemented by the atomic types permitted as dictionary keys
// (integer, float, boolean, character).
type Hashable interface {
	HashKey() HashKey
}

// Integer is a 32-bit two's-complement integer. Overflow wraps.
type Integer struct {
	Value int32
}

func (i *Integer) GetType() LotusType { return IntegerType }
func (i *Integer) Inspect() string    { return strconv.FormatInt(int64(i.Value), 10) }
func (i *Integer) HashKey() HashKey {
	return HashKey{Type: IntegerType, Value: uint64(uint32(i.Value))}
}

// Float is an IEEE-754 single-precision float. Inspect uses the shortest
// round-trip decimal form.
type Float struct {
	Value float32
}

func (f *Float) GetType() LotusType { return FloatType }
func (f *Float) Inspect() string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}
func (f *Float) HashKey() HashKey {
	return HashKey{Type: FloatType, Value: uint64(math.Float32bits(f.Value))}
}

// Boolean is true or false.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() LotusType { return BooleanType }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) HashKey() HashKey {
	value := uint64(0)
	if b.Value {
		value = 1
	}
	return HashKey{Type: BooleanType, Value: value}
}

// Character is a single code unit.
type Character struct {
	Value byte
}

func (c *Character) GetType() LotusType { return CharacterType }
func (c *Character) Inspect() string    { return string(c.Value) }
func (c *Character) HashKey() HashKey {
	return HashKey{Type: CharacterType, Value: uint64(c.Value)}
}

// Collection is an ordered, homogeneously typed sequence. An empty literal
// carries the NullType sentinel until its element type is determined.
type Collection struct {
	ElementType LotusType
	Values      []LotusObject
}

func (c *Collection) GetType() LotusType { return CollectionType }
func (c *Collection) Inspect() string {
	var output strings.Builder
	output.WriteString("[")
	for i, value := range c.Values {
		output.WriteString(value.Inspect())
		if i != len(c.Values)-1 {
			output.WriteString(", ")
		}
	}
	output.WriteString("]")
	return output.String()
}

// DictionaryEntry is one key-value pair of a dictionary, in insertion order.
type DictionaryEntry struct {
	Key   LotusObject
	Value LotusObject
}

// Dictionary is an insertion-ordered keyed container. Entries holds the
// pairs in insertion order; a hash index over the atomic keys provides O(1)
// lookup. Empty literals carry NullType sentinels for both types.
type Dictionary struct {
	KeyType   LotusType
	ValueType LotusType
	Entries   []*DictionaryEntry

	index map[HashKey]int
}

// NewDictionary creates an empty dictionary with undetermined key and value
// types.
func NewDictionary() *Dictionary {
	return &Dictionary{
		KeyType:   NullType,
		ValueType: NullType,
		index:     make(map[HashKey]int),
	}
}

func (d *Dictionary) GetType() LotusType { return DictionaryType }
func (d *Dictionary) Inspect() string {
	var output strings.Builder
	output.WriteString("{")
	for i, entry := range d.Entries {
		output.WriteString(entry.Key.Inspect())
		output.WriteString(": ")
		output.WriteString(entry.Value.Inspect())
		if i != len(d.Entries)-1 {
			output.WriteString(", ")
		}
	}
	output.WriteString("}")
	return output.String()
}

// Get returns the value stored under the given key.
func (d *Dictionary) Get(key LotusObject) (LotusObject, bool) {
	hashable, ok := key.(Hashable)
	if !ok {
		return nil, false
	}
	position, ok := d.lookup(hashable.HashKey())
	if !ok {
		return nil, false
	}
	return d.Entries[position].Value, true
}

// Has reports whether the given key is present.
func (d *Dictionary) Has(key LotusObject) bool {
	_, ok := d.Get(key)
	return ok
}

// Set inserts the key if absent or overwrites its value if present,
// preserving the original insertion position.
func (d *Dictionary) Set(key, value LotusObject) {
	hashable, ok := key.(Hashable)
	if !ok {
		return
	}
	hashKey := hashable.HashKey()
	if position, ok := d.lookup(hashKey); ok {
		d.Entries[position].Value = value
		return
	}
	if d.index == nil {
		d.index = make(map[HashKey]int)
	}
	d.index[hashKey] = len(d.Entries)
	d.Entries = append(d.Entries, &DictionaryEntry{Key: key, Value: value})
}

// Size returns the number of entries.
func (d *Dictionary) Size() int {
	return len(d.Entries)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []LotusObject {
	keys := make([]LotusObject, 0, len(d.Entries))
	for _, entry := range d.Entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Values returns the values in insertion order.
func (d *Dictionary) Values() []LotusObject {
	values := make([]LotusObject, 0, len(d.Entries))
	for _, entry := range d.Entries {
		values = append(values, entry.Value)
	}
	return values
}

func (d *Dictionary) lookup(hashKey HashKey) (int, bool) {
	if d.index == nil {
		return 0, false
	}
	position, ok := d.index[hashKey]
	return position, ok
}

// String is an immutable sequence of characters.
type String struct {
	Value string
}

func (s *String) GetType() LotusType { return StringType }
func (s *String) Inspect() string    { return s.Value }

// Null is the absence of a value.
type Null struct{}

func (n *Null) GetType() LotusType { return NullType }
func (n *Null) Inspect() string    { return "null" }

// Return wraps a value produced by a return statement while it bubbles up
// to the enclosing function call or the program root.
type Return struct {
	Value LotusObject
}

func (r *Return) GetType() LotusType { return ReturnType }
func (r *Return) Inspect() string    { return r.Value.Inspect() }

// Break is the sentinel produced by a break statement.
type Break struct{}

func (b *Break) GetType() LotusType { return BreakType }
func (b *Break) Inspect() string    { return "break" }

// Continue is the sentinel produced by a continue statement.
type Continue struct{}

func (c *Continue) GetType() LotusType { return ContinueType }
func (c *Continue) Inspect() string    { return "continue" }

// Error is a first-class runtime error. It short-circuits evaluation
// upward; its message strings are part of the interpreter's contract.
type Error struct {
	Message string
}

func (e *Error) GetType() LotusType { return ErrorType }
func (e *Error) Inspect() string    { return "Evaluation Error: " + e.Message }

// NewError builds an Error from a format string.
func NewError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// Singleton instances for the valueless objects.
var (
	NULL_OBJECT     = &Null{}
	TRUE_OBJECT     = &Boolean{Value: true}
	FALSE_OBJECT    = &Boolean{Value: false}
	BREAK_OBJECT    = &Break{}
	CONTINUE_OBJECT = &Continue{}
)

// GetBoolean returns the shared Boolean object for the given condition.
func GetBoolean(condition bool) *Boolean {
	if condition {
		return TRUE_OBJECT
	}
	return FALSE_OBJECT
}
