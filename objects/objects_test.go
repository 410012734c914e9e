/*
File    : go-lotus/objects/objects_test.go
Project : Lotus Interpreter
*/
package objects

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInspect verifies the display string of every value kind
func TestInspect(t *testing.T) {
	collection := &Collection{
		ElementType: IntegerType,
		Values:      []LotusObject{&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3}},
	}

	dictionary := NewDictionary()
	dictionary.KeyType = CharacterType
	dictionary.ValueType = IntegerType
	dictionary.Set(&Character{Value: 'b'}, &Integer{Value: 2})
	dictionary.Set(&Character{Value: 'a'}, &Integer{Value: 1})

	tests := []struct {
		obj      LotusObject
		expected string
	}{
		{&Integer{Value: 5}, "5"},
		{&Integer{Value: -12}, "-12"},
		{&Float{Value: 5.5}, "5.5"},
		{&Float{Value: -0.25}, "-0.25"},
		{TRUE_OBJECT, "true"},
		{FALSE_OBJECT, "false"},
		{&Character{Value: 'x'}, "x"},
		{collection, "[1, 2, 3]"},
		// Insertion order, not key order
		{dictionary, "{b: 2, a: 1}"},
		{&String{Value: "raw text"}, "raw text"},
		{NULL_OBJECT, "null"},
		{&Error{Message: "something broke."}, "Evaluation Error: something broke."},
		{&Builtin{}, "builtin function"},
		{BREAK_OBJECT, "break"},
		{CONTINUE_OBJECT, "continue"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.obj.Inspect())
	}
}

// TestReturnInspect verifies Return forwards its wrapped value's display
func TestReturnInspect(t *testing.T) {
	wrapped := &Return{Value: &Integer{Value: 42}}
	assert.Equal(t, "42", wrapped.Inspect())
	assert.Equal(t, ReturnType, wrapped.GetType())
}

// TestHashKeys verifies equal atomic values share a key and distinct
// values do not
func TestHashKeys(t *testing.T) {
	assert.Equal(t, (&Integer{Value: 7}).HashKey(), (&Integer{Value: 7}).HashKey())
	assert.NotEqual(t, (&Integer{Value: 7}).HashKey(), (&Integer{Value: 8}).HashKey())

	assert.Equal(t, (&Float{Value: 1.5}).HashKey(), (&Float{Value: 1.5}).HashKey())
	assert.NotEqual(t, (&Float{Value: 1.5}).HashKey(), (&Float{Value: 1.25}).HashKey())

	assert.Equal(t, (&Character{Value: 'a'}).HashKey(), (&Character{Value: 'a'}).HashKey())
	assert.NotEqual(t, (&Character{Value: 'a'}).HashKey(), (&Character{Value: 'b'}).HashKey())

	assert.Equal(t, TRUE_OBJECT.HashKey(), (&Boolean{Value: true}).HashKey())
	assert.NotEqual(t, TRUE_OBJECT.HashKey(), FALSE_OBJECT.HashKey())

	// Same bits, different types must not collide
	assert.NotEqual(t, (&Integer{Value: 97}).HashKey(), (&Character{Value: 'a'}).HashKey())
}

// TestDictionaryOrdering verifies insertion order is preserved through
// sets, overwrites, and the keys/values views
func TestDictionaryOrdering(t *testing.T) {
	dictionary := NewDictionary()
	dictionary.KeyType = IntegerType
	dictionary.ValueType = CharacterType

	dictionary.Set(&Integer{Value: 9}, &Character{Value: 'a'})
	dictionary.Set(&Integer{Value: 3}, &Character{Value: 'b'})
	dictionary.Set(&Integer{Value: 7}, &Character{Value: 'c'})

	// Overwriting keeps the original position
	dictionary.Set(&Integer{Value: 3}, &Character{Value: 'z'})

	assert.Equal(t, 3, dictionary.Size())

	keys := dictionary.Keys()
	expectedKeys := []int32{9, 3, 7}
	for i, key := range keys {
		assert.Equal(t, expectedKeys[i], key.(*Integer).Value)
	}

	values := dictionary.Values()
	expectedValues := []byte{'a', 'z', 'c'}
	for i, value := range values {
		assert.Equal(t, expectedValues[i], value.(*Character).Value)
	}

	stored, ok := dictionary.Get(&Integer{Value: 3})
	assert.True(t, ok)
	assert.Equal(t, byte('z'), stored.(*Character).Value)

	_, ok = dictionary.Get(&Integer{Value: 4})
	assert.False(t, ok)
	assert.True(t, dictionary.Has(&Integer{Value: 9}))
}

// TestMemberResolution verifies the per-type member tables
func TestMemberResolution(t *testing.T) {
	str := &String{Value: "hello"}
	length, ok := Member(str, "length")
	assert.True(t, ok)
	assert.Equal(t, int32(5), length.(*Integer).Value)

	collection := &Collection{ElementType: IntegerType, Values: []LotusObject{&Integer{Value: 1}}}
	size, ok := Member(collection, "size")
	assert.True(t, ok)
	assert.Equal(t, int32(1), size.(*Integer).Value)

	appendMember, ok := Member(collection, "append")
	assert.True(t, ok)
	bound := appendMember.(*Builtin)
	assert.Equal(t, collection, bound.Receiver)

	_, ok = Member(str, "size")
	assert.False(t, ok)
	_, ok = Member(&Integer{Value: 1}, "length")
	assert.False(t, ok)
}

// TestLogBuiltin verifies log output formatting and its Null result
func TestLogBuiltin(t *testing.T) {
	var buffer bytes.Buffer

	result := LogBuiltin(&buffer, []LotusObject{
		&String{Value: "x is"},
		&Integer{Value: 7},
		&Float{Value: 1.5},
	}, nil)

	assert.Equal(t, NULL_OBJECT, result)
	assert.Equal(t, "x is 7 1.5\n", buffer.String())
}

// TestCollectionBuiltins exercises append, pop, and insert through the
// bound member values
func TestCollectionBuiltins(t *testing.T) {
	collection := &Collection{ElementType: NullType}

	appendFn, _ := Member(collection, "append")
	result := appendFn.(*Builtin).Fn(nil, []LotusObject{&Integer{Value: 1}}, collection)
	assert.Equal(t, NULL_OBJECT, result)
	assert.Equal(t, IntegerType, collection.ElementType)
	assert.Len(t, collection.Values, 1)

	// Type mismatch once the element type is known
	result = appendFn.(*Builtin).Fn(nil, []LotusObject{&Character{Value: 'a'}}, collection)
	assert.Equal(t, "Collection is of type `integer', but tried to append a value of type `character`.",
		result.(*Error).Message)

	insertFn, _ := Member(collection, "insert")
	result = insertFn.(*Builtin).Fn(nil, []LotusObject{&Integer{Value: 0}, &Integer{Value: 5}}, collection)
	assert.Equal(t, NULL_OBJECT, result)
	assert.Equal(t, int32(5), collection.Values[0].(*Integer).Value)

	popFn, _ := Member(collection, "pop")
	result = popFn.(*Builtin).Fn(nil, nil, collection)
	assert.Equal(t, NULL_OBJECT, result)
	assert.Len(t, collection.Values, 1)

	result = popFn.(*Builtin).Fn(nil, []LotusObject{&Integer{Value: 5}}, collection)
	assert.Equal(t, "Attempted to pop an index that is out of bounds.", result.(*Error).Message)
}
