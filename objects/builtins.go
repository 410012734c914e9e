/*
File    : go-lotus/objects/builtins.go
Project : Lotus Interpreter
*/
package objects

import (
	"io"
	"strings"
)

// BuiltinFunction is the signature shared by all builtin implementations.
// The writer is the evaluator's output sink; receiver is the bound parent
// object for member builtins (nil for free builtins such as log). Builtins
// are self-policing: they validate their own arity and argument types.
type BuiltinFunction func(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject

// Builtin is a builtin function value, optionally bound to a receiver
// obtained through member access (myCollection.append, for example).
type Builtin struct {
	Fn       BuiltinFunction
	Receiver LotusObject
}

func (b *Builtin) GetType() LotusType { return BuiltinType }
func (b *Builtin) Inspect() string    { return "builtin function" }

// LogBuiltin prints the space-separated Inspect strings of its arguments
// followed by a newline, and produces Null.
func LogBuiltin(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver != nil {
		return NewError("Did not expect to see a parent object for `log`.")
	}

	var output strings.Builder
	for i, arg := range args {
		output.WriteString(arg.Inspect())
		if i != len(args)-1 {
			output.WriteString(" ")
		}
	}
	output.WriteString("\n")

	io.WriteString(writer, output.String())

	return NULL_OBJECT
}

// collectionAppend implements myCollection.append(x). Appending to a
// collection whose element type is still the NullType sentinel determines
// its element type; an empty collection that already has an element type
// accepts only values of that type.
func collectionAppend(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver == nil {
		return NewError("Expected to see a parent object for collection `append`.")
	}

	collection, ok := receiver.(*Collection)
	if !ok {
		return NewError("Expected a collection to append to.")
	}

	if len(args) != 1 {
		return NewError("Expected 1 parameter, got %d.", len(args))
	}

	item := args[0]
	if item.GetType() != collection.ElementType && collection.ElementType != NullType {
		return NewError("Collection is of type `%s', but tried to append a value of type `%s`.",
			collection.ElementType, item.GetType())
	}

	collection.Values = append(collection.Values, item)
	collection.ElementType = item.GetType()

	return NULL_OBJECT
}

// collectionPop implements myCollection.pop() and myCollection.pop(i).
func collectionPop(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver == nil {
		return NewError("Expected to see a parent object for collection `pop`.")
	}

	collection, ok := receiver.(*Collection)
	if !ok {
		return NewError("Expected a collection to pop from.")
	}

	if len(args) >= 2 {
		return NewError("Expected 0 or 1 parameters, got %d.", len(args))
	}

	if len(args) == 1 && args[0].GetType() != IntegerType {
		return NewError("Expected an integer index to pop from, got %s.", args[0].GetType())
	}

	if len(collection.Values) == 0 {
		return NewError("Cannot pop from an empty collection.")
	}

	if len(args) == 1 {
		index := args[0].(*Integer).Value
		if index < 0 || int(index) >= len(collection.Values) {
			return NewError("Attempted to pop an index that is out of bounds.")
		}
		collection.Values = append(collection.Values[:index], collection.Values[index+1:]...)
	} else {
		collection.Values = collection.Values[:len(collection.Values)-1]
	}

	return NULL_OBJECT
}

// collectionInsert implements myCollection.insert(i, x).
func collectionInsert(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver == nil {
		return NewError("Expected to see a parent object for collection `insert`.")
	}

	collection, ok := receiver.(*Collection)
	if !ok {
		return NewError("Expected a collection to insert into.")
	}

	if len(args) != 2 {
		return NewError("Expected 2 parameters, got %d.", len(args))
	}

	if args[0].GetType() != IntegerType {
		return NewError("Expected an integer index to insert into, got %s.", args[0].GetType())
	}

	index := args[0].(*Integer).Value
	item := args[1]

	if index < 0 || int(index) > len(collection.Values) {
		return NewError("Attempted to insert into an index that is out of bounds.")
	}

	if item.GetType() != collection.ElementType {
		return NewError("Collection is of type `%s', but tried to insert a value of type `%s`.",
			collection.ElementType, item.GetType())
	}

	collection.Values = append(collection.Values[:index],
		append([]LotusObject{item}, collection.Values[index:]...)...)

	return NULL_OBJECT
}

// dictionaryKeys implements myDictionary.keys(): a collection of the keys
// in insertion order.
func dictionaryKeys(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver == nil {
		return NewError("Expected to see a parent object for dictionary `keys`.")
	}

	dictionary, ok := receiver.(*Dictionary)
	if !ok {
		return NewError("Expected a dictionary to get keys from.")
	}

	if len(args) != 0 {
		return NewError("Expected 0 parameters, got %d.", len(args))
	}

	return &Collection{
		ElementType: dictionary.KeyType,
		Values:      dictionary.Keys(),
	}
}

// dictionaryValues implements myDictionary.values(): a collection of the
// values in insertion order.
func dictionaryValues(writer io.Writer, args []LotusObject, receiver LotusObject) LotusObject {
	if receiver == nil {
		return NewError("Expected to see a parent object for dictionary `values`.")
	}

	dictionary, ok := receiver.(*Dictionary)
	if !ok {
		return NewError("Expected a dictionary to get values from.")
	}

	if len(args) != 0 {
		return NewError("Expected 0 parameters, got %d.", len(args))
	}

	return &Collection{
		ElementType: dictionary.ValueType,
		Values:      dictionary.Values(),
	}
}
