/*
File    : go-lotus/objects/members.go
Project : Lotus Interpreter
*/
package objects

// Member resolves the named member of an object. The result is either a
// property value evaluated on the spot (string length, collection and
// dictionary size) or a builtin bound to its receiver (collection append,
// pop, insert; dictionary keys, values). The boolean result reports whether
// the member exists for the object's type.
func Member(obj LotusObject, name string) (LotusObject, bool) {
	switch obj := obj.(type) {
	case *String:
		if name == "length" {
			return &Integer{Value: int32(len(obj.Value))}, true
		}
	case *Collection:
		switch name {
		case "size":
			return &Integer{Value: int32(len(obj.Values))}, true
		case "append":
			return &Builtin{Fn: collectionAppend, Receiver: obj}, true
		case "pop":
			return &Builtin{Fn: collectionPop, Receiver: obj}, true
		case "insert":
			return &Builtin{Fn: collectionInsert, Receiver: obj}, true
		}
	case *Dictionary:
		switch name {
		case "size":
			return &Integer{Value: int32(obj.Size())}, true
		case "keys":
			return &Builtin{Fn: dictionaryKeys, Receiver: obj}, true
		case "values":
			return &Builtin{Fn: dictionaryValues, Receiver: obj}, true
		}
	}

	return nil, false
}
