package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This hands out random readable names for arbitrary comparable values.
// Pointers are keyed by identity and plain values by equality, so a value
// rebuilt from the same geometry keeps its name. It leaks every name it
// ever generates, but generates them lazily, so it costs nothing unless
// debugging output is actually being produced.

var names map[interface{}]string

func init() {
	names = make(map[interface{}]string)
	// Names are assigned in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if value.IsNil() {
			return "Ø"
		}
	}

	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}
