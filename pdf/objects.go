// Package pdf is the low-level PDF object model the writer serialises:
// indirect object references, dictionaries/arrays/streams/names, and
// the raw value types a document is built from. This is the write-only
// half of a PDF toolkit's object model — no Parser, no Document
// container for an already-decoded file, since the pipeline here never
// reads an existing PDF back (spec Non-goals).
package pdf

import "fmt"

// ObjectRef uniquely identifies an indirect PDF object.
type ObjectRef struct {
	Num int
	Gen int
}

func (r ObjectRef) String() string { return fmt.Sprintf("%d %d R", r.Num, r.Gen) }

// Object is the base interface for all PDF objects the writer emits.
type Object interface {
	Type() string
	IsIndirect() bool
}

// Dictionary is a PDF dictionary object.
type Dictionary interface {
	Object
	Get(key Name) (Object, bool)
	Set(key Name, value Object)
	Keys() []Name
	Len() int
}

// Array is a PDF array object.
type Array interface {
	Object
	Get(index int) (Object, bool)
	Len() int
	Append(obj Object)
}

// Stream is a PDF stream object (dictionary plus raw bytes).
type Stream interface {
	Object
	Dictionary() Dictionary
	RawData() []byte
	Length() int64
}

// Name is a PDF name object.
type Name interface {
	Object
	Value() string
}

// String is a PDF string object (literal or hex).
type String interface {
	Object
	Value() []byte
	IsHex() bool
}

// Number is a PDF numeric value.
type Number interface {
	Object
	Int() int64
	Float() float64
	IsInteger() bool
}

// Boolean is a PDF boolean.
type Boolean interface {
	Object
	Value() bool
}

// Null is the PDF null object.
type Null interface{ Object }

// Reference is an indirect-object reference ("N G R").
type Reference interface {
	Object
	Ref() ObjectRef
}

// --- concrete implementations ---

type NameObj struct{ Val string }

func (n NameObj) Type() string     { return "name" }
func (n NameObj) IsIndirect() bool { return false }
func (n NameObj) Value() string    { return n.Val }

type NumberObj struct {
	I     int64
	F     float64
	IsInt bool
}

func (n NumberObj) Type() string     { return "number" }
func (n NumberObj) IsIndirect() bool { return false }
func (n NumberObj) Int() int64       { return n.I }
func (n NumberObj) Float() float64 {
	if n.IsInt {
		return float64(n.I)
	}
	return n.F
}
func (n NumberObj) IsInteger() bool { return n.IsInt }

type BoolObj struct{ V bool }

func (b BoolObj) Type() string     { return "boolean" }
func (b BoolObj) IsIndirect() bool { return false }
func (b BoolObj) Value() bool      { return b.V }

type NullObj struct{}

func (n NullObj) Type() string     { return "null" }
func (n NullObj) IsIndirect() bool { return false }

type StringObj struct{ Bytes []byte }

func (s StringObj) Type() string     { return "string" }
func (s StringObj) IsIndirect() bool { return false }
func (s StringObj) Value() []byte    { return s.Bytes }
func (s StringObj) IsHex() bool      { return false }

type ArrayObj struct{ Items []Object }

func (a *ArrayObj) Type() string     { return "array" }
func (a *ArrayObj) IsIndirect() bool { return false }
func (a *ArrayObj) Get(i int) (Object, bool) {
	if i < 0 || i >= len(a.Items) {
		return nil, false
	}
	return a.Items[i], true
}
func (a *ArrayObj) Len() int        { return len(a.Items) }
func (a *ArrayObj) Append(o Object) { a.Items = append(a.Items, o) }

type DictObj struct{ KV map[string]Object }

func (d *DictObj) Type() string                { return "dict" }
func (d *DictObj) IsIndirect() bool            { return false }
func (d *DictObj) Get(key Name) (Object, bool) { o, ok := d.KV[key.Value()]; return o, ok }
func (d *DictObj) Set(key Name, value Object) {
	if d.KV == nil {
		d.KV = make(map[string]Object)
	}
	d.KV[key.Value()] = value
}
func (d *DictObj) Keys() []Name {
	keys := make([]Name, 0, len(d.KV))
	for k := range d.KV {
		keys = append(keys, NameObj{Val: k})
	}
	return keys
}
func (d *DictObj) Len() int { return len(d.KV) }

type StreamObj struct {
	Dict *DictObj
	Data []byte
}

func (s *StreamObj) Type() string           { return "stream" }
func (s *StreamObj) IsIndirect() bool       { return false }
func (s *StreamObj) Dictionary() Dictionary { return s.Dict }
func (s *StreamObj) RawData() []byte        { return s.Data }
func (s *StreamObj) Length() int64          { return int64(len(s.Data)) }

type RefObj struct{ R ObjectRef }

func (r RefObj) Type() string     { return "ref" }
func (r RefObj) IsIndirect() bool { return true }
func (r RefObj) Ref() ObjectRef   { return r.R }

// --- constructors ---

func NameLiteral(v string) NameObj   { return NameObj{Val: v} }
func NumberInt(i int64) NumberObj    { return NumberObj{I: i, IsInt: true} }
func NumberFloat(f float64) NumberObj { return NumberObj{F: f, IsInt: false} }
func Bool(v bool) BoolObj            { return BoolObj{V: v} }
func Str(bytes []byte) StringObj     { return StringObj{Bytes: bytes} }
func NewArray(items ...Object) *ArrayObj             { return &ArrayObj{Items: items} }
func Dict() *DictObj                                 { return &DictObj{KV: make(map[string]Object)} }
func NewStream(dict *DictObj, data []byte) *StreamObj { return &StreamObj{Dict: dict, Data: data} }
func Ref(num, gen int) RefObj { return RefObj{R: ObjectRef{Num: num, Gen: gen}} }
