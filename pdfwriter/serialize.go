package pdfwriter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sap-lang/sap/pdf"
)

// serializeObject renders one indirect object ("N G obj ... endobj"),
// matching the teacher's SerializeObject (wudi-pdfkit writer_impl.go),
// adapted to the pdf package's object interfaces instead of a
// parse-and-write raw.Object model.
func serializeObject(ref pdf.ObjectRef, obj pdf.Object) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d obj\n", ref.Num, ref.Gen)
	switch o := obj.(type) {
	case *pdf.StreamObj:
		buf.Write(serializePrimitive(o.Dict))
		buf.WriteString("\nstream\n")
		buf.Write(o.Data)
		buf.WriteString("\nendstream\n")
	default:
		buf.Write(serializePrimitive(obj))
		buf.WriteString("\n")
	}
	buf.WriteString("endobj\n")
	return buf.Bytes()
}

// serializePrimitive renders any PDF object value in-line (i.e. not as
// its own indirect object): dictionaries, arrays, names, numbers,
// strings, references. Dictionary keys are sorted for deterministic
// output (spec's ambient "Deterministic" output requirement, carried
// from the teacher's `cfg.Deterministic` path).
func serializePrimitive(o pdf.Object) []byte {
	switch v := o.(type) {
	case *pdf.DictObj:
		var sb strings.Builder
		sb.WriteString("<<")
		keys := make([]string, 0, len(v.KV))
		for k := range v.KV {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString("/" + k + " ")
			sb.Write(serializePrimitive(v.KV[k]))
			sb.WriteString(" ")
		}
		sb.WriteString(">>")
		return []byte(sb.String())
	case *pdf.ArrayObj:
		var sb strings.Builder
		sb.WriteString("[")
		for i, it := range v.Items {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.Write(serializePrimitive(it))
		}
		sb.WriteString("]")
		return []byte(sb.String())
	case pdf.NameObj:
		return []byte("/" + v.Val)
	case pdf.NumberObj:
		if v.IsInt {
			return []byte(fmt.Sprintf("%d", v.I))
		}
		s := fmt.Sprintf("%.6f", v.F)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
		if s == "" || s == "-" {
			s = "0"
		}
		return []byte(s)
	case pdf.BoolObj:
		if v.V {
			return []byte("true")
		}
		return []byte("false")
	case pdf.NullObj:
		return []byte("null")
	case pdf.StringObj:
		return []byte(pdfLiteralString(v.Bytes))
	case pdf.RefObj:
		return []byte(v.R.String())
	case *pdf.StreamObj:
		// only reachable when a stream is embedded inline (never for our
		// writer, which always indirects streams), kept for completeness.
		return serializePrimitive(v.Dict)
	default:
		return []byte("null")
	}
}

func pdfLiteralString(data []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, c := range data {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
