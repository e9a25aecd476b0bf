package fonts

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// OpenTypeTable is an entry in the OpenType/TrueType table directory.
type OpenTypeTable struct {
	Tag      string
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// ParseOpenTypeTableDirectory parses the header and table directory of
// an OpenType/TrueType font. Used by embedding/diagnostic code that
// needs to inspect a font's raw tables directly; TrueType subsetting
// itself uses its own internal parser (tt_subsetter.go).
func ParseOpenTypeTableDirectory(data []byte) (map[string]OpenTypeTable, error) {
	r := bytes.NewReader(data)

	var scalerType uint32
	if err := binary.Read(r, binary.BigEndian, &scalerType); err != nil {
		return nil, err
	}
	// 0x00010000 for TrueType, 'OTTO' for CFF-flavoured OpenType; both
	// are accepted since only the table directory is being read here.

	var numTables uint16
	if err := binary.Read(r, binary.BigEndian, &numTables); err != nil {
		return nil, err
	}
	if _, err := r.Seek(6, io.SeekCurrent); err != nil {
		return nil, err
	}

	tables := make(map[string]OpenTypeTable)
	for i := 0; i < int(numTables); i++ {
		var tag [4]byte
		if _, err := io.ReadFull(r, tag[:]); err != nil {
			return nil, err
		}
		var checkSum, offset, length uint32
		if err := binary.Read(r, binary.BigEndian, &checkSum); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &offset); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, err
		}
		tables[string(tag[:])] = OpenTypeTable{
			Tag:      string(tag[:]),
			CheckSum: checkSum,
			Offset:   offset,
			Length:   length,
		}
	}
	return tables, nil
}

// ExtractTable returns the raw bytes of a specific table.
func ExtractTable(data []byte, table OpenTypeTable) ([]byte, error) {
	if int(table.Offset+table.Length) > len(data) {
		return nil, fmt.Errorf("table %s out of bounds", table.Tag)
	}
	return data[table.Offset : table.Offset+table.Length], nil
}
