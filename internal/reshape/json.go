package reshape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalJSON decodes a JSON object into an ordered Record. The decoder
// walks tokens instead of a map so property encounter order survives.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	var record Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected record key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record property %q: %w", key, err)
		}
		record = append(record, Field{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = record
	return nil
}

// MarshalJSON encodes the record as a JSON object in declaration order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("record property %q: %w", field.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ReadRecords decodes records from JSON input: either a single object or
// an array of objects.
func ReadRecords(reader io.Reader) ([]Record, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("records must be a JSON object or array, got %v", tok)
	}

	switch delim {
	case '{':
		// Single object: re-decode from the buffered remainder.
		var raw bytes.Buffer
		raw.WriteByte('{')
		if _, err := io.Copy(&raw, io.MultiReader(dec.Buffered(), reader)); err != nil {
			return nil, fmt.Errorf("read records: %w", err)
		}
		var record Record
		if err := json.Unmarshal(raw.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("read records: %w", err)
		}
		return []Record{record}, nil
	case '[':
		var records []Record
		for dec.More() {
			var record Record
			if err := dec.Decode(&record); err != nil {
				return nil, fmt.Errorf("read records: %w", err)
			}
			records = append(records, record)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("read records: %w", err)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("records must be a JSON object or array")
	}
}
