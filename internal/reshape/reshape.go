// Package reshape flattens wide records (many named properties) into long
// key/value sequences for tabular display. Property order is preserved, so
// records are ordered field slices rather than maps.
package reshape

import "iter"

// Field is one named property of a record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered flat record.
type Record []Field

// Pair is one row of the long form.
type Pair struct {
	Key   string
	Value any
}

// Columns names the two output columns. Formatters use these for headers
// and JSON object keys; the pairs themselves are shape-agnostic.
type Columns struct {
	Key   string
	Value string
}

// DefaultColumns returns the conventional "Name"/"Value" column names.
func DefaultColumns() Columns {
	return Columns{Key: "Name", Value: "Value"}
}

// Normalize fills in default column names for any left blank.
func (c Columns) Normalize() Columns {
	if c.Key == "" {
		c.Key = "Name"
	}
	if c.Value == "" {
		c.Value = "Value"
	}
	return c
}

// Long lazily flattens records into key/value pairs: records in input
// order, properties in declaration order, one pair per property. Values
// pass through opaquely, with no deduplication or coercion. A record with
// no properties contributes nothing; empty input yields an empty sequence.
// The sequence is restartable only by calling Long again.
func Long(records []Record) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, record := range records {
			for _, field := range record {
				if !yield(Pair{Key: field.Name, Value: field.Value}) {
					return
				}
			}
		}
	}
}

// Collect drains a pair sequence into a slice.
func Collect(pairs iter.Seq[Pair]) []Pair {
	var out []Pair
	for pair := range pairs {
		out = append(out, pair)
	}
	return out
}
