// Package codec converts between fixed-width flat-file lines and rows.
//
// The decoder slices a line into consecutive fields of layout.FieldSpec.Size
// characters and coerces each slice by type:
//
//	string   trimmed of its padding symbol
//	integer  int64
//	float    float64, divided by 10^precision unless dotNotation is set
//	date     time.Time, parsed with the field's strftime pattern or ISO-8601
//	enum     the value declared for the raw key
//
// Blank numeric and date slices decode to nil.
//
// The encoder does the reverse: every value is coerced, formatted, checked
// against the field size, truncated and padded, so each line is exactly
// layout.Width characters plus the row end.
//
//	specs := []layout.FieldSpec{
//		{Name: "firstName", Size: 10, Type: layout.TypeString},
//		{Name: "age", Size: 3, Type: layout.TypeInteger},
//	}
//
//	line, _ := codec.FormatRow(specs, codec.Row{"firstName": "Jo", "age": 7}, nil)
//	// "Jo          7"
//
//	row, _ := codec.ParseLine(line, specs, layout.Width(specs))
//	// Row{"firstName": "Jo", "age": int64(7)}
//
// Rows may also be structs: members bind to fields by `flatfile:"name"` tag
// or by normalized name, and the ...As functions decode straight into them.
//
// Every call is synchronous and stateless. Errors are *errors.Error values
// matching the sentinels of package errors.
package codec
