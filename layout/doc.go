// Package layout provides the record layout model of a fixed-width flat
// file: the field specs, their YAML representation, and structural
// validation.
//
// A layout is the single source of truth for a record format. Field order
// is significant: each field consumes exactly Size characters, and the
// record width is the sum of all sizes.
//
// # Schema Overview
//
// A layout file has the following structure:
//
//	version: "1"
//	name: people
//	rowEnd: "\n"
//	fields:
//	  - name: firstName
//	    size: 10
//	    type: string
//	  - name: weightKg
//	    size: 8
//	    type: float
//	    precision: 2            # 72.52 is stored as 7252
//	    paddingSymbol: "0"
//	  - name: dob
//	    size: 8
//	    type: date
//	    format: "%Y%m%d"        # shorthand for {dateFormat: "%Y%m%d"}
//	  - name: status
//	    size: 2
//	    type: string
//	    enum:
//	      "01": pending
//	      "02": done
//	      "  ": ~
//
// # Types and Default Alignment
//
//   - string:  left-aligned (padding at the end)
//   - date:    left-aligned; format tokens follow strftime (%Y, %m, %d, %H, ...)
//   - integer: right-aligned (padding at the start)
//   - float:   right-aligned; precision implied digits, or a literal decimal
//     point with dotNotation
//
// # Validation
//
// Validate reports coded diagnostics (empty_layout, invalid_size,
// unsupported_type, ...) with suggestions for misspelled types. Check turns
// the first error into a config error for callers that only need pass/fail.
package layout
