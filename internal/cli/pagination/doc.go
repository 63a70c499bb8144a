// Package pagination orders and windows the records offered to the picker.
//
// This package contains the logic behind the --sort, --limit and --offset
// flags, including:
//   - Params: flag values and validation
//   - ParseSort: "field" or "field:order" sort expressions
//   - RecordSorter: stable ordering of records by label, input position or a
//     gjson path into structured records
//
// Sorting happens before windowing, so --sort name --limit 10 offers the first
// ten records by name.
package pagination
