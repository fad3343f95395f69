// Package sttp parses state transition tables described in CSV form.
//
// A table starts with the header row SOURCE,DEST,TRIGGER and names one
// transition per row. The source column may be left blank to reuse the
// source of the previous row; the destination is always required. Triggers
// come in three forms:
//
//   - plain text, used verbatim as the transition label
//   - "_"+name (or blank, which synthesizes "_"+destination), rendered as
//     an event label EVT_name
//   - "__"+N, a timed transition firing after N seconds
//
// The parsed table can be exported as structured text (JSON or YAML), as a
// graph description (DOT or Mermaid), or rendered to an image through a
// local graphviz installation:
//
//	parser := sttp.New("machine.csv")
//	out, err := parser.JSON()
package sttp
