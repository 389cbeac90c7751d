// Package render turns domain values and session views into output for the
// terminal or, for annotated content, HTML.
//
// Every chunk kind is handled explicitly. Hover and acronym chunks keep
// their text inline and carry their gloss alongside it: as numbered notes
// in text output and as <abbr> titles in HTML.
package render
