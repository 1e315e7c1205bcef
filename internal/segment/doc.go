// Package segment models the editor's bilingual segments as a small tree of
// markup nodes and implements the host side of highlighting: extracting the
// plain text the engine works on, and mapping rune offsets in that plain text
// back onto text runs to colour them.
//
// The node set is closed (see NodeKind). Only text nodes, and text nested in
// tag pairs, contribute to the plain text; placeholders, markers, locked
// content and revision markers are skipped, so offsets never point into them.
package segment
