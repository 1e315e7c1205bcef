// Package bilingual loads documents of segment pairs for highlighting.
//
// # Format
//
// A document is YAML. Each side of a segment is either a plain string or a
// list of markup nodes; a segment may carry a pre-computed alignment:
//
//	segments:
//	  - id: "1"
//	    source:
//	      - text: "Press the "
//	      - tag: b
//	        children:
//	          - text: Start
//	      - placeholder: "{1}"
//	      - text: " button"
//	    target: Nospiediet pogu Start
//	    alignment:
//	      - source_start: 10
//	        source_length: 5
//	        target_start: 16
//	        target_length: 5
//	        confidence: 1
//
// Node keys: text, tag (with children), placeholder, location, comment,
// other, locked, revision. Files may be UTF-8 or UTF-16 with a byte order mark.
package bilingual
