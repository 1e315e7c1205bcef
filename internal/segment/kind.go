package segment

//go:generate go tool stringer -type=NodeKind -output=node_kind_string.go

// NodeKind is the closed set of markup node kinds a segment may contain.
type NodeKind int

const (
	_ NodeKind = iota // skip zero value, use it as a default (invalid) value for NodeKind

	KindText
	KindTagPair
	KindPlaceholder
	KindLocationMarker
	KindCommentMarker
	KindOtherMarker
	KindLockedContent
	KindRevisionMarker
)

// HasText reports whether nodes of this kind contribute to the plain text,
// directly or through their children.
func (k NodeKind) HasText() bool {
	switch k {
	case KindText, KindTagPair:
		return true
	case KindPlaceholder, KindLocationMarker, KindCommentMarker,
		KindOtherMarker, KindLockedContent, KindRevisionMarker:
		return false
	default:
		return false
	}
}
