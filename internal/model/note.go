package model

// Buffer capacities mirror the original fixed storage layout: each capacity
// includes room for a trailing terminator, so the usable byte budget is one
// less than the capacity. All lengths here are byte lengths.
const (
	TitleCap   = 32
	ContentCap = 1024

	MaxTitleLen   = TitleCap - 1
	MaxContentLen = ContentCap - 1
)

// Note is a titled bounded text document. Title doubles as the on-disk
// filename; Content is a sequence of user-appended lines joined by "\n".
type Note struct {
	Title   string
	Content string
}

// AppendLine adds one line to the note's content, joined with "\n" when
// the note is non-empty. On overflow the content is left unchanged.
func (n *Note) AppendLine(line string) error {
	next, err := AppendLine(n.Content, line, ContentCap)
	if err != nil {
		return err
	}
	n.Content = next
	return nil
}

// FreeBytes reports how many content bytes remain for future appends,
// accounting for the separator and terminator the capacity check reserves.
func (n Note) FreeBytes() int {
	free := ContentCap - len(n.Content) - 2
	if free < 0 {
		return 0
	}
	return free
}
