package chatmd

// Inline is a sealed interface representing a formatting unit within a
// block's text. The unexported marker method prevents external
// implementations.
type Inline interface {
	inline()
}

// Text is a run of plain text.
type Text struct {
	Text string
}

func (Text) inline() {}

// Bold wraps the inline nodes produced by re-formatting the text between
// a pair of ** markers.
type Bold struct {
	Children []Inline
}

func (Bold) inline() {}

// Italic wraps the inline nodes produced by re-formatting the text
// between a pair of * markers.
type Italic struct {
	Children []Inline
}

func (Italic) inline() {}

// Code is an inline code span. Text is raw and never re-formatted.
type Code struct {
	Text string
}

func (Code) inline() {}

// Link is a [label](href) span. Label is carried as-is; link spans are
// atomic with respect to the surrounding formatting pass. "Open link"
// consumers receive Href verbatim.
type Link struct {
	Label string
	Href  string
}

func (Link) inline() {}

// Interface compliance checks.
var (
	_ Inline = Text{}
	_ Inline = Bold{}
	_ Inline = Italic{}
	_ Inline = Code{}
	_ Inline = Link{}
)
