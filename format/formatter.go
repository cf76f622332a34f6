package format

import "github.com/forem/mdtoolbar/buffer"

// ID names a formatter. The set is closed.
type ID string

const (
	IDBold          ID = "bold"
	IDItalic        ID = "italic"
	IDLink          ID = "link"
	IDOrderedList   ID = "ordered_list"
	IDUnorderedList ID = "unordered_list"
	IDHeading       ID = "heading"
	IDQuote         ID = "quote"
	IDCode          ID = "code"
	IDCodeBlock     ID = "code_block"

	IDUnderline     ID = "underline"
	IDStrikethrough ID = "strikethrough"
	IDDivider       ID = "divider"
	IDEmbed         ID = "embed"
)

// Group splits formatters between the always-visible toolbar and the
// overflow menu.
type Group int

const (
	GroupCore Group = iota
	GroupOverflow
)

func (g Group) String() string {
	switch g {
	case GroupCore:
		return "core"
	case GroupOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Func computes a formatter's edit. It must be pure.
type Func func(text string, sel buffer.Range) Edit

type Formatter struct {
	ID      ID
	Label   string
	Group   Group
	Compute Func
}

func inline(prefix, suffix string) Func {
	return func(text string, sel buffer.Range) Edit {
		return Inline(text, sel, prefix, suffix)
	}
}

func linePrefix(prefix string) Func {
	return func(text string, sel buffer.Range) Edit {
		return LinePrefix(text, sel, prefix)
	}
}

func block(prefix, suffix string) Func {
	return func(text string, sel buffer.Range) Edit {
		return Block(text, sel, prefix, suffix)
	}
}

var formatters = []Formatter{
	{IDBold, "Bold", GroupCore, inline("**", "**")},
	{IDItalic, "Italic", GroupCore, inline("_", "_")},
	{IDLink, "Link", GroupCore, Link},
	{IDOrderedList, "Ordered list", GroupCore, OrderedList},
	{IDUnorderedList, "Unordered list", GroupCore, linePrefix("- ")},
	{IDHeading, "Heading", GroupCore, Heading},
	{IDQuote, "Quote", GroupCore, linePrefix("> ")},
	{IDCode, "Code", GroupCore, inline("`", "`")},
	{IDCodeBlock, "Code block", GroupCore, block("```\n", "\n```")},

	{IDUnderline, "Underline", GroupOverflow, inline("<u>", "</u>")},
	{IDStrikethrough, "Strikethrough", GroupOverflow, inline("~~", "~~")},
	{IDDivider, "Line divider", GroupOverflow, block("---\n", "")},
	{IDEmbed, "Embed", GroupOverflow, inline("{% embed ", " %}")},
}

var byID = func() map[ID]Formatter {
	m := make(map[ID]Formatter, len(formatters))
	for _, f := range formatters {
		m[f.ID] = f
	}
	return m
}()

// All returns every formatter in toolbar order. The slice is a copy.
func All() []Formatter {
	out := make([]Formatter, len(formatters))
	copy(out, formatters)
	return out
}

func Lookup(id ID) (Formatter, bool) {
	f, ok := byID[id]
	return f, ok
}

// Run looks up id and computes its edit.
func Run(id ID, text string, sel buffer.Range) (Edit, bool) {
	f, ok := byID[id]
	if !ok {
		return Edit{}, false
	}
	return f.Compute(text, sel), true
}
