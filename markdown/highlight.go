package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/odvcencio/cellframe/backend"
)

const tabWidth = 4

// Highlight splits code into lines colored by token category. An empty or
// unknown language is guessed from the content, falling back to plain text.
func Highlight(code, language string, theme Theme) []Line {
	code = strings.ReplaceAll(code, "\t", strings.Repeat(" ", tabWidth))
	lexer := lexerFor(code, language)

	w := &lineWriter{}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		style := backend.NewStyle(theme.Plain, theme.CodeBack)
		for _, l := range strings.Split(code, "\n") {
			w.write(l, style)
			w.newline()
		}
		return trimBlank(w.lines)
	}
	for tok := it(); tok != chroma.EOF; tok = it() {
		style := backend.NewStyle(tokenColor(tok.Type, theme), theme.CodeBack)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				w.newline()
			}
			w.write(part, style)
		}
	}
	if len(w.cur) > 0 {
		w.newline()
	}
	return trimBlank(w.lines)
}

func lexerFor(code, language string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenColor(t chroma.TokenType, theme Theme) backend.Color {
	switch {
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return theme.Function
	case t.Category() == chroma.Keyword:
		return theme.Keyword
	case t.SubCategory() == chroma.LiteralString:
		return theme.String
	case t.SubCategory() == chroma.LiteralNumber:
		return theme.Number
	case t.Category() == chroma.Comment:
		return theme.Comment
	case t.Category() == chroma.Operator || t.Category() == chroma.Punctuation:
		return theme.Operator
	case t.Category() == chroma.Name:
		return theme.Name
	}
	return theme.Plain
}
