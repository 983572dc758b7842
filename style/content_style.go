package style

import (
	"strings"

	"github.com/lixenwraith/termctl/ansi"
)

// ContentStyle describes how a run of text should look. The zero value
// styles nothing.
type ContentStyle struct {
	Fg         Color
	Bg         Color
	Underline  Color
	Attributes Attributes
}

// Apply attaches content to the style, producing a dispatchable command.
func (s ContentStyle) Apply(content string) StyledContent {
	return StyledContent{Style: s, Content: content}
}

// StyledContent is content bundled with a style. Its escape form is one
// coalesced SGR prefix, the content, then a full reset, so consecutive
// styled runs never bleed into each other.
type StyledContent struct {
	Style   ContentStyle
	Content string
}

// Ansi renders prefix + content + reset. A zero style renders the bare
// content with no reset.
func (sc StyledContent) Ansi() string {
	params := sc.sgrParams()
	if len(params) == 0 {
		return sc.Content
	}
	var b strings.Builder
	b.WriteString(ansi.SGR(params...))
	b.WriteString(sc.Content)
	b.WriteString(ansi.SGRReset)
	return b.String()
}

// String makes styled content printable directly with the fmt package.
func (sc StyledContent) String() string {
	return sc.Ansi()
}

// sgrParams collects attribute parameters in ascending bit order, then
// foreground, background and underline color.
func (sc StyledContent) sgrParams() []string {
	var params []string
	for it := sc.Style.Attributes.Iter(); ; {
		a, ok := it.Next()
		if !ok {
			break
		}
		params = append(params, a.sgr())
	}
	if sc.Style.Fg != Default {
		params = sc.Style.Fg.fg(params)
	}
	if sc.Style.Bg != Default {
		params = sc.Style.Bg.bg(params)
	}
	if sc.Style.Underline != Default {
		params = sc.Style.Underline.underline(params)
	}
	return params
}
