package blockkit

import (
	"regexp"
	"unicode/utf8"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

// Text object variants.
const (
	PlainTextType = "plain_text"
	MarkdownType  = "mrkdwn"
)

// Emphasis may span lines; only \x01 ends a run.
var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)(?:^|\W)\*[^\x01]+\*(?:$|\W)`),
	regexp.MustCompile(`(?m)(?:^|\W)_[^\x01]+_(?:$|\W)`),
	regexp.MustCompile(`(?m)(?:^|\W)~[^\x01]+~(?:$|\W)`),
	regexp.MustCompile("(?m)(?:^|\\W)`[^\\x01]+`(?:$|\\W)"),
	regexp.MustCompile("(?m)^```"),
	regexp.MustCompile(`(?m)^>`),
	regexp.MustCompile(`<[^>]+>`),
}

// IsMarkdown reports whether s contains formatting markers: emphasis wrapped
// in *, _, ~ or backticks at word boundaries, code fences, block quotes, or
// <...> links and mentions.
func IsMarkdown(s string) bool {
	for _, p := range markdownPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Text is the text composition object.
type Text struct {
	component
	typed bool
}

// NewText returns a text object whose variant follows its content: markdown
// when the text carries formatting markers, plain otherwise.
func NewText() *Text {
	t := &Text{}
	t.init(t)
	t.field("type", validator.Required(), validator.Strings(PlainTextType, MarkdownType)).Value = PlainTextType
	t.field("text", validator.Required(), validator.Typed(validator.TypeOf[string]()), validator.Length(1, 3000))
	t.field("emoji")
	t.field("verbatim")
	t.validate(
		validator.OnlyIf("verbatim", "type", MarkdownType),
		validator.OnlyIf("emoji", "type", PlainTextType),
	)
	return t
}

// PlainText returns a plain_text object regardless of content.
func PlainText(text string) *Text {
	return NewText().Type(PlainTextType).Text(text)
}

// MarkdownText returns a mrkdwn object regardless of content.
func MarkdownText(text string) *Text {
	return NewText().Type(MarkdownType).Text(text)
}

func (t *Text) Text(text string) *Text {
	t.set("text", text)
	if !t.typed {
		kind := PlainTextType
		if IsMarkdown(text) {
			kind = MarkdownType
		}
		t.set("type", kind)
	}
	return t
}

// Type pins the variant; later Text calls no longer detect it.
func (t *Text) Type(kind string) *Text {
	t.typed = true
	t.set("type", kind)
	return t
}

func (t *Text) Emoji(emoji bool) *Text {
	t.set("emoji", emoji)
	return t
}

func (t *Text) Verbatim(verbatim bool) *Text {
	t.set("verbatim", verbatim)
	return t
}

// TextType returns the current variant.
func (t *Text) TextType() string {
	kind, _ := t.value("type").(string)
	return kind
}

// Len returns the rune length of the text.
func (t *Text) Len() int {
	text, _ := t.value("text").(string)
	return utf8.RuneCountInString(text)
}

// plainText wraps bare strings into plain text objects.
func plainText(v any) any {
	if s, ok := v.(string); ok {
		return PlainText(s)
	}
	return v
}

// anyText wraps bare strings, picking the variant from their content.
func anyText(v any) any {
	if s, ok := v.(string); ok {
		return NewText().Text(s)
	}
	return v
}

var textType = validator.TypeOf[*Text]()

// plainTextField declares a text field restricted to plain_text.
func (c *component) plainTextField(name string, min, max int, required bool) {
	validators := []validator.FieldValidator{validator.Typed(textType), validator.Plain(), validator.Length(min, max)}
	if required {
		validators = append([]validator.FieldValidator{validator.Required()}, validators...)
	}
	c.field(name, validators...)
}

// textField declares a text field accepting either variant.
func (c *component) textField(name string, min, max int, required bool) {
	validators := []validator.FieldValidator{validator.Typed(textType), validator.Length(min, max)}
	if required {
		validators = append([]validator.FieldValidator{validator.Required()}, validators...)
	}
	c.field(name, validators...)
}
