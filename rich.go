package blockkit

import "github.com/imryche/blockkit-sub000/pkg/validator"

var (
	richStyleType = validator.TypeOf[*RichStyle]()

	richInlineTypes = typesOf(
		(*RichBroadcastEl)(nil),
		(*RichColorEl)(nil),
		(*RichChannelEl)(nil),
		(*RichDateEl)(nil),
		(*RichEmojiEl)(nil),
		(*RichLinkEl)(nil),
		(*RichTextEl)(nil),
		(*RichUserEl)(nil),
		(*RichUserGroupEl)(nil),
	)

	richBlockTypes = typesOf(
		(*RichTextSection)(nil),
		(*RichTextList)(nil),
		(*RichTextPreformatted)(nil),
		(*RichTextQuote)(nil),
	)
)

// Rich text list styles.
const (
	ListBullet  = "bullet"
	ListOrdered = "ordered"
)

// RichBroadcastEl is an @here, @channel or @everyone mention.
type RichBroadcastEl struct{ component }

func NewRichBroadcastEl() *RichBroadcastEl {
	r := &RichBroadcastEl{}
	r.init(r)
	r.fixed("type", "broadcast")
	r.field("range", validator.Required(), validator.Strings("here", "channel", "everyone"))
	return r
}

func (r *RichBroadcastEl) Range(value string) *RichBroadcastEl {
	r.set("range", value)
	return r
}

// RichColorEl renders a hex color swatch.
type RichColorEl struct{ component }

func NewRichColorEl() *RichColorEl {
	r := &RichColorEl{}
	r.init(r)
	r.fixed("type", "color")
	r.field("value", validator.Required(), validator.HexColor())
	return r
}

func (r *RichColorEl) Value(value string) *RichColorEl {
	r.set("value", value)
	return r
}

// RichChannelEl mentions a channel.
type RichChannelEl struct{ component }

func NewRichChannelEl() *RichChannelEl {
	r := &RichChannelEl{}
	r.init(r)
	r.fixed("type", "channel")
	r.field("channel_id", validator.Required())
	r.field("style", validator.Typed(richStyleType))
	r.validate(validator.StyledCorrectly(true))
	return r
}

func (r *RichChannelEl) ChannelID(id string) *RichChannelEl {
	r.set("channel_id", id)
	return r
}

func (r *RichChannelEl) Style(style *RichStyle) *RichChannelEl {
	r.set("style", style)
	return r
}

// RichDateEl renders a localized timestamp.
type RichDateEl struct{ component }

func NewRichDateEl() *RichDateEl {
	r := &RichDateEl{}
	r.init(r)
	r.fixed("type", "date")
	r.field("timestamp", validator.Required(), validator.UnixTimestamp()).kind = kindDatetime
	r.field("format", validator.Required())
	r.field("url")
	r.field("fallback")
	return r
}

// Timestamp accepts a time.Time or a Unix timestamp in seconds.
func (r *RichDateEl) Timestamp(timestamp any) *RichDateEl {
	r.set("timestamp", timestamp)
	return r
}

func (r *RichDateEl) Format(format string) *RichDateEl {
	r.set("format", format)
	return r
}

func (r *RichDateEl) URL(url string) *RichDateEl {
	r.set("url", url)
	return r
}

func (r *RichDateEl) Fallback(fallback string) *RichDateEl {
	r.set("fallback", fallback)
	return r
}

// RichEmojiEl renders an emoji.
type RichEmojiEl struct{ component }

func NewRichEmojiEl() *RichEmojiEl {
	r := &RichEmojiEl{}
	r.init(r)
	r.fixed("type", "emoji")
	r.field("name", validator.Required())
	r.field("unicode")
	return r
}

func (r *RichEmojiEl) Name(name string) *RichEmojiEl {
	r.set("name", name)
	return r
}

func (r *RichEmojiEl) Unicode(code string) *RichEmojiEl {
	r.set("unicode", code)
	return r
}

// RichLinkEl is a hyperlink.
type RichLinkEl struct{ component }

func NewRichLinkEl() *RichLinkEl {
	r := &RichLinkEl{}
	r.init(r)
	r.fixed("type", "link")
	r.field("url", validator.Required())
	r.field("text")
	r.field("unsafe")
	r.field("style", validator.Typed(richStyleType))
	r.validate(validator.StyledCorrectly(false))
	return r
}

func (r *RichLinkEl) URL(url string) *RichLinkEl {
	r.set("url", url)
	return r
}

func (r *RichLinkEl) Text(text string) *RichLinkEl {
	r.set("text", text)
	return r
}

func (r *RichLinkEl) Unsafe(unsafe bool) *RichLinkEl {
	r.set("unsafe", unsafe)
	return r
}

func (r *RichLinkEl) Style(style *RichStyle) *RichLinkEl {
	r.set("style", style)
	return r
}

// RichTextEl is a run of styled text.
type RichTextEl struct{ component }

func NewRichTextEl() *RichTextEl {
	r := &RichTextEl{}
	r.init(r)
	r.fixed("type", "text")
	r.field("text", validator.Required())
	r.field("style", validator.Typed(richStyleType))
	r.validate(validator.StyledCorrectly(false))
	return r
}

func (r *RichTextEl) Text(text string) *RichTextEl {
	r.set("text", text)
	return r
}

func (r *RichTextEl) Style(style *RichStyle) *RichTextEl {
	r.set("style", style)
	return r
}

// RichUserEl mentions a user.
type RichUserEl struct{ component }

func NewRichUserEl() *RichUserEl {
	r := &RichUserEl{}
	r.init(r)
	r.fixed("type", "user")
	r.field("user_id", validator.Required())
	r.field("style", validator.Typed(richStyleType))
	r.validate(validator.StyledCorrectly(true))
	return r
}

func (r *RichUserEl) UserID(id string) *RichUserEl {
	r.set("user_id", id)
	return r
}

func (r *RichUserEl) Style(style *RichStyle) *RichUserEl {
	r.set("style", style)
	return r
}

// RichUserGroupEl mentions a user group.
type RichUserGroupEl struct{ component }

func NewRichUserGroupEl() *RichUserGroupEl {
	r := &RichUserGroupEl{}
	r.init(r)
	r.fixed("type", "usergroup")
	r.field("usergroup_id", validator.Required())
	r.field("style", validator.Typed(richStyleType))
	r.validate(validator.StyledCorrectly(true))
	return r
}

func (r *RichUserGroupEl) UsergroupID(id string) *RichUserGroupEl {
	r.set("usergroup_id", id)
	return r
}

func (r *RichUserGroupEl) Style(style *RichStyle) *RichUserGroupEl {
	r.set("style", style)
	return r
}

// RichTextSection is a paragraph of inline rich text elements.
type RichTextSection struct{ component }

func NewRichTextSection() *RichTextSection {
	r := &RichTextSection{}
	r.init(r)
	r.fixed("type", "rich_text_section")
	r.listField("elements", true, 1, validator.DefaultMaxLength, richInlineTypes...)
	return r
}

func (r *RichTextSection) Elements(elements ...Buildable) *RichTextSection {
	r.set("elements", list(elements))
	return r
}

func (r *RichTextSection) AddElement(element Buildable) *RichTextSection {
	r.appendTo("elements", element)
	return r
}

// RichTextList is a bulleted or ordered list of sections.
type RichTextList struct{ component }

func NewRichTextList() *RichTextList {
	r := &RichTextList{}
	r.init(r)
	r.fixed("type", "rich_text_list")
	r.field("style", validator.Required(), validator.Strings(ListBullet, ListOrdered))
	r.listField("elements", true, 1, validator.DefaultMaxLength, validator.TypeOf[*RichTextSection]())
	r.field("indent", validator.MinInt(0))
	r.field("offset", validator.MinInt(0))
	r.field("border", validator.MinInt(0))
	return r
}

func (r *RichTextList) Style(style string) *RichTextList {
	r.set("style", style)
	return r
}

func (r *RichTextList) Elements(sections ...*RichTextSection) *RichTextList {
	r.set("elements", list(sections))
	return r
}

func (r *RichTextList) AddElement(section *RichTextSection) *RichTextList {
	r.appendTo("elements", section)
	return r
}

func (r *RichTextList) Indent(indent int) *RichTextList {
	r.set("indent", indent)
	return r
}

func (r *RichTextList) Offset(offset int) *RichTextList {
	r.set("offset", offset)
	return r
}

func (r *RichTextList) Border(border int) *RichTextList {
	r.set("border", border)
	return r
}

// RichTextPreformatted is a code block of inline elements.
type RichTextPreformatted struct{ component }

func NewRichTextPreformatted() *RichTextPreformatted {
	r := &RichTextPreformatted{}
	r.init(r)
	r.fixed("type", "rich_text_preformatted")
	r.listField("elements", true, 1, validator.DefaultMaxLength, richInlineTypes...)
	r.field("border", validator.MinInt(0))
	return r
}

func (r *RichTextPreformatted) Elements(elements ...Buildable) *RichTextPreformatted {
	r.set("elements", list(elements))
	return r
}

func (r *RichTextPreformatted) AddElement(element Buildable) *RichTextPreformatted {
	r.appendTo("elements", element)
	return r
}

func (r *RichTextPreformatted) Border(border int) *RichTextPreformatted {
	r.set("border", border)
	return r
}

// RichTextQuote is a quoted run of inline elements.
type RichTextQuote struct{ component }

func NewRichTextQuote() *RichTextQuote {
	r := &RichTextQuote{}
	r.init(r)
	r.fixed("type", "rich_text_quote")
	r.listField("elements", true, 1, validator.DefaultMaxLength, richInlineTypes...)
	r.field("border", validator.MinInt(0))
	return r
}

func (r *RichTextQuote) Elements(elements ...Buildable) *RichTextQuote {
	r.set("elements", list(elements))
	return r
}

func (r *RichTextQuote) AddElement(element Buildable) *RichTextQuote {
	r.appendTo("elements", element)
	return r
}

func (r *RichTextQuote) Border(border int) *RichTextQuote {
	r.set("border", border)
	return r
}
