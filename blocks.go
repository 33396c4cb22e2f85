package blockkit

import "github.com/imryche/blockkit-sub000/pkg/validator"

var (
	actionElementTypes = typesOf(
		(*Button)(nil),
		(*Checkboxes)(nil),
		(*DatePicker)(nil),
		(*DatetimePicker)(nil),
		(*Overflow)(nil),
		(*RadioButtons)(nil),
		(*StaticSelect)(nil),
		(*MultiStaticSelect)(nil),
		(*ExternalSelect)(nil),
		(*MultiExternalSelect)(nil),
		(*UsersSelect)(nil),
		(*MultiUsersSelect)(nil),
		(*ConversationsSelect)(nil),
		(*MultiConversationsSelect)(nil),
		(*ChannelsSelect)(nil),
		(*MultiChannelsSelect)(nil),
		(*RichTextInput)(nil),
		(*TimePicker)(nil),
		(*WorkflowButton)(nil),
	)

	accessoryTypes = typesOf(
		(*Button)(nil),
		(*Checkboxes)(nil),
		(*DatePicker)(nil),
		(*ImageEl)(nil),
		(*Overflow)(nil),
		(*RadioButtons)(nil),
		(*StaticSelect)(nil),
		(*MultiStaticSelect)(nil),
		(*ExternalSelect)(nil),
		(*MultiExternalSelect)(nil),
		(*UsersSelect)(nil),
		(*MultiUsersSelect)(nil),
		(*ConversationsSelect)(nil),
		(*MultiConversationsSelect)(nil),
		(*ChannelsSelect)(nil),
		(*MultiChannelsSelect)(nil),
		(*TimePicker)(nil),
		(*WorkflowButton)(nil),
	)

	inputElementTypes = typesOf(
		(*Checkboxes)(nil),
		(*DatePicker)(nil),
		(*DatetimePicker)(nil),
		(*EmailInput)(nil),
		(*FileInput)(nil),
		(*StaticSelect)(nil),
		(*MultiStaticSelect)(nil),
		(*ExternalSelect)(nil),
		(*MultiExternalSelect)(nil),
		(*UsersSelect)(nil),
		(*MultiUsersSelect)(nil),
		(*ConversationsSelect)(nil),
		(*MultiConversationsSelect)(nil),
		(*ChannelsSelect)(nil),
		(*MultiChannelsSelect)(nil),
		(*NumberInput)(nil),
		(*PlainTextInput)(nil),
		(*RadioButtons)(nil),
		(*RichTextInput)(nil),
		(*TimePicker)(nil),
		(*URLInput)(nil),
	)

	contextElementTypes = typesOf((*ImageEl)(nil), (*Text)(nil))
)

// Actions holds interactive elements.
type Actions struct{ component }

func NewActions() *Actions {
	a := &Actions{}
	a.init(a)
	a.fixed("type", "actions")
	a.listField("elements", true, 1, 25, actionElementTypes...)
	a.blockIDField()
	return a
}

func (a *Actions) Elements(elements ...Buildable) *Actions {
	a.set("elements", list(elements))
	return a
}

func (a *Actions) AddElement(element Buildable) *Actions {
	a.appendTo("elements", element)
	return a
}

func (a *Actions) BlockID(id string) *Actions {
	a.set("block_id", id)
	return a
}

// Context displays images and text in a compact line.
type Context struct{ component }

func NewContext() *Context {
	c := &Context{}
	c.init(c)
	c.fixed("type", "context")
	c.listField("elements", true, 1, 10, contextElementTypes...)
	c.blockIDField()
	return c
}

// Elements accepts *ImageEl and *Text values; strings become text objects.
func (c *Context) Elements(elements ...any) *Context {
	items := make([]any, len(elements))
	for i, element := range elements {
		items[i] = anyText(element)
	}
	c.set("elements", items)
	return c
}

func (c *Context) AddElement(element any) *Context {
	c.appendTo("elements", anyText(element))
	return c
}

func (c *Context) BlockID(id string) *Context {
	c.set("block_id", id)
	return c
}

// Divider is a horizontal rule.
type Divider struct{ component }

func NewDivider() *Divider {
	d := &Divider{}
	d.init(d)
	d.fixed("type", "divider")
	d.blockIDField()
	return d
}

func (d *Divider) BlockID(id string) *Divider {
	d.set("block_id", id)
	return d
}

// File displays a remote file.
type File struct{ component }

func NewFile() *File {
	f := &File{}
	f.init(f)
	f.fixed("type", "file")
	f.field("external_id", validator.Required())
	f.field("source", validator.Required(), validator.Strings("remote"))
	f.blockIDField()
	return f
}

func (f *File) ExternalID(id string) *File {
	f.set("external_id", id)
	return f
}

func (f *File) Source(source string) *File {
	f.set("source", source)
	return f
}

func (f *File) BlockID(id string) *File {
	f.set("block_id", id)
	return f
}

// Header displays large plain text.
type Header struct{ component }

func NewHeader() *Header {
	h := &Header{}
	h.init(h)
	h.fixed("type", "header")
	h.plainTextField("text", 1, 150, true)
	h.blockIDField()
	return h
}

func (h *Header) Text(text any) *Header {
	h.set("text", plainText(text))
	return h
}

func (h *Header) BlockID(id string) *Header {
	h.set("block_id", id)
	return h
}

// Image displays an image block.
type Image struct{ component }

func NewImage() *Image {
	i := &Image{}
	i.init(i)
	i.fixed("type", "image")
	i.field("alt_text", validator.Required(), validator.Length(1, 2000))
	i.field("image_url", validator.Length(1, 3000))
	i.field("slack_file", validator.Typed(validator.TypeOf[*SlackFile]()))
	i.plainTextField("title", 1, 2000, false)
	i.blockIDField()
	i.validate(validator.OnlyOne("image_url", "slack_file"))
	return i
}

func (i *Image) AltText(text string) *Image {
	i.set("alt_text", text)
	return i
}

func (i *Image) ImageURL(url string) *Image {
	i.set("image_url", url)
	return i
}

func (i *Image) SlackFile(file *SlackFile) *Image {
	i.set("slack_file", file)
	return i
}

func (i *Image) Title(title any) *Image {
	i.set("title", plainText(title))
	return i
}

func (i *Image) BlockID(id string) *Image {
	i.set("block_id", id)
	return i
}

// Input collects information from users through a single element.
type Input struct{ component }

func NewInput() *Input {
	in := &Input{}
	in.init(in)
	in.fixed("type", "input")
	in.plainTextField("label", 1, 2000, true)
	in.field("element", validator.Required(), validator.Typed(inputElementTypes...))
	in.field("dispatch_action")
	in.plainTextField("hint", 1, 2000, false)
	in.field("optional")
	in.blockIDField()
	return in
}

func (in *Input) Label(label any) *Input {
	in.set("label", plainText(label))
	return in
}

func (in *Input) Element(element Buildable) *Input {
	in.set("element", element)
	return in
}

func (in *Input) DispatchAction(dispatch bool) *Input {
	in.set("dispatch_action", dispatch)
	return in
}

func (in *Input) Hint(hint any) *Input {
	in.set("hint", plainText(hint))
	return in
}

func (in *Input) Optional(optional bool) *Input {
	in.set("optional", optional)
	return in
}

func (in *Input) BlockID(id string) *Input {
	in.set("block_id", id)
	return in
}

// Markdown renders standard markdown text.
type Markdown struct{ component }

func NewMarkdown() *Markdown {
	m := &Markdown{}
	m.init(m)
	m.fixed("type", "markdown")
	m.field("text", validator.Required(), validator.Length(1, 12000))
	m.blockIDField()
	return m
}

func (m *Markdown) Text(text string) *Markdown {
	m.set("text", text)
	return m
}

func (m *Markdown) BlockID(id string) *Markdown {
	m.set("block_id", id)
	return m
}

// RichText holds sections, lists, code blocks and quotes.
type RichText struct{ component }

func NewRichText() *RichText {
	r := &RichText{}
	r.init(r)
	r.fixed("type", "rich_text")
	r.listField("elements", true, 1, validator.DefaultMaxLength, richBlockTypes...)
	r.blockIDField()
	return r
}

func (r *RichText) Elements(elements ...Buildable) *RichText {
	r.set("elements", list(elements))
	return r
}

func (r *RichText) AddElement(element Buildable) *RichText {
	r.appendTo("elements", element)
	return r
}

func (r *RichText) BlockID(id string) *RichText {
	r.set("block_id", id)
	return r
}

// Section displays text, optional fields and an accessory element.
type Section struct{ component }

func NewSection() *Section {
	s := &Section{}
	s.init(s)
	s.fixed("type", "section")
	s.textField("text", 1, 3000, false)
	s.listField("fields", false, 1, 10, textType)
	s.field("accessory", validator.Typed(accessoryTypes...))
	s.field("expand")
	s.blockIDField()
	s.validate(validator.AtLeastOne("text", "fields"))
	return s
}

func (s *Section) Text(text any) *Section {
	s.set("text", anyText(text))
	return s
}

// Fields accepts *Text values; strings become text objects.
func (s *Section) Fields(fields ...any) *Section {
	items := make([]any, len(fields))
	for i, field := range fields {
		items[i] = anyText(field)
	}
	s.set("fields", items)
	return s
}

func (s *Section) AddField(field any) *Section {
	s.appendTo("fields", anyText(field))
	return s
}

func (s *Section) Accessory(accessory Buildable) *Section {
	s.set("accessory", accessory)
	return s
}

func (s *Section) Expand(expand bool) *Section {
	s.set("expand", expand)
	return s
}

func (s *Section) BlockID(id string) *Section {
	s.set("block_id", id)
	return s
}

// Video embeds a video player.
type Video struct{ component }

func NewVideo() *Video {
	v := &Video{}
	v.init(v)
	v.fixed("type", "video")
	v.plainTextField("title", 1, 200, true)
	v.field("title_url")
	v.plainTextField("description", 1, 200, false)
	v.field("alt_text", validator.Required())
	v.field("video_url", validator.Required())
	v.field("thumbnail_url", validator.Required())
	v.field("provider_icon_url")
	v.field("provider_name")
	v.field("author_name", validator.Length(1, 50))
	v.blockIDField()
	return v
}

func (v *Video) Title(title any) *Video {
	v.set("title", plainText(title))
	return v
}

func (v *Video) TitleURL(url string) *Video {
	v.set("title_url", url)
	return v
}

func (v *Video) Description(description any) *Video {
	v.set("description", plainText(description))
	return v
}

func (v *Video) AltText(text string) *Video {
	v.set("alt_text", text)
	return v
}

func (v *Video) VideoURL(url string) *Video {
	v.set("video_url", url)
	return v
}

func (v *Video) ThumbnailURL(url string) *Video {
	v.set("thumbnail_url", url)
	return v
}

func (v *Video) ProviderIconURL(url string) *Video {
	v.set("provider_icon_url", url)
	return v
}

func (v *Video) ProviderName(name string) *Video {
	v.set("provider_name", name)
	return v
}

func (v *Video) AuthorName(name string) *Video {
	v.set("author_name", name)
	return v
}

func (v *Video) BlockID(id string) *Video {
	v.set("block_id", id)
	return v
}
