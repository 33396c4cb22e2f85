package blockkit

import (
	"time"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

var (
	optionOrGroupType = []any{(*Option)(nil), (*OptionGroup)(nil)}
	optionGroupType   = validator.TypeOf[*OptionGroup]()
	stringType        = validator.TypeOf[string]()
)

// Button is an interactive button element.
type Button struct{ component }

func NewButton() *Button {
	b := &Button{}
	b.init(b)
	b.fixed("type", "button")
	b.plainTextField("text", 1, 75, true)
	b.actionIDField()
	b.field("url", validator.Length(1, 3000))
	b.field("value", validator.Length(1, 2000))
	b.field("style", validator.Strings(StylePrimary, StyleDanger))
	b.confirmField()
	b.field("accessibility_label", validator.Length(1, 75))
	return b
}

func (b *Button) Text(text any) *Button {
	b.set("text", plainText(text))
	return b
}

func (b *Button) ActionID(id string) *Button {
	b.set("action_id", id)
	return b
}

func (b *Button) URL(url string) *Button {
	b.set("url", url)
	return b
}

func (b *Button) Value(value string) *Button {
	b.set("value", value)
	return b
}

func (b *Button) Style(style string) *Button {
	b.set("style", style)
	return b
}

func (b *Button) Confirm(confirm *Confirm) *Button {
	b.set("confirm", confirm)
	return b
}

func (b *Button) AccessibilityLabel(label string) *Button {
	b.set("accessibility_label", label)
	return b
}

// Checkboxes is a group of checkboxes.
type Checkboxes struct{ component }

func NewCheckboxes() *Checkboxes {
	c := &Checkboxes{}
	c.init(c)
	c.fixed("type", "checkboxes")
	c.actionIDField()
	c.listField("options", true, 1, 10, optionType)
	c.listField("initial_options", false, 1, 10, optionType)
	c.confirmField()
	c.focusOnLoadField()
	c.validate(validator.Within("initial_options", "options"))
	return c
}

func (c *Checkboxes) ActionID(id string) *Checkboxes {
	c.set("action_id", id)
	return c
}

func (c *Checkboxes) Options(options ...*Option) *Checkboxes {
	c.set("options", list(options))
	return c
}

func (c *Checkboxes) AddOption(option *Option) *Checkboxes {
	c.appendTo("options", option)
	return c
}

func (c *Checkboxes) InitialOptions(options ...*Option) *Checkboxes {
	c.set("initial_options", list(options))
	return c
}

func (c *Checkboxes) AddInitialOption(option *Option) *Checkboxes {
	c.appendTo("initial_options", option)
	return c
}

func (c *Checkboxes) Confirm(confirm *Confirm) *Checkboxes {
	c.set("confirm", confirm)
	return c
}

func (c *Checkboxes) FocusOnLoad(focus bool) *Checkboxes {
	c.set("focus_on_load", focus)
	return c
}

// DatePicker lets users pick a calendar date.
type DatePicker struct{ component }

func NewDatePicker() *DatePicker {
	d := &DatePicker{}
	d.init(d)
	d.fixed("type", "datepicker")
	d.actionIDField()
	d.field("initial_date", validator.IsoDate()).kind = kindDate
	d.confirmField()
	d.focusOnLoadField()
	d.placeholderField()
	return d
}

func (d *DatePicker) ActionID(id string) *DatePicker {
	d.set("action_id", id)
	return d
}

// InitialDate accepts a time.Time or a YYYY-MM-DD string.
func (d *DatePicker) InitialDate(date any) *DatePicker {
	d.set("initial_date", date)
	return d
}

func (d *DatePicker) Confirm(confirm *Confirm) *DatePicker {
	d.set("confirm", confirm)
	return d
}

func (d *DatePicker) FocusOnLoad(focus bool) *DatePicker {
	d.set("focus_on_load", focus)
	return d
}

func (d *DatePicker) Placeholder(placeholder any) *DatePicker {
	d.set("placeholder", plainText(placeholder))
	return d
}

// DatetimePicker lets users pick a date and a time.
type DatetimePicker struct{ component }

func NewDatetimePicker() *DatetimePicker {
	d := &DatetimePicker{}
	d.init(d)
	d.fixed("type", "datetimepicker")
	d.actionIDField()
	d.field("initial_date_time", validator.UnixTimestamp()).kind = kindDatetime
	d.confirmField()
	d.focusOnLoadField()
	d.placeholderField()
	return d
}

func (d *DatetimePicker) ActionID(id string) *DatetimePicker {
	d.set("action_id", id)
	return d
}

// InitialDateTime accepts a time.Time or a Unix timestamp in seconds.
func (d *DatetimePicker) InitialDateTime(datetime any) *DatetimePicker {
	d.set("initial_date_time", datetime)
	return d
}

func (d *DatetimePicker) Confirm(confirm *Confirm) *DatetimePicker {
	d.set("confirm", confirm)
	return d
}

func (d *DatetimePicker) FocusOnLoad(focus bool) *DatetimePicker {
	d.set("focus_on_load", focus)
	return d
}

func (d *DatetimePicker) Placeholder(placeholder any) *DatetimePicker {
	d.set("placeholder", plainText(placeholder))
	return d
}

// EmailInput is a single-line email input.
type EmailInput struct{ component }

func NewEmailInput() *EmailInput {
	e := &EmailInput{}
	e.init(e)
	e.fixed("type", "email_text_input")
	e.actionIDField()
	e.field("initial_value")
	e.dispatchActionConfigField()
	e.focusOnLoadField()
	e.placeholderField()
	return e
}

func (e *EmailInput) ActionID(id string) *EmailInput {
	e.set("action_id", id)
	return e
}

func (e *EmailInput) InitialValue(value string) *EmailInput {
	e.set("initial_value", value)
	return e
}

func (e *EmailInput) DispatchActionConfig(config *DispatchActionConfig) *EmailInput {
	e.set("dispatch_action_config", config)
	return e
}

func (e *EmailInput) FocusOnLoad(focus bool) *EmailInput {
	e.set("focus_on_load", focus)
	return e
}

func (e *EmailInput) Placeholder(placeholder any) *EmailInput {
	e.set("placeholder", plainText(placeholder))
	return e
}

// FileInput lets users upload files.
type FileInput struct{ component }

func NewFileInput() *FileInput {
	f := &FileInput{}
	f.init(f)
	f.fixed("type", "file_input")
	f.actionIDField()
	f.field("filetypes", validator.Typed(stringType))
	f.field("max_files", validator.Ints(1, 10))
	return f
}

func (f *FileInput) ActionID(id string) *FileInput {
	f.set("action_id", id)
	return f
}

func (f *FileInput) Filetypes(types ...string) *FileInput {
	f.set("filetypes", list(types))
	return f
}

func (f *FileInput) MaxFiles(n int) *FileInput {
	f.set("max_files", n)
	return f
}

// ImageEl is an image element, used inside context blocks and as an accessory.
type ImageEl struct{ component }

func NewImageEl() *ImageEl {
	i := &ImageEl{}
	i.init(i)
	i.fixed("type", "image")
	i.field("alt_text", validator.Required(), validator.Length(1, 2000))
	i.field("image_url", validator.Length(1, 3000))
	i.field("slack_file", validator.Typed(validator.TypeOf[*SlackFile]()))
	i.validate(validator.OnlyOne("image_url", "slack_file"))
	return i
}

func (i *ImageEl) AltText(text string) *ImageEl {
	i.set("alt_text", text)
	return i
}

func (i *ImageEl) ImageURL(url string) *ImageEl {
	i.set("image_url", url)
	return i
}

func (i *ImageEl) SlackFile(file *SlackFile) *ImageEl {
	i.set("slack_file", file)
	return i
}

// StaticSelect is a single-select menu over a static list of options.
type StaticSelect struct{ component }

func NewStaticSelect() *StaticSelect {
	s := &StaticSelect{}
	s.init(s)
	s.fixed("type", "static_select")
	s.actionIDField()
	s.listField("options", false, 1, 100, optionType)
	s.listField("option_groups", false, 1, 100, optionGroupType)
	s.field("initial_option", validator.Typed(typesOf(optionOrGroupType...)...))
	s.confirmField()
	s.focusOnLoadField()
	s.placeholderField()
	s.validate(
		validator.OnlyOne("options", "option_groups"),
		validator.Within("initial_option", "options"),
	)
	return s
}

func (s *StaticSelect) ActionID(id string) *StaticSelect {
	s.set("action_id", id)
	return s
}

func (s *StaticSelect) Options(options ...*Option) *StaticSelect {
	s.set("options", list(options))
	return s
}

func (s *StaticSelect) AddOption(option *Option) *StaticSelect {
	s.appendTo("options", option)
	return s
}

func (s *StaticSelect) OptionGroups(groups ...*OptionGroup) *StaticSelect {
	s.set("option_groups", list(groups))
	return s
}

func (s *StaticSelect) AddOptionGroup(group *OptionGroup) *StaticSelect {
	s.appendTo("option_groups", group)
	return s
}

// InitialOption accepts an *Option or an *OptionGroup.
func (s *StaticSelect) InitialOption(option Buildable) *StaticSelect {
	s.set("initial_option", option)
	return s
}

func (s *StaticSelect) Confirm(confirm *Confirm) *StaticSelect {
	s.set("confirm", confirm)
	return s
}

func (s *StaticSelect) FocusOnLoad(focus bool) *StaticSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *StaticSelect) Placeholder(placeholder any) *StaticSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// MultiStaticSelect is a multi-select menu over a static list of options.
type MultiStaticSelect struct{ component }

func NewMultiStaticSelect() *MultiStaticSelect {
	s := &MultiStaticSelect{}
	s.init(s)
	s.fixed("type", "multi_static_select")
	s.actionIDField()
	s.listField("options", false, 1, 100, optionType)
	s.listField("option_groups", false, 1, 100, optionGroupType)
	s.listField("initial_options", false, 1, 100, typesOf(optionOrGroupType...)...)
	s.confirmField()
	s.maxSelectedItemsField()
	s.focusOnLoadField()
	s.placeholderField()
	s.validate(
		validator.OnlyOne("options", "option_groups"),
		validator.Within("initial_options", "options"),
	)
	return s
}

func (s *MultiStaticSelect) ActionID(id string) *MultiStaticSelect {
	s.set("action_id", id)
	return s
}

func (s *MultiStaticSelect) Options(options ...*Option) *MultiStaticSelect {
	s.set("options", list(options))
	return s
}

func (s *MultiStaticSelect) AddOption(option *Option) *MultiStaticSelect {
	s.appendTo("options", option)
	return s
}

func (s *MultiStaticSelect) OptionGroups(groups ...*OptionGroup) *MultiStaticSelect {
	s.set("option_groups", list(groups))
	return s
}

func (s *MultiStaticSelect) AddOptionGroup(group *OptionGroup) *MultiStaticSelect {
	s.appendTo("option_groups", group)
	return s
}

// InitialOptions accepts *Option or *OptionGroup values.
func (s *MultiStaticSelect) InitialOptions(options ...Buildable) *MultiStaticSelect {
	s.set("initial_options", list(options))
	return s
}

func (s *MultiStaticSelect) AddInitialOption(option Buildable) *MultiStaticSelect {
	s.appendTo("initial_options", option)
	return s
}

func (s *MultiStaticSelect) Confirm(confirm *Confirm) *MultiStaticSelect {
	s.set("confirm", confirm)
	return s
}

func (s *MultiStaticSelect) MaxSelectedItems(n int) *MultiStaticSelect {
	s.set("max_selected_items", n)
	return s
}

func (s *MultiStaticSelect) FocusOnLoad(focus bool) *MultiStaticSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *MultiStaticSelect) Placeholder(placeholder any) *MultiStaticSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// ExternalSelect is a single-select menu whose options come from an external source.
type ExternalSelect struct{ component }

func NewExternalSelect() *ExternalSelect {
	s := &ExternalSelect{}
	s.init(s)
	s.fixed("type", "external_select")
	s.actionIDField()
	s.field("min_query_length", validator.MinInt(0))
	s.field("initial_option", validator.Typed(typesOf(optionOrGroupType...)...))
	s.confirmField()
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *ExternalSelect) ActionID(id string) *ExternalSelect {
	s.set("action_id", id)
	return s
}

func (s *ExternalSelect) MinQueryLength(n int) *ExternalSelect {
	s.set("min_query_length", n)
	return s
}

// InitialOption accepts an *Option or an *OptionGroup.
func (s *ExternalSelect) InitialOption(option Buildable) *ExternalSelect {
	s.set("initial_option", option)
	return s
}

func (s *ExternalSelect) Confirm(confirm *Confirm) *ExternalSelect {
	s.set("confirm", confirm)
	return s
}

func (s *ExternalSelect) FocusOnLoad(focus bool) *ExternalSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *ExternalSelect) Placeholder(placeholder any) *ExternalSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// MultiExternalSelect is a multi-select menu backed by an external source.
type MultiExternalSelect struct{ component }

func NewMultiExternalSelect() *MultiExternalSelect {
	s := &MultiExternalSelect{}
	s.init(s)
	s.fixed("type", "multi_external_select")
	s.actionIDField()
	s.field("min_query_length", validator.MinInt(0))
	s.listField("initial_options", false, 1, 100, typesOf(optionOrGroupType...)...)
	s.confirmField()
	s.maxSelectedItemsField()
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *MultiExternalSelect) ActionID(id string) *MultiExternalSelect {
	s.set("action_id", id)
	return s
}

func (s *MultiExternalSelect) MinQueryLength(n int) *MultiExternalSelect {
	s.set("min_query_length", n)
	return s
}

// InitialOptions accepts *Option or *OptionGroup values.
func (s *MultiExternalSelect) InitialOptions(options ...Buildable) *MultiExternalSelect {
	s.set("initial_options", list(options))
	return s
}

func (s *MultiExternalSelect) AddInitialOption(option Buildable) *MultiExternalSelect {
	s.appendTo("initial_options", option)
	return s
}

func (s *MultiExternalSelect) Confirm(confirm *Confirm) *MultiExternalSelect {
	s.set("confirm", confirm)
	return s
}

func (s *MultiExternalSelect) MaxSelectedItems(n int) *MultiExternalSelect {
	s.set("max_selected_items", n)
	return s
}

func (s *MultiExternalSelect) FocusOnLoad(focus bool) *MultiExternalSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *MultiExternalSelect) Placeholder(placeholder any) *MultiExternalSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// UsersSelect is a single-select menu over workspace users.
type UsersSelect struct{ component }

func NewUsersSelect() *UsersSelect {
	s := &UsersSelect{}
	s.init(s)
	s.fixed("type", "users_select")
	s.actionIDField()
	s.field("initial_user")
	s.confirmField()
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *UsersSelect) ActionID(id string) *UsersSelect {
	s.set("action_id", id)
	return s
}

func (s *UsersSelect) InitialUser(user string) *UsersSelect {
	s.set("initial_user", user)
	return s
}

func (s *UsersSelect) Confirm(confirm *Confirm) *UsersSelect {
	s.set("confirm", confirm)
	return s
}

func (s *UsersSelect) FocusOnLoad(focus bool) *UsersSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *UsersSelect) Placeholder(placeholder any) *UsersSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// MultiUsersSelect is a multi-select menu over workspace users.
type MultiUsersSelect struct{ component }

func NewMultiUsersSelect() *MultiUsersSelect {
	s := &MultiUsersSelect{}
	s.init(s)
	s.fixed("type", "multi_users_select")
	s.actionIDField()
	s.field("initial_users", validator.Typed(stringType))
	s.confirmField()
	s.maxSelectedItemsField()
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *MultiUsersSelect) ActionID(id string) *MultiUsersSelect {
	s.set("action_id", id)
	return s
}

func (s *MultiUsersSelect) InitialUsers(users ...string) *MultiUsersSelect {
	s.set("initial_users", list(users))
	return s
}

func (s *MultiUsersSelect) AddInitialUser(user string) *MultiUsersSelect {
	s.appendTo("initial_users", user)
	return s
}

func (s *MultiUsersSelect) Confirm(confirm *Confirm) *MultiUsersSelect {
	s.set("confirm", confirm)
	return s
}

func (s *MultiUsersSelect) MaxSelectedItems(n int) *MultiUsersSelect {
	s.set("max_selected_items", n)
	return s
}

func (s *MultiUsersSelect) FocusOnLoad(focus bool) *MultiUsersSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *MultiUsersSelect) Placeholder(placeholder any) *MultiUsersSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// ConversationsSelect is a single-select menu over conversations.
type ConversationsSelect struct{ component }

func NewConversationsSelect() *ConversationsSelect {
	s := &ConversationsSelect{}
	s.init(s)
	s.fixed("type", "conversations_select")
	s.actionIDField()
	s.field("initial_conversation")
	s.field("default_to_current_conversation")
	s.confirmField()
	s.field("response_url_enabled")
	s.field("filter", validator.Typed(validator.TypeOf[*ConversationFilter]()))
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *ConversationsSelect) ActionID(id string) *ConversationsSelect {
	s.set("action_id", id)
	return s
}

func (s *ConversationsSelect) InitialConversation(conversation string) *ConversationsSelect {
	s.set("initial_conversation", conversation)
	return s
}

func (s *ConversationsSelect) DefaultToCurrentConversation(enabled bool) *ConversationsSelect {
	s.set("default_to_current_conversation", enabled)
	return s
}

func (s *ConversationsSelect) Confirm(confirm *Confirm) *ConversationsSelect {
	s.set("confirm", confirm)
	return s
}

func (s *ConversationsSelect) ResponseURLEnabled(enabled bool) *ConversationsSelect {
	s.set("response_url_enabled", enabled)
	return s
}

func (s *ConversationsSelect) Filter(filter *ConversationFilter) *ConversationsSelect {
	s.set("filter", filter)
	return s
}

func (s *ConversationsSelect) FocusOnLoad(focus bool) *ConversationsSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *ConversationsSelect) Placeholder(placeholder any) *ConversationsSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// MultiConversationsSelect is a multi-select menu over conversations.
type MultiConversationsSelect struct{ component }

func NewMultiConversationsSelect() *MultiConversationsSelect {
	s := &MultiConversationsSelect{}
	s.init(s)
	s.fixed("type", "multi_conversations_select")
	s.actionIDField()
	s.field("initial_conversations", validator.Typed(stringType))
	s.field("default_to_current_conversation")
	s.confirmField()
	s.maxSelectedItemsField()
	s.field("filter", validator.Typed(validator.TypeOf[*ConversationFilter]()))
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *MultiConversationsSelect) ActionID(id string) *MultiConversationsSelect {
	s.set("action_id", id)
	return s
}

func (s *MultiConversationsSelect) InitialConversations(conversations ...string) *MultiConversationsSelect {
	s.set("initial_conversations", list(conversations))
	return s
}

func (s *MultiConversationsSelect) AddInitialConversation(conversation string) *MultiConversationsSelect {
	s.appendTo("initial_conversations", conversation)
	return s
}

func (s *MultiConversationsSelect) DefaultToCurrentConversation(enabled bool) *MultiConversationsSelect {
	s.set("default_to_current_conversation", enabled)
	return s
}

func (s *MultiConversationsSelect) Confirm(confirm *Confirm) *MultiConversationsSelect {
	s.set("confirm", confirm)
	return s
}

func (s *MultiConversationsSelect) MaxSelectedItems(n int) *MultiConversationsSelect {
	s.set("max_selected_items", n)
	return s
}

func (s *MultiConversationsSelect) Filter(filter *ConversationFilter) *MultiConversationsSelect {
	s.set("filter", filter)
	return s
}

func (s *MultiConversationsSelect) FocusOnLoad(focus bool) *MultiConversationsSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *MultiConversationsSelect) Placeholder(placeholder any) *MultiConversationsSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// ChannelsSelect is a single-select menu over public channels.
type ChannelsSelect struct{ component }

func NewChannelsSelect() *ChannelsSelect {
	s := &ChannelsSelect{}
	s.init(s)
	s.fixed("type", "channels_select")
	s.actionIDField()
	s.field("initial_channel")
	s.confirmField()
	s.field("response_url_enabled")
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *ChannelsSelect) ActionID(id string) *ChannelsSelect {
	s.set("action_id", id)
	return s
}

func (s *ChannelsSelect) InitialChannel(channel string) *ChannelsSelect {
	s.set("initial_channel", channel)
	return s
}

func (s *ChannelsSelect) Confirm(confirm *Confirm) *ChannelsSelect {
	s.set("confirm", confirm)
	return s
}

func (s *ChannelsSelect) ResponseURLEnabled(enabled bool) *ChannelsSelect {
	s.set("response_url_enabled", enabled)
	return s
}

func (s *ChannelsSelect) FocusOnLoad(focus bool) *ChannelsSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *ChannelsSelect) Placeholder(placeholder any) *ChannelsSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// MultiChannelsSelect is a multi-select menu over public channels.
type MultiChannelsSelect struct{ component }

func NewMultiChannelsSelect() *MultiChannelsSelect {
	s := &MultiChannelsSelect{}
	s.init(s)
	s.fixed("type", "multi_channels_select")
	s.actionIDField()
	s.field("initial_channels", validator.Typed(stringType))
	s.confirmField()
	s.maxSelectedItemsField()
	s.focusOnLoadField()
	s.placeholderField()
	return s
}

func (s *MultiChannelsSelect) ActionID(id string) *MultiChannelsSelect {
	s.set("action_id", id)
	return s
}

func (s *MultiChannelsSelect) InitialChannels(channels ...string) *MultiChannelsSelect {
	s.set("initial_channels", list(channels))
	return s
}

func (s *MultiChannelsSelect) AddInitialChannel(channel string) *MultiChannelsSelect {
	s.appendTo("initial_channels", channel)
	return s
}

func (s *MultiChannelsSelect) Confirm(confirm *Confirm) *MultiChannelsSelect {
	s.set("confirm", confirm)
	return s
}

func (s *MultiChannelsSelect) MaxSelectedItems(n int) *MultiChannelsSelect {
	s.set("max_selected_items", n)
	return s
}

func (s *MultiChannelsSelect) FocusOnLoad(focus bool) *MultiChannelsSelect {
	s.set("focus_on_load", focus)
	return s
}

func (s *MultiChannelsSelect) Placeholder(placeholder any) *MultiChannelsSelect {
	s.set("placeholder", plainText(placeholder))
	return s
}

// NumberInput is a numeric input. Values are emitted as strings.
type NumberInput struct{ component }

func NewNumberInput() *NumberInput {
	n := &NumberInput{}
	n.init(n)
	n.fixed("type", "number_input")
	n.field("is_decimal_allowed", validator.Required())
	n.actionIDField()
	n.field("initial_value", validator.Numeric()).Stringify = true
	n.field("min_value", validator.Numeric()).Stringify = true
	n.field("max_value", validator.Numeric()).Stringify = true
	n.dispatchActionConfigField()
	n.focusOnLoadField()
	n.placeholderField()
	n.validate(
		validator.Ranging("initial_value", "min_value", "max_value"),
		validator.DecimalAllowed("is_decimal_allowed", "initial_value", "min_value", "max_value"),
	)
	return n
}

func (n *NumberInput) IsDecimalAllowed(allowed bool) *NumberInput {
	n.set("is_decimal_allowed", allowed)
	return n
}

func (n *NumberInput) ActionID(id string) *NumberInput {
	n.set("action_id", id)
	return n
}

// InitialValue accepts a number or a numeric string.
func (n *NumberInput) InitialValue(value any) *NumberInput {
	n.set("initial_value", number(value))
	return n
}

// MinValue accepts a number or a numeric string.
func (n *NumberInput) MinValue(value any) *NumberInput {
	n.set("min_value", number(value))
	return n
}

// MaxValue accepts a number or a numeric string.
func (n *NumberInput) MaxValue(value any) *NumberInput {
	n.set("max_value", number(value))
	return n
}

func (n *NumberInput) DispatchActionConfig(config *DispatchActionConfig) *NumberInput {
	n.set("dispatch_action_config", config)
	return n
}

func (n *NumberInput) FocusOnLoad(focus bool) *NumberInput {
	n.set("focus_on_load", focus)
	return n
}

func (n *NumberInput) Placeholder(placeholder any) *NumberInput {
	n.set("placeholder", plainText(placeholder))
	return n
}

// Overflow is a compact menu of up to five options.
type Overflow struct{ component }

func NewOverflow() *Overflow {
	o := &Overflow{}
	o.init(o)
	o.fixed("type", "overflow")
	o.actionIDField()
	o.listField("options", true, 1, 5, optionType)
	o.confirmField()
	return o
}

func (o *Overflow) ActionID(id string) *Overflow {
	o.set("action_id", id)
	return o
}

func (o *Overflow) Options(options ...*Option) *Overflow {
	o.set("options", list(options))
	return o
}

func (o *Overflow) AddOption(option *Option) *Overflow {
	o.appendTo("options", option)
	return o
}

func (o *Overflow) Confirm(confirm *Confirm) *Overflow {
	o.set("confirm", confirm)
	return o
}

// PlainTextInput is a free-form text input.
type PlainTextInput struct{ component }

func NewPlainTextInput() *PlainTextInput {
	p := &PlainTextInput{}
	p.init(p)
	p.fixed("type", "plain_text_input")
	p.actionIDField()
	p.field("initial_value")
	p.field("multiline")
	p.field("min_length", validator.Ints(0, 3000))
	p.field("max_length", validator.Ints(1, 3000))
	p.dispatchActionConfigField()
	p.focusOnLoadField()
	p.placeholderField()
	p.validate(validator.Ranging("initial_value", "min_length", "max_length"))
	return p
}

func (p *PlainTextInput) ActionID(id string) *PlainTextInput {
	p.set("action_id", id)
	return p
}

func (p *PlainTextInput) InitialValue(value string) *PlainTextInput {
	p.set("initial_value", value)
	return p
}

func (p *PlainTextInput) Multiline(multiline bool) *PlainTextInput {
	p.set("multiline", multiline)
	return p
}

func (p *PlainTextInput) MinLength(n int) *PlainTextInput {
	p.set("min_length", n)
	return p
}

func (p *PlainTextInput) MaxLength(n int) *PlainTextInput {
	p.set("max_length", n)
	return p
}

func (p *PlainTextInput) DispatchActionConfig(config *DispatchActionConfig) *PlainTextInput {
	p.set("dispatch_action_config", config)
	return p
}

func (p *PlainTextInput) FocusOnLoad(focus bool) *PlainTextInput {
	p.set("focus_on_load", focus)
	return p
}

func (p *PlainTextInput) Placeholder(placeholder any) *PlainTextInput {
	p.set("placeholder", plainText(placeholder))
	return p
}

// RadioButtons is a group of mutually exclusive options.
type RadioButtons struct{ component }

func NewRadioButtons() *RadioButtons {
	r := &RadioButtons{}
	r.init(r)
	r.fixed("type", "radio_buttons")
	r.actionIDField()
	r.listField("options", true, 1, 10, optionType)
	r.field("initial_option", validator.Typed(optionType))
	r.confirmField()
	r.focusOnLoadField()
	r.validate(validator.Within("initial_option", "options"))
	return r
}

func (r *RadioButtons) ActionID(id string) *RadioButtons {
	r.set("action_id", id)
	return r
}

func (r *RadioButtons) Options(options ...*Option) *RadioButtons {
	r.set("options", list(options))
	return r
}

func (r *RadioButtons) AddOption(option *Option) *RadioButtons {
	r.appendTo("options", option)
	return r
}

func (r *RadioButtons) InitialOption(option *Option) *RadioButtons {
	r.set("initial_option", option)
	return r
}

func (r *RadioButtons) Confirm(confirm *Confirm) *RadioButtons {
	r.set("confirm", confirm)
	return r
}

func (r *RadioButtons) FocusOnLoad(focus bool) *RadioButtons {
	r.set("focus_on_load", focus)
	return r
}

// RichTextInput is a rich text editor input.
type RichTextInput struct{ component }

func NewRichTextInput() *RichTextInput {
	r := &RichTextInput{}
	r.init(r)
	r.fixed("type", "rich_text_input")
	r.actionIDField()
	r.field("initial_value", validator.Typed(validator.TypeOf[*RichText]()))
	r.dispatchActionConfigField()
	r.focusOnLoadField()
	r.placeholderField()
	return r
}

func (r *RichTextInput) ActionID(id string) *RichTextInput {
	r.set("action_id", id)
	return r
}

func (r *RichTextInput) InitialValue(value *RichText) *RichTextInput {
	r.set("initial_value", value)
	return r
}

func (r *RichTextInput) DispatchActionConfig(config *DispatchActionConfig) *RichTextInput {
	r.set("dispatch_action_config", config)
	return r
}

func (r *RichTextInput) FocusOnLoad(focus bool) *RichTextInput {
	r.set("focus_on_load", focus)
	return r
}

func (r *RichTextInput) Placeholder(placeholder any) *RichTextInput {
	r.set("placeholder", plainText(placeholder))
	return r
}

// TimePicker lets users pick a time of day.
type TimePicker struct{ component }

func NewTimePicker() *TimePicker {
	t := &TimePicker{}
	t.init(t)
	t.fixed("type", "timepicker")
	t.actionIDField()
	t.field("initial_time", validator.TimeOfDay()).kind = kindTime
	t.confirmField()
	t.focusOnLoadField()
	t.placeholderField()
	t.field("timezone", validator.Typed(stringType, validator.TypeOf[*time.Location]())).kind = kindTimezone
	return t
}

func (t *TimePicker) ActionID(id string) *TimePicker {
	t.set("action_id", id)
	return t
}

// InitialTime accepts a time.Time or an HH:MM string.
func (t *TimePicker) InitialTime(initial any) *TimePicker {
	t.set("initial_time", initial)
	return t
}

func (t *TimePicker) Confirm(confirm *Confirm) *TimePicker {
	t.set("confirm", confirm)
	return t
}

func (t *TimePicker) FocusOnLoad(focus bool) *TimePicker {
	t.set("focus_on_load", focus)
	return t
}

func (t *TimePicker) Placeholder(placeholder any) *TimePicker {
	t.set("placeholder", plainText(placeholder))
	return t
}

// Timezone accepts an IANA name or a *time.Location.
func (t *TimePicker) Timezone(timezone any) *TimePicker {
	t.set("timezone", timezone)
	return t
}

// URLInput is a single-line URL input.
type URLInput struct{ component }

func NewURLInput() *URLInput {
	u := &URLInput{}
	u.init(u)
	u.fixed("type", "url_text_input")
	u.actionIDField()
	u.field("initial_value")
	u.dispatchActionConfigField()
	u.focusOnLoadField()
	u.placeholderField()
	return u
}

func (u *URLInput) ActionID(id string) *URLInput {
	u.set("action_id", id)
	return u
}

func (u *URLInput) InitialValue(value string) *URLInput {
	u.set("initial_value", value)
	return u
}

func (u *URLInput) DispatchActionConfig(config *DispatchActionConfig) *URLInput {
	u.set("dispatch_action_config", config)
	return u
}

func (u *URLInput) FocusOnLoad(focus bool) *URLInput {
	u.set("focus_on_load", focus)
	return u
}

func (u *URLInput) Placeholder(placeholder any) *URLInput {
	u.set("placeholder", plainText(placeholder))
	return u
}

// WorkflowButton starts a workflow when clicked.
type WorkflowButton struct{ component }

func NewWorkflowButton() *WorkflowButton {
	w := &WorkflowButton{}
	w.init(w)
	w.fixed("type", "workflow_button")
	w.plainTextField("text", 1, 75, true)
	w.field("workflow", validator.Required(), validator.Typed(validator.TypeOf[*Workflow]()))
	w.actionIDField()
	w.field("style", validator.Strings(StylePrimary, StyleDanger))
	w.field("accessibility_label", validator.Length(1, 75))
	return w
}

func (w *WorkflowButton) Text(text any) *WorkflowButton {
	w.set("text", plainText(text))
	return w
}

func (w *WorkflowButton) Workflow(workflow *Workflow) *WorkflowButton {
	w.set("workflow", workflow)
	return w
}

func (w *WorkflowButton) ActionID(id string) *WorkflowButton {
	w.set("action_id", id)
	return w
}

func (w *WorkflowButton) Style(style string) *WorkflowButton {
	w.set("style", style)
	return w
}

func (w *WorkflowButton) AccessibilityLabel(label string) *WorkflowButton {
	w.set("accessibility_label", label)
	return w
}
