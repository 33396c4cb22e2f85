package blockkit

import (
	"encoding/json"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

var blockTypes = typesOf(
	(*Actions)(nil),
	(*Context)(nil),
	(*Divider)(nil),
	(*File)(nil),
	(*Header)(nil),
	(*Image)(nil),
	(*Input)(nil),
	(*Markdown)(nil),
	(*RichText)(nil),
	(*Section)(nil),
	(*Video)(nil),
)

// Message is a chat message payload.
type Message struct{ component }

func NewMessage() *Message {
	m := &Message{}
	m.init(m)
	m.field("text", validator.Typed(stringType), validator.Length(1, 40000))
	m.listField("blocks", false, 1, 50, blockTypes...)
	m.field("thread_ts").Stringify = true
	m.field("mrkdwn")
	m.validate(validator.AtLeastOne("text", "blocks"))
	return m
}

func (m *Message) Text(text string) *Message {
	m.set("text", text)
	return m
}

func (m *Message) Blocks(blocks ...Buildable) *Message {
	m.set("blocks", list(blocks))
	return m
}

func (m *Message) AddBlock(block Buildable) *Message {
	m.appendTo("blocks", block)
	return m
}

// ThreadTS accepts the parent message timestamp as a string or a number.
func (m *Message) ThreadTS(ts any) *Message {
	m.set("thread_ts", ts)
	return m
}

func (m *Message) Mrkdwn(enabled bool) *Message {
	m.set("mrkdwn", enabled)
	return m
}

// Modal is a modal view.
type Modal struct{ component }

func NewModal() *Modal {
	m := &Modal{}
	m.init(m)
	m.fixed("type", "modal")
	m.plainTextField("title", 1, 24, true)
	m.listField("blocks", true, 1, 100, blockTypes...)
	m.plainTextField("submit", 1, 24, false)
	m.plainTextField("close", 1, 24, false)
	m.field("private_metadata", validator.Typed(stringType), validator.Length(0, 3000))
	m.field("callback_id", validator.Length(1, 255))
	m.field("clear_on_close")
	m.field("notify_on_close")
	m.field("external_id", validator.Length(1, 255))
	m.field("submit_disabled")
	return m
}

func (m *Modal) Title(title any) *Modal {
	m.set("title", plainText(title))
	return m
}

func (m *Modal) Blocks(blocks ...Buildable) *Modal {
	m.set("blocks", list(blocks))
	return m
}

func (m *Modal) AddBlock(block Buildable) *Modal {
	m.appendTo("blocks", block)
	return m
}

func (m *Modal) Submit(submit any) *Modal {
	m.set("submit", plainText(submit))
	return m
}

func (m *Modal) Close(close any) *Modal {
	m.set("close", plainText(close))
	return m
}

// PrivateMetadata stores strings as-is and JSON-encodes anything else.
func (m *Modal) PrivateMetadata(metadata any) *Modal {
	m.set("private_metadata", encodeMetadata(metadata))
	return m
}

func (m *Modal) CallbackID(id string) *Modal {
	m.set("callback_id", id)
	return m
}

func (m *Modal) ClearOnClose(clear bool) *Modal {
	m.set("clear_on_close", clear)
	return m
}

func (m *Modal) NotifyOnClose(notify bool) *Modal {
	m.set("notify_on_close", notify)
	return m
}

func (m *Modal) ExternalID(id string) *Modal {
	m.set("external_id", id)
	return m
}

func (m *Modal) SubmitDisabled(disabled bool) *Modal {
	m.set("submit_disabled", disabled)
	return m
}

// Home is an App Home tab view.
type Home struct{ component }

func NewHome() *Home {
	h := &Home{}
	h.init(h)
	h.fixed("type", "home")
	h.listField("blocks", true, 1, 100, blockTypes...)
	h.field("private_metadata", validator.Typed(stringType), validator.Length(0, 3000))
	h.field("callback_id", validator.Length(1, 255))
	h.field("external_id", validator.Length(1, 255))
	return h
}

func (h *Home) Blocks(blocks ...Buildable) *Home {
	h.set("blocks", list(blocks))
	return h
}

func (h *Home) AddBlock(block Buildable) *Home {
	h.appendTo("blocks", block)
	return h
}

// PrivateMetadata stores strings as-is and JSON-encodes anything else.
func (h *Home) PrivateMetadata(metadata any) *Home {
	h.set("private_metadata", encodeMetadata(metadata))
	return h
}

func (h *Home) CallbackID(id string) *Home {
	h.set("callback_id", id)
	return h
}

func (h *Home) ExternalID(id string) *Home {
	h.set("external_id", id)
	return h
}

// encodeMetadata leaves unencodable values untouched so validation reports them.
func encodeMetadata(metadata any) any {
	if metadata == nil {
		return nil
	}
	if s, ok := metadata.(string); ok {
		return s
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return metadata
	}
	return string(data)
}
