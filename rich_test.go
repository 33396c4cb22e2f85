package blockkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imryche/blockkit-sub000"
)

func TestRichText(t *testing.T) {
	t.Parallel()

	rich := blockkit.NewRichText().Elements(
		blockkit.NewRichTextSection().Elements(
			blockkit.NewRichTextEl().Text("Hello ").Style(blockkit.NewRichStyle().Bold(true)),
			blockkit.NewRichUserEl().UserID("U123"),
			blockkit.NewRichEmojiEl().Name("wave"),
		),
		blockkit.NewRichTextList().Style(blockkit.ListBullet).Indent(1).Elements(
			blockkit.NewRichTextSection().AddElement(blockkit.NewRichLinkEl().URL("https://example.com").Text("site")),
		),
		blockkit.NewRichTextPreformatted().Border(1).AddElement(blockkit.NewRichTextEl().Text("go test ./...")),
		blockkit.NewRichTextQuote().AddElement(blockkit.NewRichBroadcastEl().Range("here")),
	)

	assert.JSONEq(t, `{
		"type": "rich_text",
		"elements": [
			{"type": "rich_text_section", "elements": [
				{"type": "text", "text": "Hello ", "style": {"bold": true}},
				{"type": "user", "user_id": "U123"},
				{"type": "emoji", "name": "wave"}
			]},
			{"type": "rich_text_list", "style": "bullet", "elements": [
				{"type": "rich_text_section", "elements": [{"type": "link", "url": "https://example.com", "text": "site"}]}
			], "indent": 1},
			{"type": "rich_text_preformatted", "elements": [{"type": "text", "text": "go test ./..."}], "border": 1},
			{"type": "rich_text_quote", "elements": [{"type": "broadcast", "range": "here"}]}
		]
	}`, buildJSON(t, rich))
}

func TestRichElements(t *testing.T) {
	t.Parallel()

	t.Run("color needs hex", func(t *testing.T) {
		t.Parallel()
		assert.JSONEq(t, `{"type": "color", "value": "#F405B3"}`, buildJSON(t, blockkit.NewRichColorEl().Value("#F405B3")))

		_, err := blockkit.NewRichColorEl().Value("red").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid HEX color, got red")
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		date := blockkit.NewRichDateEl().
			Timestamp(1720710212).
			Format("{date_num} at {time}").
			Fallback("timey")
		assert.JSONEq(t, `{
			"type": "date",
			"timestamp": 1720710212,
			"format": "{date_num} at {time}",
			"fallback": "timey"
		}`, buildJSON(t, date))
	})

	t.Run("mentions reject code style", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewRichChannelEl().ChannelID("C123").Style(blockkit.NewRichStyle().Code(true)).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'code' style is not allowed")

		_, err = blockkit.NewRichUserGroupEl().UsergroupID("S123").Style(blockkit.NewRichStyle().Highlight(true)).Build()
		assert.NoError(t, err)
	})

	t.Run("text rejects extended styles", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewRichTextEl().Text("hi").Style(blockkit.NewRichStyle().Unlink(true)).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'highlight', 'client_highlight', 'unlink' styles are not allowed")

		_, err = blockkit.NewRichLinkEl().URL("https://example.com").Style(blockkit.NewRichStyle().Code(true)).Build()
		assert.NoError(t, err)
	})

	t.Run("list style is restricted", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewRichTextList().Style("dashed").
			Elements(blockkit.NewRichTextSection().Elements(blockkit.NewRichTextEl().Text("x"))).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected values 'bullet', 'ordered', got 'dashed'")
	})

	t.Run("sections reject blocks", func(t *testing.T) {
		t.Parallel()
		_, err := blockkit.NewRichTextSection().Elements(blockkit.NewDivider()).Build()
		assert.Error(t, err)
	})
}
