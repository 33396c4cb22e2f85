// Package codegen turns raw Block Kit payloads into Go source that rebuilds
// them with the blockkit constructors.
//
// Given the payload
//
//	{"blocks": [{"type": "section", "text": {"type": "mrkdwn", "text": "*hi*"}}]}
//
// Generate returns
//
//	blockkit.NewMessage().Blocks(blockkit.NewSection().Text(blockkit.MarkdownText("*hi*")))
//
// Constructors are picked from the "type" discriminant through a
// blockkit.Registry. An object without a type at the root holding "blocks" is
// a Message; typeless composition objects are recognised by the key holding
// them (confirm, filter, options, trigger, ...). An "image" under "accessory"
// or "elements" is an image element, anywhere else an image block. Every key
// is mapped to a setter name (see SetterName) and checked against the method
// set of the constructed type, so generated code refers only to setters that
// exist.
//
// GenerateFile wraps the expression in a gofmt'ed Go file.
//
// All failures wrap ErrCodeGeneration.
package codegen
