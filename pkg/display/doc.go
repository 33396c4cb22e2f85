// Package display produces Block Kit Builder preview links for components
// and built payloads.
//
//	msg := blockkit.NewMessage().Blocks(blockkit.NewSection().Text("Hello"))
//	url, err := display.BuilderURL(msg)
//
// The payload is encoded as compact JSON in field declaration order and
// appended to the builder URL, with every byte outside the unreserved set and
// "/:?=&#" percent-encoded. Fprint writes the link in a console friendly form
// and QRCode renders it as a PNG for opening on another device.
package display
