// Package qrcode renders QR code images as raw PNG bytes, data URIs or files.
//
// It is a thin wrapper around github.com/skip2/go-qrcode that adds input
// validation, a default size and recovery level fallback for long content
// such as Block Kit Builder preview links.
//
// # Usage
//
//	import "github.com/imryche/blockkit-sub000/pkg/qrcode"
//
//	// PNG bytes
//	img, err := qrcode.Generate("https://example.com", 256)
//
//	// base64 data URI
//	uri, err := qrcode.DataURI("https://example.com", 256)
//
//	// straight to disk, refusing to lower the recovery level
//	err = qrcode.WriteFile("preview.png", link, 512, qrcode.WithoutFallback())
//
// A size of zero or less selects DefaultSize.
//
// # Error Handling
//
//   - ErrEmptyContent: the content argument was empty.
//   - ErrGenerationFailed: the content could not be encoded, usually because
//     it is too long even at the Low recovery level.
//
// Use errors.Is for comparisons.
package qrcode
