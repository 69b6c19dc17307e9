// Package qrcode renders QR codes for provisioning URIs, either as PNG bytes,
// as a data URI for HTML pages, or as Unicode text for terminals.
//
// It is a thin wrapper around github.com/skip2/go-qrcode that adds defaults
// and input validation. Decoding QR codes is out of scope.
//
// # Usage
//
//	uri, _ := totp.FormatURI(session.Key("Acme", "alice@example.com"))
//
//	png, err := qrcode.Generate(uri, 256)
//	if err != nil {
//		// handle error
//	}
//
//	text, _ := qrcode.Terminal(uri)
//	fmt.Print(text)
//
// # Error Handling
//
// ErrEmptyContent is returned for blank content and ErrFailedToGenerateQRCode
// wraps failures of the underlying library. Compare with errors.Is.
package qrcode
