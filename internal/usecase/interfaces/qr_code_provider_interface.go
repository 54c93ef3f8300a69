package interfaces

// IQRCodeProvider builds the URL of a QR code image for the given text. The
// image itself is fetched by the browser, never by the service.
type IQRCodeProvider interface {
	ImageURL(data string) string
}
