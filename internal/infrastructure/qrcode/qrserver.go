package qrcode

import (
	"net/url"
	"strings"

	"polyforge/internal/usecase/interfaces"
)

const (
	DefaultQRServerURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize        = "100x100"
)

// QRServer builds image URLs for the public goqr.me generator.
type QRServer struct {
	baseURL string
	size    string
}

var _ interfaces.IQRCodeProvider = (*QRServer)(nil)

func NewQRServer(baseURL string) *QRServer {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultQRServerURL
	}
	return &QRServer{baseURL: baseURL, size: DefaultSize}
}

func (q *QRServer) ImageURL(data string) string {
	v := url.Values{}
	v.Set("size", q.size)
	v.Set("data", data)

	sep := "?"
	if strings.Contains(q.baseURL, "?") {
		sep = "&"
	}
	return q.baseURL + sep + v.Encode()
}
