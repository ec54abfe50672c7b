package whatsapp

import (
	"net/url"
	"strings"
)

// Gateway builds wa.me deep links addressed to a fixed per-deployment
// recipient. Opening the link is fire-and-forget: no response is awaited and
// delivery is entirely the chat application's business.
type Gateway struct {
	phone string
}

func NewGateway(phone string) *Gateway {
	return &Gateway{phone: digits(phone)}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (g *Gateway) Recipient() string { return g.phone }

// Link percent-encodes the message the way chat clients expect: spaces as
// %20, never +.
func (g *Gateway) Link(message string) string {
	body := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + g.phone + "?text=" + body
}
