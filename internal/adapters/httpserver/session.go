package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/laureta/storefront/internal/domain"
)

const sessionCookie = "session"

func (s *Server) sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.sessionKey)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// readSession decodes the signed session cookie. A missing or tampered
// cookie yields a fresh session rather than an error.
func (s *Server) readSession(r *http.Request) *domain.Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return domain.NewSession()
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return domain.NewSession()
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return domain.NewSession()
	}
	if !hmac.Equal([]byte(parts[0]), []byte(s.sign(payload))) {
		return domain.NewSession()
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return domain.NewSession()
	}
	if !sess.Contact.Method.Valid() {
		sess.Contact.Method = domain.ContactWhatsApp
	}
	return &sess
}

func (s *Server) writeSession(w http.ResponseWriter, sess *domain.Session) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.sign(payload) + "." + base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
