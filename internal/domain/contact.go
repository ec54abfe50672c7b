package domain

import "strings"

type ContactMethod string

const (
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactPhone    ContactMethod = "phone"
	ContactEmail    ContactMethod = "email"
)

func (m ContactMethod) Valid() bool {
	switch m {
	case ContactWhatsApp, ContactPhone, ContactEmail:
		return true
	}
	return false
}

// NeedsPhone reports whether the method is reached by phone number.
func (m ContactMethod) NeedsPhone() bool {
	return m == ContactWhatsApp || m == ContactPhone
}

// CustomerContact lives only for the duration of a checkout and is cleared as
// soon as an order message is produced.
type CustomerContact struct {
	Name          string        `json:"name"`
	Method        ContactMethod `json:"contactMethod"`
	Phone         string        `json:"phone,omitempty"`
	Email         string        `json:"email,omitempty"`
	Address       string        `json:"address,omitempty"`
	PreferredDate string        `json:"preferredDate,omitempty"`
	PreferredTime string        `json:"preferredTime,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// Validate checks required fields in fixed priority order: name, then the
// method-relevant contact field, then the store-variant field (delivery
// address for shops, date and time for salons). Exactly one of phone/email is
// required, chosen by Method.
func (c CustomerContact) Validate(kind StoreKind) error {
	if strings.TrimSpace(c.Name) == "" {
		return &MissingContactError{Field: "name"}
	}
	if c.Method.NeedsPhone() && strings.TrimSpace(c.Phone) == "" {
		return &MissingContactError{Field: "phone number"}
	}
	if c.Method == ContactEmail && strings.TrimSpace(c.Email) == "" {
		return &MissingContactError{Field: "email address"}
	}
	if kind == StoreSalon {
		if strings.TrimSpace(c.PreferredDate) == "" || strings.TrimSpace(c.PreferredTime) == "" {
			return &MissingContactError{Field: "preferred date/time"}
		}
		return nil
	}
	if strings.TrimSpace(c.Address) == "" {
		return &MissingContactError{Field: "delivery address"}
	}
	return nil
}
