package domain

import (
	"testing"
)

func TestContactValidatePriorityOrder(t *testing.T) {
	cases := []struct {
		name    string
		kind    StoreKind
		contact CustomerContact
		field   string // "" means valid
	}{
		{"missing everything reports name first", StoreShop, CustomerContact{Method: ContactWhatsApp}, "name"},
		{"whatsapp needs phone", StoreShop, CustomerContact{Name: "A", Method: ContactWhatsApp, Address: "x"}, "phone number"},
		{"phone call needs phone", StoreShop, CustomerContact{Name: "A", Method: ContactPhone, Address: "x"}, "phone number"},
		{"email method needs email", StoreShop, CustomerContact{Name: "A", Method: ContactEmail, Address: "x"}, "email address"},
		{"email method ignores phone", StoreShop, CustomerContact{Name: "A", Method: ContactEmail, Email: "a@b.c", Address: "x"}, ""},
		{"shop needs address", StoreShop, CustomerContact{Name: "A", Method: ContactEmail, Email: "a@b.c"}, "delivery address"},
		{"salon needs date", StoreSalon, CustomerContact{Name: "A", Method: ContactWhatsApp, Phone: "1", PreferredTime: "10:00"}, "preferred date/time"},
		{"salon needs time", StoreSalon, CustomerContact{Name: "A", Method: ContactWhatsApp, Phone: "1", PreferredDate: "2026-09-05"}, "preferred date/time"},
		{"salon notes optional", StoreSalon, CustomerContact{Name: "A", Method: ContactWhatsApp, Phone: "1", PreferredDate: "2026-09-05", PreferredTime: "10:00"}, ""},
		{"whitespace does not count", StoreShop, CustomerContact{Name: "  ", Method: ContactWhatsApp, Phone: "1", Address: "x"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.contact.Validate(tc.kind)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			missing, ok := err.(*MissingContactError)
			if !ok {
				t.Fatalf("expected MissingContactError, got %v", err)
			}
			if missing.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, missing.Field)
			}
		})
	}
}

func TestContactMethod(t *testing.T) {
	if !ContactWhatsApp.NeedsPhone() || !ContactPhone.NeedsPhone() {
		t.Fatal("whatsapp and phone methods are reached by phone number")
	}
	if ContactEmail.NeedsPhone() {
		t.Fatal("email method must not require a phone")
	}
	if !ContactEmail.Valid() || ContactMethod("fax").Valid() {
		t.Fatal("method set is closed")
	}
}
