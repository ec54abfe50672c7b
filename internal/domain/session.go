package domain

type CheckoutState string

const (
	StateShopping          CheckoutState = "shopping"
	StateCollectingContact CheckoutState = "collecting_contact"
	StateSubmitted         CheckoutState = "submitted"
)

// Session owns the cart and contact for one shopper, so none of the core
// logic depends on any particular UI state mechanism. It moves
// shopping -> collecting_contact -> submitted; a failed submit stays in
// collecting_contact.
type Session struct {
	State   CheckoutState   `json:"state"`
	Cart    Cart            `json:"cart"`
	Contact CustomerContact `json:"contact"`
}

func NewSession() *Session {
	return &Session{State: StateShopping, Contact: CustomerContact{Method: ContactWhatsApp}}
}

// AddLine appends to the cart. While contact details are being collected the
// cart is only editable by navigating back first.
func (s *Session) AddLine(p *Product, sel Selection, addOn bool, extra AddOn) error {
	if s.State == StateCollectingContact {
		return ErrCheckoutInProgress
	}
	if err := s.Cart.Add(p, sel, addOn, extra); err != nil {
		return err
	}
	s.State = StateShopping
	return nil
}

func (s *Session) RemoveLine(i int) error {
	if s.State == StateCollectingContact {
		return ErrCheckoutInProgress
	}
	return s.Cart.Remove(i)
}

func (s *Session) SetQuantity(i, qty int) error {
	if s.State == StateCollectingContact {
		return ErrCheckoutInProgress
	}
	return s.Cart.SetQuantity(i, qty)
}

// BeginContact freezes the cart and opens the contact form. Requires a
// non-empty cart.
func (s *Session) BeginContact() error {
	if s.Cart.Empty() {
		return ErrEmptyCart
	}
	s.State = StateCollectingContact
	return nil
}

// BackToShopping abandons the contact form, keeping the cart.
func (s *Session) BackToShopping() {
	if s.State == StateCollectingContact {
		s.State = StateShopping
	}
}

// Submit validates the contact and produces the order projection. On success
// the cart and contact are cleared regardless of whether the external handoff
// ever reaches anyone; on failure the session stays as it was.
func (s *Session) Submit(store Store) (Order, error) {
	if s.Cart.Empty() {
		return Order{}, ErrEmptyCart
	}
	if err := s.Contact.Validate(store.Kind); err != nil {
		return Order{}, err
	}
	order := NewOrder(store, &s.Cart, s.Contact)
	s.Cart.Clear()
	s.Contact = CustomerContact{Method: ContactWhatsApp}
	s.State = StateSubmitted
	return order, nil
}
