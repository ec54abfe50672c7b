package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Order is the final projection handed to the messaging channel. It is built
// once at submit time and never mutates the cart or contact it came from.
type Order struct {
	Store   Store
	Lines   []CartLine
	Contact CustomerContact
	Total   decimal.Decimal
}

func NewOrder(store Store, cart *Cart, contact CustomerContact) Order {
	lines := make([]CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return Order{Store: store, Lines: lines, Contact: contact, Total: cart.Total()}
}

// Message renders the deterministic order text: header, customer block,
// delivery or appointment block, numbered lines in insertion order, trailing
// total.
func (o Order) Message() string {
	var b strings.Builder
	if o.Store.Kind == StoreSalon {
		b.WriteString("*New Booking Request*\n\n")
	} else {
		fmt.Fprintf(&b, "*New Order from %s*\n\n", o.Store.Name)
	}

	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Contact.Name)
	fmt.Fprintf(&b, "Contact Method: %s\n", o.Contact.Method)
	if o.Contact.Method.NeedsPhone() {
		fmt.Fprintf(&b, "Phone: %s\n", o.Contact.Phone)
	}
	if o.Contact.Method == ContactEmail {
		fmt.Fprintf(&b, "Email: %s\n", o.Contact.Email)
	}

	if o.Store.Kind == StoreSalon {
		fmt.Fprintf(&b, "Preferred date: %s\n", o.Contact.PreferredDate)
		fmt.Fprintf(&b, "Preferred time: %s\n", o.Contact.PreferredTime)
		if strings.TrimSpace(o.Contact.Notes) != "" {
			fmt.Fprintf(&b, "Notes: %s\n", o.Contact.Notes)
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Delivery Address: %s\n\n", o.Contact.Address)
	}

	b.WriteString("*Order Details:*\n")
	for i, l := range o.Lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l.Name)
		if l.Primary != "" {
			fmt.Fprintf(&b, "   %s: %s\n", l.PrimaryLabel, l.Primary)
		}
		if l.Secondary != "" {
			fmt.Fprintf(&b, "   %s: %s\n", l.SecondaryLabel, l.Secondary)
		}
		if l.AddOn {
			fmt.Fprintf(&b, "   Includes %s: Yes (+%s)\n", o.Store.AddOn.Label, o.Store.FormatPrice(o.Store.AddOn.Amount))
		}
		fmt.Fprintf(&b, "   Quantity: %d\n", l.Qty)
		fmt.Fprintf(&b, "   Price: %s\n\n", o.Store.FormatPrice(l.Total()))
	}

	fmt.Fprintf(&b, "*Total: %s*", o.Store.FormatPrice(o.Total))
	return b.String()
}

// OrderChannel is the outbound handoff: a fixed recipient and a deep link
// carrying the message. Fire and forget; no delivery feedback exists.
type OrderChannel interface {
	Recipient() string
	Link(message string) string
}
