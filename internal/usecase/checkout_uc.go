package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/laureta/storefront/internal/domain"
)

// CheckoutUC drives a shopper's session through the shopping ->
// collecting-contact -> submitted flow and produces the outbound handoff.
type CheckoutUC struct {
	Products domain.ProductRepo
	Store    domain.Store
	Channel  domain.OrderChannel
}

// Submission is everything the UI needs to hand control to the external
// channel. Nothing is persisted; delivery is not this system's problem.
type Submission struct {
	Recipient string          `json:"recipient"`
	Message   string          `json:"message"`
	Link      string          `json:"link"`
	Total     decimal.Decimal `json:"total"`
}

func (uc *CheckoutUC) AddLine(ctx context.Context, sess *domain.Session, slug string, sel domain.Selection, addOn bool) error {
	p, err := uc.Products.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return sess.AddLine(p, sel, addOn, uc.Store.AddOn)
}

func (uc *CheckoutUC) RemoveLine(sess *domain.Session, index int) error {
	return sess.RemoveLine(index)
}

func (uc *CheckoutUC) SetQuantity(sess *domain.Session, index, qty int) error {
	return sess.SetQuantity(index, qty)
}

func (uc *CheckoutUC) Begin(sess *domain.Session) error {
	return sess.BeginContact()
}

func (uc *CheckoutUC) Back(sess *domain.Session) {
	sess.BackToShopping()
}

// Submit stores the contact on the session and, if validation passes,
// composes the order message and deep link. The session comes back cleared.
func (uc *CheckoutUC) Submit(sess *domain.Session, contact domain.CustomerContact) (*Submission, error) {
	sess.Contact = contact
	order, err := sess.Submit(uc.Store)
	if err != nil {
		return nil, err
	}
	msg := order.Message()
	return &Submission{
		Recipient: uc.Channel.Recipient(),
		Message:   msg,
		Link:      uc.Channel.Link(msg),
		Total:     order.Total,
	}, nil
}
