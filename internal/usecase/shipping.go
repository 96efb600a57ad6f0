package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"loja_xpto/internal/domain/entities"
)

// QuoteShipping aggregates the cart into one parcel and asks the rate
// calculator for options towards destZip (defaulting to the profile CEP).
// Error-flagged options are filtered out before they are exposed.
func (s *CheckoutSession) QuoteShipping(ctx context.Context, destZip string) ([]entities.ShippingOption, error) {
	s.mu.Lock()
	items := s.items
	if destZip == "" {
		destZip = s.user.CEP
	}
	s.mu.Unlock()

	destZip = strings.ReplaceAll(strings.TrimSpace(destZip), " ", "")
	if destZip == "" {
		return nil, ErrMissingDestinationZip
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	parcel := entities.ParcelFor(items)
	log.Printf("[shipping][usecase] quote start session=%s dest=%s parcel=%+v", s.id, destZip, parcel)

	options, err := s.shipping.Quote(ctx, destZip, parcel)
	if err != nil {
		log.Printf("[shipping][usecase] quote failed session=%s err=%v", s.id, err)
		return nil, fmt.Errorf("quote shipping: %w", err)
	}

	valid := entities.FilterValidOptions(options)
	if len(valid) == 0 {
		log.Printf("[shipping][usecase] no valid option session=%s dest=%s", s.id, destZip)
	}

	s.mu.Lock()
	s.shippingOptions = valid
	s.mu.Unlock()

	log.Printf("[shipping][usecase] quote success session=%s options=%d", s.id, len(valid))
	return valid, nil
}

// SelectShipping picks one of the quoted options; its price becomes the
// shipping cost added on top of the product subtotal. Changing the
// selection after checkout started does not touch an already created
// order.
func (s *CheckoutSession) SelectShipping(optionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.shippingOptions {
		if o.ID == optionID {
			selected := o
			s.selectedOption = &selected
			s.shippingPrice = o.Price
			log.Printf("[shipping][usecase] option selected session=%s option=%d carrier=%s price=%.2f", s.id, o.ID, o.Carrier, o.Price)
			return nil
		}
	}
	return ErrUnknownShippingOption
}
