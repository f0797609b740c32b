// Package whatsapp builds wa.me deep links for the contact flows of the
// storefront. Link construction is pure string work; opening the chat is the
// caller's concern.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
)

// LinkBuilder renders wa.me URLs for a given settings record.
type LinkBuilder struct {
	brandName string
	phone     string
}

// NewLinkBuilder derives a builder from the current settings. The phone is
// reduced to digits only, as wa.me requires.
func NewLinkBuilder(settings entity.Settings) *LinkBuilder {
	return &LinkBuilder{
		brandName: settings.BrandName,
		phone:     digitsOnly(settings.WhatsApp),
	}
}

// Enabled reports whether the settings carried a usable contact number.
func (b *LinkBuilder) Enabled() bool {
	return b.phone != ""
}

// GeneralInquiry is the link used by the floating contact affordance.
func (b *LinkBuilder) GeneralInquiry() string {
	return b.link(fmt.Sprintf("Hi %s, I'm interested in your stoles.", b.brandName))
}

// ProductInquiry asks for more details about a listed product.
func (b *LinkBuilder) ProductInquiry(product entity.Product) string {
	return b.link(fmt.Sprintf(
		"Hi %s! I'm interested in the %q stole. Could you please share more details?",
		b.brandName, product.Name))
}

// OrderInquiry places an order for an in-stock product.
func (b *LinkBuilder) OrderInquiry(product entity.Product) string {
	return b.link(fmt.Sprintf(
		"Hi %s! I'm interested in ordering the %q stole (₹%d). Please share more details and availability.",
		b.brandName, product.Name, product.Price))
}

// RestockInquiry asks to be notified when an out-of-stock product returns.
func (b *LinkBuilder) RestockInquiry(product entity.Product) string {
	return b.link(fmt.Sprintf(
		"Hi %s! I'd like to be notified when %q stole is back in stock. Please let me know when it's available.",
		b.brandName, product.Name))
}

func (b *LinkBuilder) link(message string) string {
	if !b.Enabled() {
		return ""
	}

	return "https://wa.me/" + b.phone + "?text=" + url.QueryEscape(message)
}

func digitsOnly(phone string) string {
	var digits strings.Builder
	digits.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}
