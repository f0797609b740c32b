package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderFixture() *LinkBuilder {
	return NewLinkBuilder(entity.Settings{
		BrandName: "Mary Creations",
		WhatsApp:  "+91 78608-61434",
	})
}

func TestNewLinkBuilder_PhoneReducedToDigits(t *testing.T) {
	builder := builderFixture()

	require.True(t, builder.Enabled())
	assert.True(t, strings.HasPrefix(builder.GeneralInquiry(), "https://wa.me/917860861434?text="))
}

func TestLinkBuilder_DisabledWithoutPhone(t *testing.T) {
	builder := NewLinkBuilder(entity.Settings{BrandName: "Mary Creations"})

	assert.False(t, builder.Enabled())
	assert.Empty(t, builder.GeneralInquiry())
	assert.Empty(t, builder.OrderInquiry(entity.Product{Name: "Silk Stole"}))
}

func TestLinkBuilder_MessagesAreQueryEscaped(t *testing.T) {
	builder := builderFixture()
	product := entity.Product{Name: "Silk & Zari Stole", Price: 899}

	link := builder.OrderInquiry(product)

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Mary Creations")
	assert.Contains(t, text, `"Silk & Zari Stole"`)
	assert.Contains(t, text, "₹899")
}

func TestLinkBuilder_RestockInquiryNamesProduct(t *testing.T) {
	builder := builderFixture()

	link := builder.RestockInquiry(entity.Product{Name: "Banarasi Stole"})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "Banarasi Stole")
	assert.Contains(t, parsed.Query().Get("text"), "back in stock")
}

func TestLinkBuilder_ProductInquiryNamesProduct(t *testing.T) {
	builder := builderFixture()

	link := builder.ProductInquiry(entity.Product{Name: "Linen Scarf"})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "Linen Scarf")
}
