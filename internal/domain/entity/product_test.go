package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountPercent(t *testing.T) {
	cases := []struct {
		name          string
		price         int
		originalPrice int
		want          int
	}{
		{"typical discount", 899, 1299, 31},
		{"half off", 500, 1000, 50},
		{"rounds to nearest", 666, 999, 33},
		{"no discount when equal", 899, 899, 0},
		{"no discount when original below price", 899, 499, 0},
		{"no discount when original missing", 899, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, OriginalPrice: tc.originalPrice}
			assert.Equal(t, tc.want, p.DiscountPercent())
		})
	}
}

func TestProduct_CloneDetachesImages(t *testing.T) {
	original := Product{ID: 1, Images: []string{"a.jpg", "b.jpg"}}

	clone := original.Clone()
	clone.Images[0] = "mutated.jpg"

	assert.Equal(t, "a.jpg", original.Images[0])
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{899, "₹899"},
		{1299, "₹1,299"},
		{45999, "₹45,999"},
		{100000, "₹1,00,000"},
		{12345678, "₹1,23,45,678"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount))
	}
}

func TestMaxProductID(t *testing.T) {
	assert.Zero(t, MaxProductID(nil))
	assert.Equal(t, 7, MaxProductID([]Product{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestMaxReviewID(t *testing.T) {
	assert.Zero(t, MaxReviewID(nil))
	assert.Equal(t, 9, MaxReviewID([]Review{{ID: 9}, {ID: 4}}))
}
