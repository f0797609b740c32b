package entity

import "strconv"

// FormatINR renders a whole-rupee amount with the Indian digit grouping used
// across the storefront views: the last three digits form one group, the rest
// group in pairs, e.g. ₹899, ₹1,299, ₹1,00,000.
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	grouped := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		grouped = rest[len(rest)-2:] + "," + grouped
		rest = rest[:len(rest)-2]
	}

	return sign + "₹" + rest + "," + grouped
}
