package entity

// ReviewDateLayout is the calendar-date form used by Review.Date.
const ReviewDateLayout = "2006-01-02"

// Review is a customer review. ProductID references Product.ID but is never
// validated against the product set; dangling references are tolerated and
// simply never matched to a product page.
type Review struct {
	ID        int    `json:"id"`        // Unique across the review set.
	Name      string `json:"name"`      // Reviewer display name.
	Rating    int    `json:"rating"`    // 1 to 5 inclusive.
	Comment   string `json:"comment"`   // Review body.
	Date      string `json:"date"`      // Calendar date, ISO form (YYYY-MM-DD).
	Verified  bool   `json:"verified"`  // Verified-purchase flag.
	ProductID int    `json:"productId"` // Foreign key into Product.ID, unchecked.
}

// CloneReviews copies a review slice.
func CloneReviews(reviews []Review) []Review {
	clones := make([]Review, len(reviews))
	copy(clones, reviews)

	return clones
}

// MaxReviewID returns the highest id in the set, or 0 for an empty set.
func MaxReviewID(reviews []Review) int {
	maxID := 0
	for _, r := range reviews {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	return maxID
}
