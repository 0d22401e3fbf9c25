package domain

// RatingSummary is the derived rating state stored on a mentor profile.
type RatingSummary struct {
	Average float64 `json:"rating"`
	Count   int     `json:"rating_count"`
}

// AggregateRatings computes the arithmetic mean and count of ratings.
// The sum is accumulated as an integer so the result does not depend on
// the order of the input.
func AggregateRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(ratings)),
		Count:   len(ratings),
	}
}

// ValidRating reports whether r is within the accepted 1..5 scale.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
