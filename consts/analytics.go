package consts

const (
	// Ratings at or above this mark count a comment as positive, at or
	// below NegativeRatingThreshold as negative.
	PositiveRatingThreshold = 4
	NegativeRatingThreshold = 2

	// TrendingDefaultLimit is the ranking size returned when the caller
	// does not ask for a specific one.
	TrendingDefaultLimit = 10
)
