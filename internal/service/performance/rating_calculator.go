package performance

import "github.com/managely-hr/hr-backend-go/internal/pkg/utils"

// MaxRating is the top of the rating scale.
const MaxRating = 5

// OverallRating maps the mean of 0-100 skill scores onto 0-5 with one
// decimal place. No skills rate 0.
func OverallRating(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	// mean/100*MaxRating, kept in integers until the final rounding.
	return utils.RoundRatio(int64(sum*MaxRating), int64(100*len(values)), 1)
}
