package project

import "github.com/managely-hr/hr-backend-go/internal/pkg/utils"

// SuccessRate is the mean progress of the given projects rounded to a whole
// percentage, or 0 when there are none.
func SuccessRate(progresses []int) int {
	if len(progresses) == 0 {
		return 0
	}

	sum := 0
	for _, p := range progresses {
		sum += p
	}
	return int(utils.RoundRatio(int64(sum), int64(len(progresses)), 0))
}
