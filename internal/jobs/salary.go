package jobs

import (
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseSalaryNumber extracts a sortable number from free salary text. No positive
// integers yields 0, one yields that value, and two or more yield the mean of the
// first two.
func ParseSalaryNumber(salaryRange string) float64 {
	var nums []int
	for _, m := range digitRun.FindAllString(salaryRange, -1) {
		n, err := strconv.Atoi(m)
		if err != nil || n <= 0 {
			continue
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 0:
		return 0
	case 1:
		return float64(nums[0])
	default:
		return float64(nums[0]+nums[1]) / 2
	}
}
