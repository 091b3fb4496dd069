package compare

import (
	"math"
	"regexp"
	"strconv"

	"github.com/albapepper/ziyou/internal/game"
)

var leadingNumber = regexp.MustCompile(`[\d.]+`)

// parseNumber extracts the first run of digits and dots in s and reads the
// longest valid decimal prefix of it ("¥59" -> 59, "约 2.5 小时" -> 2.5,
// "1.2.3" -> 1.2). ok is false when there is no digit to read.
func parseNumber(s string) (float64, bool) {
	run := leadingNumber.FindString(s)
	if run == "" {
		return 0, false
	}
	end, dot, digits := 0, false, 0
	for end < len(run) {
		c := run[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else {
			digits++
		}
		end++
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(run[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func prices(g game.Game) []string {
	out := make([]string, len(g.BuyLinks))
	for i, l := range g.BuyLinks {
		out[i] = l.Price
	}
	return out
}

func hasFree(ps []string) bool {
	for _, p := range ps {
		if p == game.FreePrice {
			return true
		}
	}
	return false
}

func parsedPrices(ps []string) []float64 {
	var nums []float64
	for _, p := range ps {
		if v, ok := parseNumber(p); ok {
			nums = append(nums, v)
		}
	}
	return nums
}

// PriceFloor is the cheapest known price of g. A free link makes it 0; with
// no parseable price it is +Inf, which never wins a cheapest comparison.
func PriceFloor(g game.Game) float64 {
	ps := prices(g)
	if hasFree(ps) {
		return 0
	}
	floor := math.Inf(1)
	for _, v := range parsedPrices(ps) {
		floor = math.Min(floor, v)
	}
	return floor
}

// PriceRange renders the price span of g for display.
func PriceRange(g game.Game) string {
	ps := prices(g)
	if len(ps) == 0 {
		return Placeholder
	}
	if hasFree(ps) {
		return game.FreePrice
	}
	nums := parsedPrices(ps)
	if len(nums) == 0 {
		return ps[0]
	}
	lo, hi := nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return "¥" + formatNumber(lo)
	}
	return "¥" + formatNumber(lo) + " - ¥" + formatNumber(hi)
}

// formatNumber prints the shortest decimal that round-trips, so whole
// numbers print without a fraction (59, 59.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
