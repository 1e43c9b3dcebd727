package quiz

import "math"

// Summary is the immutable result of a completed session.
type Summary struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}

func newSummary(score, total int) *Summary {
	percentage := Percentage(score, total)
	return &Summary{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Message:    PerformanceMessage(percentage),
	}
}

// Percentage rounds half away from zero: 7/10 -> 70, 1/3 -> 33,
// 1/8 -> 13.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

func PerformanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding!"
	case percentage >= 75:
		return "Great Job!"
	case percentage >= 60:
		return "Good Effort!"
	case percentage >= 50:
		return "Keep Practicing!"
	default:
		return "Need More Practice"
	}
}
