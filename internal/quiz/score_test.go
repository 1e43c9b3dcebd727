package quiz_test

import (
	"testing"

	"github.com/examportal/practice-lambda/internal/quiz"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{7, 10, 70},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 arredonda para cima
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
	}

	for _, c := range cases {
		if got := quiz.Percentage(c.score, c.total); got != c.want {
			t.Errorf("Percentage(%d, %d) = %d, esperado %d", c.score, c.total, got, c.want)
		}
	}
}

func TestPerformanceMessage(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, "Outstanding!"},
		{90, "Outstanding!"},
		{89, "Great Job!"},
		{75, "Great Job!"},
		{74, "Good Effort!"},
		{60, "Good Effort!"},
		{59, "Keep Practicing!"},
		{50, "Keep Practicing!"},
		{49, "Need More Practice"},
		{0, "Need More Practice"},
	}

	for _, c := range cases {
		if got := quiz.PerformanceMessage(c.percentage); got != c.want {
			t.Errorf("PerformanceMessage(%d) = %q, esperado %q", c.percentage, got, c.want)
		}
	}
}
