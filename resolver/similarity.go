package resolver

// DiceCoefficient computes the Sørensen–Dice similarity of two strings over
// their rune bigram multisets. It is symmetric, yields 1.0 for identical
// strings and 0.0 when either string is shorter than one bigram (unless both
// are identical). Adding shared bigrams never lowers the score.
func DiceCoefficient(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[string(ra[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bigram := string(rb[i : i+2])
		if counts[bigram] > 0 {
			counts[bigram]--
			intersection++
		}
	}

	total := len(ra) - 1 + len(rb) - 1
	return 2 * float64(intersection) / float64(total)
}
