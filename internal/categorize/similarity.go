package categorize

// maxSimilarityInput bounds the strings fed to the edit-distance
// calculation, which is O(n*m).
const maxSimilarityInput = 64

// similarityRatio returns a 0-1 similarity ratio between two strings based
// on edit distance. 1.0 means identical.
func similarityRatio(a, b string) float64 {
	if len(a) > maxSimilarityInput {
		a = a[:maxSimilarityInput]
	}
	if len(b) > maxSimilarityInput {
		b = b[:maxSimilarityInput]
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}

	d := levenshteinDistance(a, b)
	return 1.0 - float64(d)/float64(maxLen)
}

// levenshteinDistance computes the edit distance between two strings using
// two rolling rows.
func levenshteinDistance(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
