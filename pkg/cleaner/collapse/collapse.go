package collapse

// CollapseTokens collapses adjacent repeated phrases of minWords..maxWords
// tokens down to a single occurrence. It is a pure function: the input
// slice is not modified, surviving tokens keep their order, and no token
// is introduced that was not present in the input.
//
// The scan is local and greedy: once the cursor advances past a detected
// repeat run it never re-examines earlier tokens, so a repeat that only
// lines up after a passthrough token goes undetected.
//
// Returns ErrInvalidBounds when minWords < 1 or maxWords < minWords.
func CollapseTokens(tokens []string, minWords, maxWords int) ([]string, error) {
	cfg := &Config{MinWords: minWords, MaxWords: maxWords}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return scan(tokens, minWords, maxWords, nil), nil
}

// scan runs the collapsing pass. Bounds must already be validated.
// When stats is non-nil, each collapsed run is recorded on it.
func scan(tokens []string, minWords, maxWords int, stats *Stats) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		n, repeats := findRun(tokens, i, minWords, maxWords)
		if n == 0 {
			out = append(out, tokens[i])
			i++
			continue
		}
		out = append(out, tokens[i:i+n]...)
		if stats != nil {
			stats.RecordRun(n, repeats)
		}
		i += repeats * n
	}
	return out
}

// findRun looks for a repeat run starting at position i. Window lengths
// are tried from maxWords down to minWords so the largest repeating unit
// wins; a run needs at least two full adjacent equal windows. It returns
// the phrase length and the total number of consecutive occurrences, or
// (0, 0) when no window repeats at i.
func findRun(tokens []string, i, minWords, maxWords int) (int, int) {
	for n := maxWords; n >= minWords; n-- {
		if i+2*n > len(tokens) {
			continue
		}
		if !windowsEqual(tokens, i, i+n, n) {
			continue
		}
		repeats := 2
		for i+(repeats+1)*n <= len(tokens) && windowsEqual(tokens, i, i+repeats*n, n) {
			repeats++
		}
		return n, repeats
	}
	return 0, 0
}

// windowsEqual reports whether the n-token windows starting at a and b
// are element-wise equal. Comparison is exact: no case folding, no
// punctuation stripping.
func windowsEqual(tokens []string, a, b, n int) bool {
	for k := 0; k < n; k++ {
		if tokens[a+k] != tokens[b+k] {
			return false
		}
	}
	return true
}
