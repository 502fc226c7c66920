package faq

// FindBestAnswer scores every catalog entry against the prompt in a single
// pass and returns the highest-scoring entry, or false when nothing scores
// above zero.
//
// Each prompt token found in an entry's keyword set adds 3. Only when an
// entry has zero keyword hits, each prompt token found among the tokenized
// question adds 1 — an entry scores purely from keywords or purely from
// question words, never both. A later entry replaces the current best only
// on a strictly greater score, so ties resolve to the earliest entry.
func (c *Catalog) FindBestAnswer(prompt string) (Entry, bool) {
	tokens := normalize(prompt)
	if len(tokens) == 0 {
		return Entry{}, false
	}

	var (
		topScore int
		topEntry Entry
	)
	for _, candidate := range c.entries {
		score := 0
		for _, token := range tokens {
			if _, ok := candidate.keywordSet[token]; ok {
				score += 3
			}
		}
		if score == 0 {
			for _, token := range tokens {
				if containsToken(candidate.questionTokens, token) {
					score++
				}
			}
		}
		if score > topScore {
			topScore = score
			topEntry = candidate.entry
		}
	}
	if topScore == 0 {
		return Entry{}, false
	}
	return topEntry, true
}

func containsToken(tokens []string, token string) bool {
	for _, candidate := range tokens {
		if candidate == token {
			return true
		}
	}
	return false
}
