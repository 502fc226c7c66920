package faq

import "testing"

func mustCatalog(t *testing.T, entries []Entry) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("unexpected error building catalog: %v", err)
	}
	return catalog
}

func TestFindBestAnswerKeywordScoring(t *testing.T) {
	catalog := mustCatalog(t, []Entry{
		{Question: "first", Answer: "answer-a", Keywords: []string{"alpha"}},
		{Question: "second", Answer: "answer-b", Keywords: []string{"alpha", "beta"}},
	})

	entry, ok := catalog.FindBestAnswer("alpha beta")
	if !ok || entry.Answer != "answer-b" {
		t.Fatalf("expected answer-b, got %+v (ok=%v)", entry, ok)
	}
}

func TestFindBestAnswerRepeatedTokensCountIndividually(t *testing.T) {
	catalog := mustCatalog(t, []Entry{
		{Question: "first", Answer: "answer-a", Keywords: []string{"alpha"}},
		{Question: "second", Answer: "answer-b", Keywords: []string{"beta"}},
	})

	// alpha twice scores 6 against entry one, beta once scores 3 against entry two.
	entry, ok := catalog.FindBestAnswer("alpha alpha beta")
	if !ok || entry.Answer != "answer-a" {
		t.Fatalf("expected answer-a, got %+v (ok=%v)", entry, ok)
	}
}

func TestFindBestAnswerTieKeepsEarliestEntry(t *testing.T) {
	catalog := mustCatalog(t, []Entry{
		{Question: "first", Answer: "answer-a", Keywords: []string{"alpha"}},
		{Question: "second", Answer: "answer-b", Keywords: []string{"alpha"}},
	})

	entry, ok := catalog.FindBestAnswer("alpha")
	if !ok || entry.Answer != "answer-a" {
		t.Fatalf("expected earliest entry on tie, got %+v (ok=%v)", entry, ok)
	}
}

func TestFindBestAnswerQuestionFallbackScoring(t *testing.T) {
	catalog := mustCatalog(t, []Entry{
		{Question: "where is my parcel parcel", Answer: "answer-a", Keywords: []string{"zzz"}},
		{Question: "unrelated", Answer: "answer-b", Keywords: []string{"yyy"}},
	})

	// Zero keyword hits, so each prompt token found among the question's
	// tokens adds one. The duplicated question word cannot double-count a
	// single prompt token.
	entry, ok := catalog.FindBestAnswer("parcel")
	if !ok || entry.Answer != "answer-a" {
		t.Fatalf("expected answer-a via question fallback, got %+v (ok=%v)", entry, ok)
	}

	// A repeated prompt token is tested once per occurrence.
	entry, ok = catalog.FindBestAnswer("parcel parcel")
	if !ok || entry.Answer != "answer-a" {
		t.Fatalf("expected answer-a for repeated prompt token, got %+v (ok=%v)", entry, ok)
	}
}

func TestFindBestAnswerNeverMixesKeywordAndQuestionScores(t *testing.T) {
	catalog := mustCatalog(t, []Entry{
		// One keyword hit (3 points). If question-word hits were added on
		// top this entry would score 6 and win.
		{Question: "beta gamma delta", Answer: "mixed", Keywords: []string{"alpha"}},
		// Pure question fallback over four tokens (4 points).
		{Question: "alpha beta gamma delta", Answer: "pure-fallback", Keywords: []string{"zzz"}},
	})

	entry, ok := catalog.FindBestAnswer("alpha beta gamma delta")
	if !ok || entry.Answer != "pure-fallback" {
		t.Fatalf("expected pure-fallback to win, got %+v (ok=%v)", entry, ok)
	}
}

func TestFindBestAnswerEmptyTokens(t *testing.T) {
	catalog := mustCatalog(t, DefaultEntries())

	for _, prompt := range []string{"", "   ", "?!...", "\t\n"} {
		if _, ok := catalog.FindBestAnswer(prompt); ok {
			t.Fatalf("expected no match for %q", prompt)
		}
	}
}

func TestFindBestAnswerDefaultCatalog(t *testing.T) {
	catalog := mustCatalog(t, DefaultEntries())
	entries := DefaultEntries()

	cases := []struct {
		name   string
		prompt string
		answer string
	}{
		{name: "keyword hit on prohibited items", prompt: "Are hazardous items prohibited?", answer: entries[2].Answer},
		{name: "keyword hit on insurance", prompt: "Do you provide insurance coverage?", answer: entries[3].Answer},
		// "shipment" and "insured" score 3 against different entries; the
		// earlier entry keeps the tie.
		{name: "cross-entry tie keeps earliest", prompt: "Is my shipment insured?", answer: entries[0].Answer},
		{name: "question fallback picks densest question", prompt: "What can't I ship?", answer: entries[1].Answer},
	}

	for _, tc := range cases {
		entry, ok := catalog.FindBestAnswer(tc.prompt)
		if !ok {
			t.Fatalf("%s: expected a match", tc.name)
		}
		if entry.Answer != tc.answer {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.answer, entry.Answer)
		}
	}

	if _, ok := catalog.FindBestAnswer("asdf qwer zxcv"); ok {
		t.Fatal("expected no match for gibberish prompt")
	}
}
