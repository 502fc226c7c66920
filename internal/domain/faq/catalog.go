package faq

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the immutable, ordered FAQ table. It is constructed once at
// startup and holds per-entry lookup structures derived at build time, so
// scoring a prompt never allocates index state.
type Catalog struct {
	entries []indexedEntry
}

type indexedEntry struct {
	entry Entry
	// keywordSet gives O(1) membership for the primary scoring pass.
	keywordSet map[string]struct{}
	// questionTokens keeps order and duplicates on purpose; the fallback
	// pass does a linear containment check against this list.
	questionTokens []string
}

// NewCatalog validates entries and derives the lookup structures used by
// the matcher.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("catalog requires at least one entry")
	}
	seen := make(map[string]struct{}, len(entries))
	indexed := make([]indexedEntry, 0, len(entries))
	for i, entry := range entries {
		question := strings.TrimSpace(entry.Question)
		if question == "" {
			return nil, fmt.Errorf("catalog entry %d: question cannot be empty", i)
		}
		if strings.TrimSpace(entry.Answer) == "" {
			return nil, fmt.Errorf("catalog entry %d: answer cannot be empty", i)
		}
		if _, dup := seen[question]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate question %q", i, question)
		}
		seen[question] = struct{}{}

		keywordSet := make(map[string]struct{}, len(entry.Keywords))
		for _, keyword := range entry.Keywords {
			for _, token := range normalize(keyword) {
				keywordSet[token] = struct{}{}
			}
		}
		indexed = append(indexed, indexedEntry{
			entry:          entry,
			keywordSet:     keywordSet,
			questionTokens: normalize(entry.Question),
		})
	}
	return &Catalog{entries: indexed}, nil
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog data in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, candidate := range c.entries {
		out = append(out, candidate.entry)
	}
	return out
}

// DefaultEntries returns the built-in OrbisLinks FAQ data used when no
// external catalog source is configured.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Question: "How do I find a traveler for my shipment?",
			Answer:   "Browse available travelers on OrbisLinks and choose someone whose route and schedule match your shipment. You can filter by origin, destination, and travel dates to find the best fit.",
			Keywords: []string{"find", "traveler", "shipment", "choose", "route", "availability"},
		},
		{
			Question: "How can I send a package through OrbisLinks?",
			Answer:   "Pick a traveler whose origin and destination align with your package, message them through OrbisLinks, agree on the details, then hand off the package for delivery.",
			Keywords: []string{"send", "package", "orbislinks", "delivery", "connect", "traveller"},
		},
		{
			Question: "What items are prohibited from being sent?",
			Answer:   "Restricted items include illegal substances, hazardous materials, and perishable goods. Check the full prohibited items list in your OrbisLinks account before shipping.",
			Keywords: []string{"prohibited", "items", "restricted", "illegal", "hazardous", "perishable"},
		},
		{
			Question: "Is there any insurance provided by the company?",
			Answer:   "OrbisLinks does not currently provide insurance on shipments. The team is working on coverage options, and updates will be shared once available.",
			Keywords: []string{"insurance", "insured", "coverage", "company", "provided"},
		},
	}
}
