package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"homewise/internal/dataset"
	"homewise/internal/model"
	"homewise/internal/utils"
)

// cityAliases maps common alternate names and known misspellings to the
// canonical city name used in the dataset. Checked before any other
// resolution tier.
var cityAliases = map[string]string{
	"thiruvananthapuram": "Trivandrum",
	"thiruvanantapuram":  "Trivandrum",
	"tvm":                "Trivandrum",
	"bombay":             "Mumbai",
	"madras":             "Chennai",
	"calcutta":           "Kolkata",
	"cochin":             "Kochi",
	"ernakulam":          "Kochi",
	"gurugram":           "Gurgaon",
	"bengaluru":          "Bangalore",
	"delhi":              "New-delhi",
	"new delhi":          "New-delhi",
}

// fallbackCities covers the case where the dataset is missing or empty, so
// that location extraction still recognizes the usual markets.
var fallbackCities = []string{
	"Mumbai", "Pune", "Thane", "Kochi", "Trivandrum", "Hyderabad",
	"Chennai", "Kolkata", "New-delhi", "Gurgaon", "Noida", "Bangalore",
}

// locationStopWords are filler words that must never be treated as city-name
// candidates during approximate matching.
var locationStopWords = map[string]bool{
	"properties": true, "property": true, "homes": true, "home": true,
	"house": true, "houses": true, "apartment": true, "apartments": true,
	"flat": true, "flats": true, "show": true, "find": true, "search": true,
	"looking": true, "give": true, "want": true, "need": true, "with": true,
	"near": true, "around": true, "within": true, "between": true,
	"under": true, "over": true, "below": true, "above": true,
	"budget": true, "price": true, "cost": true, "lakh": true, "lakhs": true,
	"crore": true, "crores": true, "bedroom": true, "bedrooms": true,
	"should": true, "rent": true, "renting": true, "buying": true,
	"analysis": true, "what": true, "tell": true, "about": true,
	"best": true, "good": true, "cheap": true, "from": true, "this": true,
	"that": true, "there": true, "here": true,
}

const cityMatchThreshold = 0.60

var (
	bhkPattern = regexp.MustCompile(`(\d+)\s*(?:bhk|bedrooms?|beds?)\b`)
	// A number optionally carrying an Indian scale unit.
	amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(lakhs?|lacs?|crores?|cr|l)?\b`)
)

// budgetCues are words that mark the numbers that follow as money rather
// than, say, a bedroom count.
var budgetCues = map[string]bool{
	"budget": true, "price": true, "cost": true, "under": true,
	"below": true, "above": true, "over": true, "within": true,
	"around": true, "between": true, "for": true, "upto": true,
	"rs": true, "inr": true, "rupees": true,
}

// Interpreter extracts structured filters from free-text queries. The known
// city set comes from the dataset, with a static fallback when the dataset
// is empty.
type Interpreter struct {
	store *dataset.Store
}

// NewInterpreter creates an interpreter backed by the given dataset store.
func NewInterpreter(store *dataset.Store) *Interpreter {
	return &Interpreter{store: store}
}

// knownCities returns the resolvable city set, longest names first so that
// substring matching prefers "Navi Mumbai" over "Mumbai".
func (in *Interpreter) knownCities() []string {
	cities := in.store.Cities()
	if len(cities) == 0 {
		cities = fallbackCities
	}

	sorted := make([]string, len(cities))
	copy(sorted, cities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// ExtractFilters pulls location, BHK, and budget bounds out of a query.
// Fields the query says nothing about stay nil; extraction never guesses.
func (in *Interpreter) ExtractFilters(query string) model.Filters {
	q := strings.ToLower(query)

	var f model.Filters
	f.Location = in.extractLocation(q)
	f.BHK = extractBHK(q)
	f.BudgetMin, f.BudgetMax = extractBudget(q)
	return f
}

// extractLocation resolves a city mention in three tiers: alias table,
// direct substring match, then approximate matching of candidate words
// against known cities and alias keys.
func (in *Interpreter) extractLocation(q string) *string {
	known := in.knownCities()

	knownSet := make(map[string]string, len(known))
	for _, city := range known {
		knownSet[strings.ToLower(city)] = city
	}

	canonical := func(city string) *string {
		if display, ok := knownSet[strings.ToLower(city)]; ok {
			return &display
		}
		// Alias targets outside the dataset still canonicalize to title case.
		t := utils.TitleCase(city)
		return &t
	}

	// Tier 1: alias table. An alias only wins if its canonical form is a
	// known city (or no dataset is loaded to contradict it).
	for alias, target := range cityAliases {
		if !strings.Contains(q, alias) {
			continue
		}
		if _, ok := knownSet[strings.ToLower(target)]; ok {
			return canonical(target)
		}
	}

	// Tier 2: direct substring match, longest city names first.
	for _, city := range known {
		if strings.Contains(q, strings.ToLower(city)) {
			display := city
			return &display
		}
	}

	// Tier 3: approximate match on candidate words.
	for _, word := range candidateWords(q) {
		if match := bestCityMatch(word, known); match != nil {
			return match
		}
	}

	return nil
}

// candidateWords filters query tokens down to plausible city-name
// candidates: longer than 3 characters, not a stop word, not numeric.
// Longest first, so the most specific token is tried before generic ones.
func candidateWords(q string) []string {
	var words []string
	for _, w := range utils.Tokenize(q) {
		if len(w) <= 3 || locationStopWords[w] {
			continue
		}
		if _, err := strconv.Atoi(w); err == nil {
			continue
		}
		words = append(words, w)
	}

	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})
	return words
}

// bestCityMatch compares one candidate word against all known cities and
// alias keys, returning the best match at or above the similarity threshold.
func bestCityMatch(word string, known []string) *string {
	bestScore := 0.0
	var best *string

	for _, city := range known {
		if score := utils.SequenceRatio(word, city); score >= cityMatchThreshold && score > bestScore {
			bestScore = score
			c := city
			best = &c
		}
	}

	knownSet := make(map[string]bool, len(known))
	for _, city := range known {
		knownSet[strings.ToLower(city)] = true
	}

	// Misspellings of long-form names resolve through the alias keys, e.g.
	// "thiruvanantpuram" is closer to "thiruvananthapuram" than to
	// "trivandrum".
	for alias, target := range cityAliases {
		if !knownSet[strings.ToLower(target)] {
			continue
		}
		if score := utils.SequenceRatio(word, alias); score >= cityMatchThreshold && score > bestScore {
			bestScore = score
			t := target
			best = &t
		}
	}

	return best
}

// extractBHK finds a bedroom count written as "2 bhk", "3 bedroom" etc.
func extractBHK(q string) *int {
	m := bhkPattern.FindStringSubmatch(q)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// extractBudget collects monetary amounts from the query. A number counts as
// money when it carries a lakh/crore unit (attached or as the next word) or
// follows a budget cue word. The smallest amount becomes the lower bound and
// the largest the upper bound; a single amount fills both.
func extractBudget(q string) (*float64, *float64) {
	// Strip BHK mentions so "2 bhk" never reads as ₹2.
	cleaned := bhkPattern.ReplaceAllString(q, " ")

	tokens := strings.Fields(cleaned)
	var amounts []float64

	cueActive := false
	for i, tok := range tokens {
		trimmed := strings.Trim(tok, ",.!?₹")
		if budgetCues[trimmed] {
			cueActive = true
			continue
		}

		m := amountPattern.FindStringSubmatch(trimmed)
		if m == nil || m[1] == "" || !strings.HasPrefix(trimmed, m[1]) {
			continue
		}

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		unit := m[2]
		if unit == "" && i+1 < len(tokens) {
			// "50 lakh" splits the unit into the next token.
			if next := strings.Trim(tokens[i+1], ",.!?"); isUnitWord(next) {
				unit = next
			}
		}
		if unit == "" {
			// A bare number is money only after a cue, and only when it
			// is a plausible rupee amount rather than a stray count.
			if !cueActive || value < 1000 {
				continue
			}
		}

		amounts = append(amounts, value*unitMultiplier(unit))
		cueActive = false
	}

	if len(amounts) == 0 {
		return nil, nil
	}

	min, max := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return &min, &max
}

func isUnitWord(w string) bool {
	switch w {
	case "lakh", "lakhs", "lac", "lacs", "l", "crore", "crores", "cr":
		return true
	}
	return false
}

func unitMultiplier(unit string) float64 {
	switch {
	case strings.HasPrefix(unit, "lakh"), strings.HasPrefix(unit, "lac"), unit == "l":
		return 100000
	case strings.HasPrefix(unit, "crore"), unit == "cr":
		return 10000000
	default:
		return 1
	}
}
