package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"homewise/internal/model"
)

// Store holds the analyzed property dataset in memory. The snapshot is
// immutable; re-analysis swaps in a new one atomically. All read paths
// operate on the snapshot current at call time.
type Store struct {
	mu     sync.RWMutex
	props  []model.Property
	cities []string
}

// New creates a store from analyzed property records.
func New(props []model.Property) *Store {
	s := &Store{}
	s.Swap(props)
	return s
}

// Load reads the analyzed-property CSV at path. A missing or unreadable file
// degrades to an empty store so the query path never fails on absent data.
func Load(path string) *Store {
	props, err := ReadCSV(path)
	if err != nil {
		log.Printf("⚠️  Could not load dataset from %s: %v (starting with empty dataset)", path, err)
		return New(nil)
	}
	return New(props)
}

// Swap replaces the dataset snapshot.
func (s *Store) Swap(props []model.Property) {
	cities := uniqueCities(props)

	s.mu.Lock()
	s.props = props
	s.cities = cities
	s.mu.Unlock()
}

// All returns the current snapshot. Callers must treat it as read-only.
func (s *Store) All() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.props)
}

// Cities returns the sorted set of distinct city names in the dataset.
func (s *Store) Cities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cities
}

// Match reports whether a property satisfies the filter predicate. An empty
// predicate matches every record. Location compares against the city field,
// case-insensitively.
func Match(p model.Property, f model.Filters) bool {
	if f.Location != nil && !strings.EqualFold(p.City, *f.Location) {
		return false
	}
	if f.BHK != nil && p.BHK != *f.BHK {
		return false
	}
	if f.BudgetMin != nil && p.Price < *f.BudgetMin {
		return false
	}
	if f.BudgetMax != nil && p.Price > *f.BudgetMax {
		return false
	}
	return true
}

// Filter returns all records matching the predicate, in dataset order.
func (s *Store) Filter(f model.Filters) []model.Property {
	all := s.All()
	out := make([]model.Property, 0, len(all))
	for _, p := range all {
		if Match(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// Sort keys accepted by Browse.
const (
	SortPriceAsc     = "price_asc"
	SortPriceDesc    = "price_desc"
	SortPPSFAsc      = "ppsf_asc"
	SortPPSFDesc     = "ppsf_desc"
	SortAreaAsc      = "area_asc"
	SortAreaDesc     = "area_desc"
	SortBuyAdvantage = "buy_advantage"
)

// Browse applies structured browse criteria, sorts, and paginates. Returns
// the page of records and the true total match count.
func (s *Store) Browse(req model.BrowseRequest) ([]model.Property, int) {
	matched := make([]model.Property, 0)
	for _, p := range s.All() {
		if req.City != "" && req.City != "all" && !strings.EqualFold(p.City, req.City) {
			continue
		}
		if req.BHK != nil && p.BHK != *req.BHK {
			continue
		}
		if req.Decision != "" && req.Decision != "all" &&
			!strings.Contains(strings.ToLower(p.Decision), strings.ToLower(req.Decision)) {
			continue
		}
		if req.MinPrice != nil && p.Price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && p.Price > *req.MaxPrice {
			continue
		}
		if req.MinArea != nil && p.AreaSqft < *req.MinArea {
			continue
		}
		if req.MaxArea != nil && p.AreaSqft > *req.MaxArea {
			continue
		}
		matched = append(matched, p)
	}

	sortProperties(matched, req.Sort)

	total := len(matched)

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	if start >= total {
		return []model.Property{}, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total
}

func sortProperties(props []model.Property, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price < props[j].Price })
	case SortPriceDesc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price > props[j].Price })
	case SortPPSFAsc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].PricePerSqft < props[j].PricePerSqft })
	case SortPPSFDesc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].PricePerSqft > props[j].PricePerSqft })
	case SortAreaAsc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].AreaSqft < props[j].AreaSqft })
	case SortAreaDesc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].AreaSqft > props[j].AreaSqft })
	case SortBuyAdvantage:
		sort.SliceStable(props, func(i, j int) bool { return props[i].BuyAdvantage() > props[j].BuyAdvantage() })
	}
}

func uniqueCities(props []model.Property) []string {
	seen := map[string]string{}
	for _, p := range props {
		city := strings.TrimSpace(p.City)
		if city == "" {
			continue
		}
		key := strings.ToLower(city)
		if _, ok := seen[key]; !ok {
			seen[key] = city
		}
	}

	cities := make([]string, 0, len(seen))
	for _, display := range seen {
		cities = append(cities, display)
	}
	sort.Strings(cities)
	return cities
}

// ReadCSV parses an analyzed-property CSV file. Column order is resolved
// from the header; rows with unparseable numeric fields are skipped.
func ReadCSV(path string) ([]model.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]model.Property, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"location", "city", "price", "decision"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	var props []model.Property
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep what parses.
			continue
		}

		price, err := parseFloatCol(row, col, "price")
		if err != nil {
			continue
		}
		area, _ := parseFloatCol(row, col, "area_sqft")
		bhk, _ := parseFloatCol(row, col, "bhk")
		ppsf, _ := parseFloatCol(row, col, "price_per_sqft")
		wb, _ := parseFloatCol(row, col, "wealth_buying")
		wr, _ := parseFloatCol(row, col, "wealth_renting")

		props = append(props, model.Property{
			Location:      stringCol(row, col, "location"),
			City:          stringCol(row, col, "city"),
			Price:         price,
			AreaSqft:      area,
			BHK:           int(bhk),
			PricePerSqft:  ppsf,
			WealthBuying:  wb,
			WealthRenting: wr,
			Decision:      stringCol(row, col, "decision"),
		})
	}

	return props, nil
}

// ReadRawListings parses the scraped listings CSV consumed by the batch
// analyzer. Accepts either price_total_inr or price as the price column.
func ReadRawListings(path string) ([]model.RawListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read listings header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	priceCol := "price_total_inr"
	if _, ok := col[priceCol]; !ok {
		priceCol = "price"
	}

	var listings []model.RawListing
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		price, err := parseFloatCol(row, col, priceCol)
		if err != nil {
			continue
		}
		area, err := parseFloatCol(row, col, "area_sqft")
		if err != nil {
			continue
		}
		bhk, _ := parseFloatCol(row, col, "bhk")
		ppsf, _ := parseFloatCol(row, col, "price_per_sqft")

		listings = append(listings, model.RawListing{
			Location:     stringCol(row, col, "location"),
			City:         stringCol(row, col, "city"),
			PriceTotal:   price,
			AreaSqft:     area,
			BHK:          int(bhk),
			PricePerSqft: ppsf,
		})
	}

	return listings, nil
}

// WriteCSV persists analyzed property records, mirroring the layout ReadCSV
// expects.
func WriteCSV(path string, props []model.Property) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := writeRows(w, props); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// MarshalCSV renders property records as CSV text for the export endpoint.
func MarshalCSV(props []model.Property) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := writeRows(w, props); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeRows(w *csv.Writer, props []model.Property) error {
	header := []string{"location", "city", "price", "area_sqft", "bhk",
		"price_per_sqft", "wealth_buying", "wealth_renting", "decision"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range props {
		row := []string{
			p.Location,
			p.City,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatFloat(p.AreaSqft, 'f', -1, 64),
			strconv.Itoa(p.BHK),
			strconv.FormatFloat(p.PricePerSqft, 'f', -1, 64),
			strconv.FormatFloat(p.WealthBuying, 'f', -1, 64),
			strconv.FormatFloat(p.WealthRenting, 'f', -1, 64),
			p.Decision,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func stringCol(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseFloatCol(row []string, col map[string]int, name string) (float64, error) {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return 0, nil
	}
	v := strings.TrimSpace(row[i])
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
