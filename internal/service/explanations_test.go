package service

import (
	"strings"
	"testing"

	"homewise/internal/model"
)

func TestBuildExplanation(t *testing.T) {
	p := model.Property{
		Location:      "Andheri",
		City:          "Mumbai",
		Price:         9500000,
		AreaSqft:      850,
		Decision:      "BUYING is financially better",
		WealthBuying:  5200000,
		WealthRenting: 3100000,
	}

	doc := BuildExplanation(p)
	for _, want := range []string{
		"Property Overview",
		"Location: Andheri",
		"City: Mumbai",
		"Area: 850 sqft",
		"Price: ₹9,500,000",
		"Wealth if Buying: ₹5,200,000",
		"Wealth if Renting: ₹3,100,000",
		"BUYING is financially better",
		"Rationale",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("explanation missing %q:\n%s", want, doc)
		}
	}
}

func TestBuildExplanation_MissingFields(t *testing.T) {
	doc := BuildExplanation(model.Property{Price: 100})
	if !strings.Contains(doc, "Location: Unknown") || !strings.Contains(doc, "City: Unknown") {
		t.Errorf("explanation should mark missing fields as Unknown:\n%s", doc)
	}
}

func TestBuildExplanations_Order(t *testing.T) {
	docs := BuildExplanations(testProperties())
	if len(docs) != len(testProperties()) {
		t.Fatalf("len = %d, want %d", len(docs), len(testProperties()))
	}
	if !strings.Contains(docs[0], "Andheri") {
		t.Errorf("docs[0] should describe the first property:\n%s", docs[0])
	}
}
