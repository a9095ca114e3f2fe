package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestInsightUnavailableWithoutGenerator(t *testing.T) {
	f := newFixture()
	svc := NewInsightService(f.analytics(), nil)
	if _, err := svc.Generate(context.Background()); !errors.Is(err, ErrInsightUnavailable) {
		t.Fatalf("expected ErrInsightUnavailable, got %v", err)
	}
}

func TestInsightSkipsGeneratorWithoutResponses(t *testing.T) {
	f := newFixture()
	gen := &stubGenerator{}
	out, err := NewInsightService(f.analytics(), gen).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gen.prompt != "" {
		t.Fatalf("generator should not be called")
	}
	if out.Summary == "" {
		t.Fatalf("expected placeholder summary")
	}
}

func TestInsightParsesGeneratorReply(t *testing.T) {
	f := newFixture()
	submitAll(t, f)
	gen := &stubGenerator{reply: "Summary: Facilities lag behind.\nRecommendations:\n- Fix the labs\n2. Extend library hours\n"}
	out, err := NewInsightService(f.analytics(), gen).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.LowestCategory != "Facilities" || out.LowestDepartment != "Mechanical" {
		t.Fatalf("targets = %+v", out)
	}
	if out.Summary != "Facilities lag behind." {
		t.Fatalf("summary = %q", out.Summary)
	}
	if !reflect.DeepEqual(out.Recommendations, []string{"Fix the labs", "Extend library hours"}) {
		t.Fatalf("recommendations = %q", out.Recommendations)
	}
	if !strings.Contains(gen.prompt, "Lowest category: Facilities") {
		t.Fatalf("prompt missing lowest category:\n%s", gen.prompt)
	}
}

func TestInsightGeneratorFailureIsBadGateway(t *testing.T) {
	f := newFixture()
	submitAll(t, f)
	gen := &stubGenerator{err: errors.New("quota")}
	if _, err := NewInsightService(f.analytics(), gen).Generate(context.Background()); !isCode(err, ErrorBadGateway) {
		t.Fatalf("expected bad gateway, got %v", err)
	}
}

func TestParseInsight(t *testing.T) {
	cases := []struct {
		raw     string
		summary string
		recs    []string
		wantErr bool
	}{
		{"Summary: ok\nRecommendations:\n* a\n* b", "ok", []string{"a", "b"}, false},
		{"Summary: only a summary", "only a summary", []string{}, false},
		{"no structure here", "", nil, true},
	}
	for _, tc := range cases {
		summary, recs, err := parseInsight(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: err = %v", tc.raw, err)
		}
		if tc.wantErr {
			continue
		}
		if summary != tc.summary || !reflect.DeepEqual(recs, tc.recs) {
			t.Fatalf("%q: got %q %q", tc.raw, summary, recs)
		}
	}
}
