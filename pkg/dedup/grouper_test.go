package dedup

import (
	"context"
	"errors"
	"testing"
	"time"

	"faq-knowledge-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// fakeGateway answers similarity queries from a canned map keyed by record id.
type fakeGateway struct {
	results map[uuid.UUID]*QueryResult
	errs    map[uuid.UUID]error
	deleted []uuid.UUID
	delErrs map[uuid.UUID]error
	queries int
}

func (f *fakeGateway) FindSimilar(ctx context.Context, record *Record) (*QueryResult, error) {
	f.queries++
	if err, ok := f.errs[record.Id]; ok {
		return nil, err
	}
	if res, ok := f.results[record.Id]; ok {
		return res, nil
	}
	return &QueryResult{IsDuplicate: false}, nil
}

func (f *fakeGateway) DeleteEmbedding(ctx context.Context, id uuid.UUID) error {
	if err, ok := f.delErrs[id]; ok {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGateway) UpsertEmbedding(ctx context.Context, record *Record) error {
	return nil
}

func makeRecord(question string, age time.Duration) *Record {
	return &Record{
		Id:        uuid.New(),
		Question:  question,
		Answer:    "answer",
		CreatedAt: time.Now().Add(-age),
	}
}

func TestGroupOldestWinsCanonical(t *testing.T) {
	a := makeRecord("How do I reset my password?", 3*time.Hour)
	b := makeRecord("How can I reset my password?", 2*time.Hour)
	c := makeRecord("What is the office wifi name?", time.Hour)

	gw := &fakeGateway{
		results: map[uuid.UUID]*QueryResult{
			a.Id: {IsDuplicate: true, Matches: []Match{
				{Id: a.Id, Score: 1.0},
				{Id: b.Id, Score: 0.91},
				{Id: c.Id, Score: 0.40},
			}},
		},
	}

	g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())
	clusters := g.Group(context.Background(), []*Record{a, b, c})

	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, want 1", len(clusters))
	}
	if clusters[0].Canonical != a.Id {
		t.Errorf("canonical = %s, want oldest record %s", clusters[0].Canonical, a.Id)
	}
	if len(clusters[0].Losers) != 1 || clusters[0].Losers[0] != b.Id {
		t.Errorf("losers = %v, want [%s]", clusters[0].Losers, b.Id)
	}
}

func TestGroupDeterministic(t *testing.T) {
	a := makeRecord("Q1", 3*time.Hour)
	b := makeRecord("Q1 again", 2*time.Hour)

	gw := &fakeGateway{
		results: map[uuid.UUID]*QueryResult{
			a.Id: {IsDuplicate: true, Matches: []Match{
				{Id: a.Id, Score: 1.0},
				{Id: b.Id, Score: 0.95},
			}},
		},
	}
	g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())

	first := g.Group(context.Background(), []*Record{a, b})
	second := g.Group(context.Background(), []*Record{a, b})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("cluster counts = %d, %d, want 1, 1", len(first), len(second))
	}
	if first[0].Canonical != second[0].Canonical {
		t.Errorf("canonical differs across identical runs: %s vs %s", first[0].Canonical, second[0].Canonical)
	}
}

func TestGroupNoDoubleProcessing(t *testing.T) {
	a := makeRecord("Q1", 4*time.Hour)
	b := makeRecord("Q1 dup", 3*time.Hour)
	c := makeRecord("Q2", 2*time.Hour)
	d := makeRecord("Q2 dup", time.Hour)

	gw := &fakeGateway{
		results: map[uuid.UUID]*QueryResult{
			a.Id: {IsDuplicate: true, Matches: []Match{
				{Id: a.Id, Score: 1.0},
				{Id: b.Id, Score: 0.90},
			}},
			// b would also claim a, but a is already processed by then.
			b.Id: {IsDuplicate: true, Matches: []Match{
				{Id: b.Id, Score: 1.0},
				{Id: a.Id, Score: 0.90},
			}},
			c.Id: {IsDuplicate: true, Matches: []Match{
				{Id: c.Id, Score: 1.0},
				{Id: d.Id, Score: 0.88},
			}},
		},
	}
	g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())
	clusters := g.Group(context.Background(), []*Record{a, b, c, d})

	seen := make(map[uuid.UUID]int)
	for _, cl := range clusters {
		seen[cl.Canonical]++
		for _, l := range cl.Losers {
			seen[l]++
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("id %s appears %d times across clusters, want at most 1", id, n)
		}
	}
	if len(clusters) != 2 {
		t.Errorf("clusters = %d, want 2", len(clusters))
	}
}

func TestGroupGatewayErrorSkipsRecord(t *testing.T) {
	a := makeRecord("Q1", 2*time.Hour)
	b := makeRecord("Q2", time.Hour)

	gw := &fakeGateway{
		errs: map[uuid.UUID]error{
			a.Id: errors.New("index timeout"),
		},
		results: map[uuid.UUID]*QueryResult{
			b.Id: {IsDuplicate: false},
		},
	}
	g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())
	clusters := g.Group(context.Background(), []*Record{a, b})

	if len(clusters) != 0 {
		t.Errorf("clusters = %d, want 0 (failed record neither forms nor joins a cluster)", len(clusters))
	}
	if gw.queries != 2 {
		t.Errorf("queries = %d, want 2 (run continues past the failure)", gw.queries)
	}
}

func TestGroupThresholdFiltering(t *testing.T) {
	tests := []struct {
		name         string
		score        float64
		wantClusters int
	}{
		{"above threshold", 0.86, 1},
		{"at threshold", 0.85, 1},
		{"below threshold", 0.84, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := makeRecord("Q1", 2*time.Hour)
			b := makeRecord("Q1 near", time.Hour)
			gw := &fakeGateway{
				results: map[uuid.UUID]*QueryResult{
					a.Id: {IsDuplicate: true, Matches: []Match{
						{Id: a.Id, Score: 1.0},
						{Id: b.Id, Score: tt.score},
					}},
				},
			}
			g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())
			clusters := g.Group(context.Background(), []*Record{a, b})
			if len(clusters) != tt.wantClusters {
				t.Errorf("clusters = %d, want %d", len(clusters), tt.wantClusters)
			}
		})
	}
}

func TestGroupSelfMatchOmittedByIndex(t *testing.T) {
	// Some index states do not return the query record's own entry. The
	// cluster must still form with the current record as canonical.
	a := makeRecord("Q1", 2*time.Hour)
	b := makeRecord("Q1 dup", time.Hour)

	gw := &fakeGateway{
		results: map[uuid.UUID]*QueryResult{
			a.Id: {IsDuplicate: true, Matches: []Match{
				{Id: b.Id, Score: 0.92},
				{Id: uuid.New(), Score: 0.90},
			}},
		},
	}
	g := NewGrouper(gw, DefaultThreshold, logger.NewNopLogger())
	clusters := g.Group(context.Background(), []*Record{a, b})

	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, want 1", len(clusters))
	}
	if clusters[0].Canonical != a.Id {
		t.Errorf("canonical = %s, want %s", clusters[0].Canonical, a.Id)
	}
	if len(clusters[0].Losers) != 2 {
		t.Errorf("losers = %d, want 2", len(clusters[0].Losers))
	}
}

func TestTruncatePreview(t *testing.T) {
	long := make([]rune, 120)
	for i := range long {
		long[i] = 'x'
	}
	got := truncatePreview(string(long))
	if len([]rune(got)) != previewRunes+3 {
		t.Errorf("preview length = %d runes, want %d", len([]rune(got)), previewRunes+3)
	}
	if short := truncatePreview("short"); short != "short" {
		t.Errorf("short preview = %q, want unchanged", short)
	}
}
