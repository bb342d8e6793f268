package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/contract"
	"faq-knowledge-be/internal/repository/specification"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/dedup"

	"github.com/google/uuid"
)

// fakeState is an in-memory stand-in for the relational store, shared by all
// fake repositories handed out by the fake unit of work.
type fakeState struct {
	mu sync.Mutex

	faqs       []*entity.FAQ
	docLinks   []*entity.FAQDocumentLink
	msgLinks   []*entity.FAQMessageLink
	embeddings []*entity.FAQEmbedding
	detections []*entity.PIIDetection
	candidates []*entity.DuplicateCandidate
	events     []*entity.ReviewEvent
	users      []*entity.User
}

func newFakeState() *fakeState {
	return &fakeState{}
}

func (s *fakeState) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{state: s}
}

type fakeUow struct {
	state *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{state: u.state}
}
func (u *fakeUow) FAQRepository() contract.FAQRepository {
	return &fakeFAQRepo{state: u.state}
}
func (u *fakeUow) FAQLinkRepository() contract.FAQLinkRepository {
	return &fakeFAQLinkRepo{state: u.state}
}
func (u *fakeUow) FAQEmbeddingRepository() contract.FAQEmbeddingRepository {
	return &fakeFAQEmbeddingRepo{state: u.state}
}
func (u *fakeUow) PIIDetectionRepository() contract.PIIDetectionRepository {
	return &fakePIIRepo{state: u.state}
}
func (u *fakeUow) DuplicateCandidateRepository() contract.DuplicateCandidateRepository {
	return &fakeCandidateRepo{state: u.state}
}
func (u *fakeUow) ReviewEventRepository() contract.ReviewEventRepository {
	return &fakeEventRepo{state: u.state}
}

// specFilter extracts the filters the services actually use from a spec list.
type specFilter struct {
	id          *uuid.UUID
	status      *string
	email       *string
	oldestFirst bool
	limit       int
}

func parseSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			f.id = &id
		case specification.ByStatus:
			status := s.Status
			f.status = &status
		case specification.ByEmail:
			email := s.Email
			f.email = &email
		case specification.OldestFirst:
			f.oldestFirst = true
		case specification.Pagination:
			f.limit = s.Limit
		}
	}
	return f
}

func (f specFilter) cap(n int) int {
	if f.limit > 0 && f.limit < n {
		return f.limit
	}
	return n
}

type fakeFAQRepo struct {
	state *fakeState
}

func (r *fakeFAQRepo) Create(ctx context.Context, faq *entity.FAQ) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if faq.Id == uuid.Nil {
		faq.Id = uuid.New()
	}
	if faq.CreatedAt.IsZero() {
		faq.CreatedAt = time.Now()
	}
	cp := *faq
	r.state.faqs = append(r.state.faqs, &cp)
	return nil
}

func (r *fakeFAQRepo) Update(ctx context.Context, faq *entity.FAQ) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for i, f := range r.state.faqs {
		if f.Id == faq.Id {
			cp := *faq
			r.state.faqs[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeFAQRepo) DeleteUnscoped(ctx context.Context, id uuid.UUID) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for i, f := range r.state.faqs {
		if f.Id == id {
			r.state.faqs = append(r.state.faqs[:i], r.state.faqs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeFAQRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQ, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	for _, faq := range r.state.faqs {
		if f.id != nil && faq.Id != *f.id {
			continue
		}
		cp := *faq
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFAQRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	out := make([]*entity.FAQ, 0, len(r.state.faqs))
	for _, faq := range r.state.faqs {
		cp := *faq
		out = append(out, &cp)
	}
	if f.oldestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *fakeFAQRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.faqs)), nil
}

type fakeFAQLinkRepo struct {
	state *fakeState
}

func (r *fakeFAQLinkRepo) CreateDocumentLink(ctx context.Context, link *entity.FAQDocumentLink) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if link.Id == uuid.Nil {
		link.Id = uuid.New()
	}
	cp := *link
	r.state.docLinks = append(r.state.docLinks, &cp)
	return nil
}

func (r *fakeFAQLinkRepo) CreateMessageLink(ctx context.Context, link *entity.FAQMessageLink) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if link.Id == uuid.Nil {
		link.Id = uuid.New()
	}
	cp := *link
	r.state.msgLinks = append(r.state.msgLinks, &cp)
	return nil
}

func (r *fakeFAQLinkRepo) DeleteAllByFaqId(ctx context.Context, faqId uuid.UUID) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	docs := r.state.docLinks[:0]
	for _, l := range r.state.docLinks {
		if l.FaqId != faqId {
			docs = append(docs, l)
		}
	}
	r.state.docLinks = docs
	msgs := r.state.msgLinks[:0]
	for _, l := range r.state.msgLinks {
		if l.FaqId != faqId {
			msgs = append(msgs, l)
		}
	}
	r.state.msgLinks = msgs
	return nil
}

func (r *fakeFAQLinkRepo) CountByFaqId(ctx context.Context, faqId uuid.UUID) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	var n int64
	for _, l := range r.state.docLinks {
		if l.FaqId == faqId {
			n++
		}
	}
	for _, l := range r.state.msgLinks {
		if l.FaqId == faqId {
			n++
		}
	}
	return n, nil
}

type fakeFAQEmbeddingRepo struct {
	state *fakeState
}

func (r *fakeFAQEmbeddingRepo) Create(ctx context.Context, e *entity.FAQEmbedding) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	cp := *e
	r.state.embeddings = append(r.state.embeddings, &cp)
	return nil
}

func (r *fakeFAQEmbeddingRepo) DeleteByFaqIdUnscoped(ctx context.Context, faqId uuid.UUID) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	kept := r.state.embeddings[:0]
	for _, e := range r.state.embeddings {
		if e.FaqId != faqId {
			kept = append(kept, e)
		}
	}
	r.state.embeddings = kept
	return nil
}

func (r *fakeFAQEmbeddingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQEmbedding, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if len(r.state.embeddings) == 0 {
		return nil, nil
	}
	cp := *r.state.embeddings[0]
	return &cp, nil
}

func (r *fakeFAQEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.embeddings)), nil
}

func (r *fakeFAQEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredFAQEmbedding, error) {
	return nil, nil
}

type fakePIIRepo struct {
	state *fakeState
}

func (r *fakePIIRepo) Create(ctx context.Context, d *entity.PIIDetection) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if d.Id == uuid.Nil {
		d.Id = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	cp := *d
	r.state.detections = append(r.state.detections, &cp)
	return nil
}

func (r *fakePIIRepo) Update(ctx context.Context, d *entity.PIIDetection) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for i, existing := range r.state.detections {
		if existing.Id == d.Id {
			cp := *d
			r.state.detections[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakePIIRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PIIDetection, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	for _, d := range r.state.detections {
		if f.id != nil && d.Id != *f.id {
			continue
		}
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePIIRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PIIDetection, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	out := make([]*entity.PIIDetection, 0, len(r.state.detections))
	for _, d := range r.state.detections {
		if f.status != nil && d.Status != *f.status {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	if f.oldestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	}
	return out[:f.cap(len(out))], nil
}

func (r *fakePIIRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.detections)), nil
}

type fakeCandidateRepo struct {
	state *fakeState
}

func (r *fakeCandidateRepo) Create(ctx context.Context, c *entity.DuplicateCandidate) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	r.state.candidates = append(r.state.candidates, &cp)
	return nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, c *entity.DuplicateCandidate) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for i, existing := range r.state.candidates {
		if existing.Id == c.Id {
			cp := *c
			r.state.candidates[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCandidateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DuplicateCandidate, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	for _, c := range r.state.candidates {
		if f.id != nil && c.Id != *f.id {
			continue
		}
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCandidateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DuplicateCandidate, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	out := make([]*entity.DuplicateCandidate, 0, len(r.state.candidates))
	for _, c := range r.state.candidates {
		if f.status != nil && c.Status != *f.status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	if f.oldestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	}
	return out[:f.cap(len(out))], nil
}

func (r *fakeCandidateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.candidates)), nil
}

type fakeEventRepo struct {
	state *fakeState
}

func (r *fakeEventRepo) Create(ctx context.Context, e *entity.ReviewEvent) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	cp := *e
	r.state.events = append(r.state.events, &cp)
	return nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewEvent, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.ReviewEvent, len(r.state.events))
	copy(out, r.state.events)
	return out, nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	cp := *u
	r.state.users = append(r.state.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	f := parseSpecs(specs)
	for _, u := range r.state.users {
		if f.email != nil && u.Email != *f.email {
			continue
		}
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

// fakeGateway scripts similarity responses per question text.
type fakeGateway struct {
	mu       sync.Mutex
	results  map[string]*dedup.QueryResult
	findErr  error
	upserted []uuid.UUID
	deleted  []uuid.UUID
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		results: make(map[string]*dedup.QueryResult),
	}
}

func (g *fakeGateway) FindSimilar(ctx context.Context, record *dedup.Record) (*dedup.QueryResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.findErr != nil {
		return nil, g.findErr
	}
	if res, ok := g.results[record.Question]; ok {
		return res, nil
	}
	return &dedup.QueryResult{}, nil
}

func (g *fakeGateway) DeleteEmbedding(ctx context.Context, id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted = append(g.deleted, id)
	return nil
}

func (g *fakeGateway) UpsertEmbedding(ctx context.Context, record *dedup.Record) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.upserted = append(g.upserted, record.Id)
	return nil
}

// fakePublisher records embed-queue payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}
