package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	"meanin/internal/platform/store/storetest"
	"meanin/internal/services/api/decode/repo"
	meaningdom "meanin/internal/services/meaning/domain"
	termdom "meanin/internal/services/terms/domain"
)

type fakeTerms struct {
	termdom.StorePort
	mu       sync.Mutex
	bumped   []string
	requests []string
	bumpErr  error
}

func (f *fakeTerms) BumpInterest(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bumped = append(f.bumped, id)
	return f.bumpErr
}

func (f *fakeTerms) RecordRequest(_ context.Context, id, source, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, id+"|"+source+"|"+slug)
	return nil
}

type fakeResolver struct {
	meaningdom.ResolverPort
	got  meaningdom.Post
	view meaningdom.View
}

func (f *fakeResolver) Resolve(_ context.Context, p meaningdom.Post) meaningdom.View {
	f.got = p
	return f.view
}

type fakeCH struct {
	store.Clickhouse
	tables []string
	rows   [][]any
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.tables = append(f.tables, table)
	f.rows = append(f.rows, rows...)
	return nil
}

var postRow = []any{
	"p1", "per my last email, we are fine", "per my last email", "whatsapp-status", "abc12345", "hustle",
	"t1", termdom.StatusDraft,
	"m1", "as I already said", "", []string{}, "",
}

func newSvc(db *storetest.DB, terms *fakeTerms, res *fakeResolver, ev *repo.Events) *Service {
	s := New(db, repo.NewPG(), Options{Terms: terms, Resolver: res, Events: ev})
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestGetView(t *testing.T) {
	db := storetest.New().
		Returns("where p.public_slug", postRow).
		Returns("from decodes", []any{7})
	terms := &fakeTerms{}
	res := &fakeResolver{view: meaningdom.View{BaseMeaning: "base", ContextualMeaning: "ctx", RelatedTerms: []string{}}}
	ch := &fakeCH{}

	v, err := newSvc(db, terms, res, repo.NewEvents(ch)).GetView(context.Background(), "abc12345", "pt-BR,pt;q=0.9")
	if err != nil {
		t.Fatal(err)
	}
	if v.DecodeCount != 7 || v.Post.KeywordText != "per my last email" || v.Post.TagSlug != "hustle" {
		t.Fatalf("unexpected view %+v", v)
	}
	if res.got.TermID != "t1" || res.got.Meaning == nil || res.got.Meaning.ShortDefinition != "as I already said" {
		t.Fatalf("resolver input %+v", res.got)
	}
	if len(terms.bumped) != 1 || terms.requests[0] != "t1|viewer|abc12345" {
		t.Fatalf("interest not recorded: %v %v", terms.bumped, terms.requests)
	}

	var insert storetest.Call
	for _, c := range db.Calls() {
		if strings.Contains(c.SQL, "insert into decodes") {
			insert = c
		}
	}
	if insert.Args[1] != "base ctx" || insert.Args[5] != "pt" {
		t.Fatalf("decode log args %v", insert.Args)
	}
	if len(ch.tables) != 1 || ch.tables[0] != repo.EventsTable || ch.rows[0][1] != "abc12345" {
		t.Fatalf("event not mirrored: %v %v", ch.tables, ch.rows)
	}
}

func TestGetView_NoMeaningRow(t *testing.T) {
	row := append([]any(nil), postRow...)
	row[8] = nil
	db := storetest.New().Returns("where p.public_slug", row)
	res := &fakeResolver{}

	if _, err := newSvc(db, &fakeTerms{}, res, nil).GetView(context.Background(), "abc12345", ""); err != nil {
		t.Fatal(err)
	}
	if res.got.Meaning != nil {
		t.Fatalf("null meaning id should yield no joined meaning")
	}
}

func TestGetView_UnknownSlug(t *testing.T) {
	_, err := newSvc(storetest.New(), &fakeTerms{}, &fakeResolver{}, nil).GetView(context.Background(), "nope", "")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) || err.Error() != "not found" {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestGetView_CountErrorIsZero(t *testing.T) {
	db := storetest.New().
		Returns("where p.public_slug", postRow).
		Fails("from decodes", errors.New("boom"))
	v, err := newSvc(db, &fakeTerms{}, &fakeResolver{}, nil).GetView(context.Background(), "abc12345", "")
	if err != nil || v.DecodeCount != 0 {
		t.Fatalf("got %+v %v", v, err)
	}
}

func TestGetView_NoTermSkipsInterest(t *testing.T) {
	row := append([]any(nil), postRow...)
	row[6], row[7], row[8] = "", "", nil
	terms := &fakeTerms{}
	db := storetest.New().Returns("where p.public_slug", row)

	if _, err := newSvc(db, terms, &fakeResolver{}, nil).GetView(context.Background(), "abc12345", ""); err != nil {
		t.Fatal(err)
	}
	if len(terms.bumped) != 0 {
		t.Fatalf("no term, no interest bump")
	}
}

func TestDecodedTextIsCapped(t *testing.T) {
	db := storetest.New().Returns("where p.public_slug", postRow)
	res := &fakeResolver{view: meaningdom.View{BaseMeaning: strings.Repeat("a", 400), ContextualMeaning: strings.Repeat("b", 400)}}

	if _, err := newSvc(db, &fakeTerms{}, res, nil).GetView(context.Background(), "abc12345", ""); err != nil {
		t.Fatal(err)
	}
	for _, c := range db.Calls() {
		if strings.Contains(c.SQL, "insert into decodes") {
			if n := len(c.Args[1].(string)); n != MaxDecodedText {
				t.Fatalf("decoded text length %d", n)
			}
		}
	}
}

func TestGetView_FailedBumpStillRecordsRequest(t *testing.T) {
	db := storetest.New().Returns("where p.public_slug", postRow)
	terms := &fakeTerms{bumpErr: errors.New("function bump_term_interest does not exist")}

	if _, err := newSvc(db, terms, &fakeResolver{}, nil).GetView(context.Background(), "abc12345", ""); err != nil {
		t.Fatal(err)
	}
	if len(terms.requests) != 1 || terms.requests[0] != "t1|viewer|abc12345" {
		t.Fatalf("request not recorded after failed bump: %v", terms.requests)
	}
}

func TestGetView_DecodeLogFailureStillServes(t *testing.T) {
	db := storetest.New().
		Returns("where p.public_slug", postRow).
		Fails("insert into decodes", errors.New("down"))
	res := &fakeResolver{view: meaningdom.View{BaseMeaning: "b", ContextualMeaning: "c", RelatedTerms: []string{}}}

	v, err := newSvc(db, &fakeTerms{}, res, nil).GetView(context.Background(), "abc12345", "")
	if err != nil {
		t.Fatalf("decode log failure leaked: %v", err)
	}
	if v.Meaning.BaseMeaning != "b" || v.Post.Slug != "abc12345" {
		t.Fatalf("unexpected view %+v", v)
	}
}
