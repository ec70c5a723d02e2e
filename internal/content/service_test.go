package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shikostudio/vitrine/internal/apperr"
	"github.com/shikostudio/vitrine/internal/store"
)

type fakeRegen struct {
	calls int
	err   error
}

func (f *fakeRegen) Regenerate(context.Context) error {
	f.calls++
	return f.err
}

type fakeRecorder struct {
	sections []string
}

func (f *fakeRecorder) Record(section, _ string) error {
	f.sections = append(f.sections, section)
	return nil
}

func testService(t *testing.T) (*Service, *fakeRegen) {
	t.Helper()
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	regen := &fakeRegen{}
	svc := NewService(fs, nil).WithRegenerator(regen)
	return svc, regen
}

func TestSeedInitializesRequiredSections(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, section := range Required() {
		if _, err := svc.Get(ctx, section); err != nil {
			t.Errorf("Get(%s) after seed: %v", section, err)
		}
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	custom := json.RawMessage(`{"title":"Mine","lang":"de"}`)
	if _, err := svc.Save(ctx, SectionGeneral, custom); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	raw, _ := svc.Get(ctx, SectionGeneral)
	var g General
	_ = json.Unmarshal(raw, &g)
	if g.Title != "Mine" {
		t.Errorf("seed overwrote existing document: %q", g.Title)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	doc := json.RawMessage(`{"email":"a@b.c","phone":"1","address":"x"}`)
	if _, err := svc.Save(ctx, SectionContact, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := svc.Get(ctx, SectionContact)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var got, want Contact
	_ = json.Unmarshal(raw, &got)
	_ = json.Unmarshal(doc, &want)
	if got != want {
		t.Errorf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestSaveIsPassThrough(t *testing.T) {
	// Duplicate tags in a submitted document are stored as submitted; the
	// editor model is the only dedup boundary.
	svc, _ := testService(t)
	ctx := context.Background()
	doc := json.RawMessage(`{"items":[{"title":"X","category":"web","status":"active","tags":["a","a"]}]}`)
	if _, err := svc.Save(ctx, SectionPortfolio, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, _ := svc.Get(ctx, SectionPortfolio)
	var p Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Items[0].Tags) != 2 {
		t.Errorf("tags = %v, want pass-through duplicate", p.Items[0].Tags)
	}
}

func TestSaveTriggersRegenerationExceptFeatures(t *testing.T) {
	svc, regen := testService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, SectionHero, json.RawMessage(`{"title":"t"}`)); err != nil {
		t.Fatalf("Save hero: %v", err)
	}
	if regen.calls != 1 {
		t.Errorf("regen calls = %d, want 1", regen.calls)
	}

	if _, err := svc.Save(ctx, SectionFeatures, json.RawMessage(`{"portfolio":true}`)); err != nil {
		t.Fatalf("Save features: %v", err)
	}
	if regen.calls != 1 {
		t.Errorf("features save should not regenerate, calls = %d", regen.calls)
	}
}

func TestSaveRegenFailureStillSaved(t *testing.T) {
	svc, regen := testService(t)
	regen.err = errors.New("template mismatch")
	ctx := context.Background()

	res, err := svc.Save(ctx, SectionAbout, json.RawMessage(`{"text1":"a","text2":"b"}`))
	if err == nil {
		t.Fatal("expected regeneration error")
	}
	if !res.Saved {
		t.Error("result should mark the document as saved")
	}
	if _, getErr := svc.Get(ctx, SectionAbout); getErr != nil {
		t.Errorf("document should be durable despite regen failure: %v", getErr)
	}
}

func TestSaveMalformedBody(t *testing.T) {
	svc, regen := testService(t)
	ctx := context.Background()
	for _, body := range []string{`not json`, `[1,2]`, `"str"`, `null`} {
		res, err := svc.Save(ctx, SectionHero, json.RawMessage(body))
		if !errors.Is(err, apperr.ErrMalformed) {
			t.Errorf("Save(%q) err = %v, want ErrMalformed", body, err)
		}
		if res.Saved {
			t.Errorf("Save(%q) should not persist", body)
		}
	}
	if regen.calls != 0 {
		t.Errorf("malformed saves must not regenerate, calls = %d", regen.calls)
	}
}

func TestSaveRecordsJournal(t *testing.T) {
	svc, _ := testService(t)
	rec := &fakeRecorder{}
	svc.WithRecorder(rec)
	ctx := context.Background()
	_, _ = svc.Save(ctx, SectionFooter, json.RawMessage(`{"copyright":"c"}`))
	if len(rec.sections) != 1 || rec.sections[0] != SectionFooter {
		t.Errorf("journal sections = %v", rec.sections)
	}
}

func TestSnapshotDegradesPerSection(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	_, _ = svc.Save(ctx, SectionHero, json.RawMessage(`{"title":"t","description":"d"}`))

	sn := svc.Snapshot(ctx)
	var h Hero
	if err := sn.Decode(SectionHero, &h); err != nil {
		t.Fatalf("Decode hero: %v", err)
	}
	if h.Title != "t" {
		t.Errorf("hero title = %q", h.Title)
	}
	// Unseeded sections carry their own error without affecting others.
	var a About
	if err := sn.Decode(SectionAbout, &a); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing section err = %v, want ErrNotFound", err)
	}
}

func TestFeatureStateRoundTrip(t *testing.T) {
	raw := []byte(`{"portfolio":true,"about":false,"future":"maintenance","contact":"coming-soon"}`)
	var ff Features
	if err := json.Unmarshal(raw, &ff); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ff.State("portfolio").Interactive() {
		t.Error("portfolio should be interactive")
	}
	if ff.State("about").Visible() {
		t.Error("about should be hidden")
	}
	if ff.State("future") != FeatureMaintenance {
		t.Errorf("future = %q", ff.State("future"))
	}
	if !ff.State("unlisted").Interactive() {
		t.Error("absent key should default to enabled")
	}

	out, err := json.Marshal(ff)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Features
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if back.State("about") != FeatureDisabled || back.State("contact") != FeatureComingSoon {
		t.Errorf("round trip = %v", back)
	}
}

func TestFeatureStateRejectsUnknownString(t *testing.T) {
	var f FeatureState
	if err := f.UnmarshalJSON([]byte(`"broken"`)); err == nil {
		t.Error("expected error for unknown state string")
	}
}
