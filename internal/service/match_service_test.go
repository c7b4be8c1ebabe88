package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/talentlink/api/internal/cache"
	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/repository"
)

type fakeJobStore struct {
	jobs        map[string]*model.Job
	findAllCnt  int
	findByIDCnt int
}

func (f *fakeJobStore) FindByID(_ context.Context, id string) (*model.Job, error) {
	f.findByIDCnt++
	if job, ok := f.jobs[id]; ok {
		return job, nil
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeJobStore) FindAll(_ context.Context) ([]model.Job, error) {
	f.findAllCnt++
	out := make([]model.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, nil
}

type fakeTalentStore struct {
	talents    []model.Talent
	findAllCnt int
}

func (f *fakeTalentStore) FindByID(_ context.Context, id string) (*model.Talent, error) {
	for i := range f.talents {
		if f.talents[i].ID == id {
			return &f.talents[i], nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeTalentStore) FindAll(_ context.Context) ([]model.Talent, error) {
	f.findAllCnt++
	return f.talents, nil
}

// fakeCache is an in-memory MatchCacheStore. Setting unavailable simulates an
// unreachable store.
type fakeCache struct {
	entries     map[string][]model.MatchResult
	unavailable bool
	lookupCnt   int
	storeCnt    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]model.MatchResult)}
}

func (f *fakeCache) Lookup(_ context.Context, key string) ([]model.MatchResult, cache.Outcome) {
	f.lookupCnt++
	if f.unavailable {
		return nil, cache.Unavailable
	}
	if v, ok := f.entries[key]; ok {
		return v, cache.Hit
	}
	return nil, cache.Miss
}

func (f *fakeCache) Store(_ context.Context, key string, results []model.MatchResult) {
	f.storeCnt++
	if f.unavailable {
		return
	}
	f.entries[key] = results
}

func (f *fakeCache) Invalidate(_ context.Context, kind cache.SubjectKind, id string) {
	delete(f.entries, cache.Key(kind, id))
	opposite := cache.KindJob
	if kind == cache.KindJob {
		opposite = cache.KindTalent
	}
	prefix := string("matches:" + opposite + ":")
	for k := range f.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(f.entries, k)
		}
	}
}

func seniorWebDevJob(id string) *model.Job {
	return &model.Job{
		ID:              id,
		Status:          model.JobStatusPublished,
		ServiceCategory: model.CategoryWebDev,
		RequiredSkills:  []string{"JavaScript", "TypeScript", "React"},
		ExperienceLevel: model.LevelSenior,
	}
}

func strongTalent(id string) model.Talent {
	return model.Talent{
		ID:              id,
		Status:          model.TalentStatusApproved,
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"JavaScript", "TypeScript", "React"},
		ExperienceLevel: model.LevelSenior,
		Availability:    model.AvailabilityAvailable,
	}
}

func weakTalent(id string) model.Talent {
	return model.Talent{
		ID:              id,
		Status:          model.TalentStatusApproved,
		ServiceCategory: model.CategoryMarketing,
		Skills:          []string{"SEO"},
		ExperienceLevel: model.LevelJunior,
		Availability:    model.AvailabilityBusy,
	}
}

func newTestService(jobs *fakeJobStore, talents *fakeTalentStore, c *fakeCache) *MatchService {
	return NewMatchService(jobs, talents, c, zap.NewNop())
}

func TestMatchesForJobNotFound(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{}}
	talents := &fakeTalentStore{}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	_, err := svc.MatchesForJob(context.Background(), "missing")
	if err != ErrJobNotFound {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
	if c.lookupCnt != 0 {
		t.Errorf("cache touched %d times for a missing subject, want 0", c.lookupCnt)
	}
}

func TestMatchesForJobCutoff(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{"j1": seniorWebDevJob("j1")}}
	talents := &fakeTalentStore{talents: []model.Talent{strongTalent("t1"), weakTalent("t2")}}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	results, err := svc.MatchesForJob(context.Background(), "j1")
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (weak talent below cutoff)", len(results))
	}
	for _, r := range results {
		if r.Score < 50 {
			t.Errorf("result %s has score %v below cutoff", r.SubjectID, r.Score)
		}
	}
}

func TestMatchesForJobCacheRoundTrip(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{"j1": seniorWebDevJob("j1")}}
	talents := &fakeTalentStore{talents: []model.Talent{strongTalent("t1"), strongTalent("t2")}}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	first, err := svc.MatchesForJob(context.Background(), "j1")
	if err != nil {
		t.Fatal(err)
	}
	if talents.findAllCnt != 1 {
		t.Fatalf("first query scanned %d times, want 1", talents.findAllCnt)
	}

	second, err := svc.MatchesForJob(context.Background(), "j1")
	if err != nil {
		t.Fatal(err)
	}
	if talents.findAllCnt != 1 {
		t.Errorf("repeat query triggered another full scan (count=%d)", talents.findAllCnt)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result length %d != original %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMatchesForJobInvalidationForcesRecompute(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{"j1": seniorWebDevJob("j1")}}
	talents := &fakeTalentStore{talents: []model.Talent{strongTalent("t1")}}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	if _, err := svc.MatchesForJob(context.Background(), "j1"); err != nil {
		t.Fatal(err)
	}

	c.Invalidate(context.Background(), cache.KindJob, "j1")

	if _, err := svc.MatchesForJob(context.Background(), "j1"); err != nil {
		t.Fatal(err)
	}
	if talents.findAllCnt != 2 {
		t.Errorf("scan count after invalidation = %d, want 2", talents.findAllCnt)
	}
}

func TestMatchesForJobCacheUnavailableFailsOpen(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{"j1": seniorWebDevJob("j1")}}
	talents := &fakeTalentStore{talents: []model.Talent{strongTalent("t1")}}
	c := newFakeCache()
	c.unavailable = true
	svc := newTestService(jobs, talents, c)

	results, err := svc.MatchesForJob(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unavailable cache must not fail the query: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}

	// Every query recomputes while the store is down.
	if _, err := svc.MatchesForJob(context.Background(), "j1"); err != nil {
		t.Fatal(err)
	}
	if talents.findAllCnt != 2 {
		t.Errorf("scan count = %d, want 2 while cache unavailable", talents.findAllCnt)
	}
}

func TestMatchesForJobSortOrder(t *testing.T) {
	mid := strongTalent("t-mid")
	mid.ExperienceLevel = model.LevelMid // adjacent: 10 instead of 20

	jobs := &fakeJobStore{jobs: map[string]*model.Job{"j1": seniorWebDevJob("j1")}}
	talents := &fakeTalentStore{talents: []model.Talent{mid, strongTalent("t-b"), strongTalent("t-a")}}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	results, err := svc.MatchesForJob(context.Background(), "j1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not in descending score order at %d", i)
		}
	}
	// Equal scores tie-break by ascending id.
	if results[0].SubjectID != "t-a" || results[1].SubjectID != "t-b" {
		t.Errorf("tie order = [%s %s], want [t-a t-b]", results[0].SubjectID, results[1].SubjectID)
	}
	if results[2].SubjectID != "t-mid" {
		t.Errorf("lowest score should sort last, got %s", results[2].SubjectID)
	}
}

func TestMatchesForTalent(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{
		"j1": seniorWebDevJob("j1"),
		"j2": {ID: "j2", ServiceCategory: model.CategoryData, RequiredSkills: []string{"Python"}, ExperienceLevel: model.LevelLead},
	}}
	talent := strongTalent("t1")
	talents := &fakeTalentStore{talents: []model.Talent{talent}}
	c := newFakeCache()
	svc := newTestService(jobs, talents, c)

	results, err := svc.MatchesForTalent(context.Background(), "t1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].SubjectID != "j1" {
		t.Fatalf("results = %+v, want exactly j1", results)
	}

	if _, err := svc.MatchesForTalent(context.Background(), "missing"); err != ErrTalentNotFound {
		t.Errorf("err = %v, want ErrTalentNotFound", err)
	}
}
