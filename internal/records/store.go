// internal/records/store.go
package records

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"babybook-core/internal/common/logger"
	"babybook-core/internal/common/metrics"
	"babybook-core/internal/models"
)

// Snapshot is an immutable copy of every collection, taken under the store
// lock. The notification engine reads these, never the live state.
type Snapshot struct {
	Moments    []models.Moment
	Vaccines   []models.VaccineRecord
	Growth     []models.GrowthMeasurement
	Sleep      []models.SleepRecord
	SleepHumor []models.SleepHumorEntry
	Family     []models.FamilyMember
}

// Store applies every mutation under a single writer lock, then serializes
// the touched collection to the blob store. Persist failures are logged and
// counted; the in-memory state remains authoritative and the entity is still
// returned to the caller.
type Store struct {
	mu    sync.Mutex
	blobs BlobStore
	log   logger.Logger
	idgen func() string

	moments    []models.Moment
	vaccines   []models.VaccineRecord
	growth     []models.GrowthMeasurement
	sleep      []models.SleepRecord
	sleepHumor []models.SleepHumorEntry
	family     []models.FamilyMember
	baby       *models.Baby
}

func NewStore(blobs BlobStore, log logger.Logger) *Store {
	return &Store{
		blobs: blobs,
		log:   log,
		idgen: uuid.NewString,
	}
}

// Load hydrates every collection from the blob store. Missing keys mean an
// empty collection; a blob that exists but does not decode is an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadBlob(ctx, s.blobs, KeyMoments, &s.moments); err != nil {
		return err
	}
	if err := loadBlob(ctx, s.blobs, KeyVaccines, &s.vaccines); err != nil {
		return err
	}
	if err := loadBlob(ctx, s.blobs, KeyGrowth, &s.growth); err != nil {
		return err
	}
	if err := loadBlob(ctx, s.blobs, KeySleep, &s.sleep); err != nil {
		return err
	}
	if err := loadBlob(ctx, s.blobs, KeySleepHumor, &s.sleepHumor); err != nil {
		return err
	}
	if err := loadBlob(ctx, s.blobs, KeyFamily, &s.family); err != nil {
		return err
	}

	var baby models.Baby
	data, ok, err := s.blobs.Load(ctx, KeyCurrentBaby)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(data, &baby); err != nil {
			return decodeError(KeyCurrentBaby, err)
		}
		s.baby = &baby
	}

	s.log.Info("record store loaded", map[string]interface{}{
		"moments":  len(s.moments),
		"vaccines": len(s.vaccines),
		"growth":   len(s.growth),
		"sleep":    len(s.sleep),
		"family":   len(s.family),
		"hasBaby":  s.baby != nil,
	})
	return nil
}

// AddMoment validates, stamps an id and appends the moment.
func (s *Store) AddMoment(ctx context.Context, m models.Moment) (models.Moment, error) {
	if m.Privacy == "" {
		m.Privacy = models.PrivacyPrivate
	}
	if m.Status == "" {
		m.Status = models.MomentStatusPublished
	}
	if err := validateMoment(m); err != nil {
		return models.Moment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = s.idgen()
	}
	s.moments = append(s.moments, m)
	metrics.StoreMutations.WithLabelValues("moment_add").Inc()
	s.persist(ctx, KeyMoments, s.moments)
	return m, nil
}

// UpdateMoment replaces the stored moment's mutable fields. Returns nil when
// the id is unknown. The merged record is validated before being applied.
func (s *Store) UpdateMoment(ctx context.Context, id string, updated models.Moment) (*models.Moment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.moments {
		if s.moments[i].ID != id {
			continue
		}
		updated.ID = id
		if updated.Privacy == "" {
			updated.Privacy = s.moments[i].Privacy
		}
		if updated.Status == "" {
			updated.Status = s.moments[i].Status
		}
		if err := validateMoment(updated); err != nil {
			return nil, err
		}
		s.moments[i] = updated
		metrics.StoreMutations.WithLabelValues("moment_update").Inc()
		s.persist(ctx, KeyMoments, s.moments)
		out := s.moments[i]
		return &out, nil
	}
	return nil, nil
}

// DeleteMoment removes the moment and reports whether it existed.
func (s *Store) DeleteMoment(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.moments {
		if s.moments[i].ID == id {
			s.moments = append(s.moments[:i], s.moments[i+1:]...)
			metrics.StoreMutations.WithLabelValues("moment_delete").Inc()
			s.persist(ctx, KeyMoments, s.moments)
			return true
		}
	}
	return false
}

func (s *Store) AddVaccine(ctx context.Context, v models.VaccineRecord) (models.VaccineRecord, error) {
	if v.Status == "" {
		v.Status = models.VaccineStatusPending
	}
	if err := validateVaccine(v); err != nil {
		return models.VaccineRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = s.idgen()
	}
	s.vaccines = append(s.vaccines, v)
	metrics.StoreMutations.WithLabelValues("vaccine_add").Inc()
	s.persist(ctx, KeyVaccines, s.vaccines)
	return v, nil
}

// UpdateVaccine replaces the stored record's mutable fields. Returns nil when
// the id is unknown. The merged record is validated before being applied.
func (s *Store) UpdateVaccine(ctx context.Context, id string, updated models.VaccineRecord) (*models.VaccineRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vaccines {
		if s.vaccines[i].ID != id {
			continue
		}
		updated.ID = id
		if updated.Status == "" {
			updated.Status = s.vaccines[i].Status
		}
		if err := validateVaccine(updated); err != nil {
			return nil, err
		}
		s.vaccines[i] = updated
		metrics.StoreMutations.WithLabelValues("vaccine_update").Inc()
		s.persist(ctx, KeyVaccines, s.vaccines)
		out := s.vaccines[i]
		return &out, nil
	}
	return nil, nil
}

func (s *Store) AddGrowthMeasurement(ctx context.Context, g models.GrowthMeasurement) (models.GrowthMeasurement, error) {
	if err := validateGrowth(g); err != nil {
		return models.GrowthMeasurement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = s.idgen()
	}
	s.growth = append(s.growth, g)
	metrics.StoreMutations.WithLabelValues("growth_add").Inc()
	s.persist(ctx, KeyGrowth, s.growth)
	return g, nil
}

func (s *Store) AddSleepRecord(ctx context.Context, r models.SleepRecord) (models.SleepRecord, error) {
	if err := validateSleep(r); err != nil {
		return models.SleepRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.idgen()
	}
	s.sleep = append(s.sleep, r)
	metrics.StoreMutations.WithLabelValues("sleep_add").Inc()
	s.persist(ctx, KeySleep, s.sleep)
	return r, nil
}

func (s *Store) AddSleepHumorEntry(ctx context.Context, e models.SleepHumorEntry) (models.SleepHumorEntry, error) {
	if err := validateSleepHumor(e); err != nil {
		return models.SleepHumorEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = s.idgen()
	}
	s.sleepHumor = append(s.sleepHumor, e)
	metrics.StoreMutations.WithLabelValues("sleep_humor_add").Inc()
	s.persist(ctx, KeySleepHumor, s.sleepHumor)
	return e, nil
}

func (s *Store) AddFamilyMember(ctx context.Context, f models.FamilyMember) (models.FamilyMember, error) {
	if err := validateFamilyMember(f); err != nil {
		return models.FamilyMember{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f.ID == "" {
		f.ID = s.idgen()
	}
	s.family = append(s.family, f)
	metrics.StoreMutations.WithLabelValues("family_add").Inc()
	s.persist(ctx, KeyFamily, s.family)
	return f, nil
}

// SetCurrentBaby switches the active baby and persists the selection under
// its own key.
func (s *Store) SetCurrentBaby(ctx context.Context, b models.Baby) (models.Baby, error) {
	if err := validateBaby(b); err != nil {
		return models.Baby{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = s.idgen()
	}
	b.IsActive = true
	s.baby = &b
	metrics.StoreMutations.WithLabelValues("baby_set").Inc()
	s.persist(ctx, KeyCurrentBaby, b)
	return b, nil
}

// CurrentBaby returns the active baby, if one has been set.
func (s *Store) CurrentBaby() (models.Baby, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baby == nil {
		return models.Baby{}, false
	}
	return *s.baby, true
}

func (s *Store) Moments() []models.Moment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.moments)
}

func (s *Store) Vaccines() []models.VaccineRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.vaccines)
}

func (s *Store) Growth() []models.GrowthMeasurement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.growth)
}

func (s *Store) Sleep() []models.SleepRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.sleep)
}

func (s *Store) SleepHumor() []models.SleepHumorEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.sleepHumor)
}

func (s *Store) Family() []models.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.family)
}

// Snapshot copies every collection in one lock acquisition.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Moments:    copySlice(s.moments),
		Vaccines:   copySlice(s.vaccines),
		Growth:     copySlice(s.growth),
		Sleep:      copySlice(s.sleep),
		SleepHumor: copySlice(s.sleepHumor),
		Family:     copySlice(s.family),
	}
}

// persist serializes one collection. Called with the lock held; failures do
// not roll the mutation back.
func (s *Store) persist(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.StorePersistFailures.WithLabelValues(key).Inc()
		s.log.WithError(err).Error("failed to encode blob", map[string]interface{}{"key": key})
		return
	}
	if err := s.blobs.Save(ctx, key, data); err != nil {
		metrics.StorePersistFailures.WithLabelValues(key).Inc()
		s.log.WithError(err).Error("failed to persist blob", map[string]interface{}{"key": key})
	}
}

func loadBlob[T any](ctx context.Context, blobs BlobStore, key string, dst *[]T) error {
	data, ok, err := blobs.Load(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		*dst = nil
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return decodeError(key, err)
	}
	return nil
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
