package service

import (
	"NoteShare/config"
	"NoteShare/dao"
	"NoteShare/models"
	"context"
	"io"
	"sort"
	"sync"
	"time"
)

// -------- test fakes --------

type fakeNoteRepo struct {
	mu        sync.Mutex
	notes     map[uint64]*models.Note
	createErr error
	findErr   error
	deleteErr error
	deleted   []uint64
	lastQuery dao.NoteQuery
}

func newFakeNoteRepo(notes ...*models.Note) *fakeNoteRepo {
	r := &fakeNoteRepo{notes: make(map[uint64]*models.Note)}
	for _, n := range notes {
		r.notes[n.ID] = n
	}
	return r
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) FindByID(ctx context.Context, id uint64) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.notes[id], nil
}

func (f *fakeNoteRepo) List(ctx context.Context, q dao.NoteQuery) ([]*models.Note, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	out := make([]*models.Note, 0)
	for _, n := range f.notes {
		if q.UploaderID != nil && (n.UploaderID == nil || *n.UploaderID != *q.UploaderID) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if q.Offset >= len(out) {
		return []*models.Note{}, total, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, total, nil
}

func (f *fakeNoteRepo) DeleteWithRelations(ctx context.Context, noteID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.notes, noteID)
	f.deleted = append(f.deleted, noteID)
	return nil
}

type ratingKey struct{ note, user uint64 }

type fakeRatingRepo struct {
	mu        sync.Mutex
	ratings   map[ratingKey]*models.Rating
	calls     int
	getErr    error
	upsertErr error
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[ratingKey]*models.Rating)}
}

func (f *fakeRatingRepo) GetByNoteUser(ctx context.Context, noteID uint64, userID uint64) (*models.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.ratings[ratingKey{noteID, userID}], nil
}

// Upsert 与 uniq_note_user 唯一索引语义一致
func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *models.Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	k := ratingKey{rating.NoteID, rating.UserID}
	if old, ok := f.ratings[k]; ok {
		old.Value = rating.Value
		old.UpdatedAt = rating.UpdatedAt
		return nil
	}
	cp := *rating
	f.ratings[k] = &cp
	return nil
}

func (f *fakeRatingRepo) ValuesByNoteIDs(ctx context.Context, noteIDs []uint64) (map[uint64][]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make(map[uint64][]int)
	for _, id := range noteIDs {
		for k, r := range f.ratings {
			if k.note == id {
				out[id] = append(out[id], r.Value)
			}
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) UserValues(ctx context.Context, userID uint64, noteIDs []uint64) (map[uint64]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uint64]int)
	if userID == 0 {
		return out, nil
	}
	for _, id := range noteIDs {
		if r, ok := f.ratings[ratingKey{id, userID}]; ok {
			out[id] = r.Value
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ratings)
}

type fakeStatsRepo struct {
	mu      sync.Mutex
	counts  map[uint64]int64
	incrErr map[uint64]error
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{counts: make(map[uint64]int64), incrErr: make(map[uint64]error)}
}

func (f *fakeStatsRepo) IncrDownloadCount(ctx context.Context, noteID uint64, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.incrErr[noteID]; err != nil {
		return err
	}
	f.counts[noteID] += delta
	return nil
}

func (f *fakeStatsRepo) DownloadCounts(ctx context.Context, noteIDs []uint64) (map[uint64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uint64]int64)
	for _, id := range noteIDs {
		if c, ok := f.counts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeDownloads struct {
	mu        sync.Mutex
	current   map[uint64]int64
	flushing  map[uint64]int64
	incrErr   error
	forgotten []uint64
}

func newFakeDownloads() *fakeDownloads {
	return &fakeDownloads{current: make(map[uint64]int64)}
}

func (f *fakeDownloads) Incr(ctx context.Context, noteID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrErr != nil {
		return f.incrErr
	}
	f.current[noteID]++
	return nil
}

func (f *fakeDownloads) Pending(ctx context.Context, noteID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current[noteID] + f.flushing[noteID], nil
}

func (f *fakeDownloads) Take(ctx context.Context) (map[uint64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.flushing) == 0 {
		f.flushing = f.current
		f.current = make(map[uint64]int64)
	}
	out := make(map[uint64]int64, len(f.flushing))
	for k, v := range f.flushing {
		out[k] = v
	}
	return out, nil
}

func (f *fakeDownloads) Done(ctx context.Context, noteID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.flushing, noteID)
	return nil
}

func (f *fakeDownloads) Forget(ctx context.Context, noteID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.current, noteID)
	delete(f.flushing, noteID)
	f.forgotten = append(f.forgotten, noteID)
	return nil
}

type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putKeys   []string
	delKeys   []string
	putErr    error
	deleteErr error
	signErr   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putKeys = append(f.putKeys, objectKey)
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[objectKey] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delKeys = append(f.delKeys, objectKey)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, objectKey)
	return nil
}

func (f *fakeStorage) PublicURL(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (f *fakeStorage) SignURL(ctx context.Context, objectKey string, expire time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "https://cdn.test/" + objectKey + "?signed=1", nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []NoteEvent
	err    error
}

func (f *fakeEvents) Publish(ctx context.Context, event NoteEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

// -------- helpers --------

type noteFixture struct {
	notes     *fakeNoteRepo
	ratings   *fakeRatingRepo
	stats     *fakeStatsRepo
	downloads *fakeDownloads
	storage   *fakeStorage
	events    *fakeEvents
	svc       *NoteService
}

func newNoteFixture(notes ...*models.Note) *noteFixture {
	f := &noteFixture{
		notes:     newFakeNoteRepo(notes...),
		ratings:   newFakeRatingRepo(),
		stats:     newFakeStatsRepo(),
		downloads: newFakeDownloads(),
		storage:   newFakeStorage(),
		events:    &fakeEvents{},
	}
	f.svc = &NoteService{
		NoteDAO:   f.notes,
		RatingDAO: f.ratings,
		StatsDAO:  f.stats,
		Downloads: f.downloads,
		Storage:   f.storage,
		Events:    f.events,
		App:       &config.App{},
		Upload:    &config.Upload{MaxSize: config.DefaultUploadMaxSize, TitleMinLen: 3, TitleMaxLen: 100},
		Store:     &config.StorageConfig{SignExpire: time.Minute},
	}
	return f
}

func newNote(id uint64, uploader *uint64, createdAt time.Time) *models.Note {
	return &models.Note{
		ID:         id,
		Title:      "note",
		FilePath:   "7/1_note.pdf",
		FileURL:    "https://cdn.test/7/1_note.pdf",
		FileName:   "note.pdf",
		FileType:   "application/pdf",
		FileSize:   "1 KB",
		UploaderID: uploader,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}
