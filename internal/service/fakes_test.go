package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ahmadqo/posyandu-desa/internal/config"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func testValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return fixedNow }))
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Posyandu Melati", URL: "http://localhost:5173"},
		JWT: config.JWTConfig{Secret: "rahasia-test", ExpireHours: 1},
	}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func newTestSessions(t *testing.T) (*miniredis.Miniredis, repository.SessionRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, repository.NewSessionRepository(client)
}

type countingKicker struct {
	mu    sync.Mutex
	kicks int
}

func (k *countingKicker) Kick() {
	k.mu.Lock()
	k.kicks++
	k.mu.Unlock()
}

func (k *countingKicker) count() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.kicks
}

// fakeBalitaRepo menyimpan balita di memori. createErr/updateErr meniru
// error dari database.
type fakeBalitaRepo struct {
	rows      map[int64]*model.Balita
	nextID    int64
	createErr error
	updateErr error
}

func newFakeBalitaRepo(rows ...*model.Balita) *fakeBalitaRepo {
	r := &fakeBalitaRepo{rows: map[int64]*model.Balita{}}
	for _, b := range rows {
		r.rows[b.ID] = b
		if b.ID > r.nextID {
			r.nextID = b.ID
		}
	}
	return r
}

func (r *fakeBalitaRepo) FindAll(_ context.Context, f model.ListFilter) ([]*model.Balita, int64, error) {
	items, _ := r.FindAllForExport(context.Background(), f)
	return items, int64(len(items)), nil
}

func (r *fakeBalitaRepo) FindAllForExport(_ context.Context, f model.ListFilter) ([]*model.Balita, error) {
	out := []*model.Balita{}
	for id := int64(1); id <= r.nextID; id++ {
		b, ok := r.rows[id]
		if !ok {
			continue
		}
		if f.Status != "" && (b.StatusGizi == nil || *b.StatusGizi != f.Status) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBalitaRepo) FindByID(_ context.Context, id int64) (*model.Balita, error) {
	if b, ok := r.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBalitaRepo) ExistsByNIK(_ context.Context, nik string, excludeID int64) (bool, error) {
	for id, b := range r.rows {
		if b.NIK == nik && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBalitaRepo) Create(_ context.Context, b *model.Balita) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt, b.UpdatedAt = fixedNow, fixedNow
	cp := *b
	r.rows[b.ID] = &cp
	return nil
}

func (r *fakeBalitaRepo) Update(_ context.Context, b *model.Balita) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.rows[b.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	b.UpdatedAt = fixedNow
	cp := *b
	r.rows[b.ID] = &cp
	return nil
}

func (r *fakeBalitaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeIbuHamilRepo struct {
	rows   map[int64]*model.IbuHamil
	nextID int64
}

func newFakeIbuHamilRepo() *fakeIbuHamilRepo {
	return &fakeIbuHamilRepo{rows: map[int64]*model.IbuHamil{}}
}

func (r *fakeIbuHamilRepo) FindAll(ctx context.Context, f model.ListFilter) ([]*model.IbuHamil, int64, error) {
	items, _ := r.FindAllForExport(ctx, f)
	return items, int64(len(items)), nil
}

func (r *fakeIbuHamilRepo) FindAllForExport(context.Context, model.ListFilter) ([]*model.IbuHamil, error) {
	out := []*model.IbuHamil{}
	for id := int64(1); id <= r.nextID; id++ {
		if ih, ok := r.rows[id]; ok {
			out = append(out, ih)
		}
	}
	return out, nil
}

func (r *fakeIbuHamilRepo) FindByID(_ context.Context, id int64) (*model.IbuHamil, error) {
	if ih, ok := r.rows[id]; ok {
		cp := *ih
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeIbuHamilRepo) ExistsByNIK(_ context.Context, nik string, excludeID int64) (bool, error) {
	for id, ih := range r.rows {
		if ih.NIK == nik && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIbuHamilRepo) Create(_ context.Context, ih *model.IbuHamil) error {
	r.nextID++
	ih.ID = r.nextID
	cp := *ih
	r.rows[ih.ID] = &cp
	return nil
}

func (r *fakeIbuHamilRepo) Update(_ context.Context, ih *model.IbuHamil) error {
	if _, ok := r.rows[ih.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	cp := *ih
	r.rows[ih.ID] = &cp
	return nil
}

func (r *fakeIbuHamilRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeJadwalRepo struct {
	rows          []*model.Jadwal
	upcomingToday model.Date
}

func (r *fakeJadwalRepo) FindAll(context.Context, model.ListFilter) ([]*model.Jadwal, int64, error) {
	return r.rows, int64(len(r.rows)), nil
}

func (r *fakeJadwalRepo) FindUpcoming(_ context.Context, today model.Date) ([]*model.Jadwal, error) {
	r.upcomingToday = today
	out := []*model.Jadwal{}
	for _, j := range r.rows {
		if !j.Tanggal.Before(today.Time) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJadwalRepo) FindByID(_ context.Context, id int64) (*model.Jadwal, error) {
	for _, j := range r.rows {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeJadwalRepo) Create(_ context.Context, j *model.Jadwal) error {
	j.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, j)
	return nil
}

func (r *fakeJadwalRepo) Update(_ context.Context, j *model.Jadwal) error {
	for i, row := range r.rows {
		if row.ID == j.ID {
			r.rows[i] = j
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (r *fakeJadwalRepo) Delete(_ context.Context, id int64) error {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

// fakePengaduanRepo mencatat setiap event outbox yang ditulis Respond.
type fakePengaduanRepo struct {
	rows   map[int64]*model.Pengaduan
	nextID int64
	outbox []*model.Notification
}

func newFakePengaduanRepo(rows ...*model.Pengaduan) *fakePengaduanRepo {
	r := &fakePengaduanRepo{rows: map[int64]*model.Pengaduan{}}
	for _, p := range rows {
		r.rows[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakePengaduanRepo) FindAll(context.Context, model.ListFilter) ([]*model.Pengaduan, int64, error) {
	out := []*model.Pengaduan{}
	for id := r.nextID; id >= 1; id-- {
		if p, ok := r.rows[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePengaduanRepo) FindByID(_ context.Context, id int64) (*model.Pengaduan, error) {
	if p, ok := r.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePengaduanRepo) Create(_ context.Context, p *model.Pengaduan) error {
	r.nextID++
	p.ID = r.nextID
	p.Status = model.StatusBaru
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakePengaduanRepo) UpdateStatus(_ context.Context, id int64, status *model.StatusPengaduan, tanggapan *string) (*model.Pengaduan, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	if status != nil {
		p.Status = *status
	}
	if tanggapan != nil {
		p.Tanggapan = tanggapan
	}
	cp := *p
	return &cp, nil
}

func (r *fakePengaduanRepo) Respond(_ context.Context, id int64, tanggapan string, compose repository.ComposeFunc) (*model.Pengaduan, *model.Notification, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil, repository.ErrRecordNotFound
	}
	updated := *p
	updated.Tanggapan = &tanggapan
	updated.Status = model.StatusSelesai

	msg, err := compose(&updated)
	if err != nil {
		return nil, nil, err
	}
	n := &model.Notification{
		ID:          int64(len(r.outbox) + 1),
		EventType:   model.EventPengaduanResponded,
		PengaduanID: &updated.ID,
		Recipient:   msg.To,
		Subject:     msg.Subject,
		Body:        msg.HTML,
		Status:      model.OutboxPending,
	}
	r.rows[id] = &updated
	r.outbox = append(r.outbox, n)
	cp := updated
	return &cp, n, nil
}

func (r *fakePengaduanRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeUserRepo struct {
	rows   map[int64]*model.User
	nextID int64
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{rows: map[int64]*model.User{}}
	for _, u := range users {
		r.rows[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) FindAll(context.Context, model.ListFilter) ([]*model.User, int64, error) {
	out := []*model.User{}
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.rows[id]; ok {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.rows {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := r.rows[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for id, u := range r.rows {
		if u.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	existing, ok := r.rows[u.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if u.Password == "" {
		u.Password = existing.Password
	}
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeNotificationRepo struct {
	rows map[int64]*model.Notification
}

func (r *fakeNotificationRepo) FindAll(context.Context, model.ListFilter) ([]*model.Notification, int64, error) {
	out := []*model.Notification{}
	for _, n := range r.rows {
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id int64) (*model.Notification, error) {
	return r.rows[id], nil
}

func (r *fakeNotificationRepo) ClaimPending(context.Context, int) ([]*model.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) MarkSent(context.Context, int64) error { return nil }

func (r *fakeNotificationRepo) ScheduleRetry(context.Context, int64, string, time.Time) error {
	return nil
}

func (r *fakeNotificationRepo) MarkFailed(context.Context, int64, string) error { return nil }

func (r *fakeNotificationRepo) RequeueStale(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) Retry(_ context.Context, id int64) (*model.Notification, error) {
	n, ok := r.rows[id]
	if !ok || n.Status != model.OutboxFailed {
		return nil, nil
	}
	n.Status = model.OutboxPending
	n.Attempts = 0
	return n, nil
}

type fakeStatistikRepo struct {
	counts map[string]map[string]int64
	today  model.Date
}

func (r *fakeStatistikRepo) CountBy(_ context.Context, table, column string) (map[string]int64, error) {
	return r.counts[table+"."+column], nil
}

func (r *fakeStatistikRepo) CountUpcomingJadwal(_ context.Context, today model.Date) (int64, error) {
	r.today = today
	return 3, nil
}

func strPtr(s string) *string { return &s }
