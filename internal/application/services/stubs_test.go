package services

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

type stubHospitalRepo struct {
	hospitals map[string]*entities.Hospital
	gets      int
}

func newStubHospitalRepo(hospitals ...*entities.Hospital) *stubHospitalRepo {
	repo := &stubHospitalRepo{hospitals: make(map[string]*entities.Hospital)}
	for _, h := range hospitals {
		repo.hospitals[h.ID] = h
	}
	return repo
}

func (r *stubHospitalRepo) Create(ctx context.Context, h *entities.Hospital) error {
	r.hospitals[h.ID] = h
	return nil
}

func (r *stubHospitalRepo) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	r.gets++
	h, ok := r.hospitals[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("hospital not found")
	}
	copied := *h
	return &copied, nil
}

func (r *stubHospitalRepo) List(ctx context.Context) ([]*entities.Hospital, error) {
	out := make([]*entities.Hospital, 0, len(r.hospitals))
	for _, h := range r.hospitals {
		out = append(out, h)
	}
	return out, nil
}

func (r *stubHospitalRepo) SetEmergencyAvailable(ctx context.Context, id string, available bool) error {
	h, ok := r.hospitals[id]
	if !ok {
		return appErrors.NewNotFoundError("hospital not found")
	}
	h.EmergencyAvailable = available
	return nil
}

func (r *stubHospitalRepo) SetOTAvailable(ctx context.Context, id string, available bool) error {
	h, ok := r.hospitals[id]
	if !ok {
		return appErrors.NewNotFoundError("hospital not found")
	}
	h.OTAvailable = available
	return nil
}

func (r *stubHospitalRepo) UpdateBeds(ctx context.Context, id string, beds entities.BedCounts) error {
	h, ok := r.hospitals[id]
	if !ok {
		return appErrors.NewNotFoundError("hospital not found")
	}
	h.GeneralBeds = beds.General
	h.ACBeds = beds.AC
	h.PrivateBeds = beds.Private
	return nil
}

type stubDoctorRepo struct {
	doctors map[string]*entities.Doctor
	order   []string
}

func newStubDoctorRepo(doctors ...*entities.Doctor) *stubDoctorRepo {
	repo := &stubDoctorRepo{doctors: make(map[string]*entities.Doctor)}
	for _, d := range doctors {
		repo.doctors[d.ID] = d
		repo.order = append(repo.order, d.ID)
	}
	return repo
}

func (r *stubDoctorRepo) Create(ctx context.Context, d *entities.Doctor) error {
	r.doctors[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *stubDoctorRepo) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("doctor not found")
	}
	copied := *d
	return &copied, nil
}

func (r *stubDoctorRepo) ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Doctor, error) {
	var out []*entities.Doctor
	for _, id := range r.order {
		if d, ok := r.doctors[id]; ok && d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(ctx context.Context, d *entities.Doctor) error {
	if _, ok := r.doctors[d.ID]; !ok {
		return appErrors.NewNotFoundError("doctor not found")
	}
	r.doctors[d.ID] = d
	return nil
}

func (r *stubDoctorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.doctors[id]; !ok {
		return appErrors.NewNotFoundError("doctor not found")
	}
	delete(r.doctors, id)
	return nil
}

type publishedEvent struct {
	channel string
	event   *entities.ChangeEvent
}

type stubEventBus struct {
	published []publishedEvent
}

func (b *stubEventBus) Publish(ctx context.Context, channel string, event *entities.ChangeEvent) error {
	b.published = append(b.published, publishedEvent{channel: channel, event: event})
	return nil
}

func (b *stubEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ChangeEvent, error) {
	ch := make(chan *entities.ChangeEvent)
	close(ch)
	return ch, nil
}

func (b *stubEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }
func (b *stubEventBus) Close() error                                          { return nil }

type stubUserRepo struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newStubUserRepo(users ...*entities.User) *stubUserRepo {
	repo := &stubUserRepo{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
	for _, u := range users {
		repo.byID[u.ID] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (r *stubUserRepo) Create(ctx context.Context, u *entities.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return appErrors.NewConflictError("an account with this email already exists")
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, appErrors.NewNotFoundError("no account with this email")
	}
	return u, nil
}

type stubUserRoleRepo struct {
	rows []*entities.UserRole
}

func (r *stubUserRoleRepo) Create(ctx context.Context, role *entities.UserRole) error {
	r.rows = append(r.rows, role)
	return nil
}

func (r *stubUserRoleRepo) ListByUser(ctx context.Context, userID string) ([]*entities.UserRole, error) {
	var out []*entities.UserRole
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubCache struct {
	values map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, appErrors.NewNotFoundError("key not found")
	}
	return v, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.values[key] = value
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func (c *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}
