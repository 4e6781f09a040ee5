package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ar-top/map-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by email
	nextID    int
	createErr error
	findErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokens issues reversible tokens so Verify can round-trip without
// real signing.
type fakeTokens struct {
	issueErr error
}

func (t *fakeTokens) Issue(user *domain.User) (string, error) {
	if t.issueErr != nil {
		return "", t.issueErr
	}
	return "token-for-" + user.Email, nil
}

func (t *fakeTokens) Verify(token string) (string, error) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("invalid token")
	}
	return token[len(prefix):], nil
}

type stubLimiter struct {
	allowed  bool
	allowErr error
	resets   int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.allowed, l.allowErr
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

// stubMapRepo enforces the (id, owner) filter exactly like the Mongo repo.
type stubMapRepo struct {
	maps      map[string]*domain.Map // keyed by id
	nextID    int
	createErr error
	saveErr   error
}

func newStubMapRepo() *stubMapRepo {
	return &stubMapRepo{maps: make(map[string]*domain.Map)}
}

func cloneMap(m *domain.Map) *domain.Map {
	clone := *m
	clone.Models = append([]domain.Model(nil), m.Models...)
	return &clone
}

func (r *stubMapRepo) Get(_ context.Context, id, ownerID string) (*domain.Map, error) {
	m, ok := r.maps[id]
	if !ok || m.OwnerID != ownerID {
		return nil, domain.ErrMapNotFound
	}
	return cloneMap(m), nil
}

func (r *stubMapRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Map, error) {
	var out []domain.Map
	for _, m := range r.maps {
		if m.OwnerID == ownerID {
			out = append(out, *cloneMap(m))
		}
	}
	return out, nil
}

func (r *stubMapRepo) Create(_ context.Context, m *domain.Map) (*domain.Map, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	created := cloneMap(m)
	created.ID = fmt.Sprintf("map_%d", r.nextID)
	r.maps[created.ID] = cloneMap(created)
	return created, nil
}

func (r *stubMapRepo) Save(_ context.Context, m *domain.Map) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.maps[m.ID]
	if !ok || stored.OwnerID != m.OwnerID {
		return domain.ErrMapNotFound
	}
	r.maps[m.ID] = cloneMap(m)
	return nil
}

func (r *stubMapRepo) Delete(_ context.Context, id, ownerID string) error {
	stored, ok := r.maps[id]
	if !ok || stored.OwnerID != ownerID {
		return domain.ErrMapNotFound
	}
	delete(r.maps, id)
	return nil
}
