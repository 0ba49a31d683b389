package memory

import (
	"testing"

	"console/internal/domain/entity"
	"console/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func TestSnapshotRepository_LoadReturnsSeed(t *testing.T) {
	seed := &entity.Snapshot{
		Orders: []*entity.Order{{ID: "ORD-1", Status: entity.OrderReady}},
	}
	repo := NewSnapshotRepository(seed)

	loaded, err := repo.Load(t.Context())

	require.NoError(t, err)
	assert.Same(t, seed, loaded)
}

func TestSnapshotRepository_SaveReplacesSnapshot(t *testing.T) {
	repo := NewSnapshotRepository(nil)

	replacement := &entity.Snapshot{
		Tables: []*entity.Table{{ID: 9, SeatCount: 2, Status: entity.TableOccupied}},
	}
	require.NoError(t, repo.Save(t.Context(), replacement))

	loaded, err := repo.Load(t.Context())
	require.NoError(t, err)
	assert.Same(t, replacement, loaded)
}

func TestSnapshotRepository_DefaultFixture(t *testing.T) {
	repo := NewSnapshotRepository(nil)

	loaded, err := repo.Load(t.Context())

	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Orders)
	assert.NotEmpty(t, loaded.Reservations)
	assert.NotEmpty(t, loaded.Tables)
	assert.NotEmpty(t, loaded.Roster)
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	repo, err := NewAccountRepository([]SeedAccount{
		{Email: "Ava@console.local", DisplayName: "Ava Admin", Role: "admin", Password: "secret"},
	}, plainHasher{})
	require.NoError(t, err)

	account, err := repo.FindByEmail(t.Context(), "ava@console.local")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	assert.Equal(t, "hashed:secret", account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestAccountRepository_FindByID(t *testing.T) {
	repo, err := NewAccountRepository([]SeedAccount{
		{Email: "staff@console.local", DisplayName: "Sam Staff", Role: "staff", Password: "pw"},
	}, plainHasher{})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(t.Context(), "staff@console.local")
	require.NoError(t, err)

	byID, err := repo.FindByID(t.Context(), byEmail.ID)
	require.NoError(t, err)
	assert.Same(t, byEmail, byID)
}

func TestAccountRepository_NotFound(t *testing.T) {
	repo, err := NewAccountRepository(nil, plainHasher{})
	require.NoError(t, err)

	_, err = repo.FindByEmail(t.Context(), "nobody@console.local")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_RejectsUnknownRole(t *testing.T) {
	_, err := NewAccountRepository([]SeedAccount{
		{Email: "x@console.local", Role: "courier", Password: "pw"},
	}, plainHasher{})

	assert.Error(t, err)
}
