package directory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
	"github.com/dmitrijs2005/userdeck/internal/server/auth"
	"github.com/dmitrijs2005/userdeck/internal/server/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TokenTTL = time.Minute

	svc, err := NewService(NewMemoryRepository(SeedUsers()), auth.NewBcryptPasswordHasherWithCost(4), logging.Discard(), cfg)
	require.NoError(t, err)
	return svc
}

func TestSeedUsers(t *testing.T) {
	users := SeedUsers()
	require.Len(t, users, 12)
	assert.Equal(t, User{
		ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth",
		Avatar: "https://reqres.in/img/faces/1-image.jpg",
	}, users[0])
	assert.Equal(t, "rachel.howell@reqres.in", users[11].Email)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"ok", "eve.holt@reqres.in", "cityslicka", nil},
		{"email case ignored", "Eve.Holt@reqres.in", "cityslicka", nil},
		{"missing email", " ", "cityslicka", ErrMissingEmail},
		{"missing password", "eve.holt@reqres.in", "", ErrMissingPassword},
		{"unknown email", "sydney@fife", "pistol", ErrUserNotFound},
		{"wrong password", "eve.holt@reqres.in", "nope", ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(ctx, tt.email, []byte(tt.password))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)

			email, err := svc.Authenticate(token)
			require.NoError(t, err)
			assert.Equal(t, "eve.holt@reqres.in", email)
		})
	}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 6, p.PerPage)
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Data, 6)
	assert.Equal(t, 7, p.Data[0].ID)

	p, err = svc.List(ctx, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Len(t, p.Data, 5)

	p, err = svc.List(ctx, 9, 0)
	require.NoError(t, err)
	assert.Empty(t, p.Data)
	assert.NotNil(t, p.Data)
	assert.Equal(t, 12, p.Total)
}

func TestService_List_HugePageAndSize(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.List(ctx, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, p.Page)
	assert.Equal(t, 6, p.TotalPages)
	assert.Empty(t, p.Data)
	assert.NotNil(t, p.Data)

	p, err = svc.List(ctx, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, common.MaxPerPage, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
	assert.Len(t, p.Data, 12)
}

func TestMemoryRepository_ListOutOfRange(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(SeedUsers())

	for _, tc := range []struct {
		name          string
		offset, limit int
	}{
		{"negative offset", -2, 2},
		{"offset past end", 12, 6},
		{"zero limit", 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.offset, tc.limit)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}

	got, err := repo.List(ctx, 10, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first := "Eve"
	u, err := svc.Update(ctx, 1, Patch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Eve", u.FirstName)
	assert.Equal(t, "Bluth", u.LastName)
	assert.Equal(t, "george.bluth@reqres.in", u.Email)

	p, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Eve", p.Data[0].FirstName)

	_, err = svc.Update(ctx, 99, Patch{FirstName: &first})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 3), ErrUserNotFound)

	p, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 11, p.Total)
	assert.Equal(t, 4, p.Data[2].ID)
}

func TestMemoryRepository_SortsAndCopies(t *testing.T) {
	ctx := context.Background()
	in := []User{{ID: 3}, {ID: 1}, {ID: 2}}
	repo := NewMemoryRepository(in)
	in[0].FirstName = "changed"

	got, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Empty(t, got[2].FirstName)

	got[0].FirstName = "mutated"
	u, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, u.FirstName)
}
