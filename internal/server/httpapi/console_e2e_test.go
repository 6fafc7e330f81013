package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdeck/internal/client/client"
	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdeck/internal/client/services"
	"github.com/dmitrijs2005/userdeck/internal/logging"
)

// TestConsoleAgainstStub drives the console services through the real HTTP
// client against the stub router.
func TestConsoleAgainstStub(t *testing.T) {
	ctx := context.Background()
	ts := httptest.NewServer(newTestRouter(t))
	t.Cleanup(ts.Close)

	api, err := client.NewHTTPClient(ts.URL + "/api")
	require.NoError(t, err)

	sess := services.NewSessionService(api, session.NewMemoryRepository(), logging.Discard())
	api.UseTokenSource(sess)
	coll := services.NewUserCollection(api, logging.Discard())

	// Not logged in yet.
	err = coll.FetchPage(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = sess.Authenticate(ctx, "eve.holt@reqres.in", []byte("nope"))
	var ae *services.AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "user not found", ae.Message)

	_, err = sess.Authenticate(ctx, "eve.holt@reqres.in", []byte("cityslicka"))
	require.NoError(t, err)

	require.NoError(t, coll.FetchPage(ctx, 1))
	st := coll.State()
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 2, st.TotalPages)
	require.Len(t, st.Users, 6)
	assert.Equal(t, services.StatusIdle, st.Status)

	coll.SetSearchTerm("geo")
	got := coll.FilteredUsers()
	require.Len(t, got, 1)
	assert.Equal(t, "George", got[0].FirstName)
	coll.SetSearchTerm("")

	first := "Eve"
	require.NoError(t, coll.UpdateUser(ctx, 1, models.UserPatch{FirstName: &first}))
	u, ok := coll.User(1)
	require.True(t, ok)
	assert.Equal(t, "Eve", u.FirstName)
	assert.Equal(t, "george.bluth@reqres.in", u.Email)

	require.NoError(t, coll.DeleteUser(ctx, 2))
	assert.Len(t, coll.State().Users, 5)

	err = coll.DeleteUser(ctx, 2)
	var me *services.MutationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "user not found", me.Message)

	require.NoError(t, coll.NextPage(ctx))
	assert.Equal(t, 2, coll.State().Page)
	assert.Equal(t, 8, coll.State().Users[0].ID)

	// The server state reflects the confirmed mutations.
	require.NoError(t, coll.FetchPage(ctx, 1))
	users := coll.State().Users
	assert.Equal(t, "Eve", users[0].FirstName)
	assert.Equal(t, 3, users[1].ID)

	require.NoError(t, sess.ClearCredential(ctx))
	assert.ErrorIs(t, coll.Refresh(ctx), client.ErrUnauthorized)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer("", newTestRouter(t), logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, listen) }()

	api, err := client.NewHTTPClient("http://" + listen.Addr().String() + "/api")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := api.Login(context.Background(), "eve.holt@reqres.in", []byte("cityslicka"))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = api.Login(context.Background(), "eve.holt@reqres.in", []byte("cityslicka"))
	assert.True(t, errors.Is(err, client.ErrUnavailable), "got %v", err)
}
