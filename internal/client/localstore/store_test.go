package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFirstUseBootstrap(t *testing.T) {
	store := newTestStore(t)

	users, err := store.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	session, err := store.Session()
	require.NoError(t, err)
	assert.Nil(t, session)

	orders, err := store.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAppendUserAndDuplicate(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendUser(User{Name: "Ann", Email: "A@X.com", Password: "secret1"}))

	users, err := store.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0].Email, "email is stored case-normalized")

	err = store.AppendUser(User{Name: "Another", Email: "a@X.COM", Password: "other"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	users, err = store.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1, "no record added on conflict")
}

func TestFindUser(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AppendUser(User{Name: "Ann", Email: "a@x.com", Password: "secret1"}))

	found, err := store.FindUser("A@X.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)

	_, err = store.FindUser("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.FindUser("nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetSession(Session{Name: "Ann", Email: "a@x.com"}))

	session, err := store.Session()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Ann", session.Name)

	require.NoError(t, store.ClearSession())
	session, err = store.Session()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAppendOnlyCollections(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendNewsSuggestion(NewsSuggestion{Title: "Premiere", Text: "Next week"}))
	require.NoError(t, store.AppendOrder(Order{MovieName: "Inception", MoviePrice: 9.99, Quantity: 2}))

	suggestions, err := store.ListNewsSuggestions()
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.NotEmpty(t, suggestions[0].ID)
	assert.False(t, suggestions[0].CreatedAt.IsZero())

	orders, err := store.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.NotEmpty(t, orders[0].ID)
}

func TestDurabilityAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AppendUser(User{Name: "Ann", Email: "a@x.com", Password: "secret1"}))
	require.NoError(t, store.SetSession(Session{Name: "Ann", Email: "a@x.com"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	users, err := reopened.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	session, err := reopened.Session()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Email)
}
