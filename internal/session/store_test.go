package session

import (
	"sync"
	"testing"

	"hrbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()
	assert.Nil(t, store.Get(42))
}

func TestMemoryStore_SetGetClear(t *testing.T) {
	store := NewMemoryStore()

	sess := domain.NewSession(42)
	sess.Fields[domain.FieldName] = "Ali Valiyev"
	store.Set(sess)

	got := store.Get(42)
	require.NotNil(t, got)
	assert.Equal(t, domain.StepLang, got.Step)
	assert.Equal(t, "Ali Valiyev", got.Fields[domain.FieldName])

	store.Clear(42)
	assert.Nil(t, store.Get(42))

	// Clearing an absent session is a no-op
	store.Clear(42)
}

func TestMemoryStore_IndependentUsers(t *testing.T) {
	store := NewMemoryStore()

	a := domain.NewSession(1)
	b := domain.NewSession(2)
	b.Step = domain.StepSalary
	store.Set(a)
	store.Set(b)

	store.Clear(1)

	assert.Nil(t, store.Get(1))
	got := store.Get(2)
	require.NotNil(t, got)
	assert.Equal(t, domain.StepSalary, got.Step)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Set(domain.NewSession(userID))
			store.Get(userID)
			store.Clear(userID)
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Nil(t, store.Get(int64(i)))
	}
}
