package inmem_test

import (
	"context"
	"testing"

	"cineseek/contact"
	"cineseek/inmem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository(t *testing.T) {
	t.Run("assigns an id and lists submissions in order", func(t *testing.T) {
		r := inmem.NewContactRepository()
		ctx := context.Background()

		require.NoError(t, r.CreateContact(ctx, contact.Contact{Name: "Alice", Email: "alice@mail.com", Message: "hello"}))
		require.NoError(t, r.CreateContact(ctx, contact.Contact{Name: "Bob", Email: "bob@mail.com", Message: "hi"}))

		got, err := r.AllContacts(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEmpty(t, got[0].ID)
		assert.NotEmpty(t, got[1].ID)
		assert.NotEqual(t, got[0].ID, got[1].ID)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "Bob", got[1].Name)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		r := inmem.NewContactRepository()
		ctx := context.Background()

		require.NoError(t, r.CreateContact(ctx, contact.Contact{Name: "Alice", Email: "alice@mail.com", Message: "hello"}))

		first, err := r.AllContacts(ctx)
		require.NoError(t, err)
		first[0].Name = "mutated"

		second, err := r.AllContacts(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Alice", second[0].Name)
	})
}
