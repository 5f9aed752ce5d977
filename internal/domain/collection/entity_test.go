//go:build unit

package collection_test

import (
	"testing"

	"groupcart/internal/domain/collection"
	"groupcart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		ownerID := uuid.New()
		actual, err := collection.NewCollection(ownerID, "Weekend Grocery Run", true)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, ownerID, actual.OwnerID())
		assert.True(t, actual.IsPublic())
		assert.NotEmpty(t, actual.ShareToken())
	})

	t.Run("owner is registered as an approved participant", func(t *testing.T) {
		ownerID := uuid.New()
		actual, err := collection.NewCollection(ownerID, "Weekend Grocery Run", false)
		require.NoError(t, err)

		require.Len(t, actual.Participants(), 1)
		owner := actual.ParticipantOf(ownerID)
		require.NotNil(t, owner)
		assert.True(t, owner.IsApproved())
		assert.Equal(t, 1, actual.ApprovedCount())
		assert.True(t, actual.IsMember(ownerID))
		assert.False(t, actual.IsLocked())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := collection.NewCollection(uuid.New(), "", true)
		assert.ErrorIs(t, err, collection.ErrInvalidName)
	})

	t.Run("share tokens are unique", func(t *testing.T) {
		a, err := collection.NewCollection(uuid.New(), "A", true)
		require.NoError(t, err)
		b, err := collection.NewCollection(uuid.New(), "B", true)
		require.NoError(t, err)
		assert.NotEqual(t, a.ShareToken(), b.ShareToken())
	})
}

func TestRequestJoin(t *testing.T) {
	t.Run("public collection accepts a join request as pending", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()
		userID := uuid.New()

		p, err := col.RequestJoin(userID)
		require.NoError(t, err)
		assert.True(t, p.IsPending())
		assert.Equal(t, userID, p.UserID())
		assert.Equal(t, col.ID(), p.CollectionID())
	})

	t.Run("private collection rejects join requests", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsPrivate().BuildDomain()

		_, err := col.RequestJoin(uuid.New())
		assert.ErrorIs(t, err, collection.ErrNotPublic)
	})

	t.Run("duplicate request is rejected regardless of status", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		_, err := col.RequestJoin(col.OwnerID())
		assert.ErrorIs(t, err, collection.ErrDuplicateRequest)

		pending := builder.NewCollectionBuilder().WithPendingCount(1).BuildDomain()
		requester := pending.Participants()[1].UserID()
		_, err = pending.RequestJoin(requester)
		assert.ErrorIs(t, err, collection.ErrDuplicateRequest)
	})

	t.Run("full collection rejects join requests", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().BuildDomain()

		_, err := col.RequestJoin(uuid.New())
		assert.ErrorIs(t, err, collection.ErrFull)
	})
}

func TestApprove(t *testing.T) {
	t.Run("owner approves a pending participant", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithPendingCount(1).BuildDomain()
		requester := col.Participants()[1].UserID()

		p, err := col.Approve(col.OwnerID(), requester)
		require.NoError(t, err)
		assert.True(t, p.IsApproved())
		assert.Equal(t, 2, col.ApprovedCount())
		assert.True(t, col.IsMember(requester))
	})

	t.Run("non owner cannot approve", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithPendingCount(1).BuildDomain()
		requester := col.Participants()[1].UserID()

		_, err := col.Approve(uuid.New(), requester)
		assert.ErrorIs(t, err, collection.ErrNotOwner)
	})

	t.Run("unknown participant cannot be approved", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		_, err := col.Approve(col.OwnerID(), uuid.New())
		assert.ErrorIs(t, err, collection.ErrParticipantAbsent)
	})

	t.Run("approval at capacity is rejected", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().WithPendingCount(1).BuildDomain()
		requester := col.Participants()[collection.MaxMembers].UserID()

		_, err := col.Approve(col.OwnerID(), requester)
		assert.ErrorIs(t, err, collection.ErrFull)
	})

	t.Run("approved and rejected are terminal", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithApprovedCount(2).WithPendingCount(1).BuildDomain()
		approved := col.Participants()[1].UserID()
		pending := col.Participants()[2].UserID()

		_, err := col.Approve(col.OwnerID(), approved)
		assert.ErrorIs(t, err, collection.ErrTerminalStatus)

		_, err = col.Reject(col.OwnerID(), pending)
		require.NoError(t, err)
		_, err = col.Approve(col.OwnerID(), pending)
		assert.ErrorIs(t, err, collection.ErrTerminalStatus)
	})

	t.Run("fifth approval activates the lock", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithApprovedCount(4).WithPendingCount(1).BuildDomain()
		requester := col.Participants()[4].UserID()

		_, err := col.Approve(col.OwnerID(), requester)
		require.NoError(t, err)
		assert.Equal(t, collection.MaxMembers, col.ApprovedCount())
		assert.True(t, col.IsLocked())
	})
}

func TestAddDirectly(t *testing.T) {
	t.Run("owner adds a member without a pending step", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()
		userID := uuid.New()

		p, err := col.AddDirectly(col.OwnerID(), userID)
		require.NoError(t, err)
		assert.True(t, p.IsApproved())
		assert.Equal(t, 2, col.ApprovedCount())
	})

	t.Run("non owner cannot add directly", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		_, err := col.AddDirectly(uuid.New(), uuid.New())
		assert.ErrorIs(t, err, collection.ErrNotOwner)
	})

	t.Run("existing participant cannot be added again", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithPendingCount(1).BuildDomain()
		requester := col.Participants()[1].UserID()

		_, err := col.AddDirectly(col.OwnerID(), requester)
		assert.ErrorIs(t, err, collection.ErrDuplicateRequest)
	})

	t.Run("direct add at capacity is rejected", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().BuildDomain()

		_, err := col.AddDirectly(col.OwnerID(), uuid.New())
		assert.ErrorIs(t, err, collection.ErrFull)
	})
}

func TestRemoveAndLeave(t *testing.T) {
	t.Run("owner removes an approved member", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithApprovedCount(2).BuildDomain()
		member := col.Participants()[1].UserID()

		assert.NoError(t, col.Remove(col.OwnerID(), member))
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		err := col.Remove(col.OwnerID(), col.OwnerID())
		assert.ErrorIs(t, err, collection.ErrOwnerRemoval)
	})

	t.Run("removal is blocked while locked", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().BuildDomain()
		member := col.Participants()[1].UserID()

		err := col.Remove(col.OwnerID(), member)
		assert.ErrorIs(t, err, collection.ErrLocked)
	})

	t.Run("member leaves an unlocked collection", func(t *testing.T) {
		col := builder.NewCollectionBuilder().WithApprovedCount(2).BuildDomain()
		member := col.Participants()[1].UserID()

		assert.NoError(t, col.Leave(member))
	})

	t.Run("owner cannot leave their own collection", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		err := col.Leave(col.OwnerID())
		assert.ErrorIs(t, err, collection.ErrOwnerRemoval)
	})

	t.Run("leaving is blocked while locked", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().BuildDomain()
		member := col.Participants()[1].UserID()

		err := col.Leave(member)
		assert.ErrorIs(t, err, collection.ErrLocked)
	})

	t.Run("non participant cannot leave", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		err := col.Leave(uuid.New())
		assert.ErrorIs(t, err, collection.ErrParticipantAbsent)
	})
}

func TestItemEditing(t *testing.T) {
	t.Run("owner adds and removes items", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()
		productID := uuid.New()

		item, err := col.AddItem(col.OwnerID(), productID, 3)
		require.NoError(t, err)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, int32(3), item.Quantity)
		require.Len(t, col.Items(), 1)

		require.NoError(t, col.RemoveItem(col.OwnerID(), productID))
		assert.Empty(t, col.Items())
	})

	t.Run("duplicate product is rejected", func(t *testing.T) {
		productID := uuid.New()
		col := builder.NewCollectionBuilder().WithItem(productID, 1).BuildDomain()

		_, err := col.AddItem(col.OwnerID(), productID, 2)
		assert.ErrorIs(t, err, collection.ErrDuplicateItem)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		_, err := col.AddItem(col.OwnerID(), uuid.New(), 0)
		assert.ErrorIs(t, err, collection.ErrInvalidQuantity)
	})

	t.Run("non owner cannot edit items", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		_, err := col.AddItem(uuid.New(), uuid.New(), 1)
		assert.ErrorIs(t, err, collection.ErrNotOwner)
	})

	t.Run("item edits are blocked while locked", func(t *testing.T) {
		productID := uuid.New()
		col := builder.NewCollectionBuilder().AsLocked().WithItem(productID, 1).BuildDomain()

		_, err := col.AddItem(col.OwnerID(), uuid.New(), 1)
		assert.ErrorIs(t, err, collection.ErrLocked)

		err = col.RemoveItem(col.OwnerID(), productID)
		assert.ErrorIs(t, err, collection.ErrLocked)
	})

	t.Run("removing an absent product fails", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		err := col.RemoveItem(col.OwnerID(), uuid.New())
		assert.ErrorIs(t, err, collection.ErrItemNotFound)
	})
}

func TestCollectionUpdates(t *testing.T) {
	t.Run("owner renames and toggles visibility", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		require.NoError(t, col.Rename(col.OwnerID(), "Office Snacks"))
		assert.Equal(t, "Office Snacks", col.Name())

		require.NoError(t, col.SetVisibility(col.OwnerID(), false))
		assert.False(t, col.IsPublic())
	})

	t.Run("rename to empty is rejected", func(t *testing.T) {
		col := builder.NewCollectionBuilder().BuildDomain()

		err := col.Rename(col.OwnerID(), "")
		assert.ErrorIs(t, err, collection.ErrInvalidName)
	})

	t.Run("updates are blocked while locked", func(t *testing.T) {
		col := builder.NewCollectionBuilder().AsLocked().BuildDomain()

		err := col.Rename(col.OwnerID(), "Office Snacks")
		assert.ErrorIs(t, err, collection.ErrLocked)

		err = col.SetVisibility(col.OwnerID(), false)
		assert.ErrorIs(t, err, collection.ErrLocked)
	})
}

func TestParticipantStatus(t *testing.T) {
	t.Run("valid statuses parse", func(t *testing.T) {
		for _, s := range []string{"pending", "approved", "rejected"} {
			status, err := collection.NewParticipantStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := collection.NewParticipantStatus("banned")
		assert.ErrorIs(t, err, collection.ErrInvalidStatus)
	})
}
