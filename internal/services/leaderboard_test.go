package services_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Tsurematsu/backendFall/internal/models"
	"github.com/Tsurematsu/backendFall/internal/services"
	"github.com/Tsurematsu/backendFall/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*services.LeaderboardService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return services.NewLeaderboardService(db, testutil.DeleteSecret), db
}

func TestCreateOrIncrementMergesIdentities(t *testing.T) {
	svc, db := newService(t)

	first, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, "ana", first.Name)

	second, err := svc.CreateOrIncrement(" Ana ", 21, "systems", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Total)

	third, err := svc.CreateOrIncrement("ANA", 21, "systems", "")
	require.NoError(t, err)
	assert.Equal(t, 3, third.Total)

	var count int64
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrIncrementValidation(t *testing.T) {
	svc, _ := newService(t)

	cases := []struct {
		name   string
		age    int
		career string
	}{
		{"", 21, "systems"},
		{"   ", 21, "systems"},
		{"ana", 0, "systems"},
		{"ana", -3, "systems"},
		{"ana", 21, ""},
	}

	for _, c := range cases {
		_, err := svc.CreateOrIncrement(c.name, c.age, c.career, "")
		var vErr *services.ValidationError
		assert.ErrorAs(t, err, &vErr, "CreateOrIncrement(%q, %d, %q)", c.name, c.age, c.career)
	}
}

func TestReasonAccumulatesInOrder(t *testing.T) {
	svc, _ := newService(t)

	entry, err := svc.CreateOrIncrement("ana", 21, "systems", "r1")
	require.NoError(t, err)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "r1", *entry.Reason)

	entry, err = svc.CreateOrIncrement("ana", 21, "systems", "r2")
	require.NoError(t, err)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "r1, r2", *entry.Reason)

	// No reason supplied leaves the accumulated value untouched.
	entry, err = svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "r1, r2", *entry.Reason)
}

func TestReasonStartsOnLaterSubmission(t *testing.T) {
	svc, _ := newService(t)

	entry, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)
	assert.Nil(t, entry.Reason)

	entry, err = svc.CreateOrIncrement("ana", 21, "systems", "late reason")
	require.NoError(t, err)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "late reason", *entry.Reason)
}

func TestCreationFieldsAreSticky(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)

	entry, err := svc.CreateOrIncrement("ana", 99, "medicine", "")
	require.NoError(t, err)
	assert.Equal(t, 21, entry.Age)
	assert.Equal(t, "systems", entry.Career)
}

func TestStrictAndDenseRanksDivergeOnTies(t *testing.T) {
	svc, _ := newService(t)

	a, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)
	b, err := svc.CreateOrIncrement("ben", 22, "systems", "")
	require.NoError(t, err)
	c, err := svc.CreateOrIncrement("carla", 23, "systems", "")
	require.NoError(t, err)

	ten := 10
	five := 5
	_, err = svc.UpdateFields(a.ID, &ten, "")
	require.NoError(t, err)
	_, err = svc.UpdateFields(b.ID, &ten, "")
	require.NoError(t, err)
	_, err = svc.UpdateFields(c.ID, &five, "")
	require.NoError(t, err)

	// list() hands out strict positional ranks, stable by creation order.
	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, []uint{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})

	// Single-record lookups use dense-tie ranks: both tied players rank 1.
	for _, id := range []uint{a.ID, b.ID} {
		got, err := svc.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Rank)
		assert.Equal(t, "gold", got.Medal)
	}
	got, err := svc.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rank)
}

func TestMedalMapping(t *testing.T) {
	assert.Equal(t, "gold", services.Medal(1))
	assert.Equal(t, "silver", services.Medal(2))
	assert.Equal(t, "bronze", services.Medal(3))
	assert.Equal(t, "", services.Medal(4))
	assert.Equal(t, "", services.Medal(100))

	svc, _ := newService(t)
	for i := 0; i < 5; i++ {
		created, err := svc.CreateOrIncrement(fmt.Sprintf("player%d", i), 20+i, "systems", "")
		require.NoError(t, err)
		total := 50 - i*10
		_, err = svc.UpdateFields(created.ID, &total, "")
		require.NoError(t, err)
	}

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, []string{"gold", "silver", "bronze", "", ""}, []string{
		entries[0].Medal, entries[1].Medal, entries[2].Medal, entries[3].Medal, entries[4].Medal,
	})
}

func TestApplyDelta(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)

	entry, err := svc.ApplyDelta(created.ID, services.ActionIncrement, "")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Total)

	// Repeated decrements are allowed past zero.
	for i := 0; i < 4; i++ {
		entry, err = svc.ApplyDelta(created.ID, services.ActionDecrement, "")
		require.NoError(t, err)
	}
	assert.Equal(t, -2, entry.Total)

	_, err = svc.ApplyDelta(created.ID, "double", "")
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.ApplyDelta(9999, services.ActionIncrement, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplyDeltaAppendsReason(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateOrIncrement("ana", 21, "systems", "r1")
	require.NoError(t, err)

	entry, err := svc.ApplyDelta(created.ID, services.ActionIncrement, "r2")
	require.NoError(t, err)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "r1, r2", *entry.Reason)
}

func TestUpdateFields(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateOrIncrement("ana", 21, "systems", "r1")
	require.NoError(t, err)

	_, err = svc.UpdateFields(created.ID, nil, "")
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)

	total := 42
	entry, err := svc.UpdateFields(created.ID, &total, "audit fix")
	require.NoError(t, err)
	assert.Equal(t, 42, entry.Total)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, "r1, audit fix", *entry.Reason)

	_, err = svc.UpdateFields(9999, &total, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateFieldsStampsUpdatedAt(t *testing.T) {
	svc, db := newService(t)

	created, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)

	var before models.Player
	require.NoError(t, db.First(&before, created.ID).Error)
	assert.Nil(t, before.UpdatedAt)

	total := 5
	_, err = svc.UpdateFields(created.ID, &total, "")
	require.NoError(t, err)

	var after models.Player
	require.NoError(t, db.First(&after, created.ID).Error)
	assert.NotNil(t, after.UpdatedAt)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Get(1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, db := newService(t)

	created, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)

	_, err = svc.Delete(created.ID, "")
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Delete(created.ID, "wrong-secret")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = svc.Delete(9999, testutil.DeleteSecret)
	assert.ErrorIs(t, err, services.ErrNotFound)

	snapshot, err := svc.Delete(created.ID, testutil.DeleteSecret)
	require.NoError(t, err)
	assert.Equal(t, created.ID, snapshot.ID)
	assert.Equal(t, "ana", snapshot.Name)

	var count int64
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestConcurrentIncrementsLoseNoUpdates(t *testing.T) {
	svc, _ := newService(t)

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrIncrement("ana", 21, "systems", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	entry, err := svc.CreateOrIncrement("ana", 21, "systems", "")
	require.NoError(t, err)
	assert.Equal(t, n+1, entry.Total)
}
