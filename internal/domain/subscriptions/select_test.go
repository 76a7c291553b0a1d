package subscriptions

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectGoverning_Empty(t *testing.T) {
	assert.Nil(t, SelectGoverning(nil))
	assert.Nil(t, SelectGoverning([]Subscription{}))
}

func TestSelectGoverning_PrefersActive(t *testing.T) {
	newest := day(20)
	active := day(5)
	rows := []Subscription{
		{ID: uuid.New(), Status: "canceled", CurrentPeriodEnd: &newest},
		{ID: uuid.New(), Status: "Active", CurrentPeriodEnd: &active},
	}

	got := SelectGoverning(rows)
	require.NotNil(t, got)
	assert.Equal(t, rows[1].ID, got.ID)
}

func TestSelectGoverning_FallbackUsesDateChainNotCreatedAt(t *testing.T) {
	// Row A was created most recently but has no period dates; row B is older
	// by created_at but its current_period_end reaches further into the
	// future. The chain key must pick B.
	farEnd := day(25)
	rows := []Subscription{
		{ID: uuid.New(), Status: "canceled", CreatedAt: day(15)},
		{ID: uuid.New(), Status: "expired", CreatedAt: day(2), CurrentPeriodEnd: &farEnd},
		{ID: uuid.New(), Status: "canceled", CreatedAt: day(10)},
	}

	got := SelectGoverning(rows)
	require.NotNil(t, got)
	assert.Equal(t, rows[1].ID, got.ID)
}

func TestSelectGoverning_EndDateBeatsStartDate(t *testing.T) {
	endDate := day(12)
	startDate := day(18)
	rows := []Subscription{
		{ID: uuid.New(), Status: "canceled", EndDate: &endDate},
		{ID: uuid.New(), Status: "canceled", CurrentPeriodStart: &startDate},
	}

	// Per-row keys: end_date=12 vs current_period_start=18; the later key wins.
	got := SelectGoverning(rows)
	require.NotNil(t, got)
	assert.Equal(t, rows[1].ID, got.ID)
}

func TestSelectGoverning_RowsWithoutDatesLose(t *testing.T) {
	someDate := day(3)
	rows := []Subscription{
		{ID: uuid.New(), Status: "canceled"},
		{ID: uuid.New(), Status: "canceled", CreatedDate: &someDate},
	}

	got := SelectGoverning(rows)
	require.NotNil(t, got)
	assert.Equal(t, rows[1].ID, got.ID)
}

func TestSelectGoverning_LatestActiveWinsAmongActives(t *testing.T) {
	older := day(5)
	newer := day(9)
	rows := []Subscription{
		{ID: uuid.New(), Status: "active", CurrentPeriodEnd: &older},
		{ID: uuid.New(), Status: "active", CurrentPeriodEnd: &newer},
	}

	got := SelectGoverning(rows)
	require.NotNil(t, got)
	assert.Equal(t, rows[1].ID, got.ID)
}

func TestRecencyKey_Precedence(t *testing.T) {
	periodEnd := day(1)
	endDate := day(2)
	s := Subscription{CurrentPeriodEnd: &periodEnd, EndDate: &endDate, CreatedAt: day(3)}

	key := RecencyKey(&s)
	require.NotNil(t, key)
	assert.Equal(t, periodEnd, *key)

	s.CurrentPeriodEnd = nil
	key = RecencyKey(&s)
	require.NotNil(t, key)
	assert.Equal(t, endDate, *key)

	s.EndDate = nil
	key = RecencyKey(&s)
	require.NotNil(t, key)
	assert.Equal(t, day(3), *key)
}
