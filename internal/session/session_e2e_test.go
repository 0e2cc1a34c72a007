package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sultanbank/teller/internal/config"
	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/service"
	"github.com/sultanbank/teller/internal/store"
	"github.com/sultanbank/teller/migrations"
)

// The workflow tests above isolate the controller; these run the full
// stack the binary ships with, down to the database.

func newRealLedger(t *testing.T) *service.LedgerService {
	t.Helper()

	dbStore, err := store.NewStore(":memory:", migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbStore.Close() })

	cfg := config.NewDefault()
	ls := service.NewLedgerService(dbStore, cfg)
	require.NoError(t, ls.Seed())

	return ls
}

func TestFullWithdrawalWorkflow(t *testing.T) {
	ls := newRealLedger(t)
	s := New(ls, 3)

	feed(s, "123456789")
	res := s.SubmitEnter()
	require.Equal(t, StatePINEntry, res.State)

	feed(s, "1234")
	res = s.SubmitEnter()
	require.Equal(t, StateMainMenu, res.State)

	res = s.SubmitMenuAction(constants.ActionWithdraw)
	require.Equal(t, StateWithdrawAmount, res.State)

	feed(s, "200")
	res = s.SubmitEnter()

	assert.True(t, res.OK)
	assert.Equal(t, StateMainMenu, res.State)
	assert.Contains(t, res.Message, "$1,300.00")

	res = s.SubmitMenuAction(constants.ActionHistory)
	require.Len(t, res.History, 1)
	assert.Equal(t, constants.TxKindWithdrawal, res.History[0].Kind)
	assert.Equal(t, int64(-20000), res.History[0].AmountCents)
}

func TestLockoutLeavesBalanceUntouched(t *testing.T) {
	ls := newRealLedger(t)
	s := New(ls, 3)

	feed(s, "123456789")
	s.SubmitEnter()

	var res Result
	for i := 0; i < 3; i++ {
		feed(s, "0000")
		res = s.SubmitEnter()
	}
	require.True(t, res.Blocked)

	s.AcknowledgeLockout()

	acc, err := ls.ValidateCredentials("123456789", "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), acc.BalanceCents)

	history, err := ls.History(acc.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
