package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/productscience/tokenvesting/x/tokenvesting/keeper"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// TokenVestingMocks holds all the mock keepers for testing
type TokenVestingMocks struct {
	BankKeeper    *MockBankKeeper
	AccountKeeper *MockAccountKeeper
}

// TokenVestingLedger holds the in-memory keepers backing a test keeper
type TokenVestingLedger struct {
	Bank     *InMemoryBankKeeper
	Accounts *InMemoryAccountKeeper
}

// TokenVestingKeeper returns a keeper backed by in-memory bank and account ledgers.
func TokenVestingKeeper(t testing.TB) (keeper.Keeper, sdk.Context, TokenVestingLedger) {
	ledger := TokenVestingLedger{
		Bank:     NewInMemoryBankKeeper(),
		Accounts: NewInMemoryAccountKeeper(),
	}
	k, ctx := TokenVestingKeeperWithMock(t, ledger.Bank, ledger.Accounts)
	return k, ctx, ledger
}

func TokenVestingKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, TokenVestingMocks) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBankKeeper(ctrl)
	accountKeeper := NewMockAccountKeeper(ctrl)

	k, ctx := TokenVestingKeeperWithMock(t, bankKeeper, accountKeeper)

	mocks := TokenVestingMocks{
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
	}

	return k, ctx, mocks
}

func TokenVestingKeeperWithMock(
	t testing.TB,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		accountKeeper,
		bankKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
