package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		accountKeeper types.AccountKeeper
		bankKeeper    types.BankKeeper

		schema             collections.Schema
		params             collections.Item[types.Params]
		vestingAccounts    collections.Map[[]byte, types.VestingAccount]
		employeeAccounts   collections.Map[[]byte, types.EmployeeAccount]
		employeesByVesting collections.KeySet[collections.Pair[[]byte, []byte]]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,

		params: collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		vestingAccounts: collections.NewMap(sb, types.VestingAccountPrefix, "vesting_accounts",
			collections.BytesKey, types.VestingAccountValue),
		employeeAccounts: collections.NewMap(sb, types.EmployeeAccountPrefix, "employee_accounts",
			collections.BytesKey, types.EmployeeAccountValue),
		employeesByVesting: collections.NewKeySet(sb, types.EmployeesByVestingPrefix, "employees_by_vesting",
			collections.PairKeyCodec(collections.BytesKey, collections.BytesKey)),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build tokenvesting schema: %s", err))
	}
	k.schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
