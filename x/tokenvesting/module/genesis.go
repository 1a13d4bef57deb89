package tokenvesting

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/keeper"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	// Set all the vesting records under the address their stored bump derives
	for _, elem := range genState.VestingAccounts {
		addr, err := elem.Address()
		if err != nil {
			panic(err)
		}
		if err := k.SetVestingAccount(ctx, addr, elem); err != nil {
			panic(err)
		}
	}

	// Set all the employee schedules, which also rebuilds the per-company index
	for _, elem := range genState.EmployeeAccounts {
		addr, err := elem.Address()
		if err != nil {
			panic(err)
		}
		if err := k.SetEmployeeAccount(ctx, addr, elem); err != nil {
			panic(err)
		}
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	vestingAccounts, err := k.GetAllVestingAccounts(ctx)
	if err != nil {
		panic(err)
	}
	genesis.VestingAccounts = vestingAccounts

	employeeAccounts, err := k.GetAllEmployeeAccounts(ctx)
	if err != nil {
		panic(err)
	}
	genesis.EmployeeAccounts = employeeAccounts

	return genesis
}
