package types

import (
	"fmt"
)

// GenesisState defines the tokenvesting module's genesis state.
type GenesisState struct {
	Params           Params            `json:"params"`
	VestingAccounts  []VestingAccount  `json:"vesting_accounts"`
	EmployeeAccounts []EmployeeAccount `json:"employee_accounts"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		VestingAccounts:  []VestingAccount{},
		EmployeeAccounts: []EmployeeAccount{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	vestingIndex := make(map[string]struct{}, len(gs.VestingAccounts))
	for _, va := range gs.VestingAccounts {
		if err := va.Validate(); err != nil {
			return fmt.Errorf("invalid vesting account %q: %w", va.CompanyName, err)
		}
		addr, err := va.Address()
		if err != nil {
			return err
		}
		key := string(addr)
		if _, ok := vestingIndex[key]; ok {
			return fmt.Errorf("duplicated vesting account %q", va.CompanyName)
		}
		vestingIndex[key] = struct{}{}
	}

	employeeIndex := make(map[string]struct{}, len(gs.EmployeeAccounts))
	for _, ea := range gs.EmployeeAccounts {
		if err := ea.Validate(); err != nil {
			return fmt.Errorf("invalid employee account of %s: %w", ea.Beneficiary, err)
		}
		if _, ok := vestingIndex[string(ea.VestingAccount)]; !ok {
			return fmt.Errorf("employee account of %s references unknown vesting account %s", ea.Beneficiary, ea.VestingAccount)
		}
		addr, err := ea.Address()
		if err != nil {
			return err
		}
		key := string(addr)
		if _, ok := employeeIndex[key]; ok {
			return fmt.Errorf("duplicated employee account of %s under %s", ea.Beneficiary, ea.VestingAccount)
		}
		employeeIndex[key] = struct{}{}
	}

	return gs.Params.Validate()
}
