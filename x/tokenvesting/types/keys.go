package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "tokenvesting"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_tokenvesting"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// VestingAccountPrefix holds vesting records keyed by their derived address
	VestingAccountPrefix = collections.NewPrefix(1)

	// EmployeeAccountPrefix holds employee schedules keyed by their derived address
	EmployeeAccountPrefix = collections.NewPrefix(2)

	// EmployeesByVestingPrefix indexes (vesting address, employee account address) pairs
	EmployeesByVestingPrefix = collections.NewPrefix(3)
)

// Derivation seeds.
const (
	TreasurySeed = "vesting_treasury"
	EmployeeSeed = "employee_vesting"
)

const MaxCompanyNameLength = 50
