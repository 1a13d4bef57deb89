package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/tokenvesting module sentinel errors
var (
	ErrInvalidSigner              = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrClaimNotAvailableYet       = sdkerrors.Register(ModuleName, 1101, "claim not available yet")
	ErrInvalidVestingPeriod       = sdkerrors.Register(ModuleName, 1102, "invalid vesting period")
	ErrCalculationOverflow        = sdkerrors.Register(ModuleName, 1103, "calculation overflow")
	ErrNothingToClaim             = sdkerrors.Register(ModuleName, 1104, "nothing to claim")
	ErrAccountAlreadyExists       = sdkerrors.Register(ModuleName, 1105, "account already exists")
	ErrVestingAccountNotFound     = sdkerrors.Register(ModuleName, 1106, "vesting account not found")
	ErrEmployeeAccountNotFound    = sdkerrors.Register(ModuleName, 1107, "employee account not found")
	ErrUnauthorized               = sdkerrors.Register(ModuleName, 1108, "signer does not match account relation")
	ErrSeedsConstraintViolated    = sdkerrors.Register(ModuleName, 1109, "seeds constraint violated")
	ErrInvalidSeeds               = sdkerrors.Register(ModuleName, 1110, "invalid derivation seeds")
	ErrInvalidAuthority           = sdkerrors.Register(ModuleName, 1111, "derived authority does not sign for account")
	ErrInsufficientCustodyBalance = sdkerrors.Register(ModuleName, 1112, "insufficient custody balance")
	ErrMintNotFound               = sdkerrors.Register(ModuleName, 1113, "mint not found")
	ErrMintMismatch               = sdkerrors.Register(ModuleName, 1114, "mint mismatch")
	ErrInvalidSchedule            = sdkerrors.Register(ModuleName, 1115, "invalid vesting schedule")
	ErrInvalidRecord              = sdkerrors.Register(ModuleName, 1116, "invalid record data")
	ErrInvalidCompanyName         = sdkerrors.Register(ModuleName, 1117, "invalid company name")
	ErrVestingNotStarted          = sdkerrors.Register(ModuleName, 1118, "vesting has not started")
)
