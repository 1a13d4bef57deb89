package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EmployeeAccount is one beneficiary's unlock schedule and withdrawal history.
// Only TotalWithdrawn changes after creation, and only upward.
type EmployeeAccount struct {
	Beneficiary    sdk.AccAddress `json:"beneficiary"`
	StartTime      int64          `json:"start_time"`
	EndTime        int64          `json:"end_time"`
	CliffTime      int64          `json:"cliff_time"`
	VestingAccount sdk.AccAddress `json:"vesting_account"`
	TotalAmount    uint64         `json:"total_amount"`
	TotalWithdrawn uint64         `json:"total_withdrawn"`
	Bump           uint8          `json:"bump"`
}

// Address re-derives the record's own address from its relations and stored bump.
func (e EmployeeAccount) Address() (sdk.AccAddress, error) {
	addr, err := CreateProgramAddress(EmployeeAccountSeeds(e.Beneficiary, e.VestingAccount), e.Bump)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrSeedsConstraintViolated, "employee account of %s: %s", e.Beneficiary, err)
	}
	return addr, nil
}

// ValidateOrder checks start < end, start <= cliff <= end and a positive total.
// It is only enforced at creation when the EnforceScheduleOrder param is set.
func (e EmployeeAccount) ValidateOrder() error {
	if e.EndTime <= e.StartTime {
		return errorsmod.Wrapf(ErrInvalidSchedule, "end %d must be after start %d", e.EndTime, e.StartTime)
	}
	if e.CliffTime < e.StartTime || e.CliffTime > e.EndTime {
		return errorsmod.Wrapf(ErrInvalidSchedule, "cliff %d must lie within [%d, %d]", e.CliffTime, e.StartTime, e.EndTime)
	}
	if e.TotalAmount == 0 {
		return errorsmod.Wrap(ErrInvalidSchedule, "total amount must be positive")
	}
	return nil
}

// Validate performs the stateless checks every stored employee record must pass.
func (e EmployeeAccount) Validate() error {
	if err := sdk.VerifyAddressFormat(e.Beneficiary); err != nil {
		return errorsmod.Wrapf(ErrInvalidRecord, "beneficiary: %s", err)
	}
	if err := sdk.VerifyAddressFormat(e.VestingAccount); err != nil {
		return errorsmod.Wrapf(ErrInvalidRecord, "vesting account: %s", err)
	}
	if e.TotalWithdrawn > e.TotalAmount {
		return errorsmod.Wrapf(ErrInvalidRecord, "withdrawn %d exceeds total %d", e.TotalWithdrawn, e.TotalAmount)
	}
	if _, err := e.Address(); err != nil {
		return err
	}
	return nil
}

func (e EmployeeAccount) String() string {
	return fmt.Sprintf("EmployeeAccount{beneficiary=%s vesting=%s start=%d cliff=%d end=%d total=%d withdrawn=%d bump=%d}",
		e.Beneficiary, e.VestingAccount, e.StartTime, e.CliffTime, e.EndTime, e.TotalAmount, e.TotalWithdrawn, e.Bump)
}
