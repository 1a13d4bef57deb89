package calculations

import (
	"math/bits"

	errorsmod "cosmossdk.io/errors"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// ScheduleState describes where a schedule stands at a given instant.
type ScheduleState int

const (
	Ineligible ScheduleState = iota
	PartiallyVested
	FullyVested
)

func (s ScheduleState) String() string {
	switch s {
	case Ineligible:
		return "ineligible"
	case PartiallyVested:
		return "partially_vested"
	case FullyVested:
		return "fully_vested"
	default:
		return "unknown"
	}
}

// VestingDuration returns end - start as an unsigned span. A zero or negative
// span is ErrInvalidVestingPeriod.
func VestingDuration(start, end int64) (uint64, error) {
	if end <= start {
		return 0, errorsmod.Wrapf(types.ErrInvalidVestingPeriod, "end %d is not after start %d", end, start)
	}
	// end > start, so the unsigned difference is exact even across the sign boundary
	return uint64(end) - uint64(start), nil
}

// VestedAmount returns the cumulative amount unlocked at now for a linear
// schedule of total tokens between start and end.
func VestedAmount(now, start, end int64, total uint64) (uint64, error) {
	duration, err := VestingDuration(start, end)
	if err != nil {
		return 0, err
	}
	if now < start {
		return 0, errorsmod.Wrapf(types.ErrVestingNotStarted, "now %d is before vesting start %d", now, start)
	}
	if now > end {
		return total, nil
	}

	elapsed := uint64(now) - uint64(start)
	hi, lo := bits.Mul64(total, elapsed)
	if hi != 0 {
		return 0, errorsmod.Wrapf(types.ErrCalculationOverflow, "total %d * elapsed %d exceeds 64 bits", total, elapsed)
	}
	return lo / duration, nil
}

// ClaimableAmount is vested minus withdrawn, floored at zero.
func ClaimableAmount(vested, withdrawn uint64) uint64 {
	if withdrawn >= vested {
		return 0
	}
	return vested - withdrawn
}

// StateAt classifies a schedule at now. Misconfigured schedules past the cliff
// report PartiallyVested until end.
func StateAt(now, start, end, cliff int64) ScheduleState {
	if now < cliff || now < start {
		return Ineligible
	}
	if now >= end {
		return FullyVested
	}
	return PartiallyVested
}
