package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/productscience/tokenvesting/testutil/sample"
)

func sampleVestingAccount(t *testing.T, companyName string) VestingAccount {
	_, bump, err := FindProgramAddress(VestingAccountSeeds(companyName))
	require.NoError(t, err)
	treasury, treasuryBump, err := FindProgramAddress(TreasurySeeds(companyName))
	require.NoError(t, err)
	return VestingAccount{
		CompanyName:          companyName,
		Owner:                sample.Address(),
		Mint:                 "uvest",
		TreasuryTokenAccount: treasury,
		TreasuryBump:         treasuryBump,
		Bump:                 bump,
	}
}

func sampleEmployeeAccount(t *testing.T, vestingAccount VestingAccount) EmployeeAccount {
	vestingAddr, err := vestingAccount.Address()
	require.NoError(t, err)
	beneficiary := sample.Address()
	_, bump, err := FindProgramAddress(EmployeeAccountSeeds(beneficiary, vestingAddr))
	require.NoError(t, err)
	return EmployeeAccount{
		Beneficiary:    beneficiary,
		StartTime:      0,
		EndTime:        1000,
		CliffTime:      100,
		VestingAccount: vestingAddr,
		TotalAmount:    1000,
		TotalWithdrawn: 250,
		Bump:           bump,
	}
}

func TestVestingAccountCodec(t *testing.T) {
	va := sampleVestingAccount(t, "acme")

	bz, err := VestingAccountValue.Encode(va)
	require.NoError(t, err)
	require.LessOrEqual(t, len(bz), VestingAccountSpace)
	require.Equal(t, vestingAccountDiscriminator[:], bz[:discriminatorLength])

	decoded, err := VestingAccountValue.Decode(bz)
	require.NoError(t, err)
	require.Equal(t, va, decoded)
}

func TestEmployeeAccountCodec(t *testing.T) {
	ea := sampleEmployeeAccount(t, sampleVestingAccount(t, "acme"))
	ea.StartTime = -5

	bz, err := EmployeeAccountValue.Encode(ea)
	require.NoError(t, err)
	require.LessOrEqual(t, len(bz), EmployeeAccountSpace)

	decoded, err := EmployeeAccountValue.Decode(bz)
	require.NoError(t, err)
	require.Equal(t, ea, decoded)
}

func TestRecordDecodingRejectsMalformedData(t *testing.T) {
	va := sampleVestingAccount(t, "acme")
	bz, err := va.Marshal()
	require.NoError(t, err)

	var out VestingAccount
	require.ErrorIs(t, out.Unmarshal(bz[:len(bz)-1]), ErrInvalidRecord)
	require.ErrorIs(t, out.Unmarshal(append(append([]byte{}, bz...), 0)), ErrInvalidRecord)
	require.ErrorIs(t, out.Unmarshal(nil), ErrInvalidRecord)

	// an employee record is not a vesting record
	ebz, err := sampleEmployeeAccount(t, va).Marshal()
	require.NoError(t, err)
	require.ErrorIs(t, out.Unmarshal(ebz), ErrInvalidRecord)

	var eout EmployeeAccount
	require.ErrorIs(t, eout.Unmarshal(bz), ErrInvalidRecord)

	tooLong := va
	tooLong.CompanyName = string(make([]byte, MaxCompanyNameLength+1))
	_, err = tooLong.Marshal()
	require.ErrorIs(t, err, ErrInvalidCompanyName)
}

func TestParamsCodec(t *testing.T) {
	bz, err := ParamsValue.Encode(NewParams(true))
	require.NoError(t, err)
	params, err := ParamsValue.Decode(bz)
	require.NoError(t, err)
	require.True(t, params.EnforceScheduleOrder)
	require.Equal(t, "tokenvesting/Params", ParamsValue.ValueType())
}
