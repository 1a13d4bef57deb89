package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/productscience/tokenvesting/testutil/sample"
)

func TestFindProgramAddressIsDeterministic(t *testing.T) {
	addr1, bump1, err := FindProgramAddress(VestingAccountSeeds("acme"))
	require.NoError(t, err)
	addr2, bump2, err := FindProgramAddress(VestingAccountSeeds("acme"))
	require.NoError(t, err)

	require.Equal(t, addr1, addr2)
	require.Equal(t, bump1, bump2)
	require.Len(t, addr1, 32)
	require.False(t, isOnCurve(addr1))

	again, err := CreateProgramAddress(VestingAccountSeeds("acme"), bump1)
	require.NoError(t, err)
	require.Equal(t, addr1, again)
}

func TestFindProgramAddressReturnsHighestOffCurveBump(t *testing.T) {
	seeds := TreasurySeeds("acme")
	_, bump, err := FindProgramAddress(seeds)
	require.NoError(t, err)

	for higher := int(bump) + 1; higher <= 255; higher++ {
		_, err := CreateProgramAddress(seeds, uint8(higher))
		require.ErrorIs(t, err, ErrInvalidSeeds)
	}
}

func TestDerivedAddressesAreDistinct(t *testing.T) {
	vesting, _, err := FindProgramAddress(VestingAccountSeeds("acme"))
	require.NoError(t, err)
	treasury, _, err := FindProgramAddress(TreasurySeeds("acme"))
	require.NoError(t, err)
	other, _, err := FindProgramAddress(VestingAccountSeeds("acme2"))
	require.NoError(t, err)

	require.NotEqual(t, vesting, treasury)
	require.NotEqual(t, vesting, other)

	beneficiary := sample.Address()
	employee, _, err := FindProgramAddress(EmployeeAccountSeeds(beneficiary, vesting))
	require.NoError(t, err)
	employeeOther, _, err := FindProgramAddress(EmployeeAccountSeeds(beneficiary, other))
	require.NoError(t, err)
	require.NotEqual(t, employee, employeeOther)
}

func TestSeedBoundariesDoNotCollide(t *testing.T) {
	a, _, err := FindProgramAddress([][]byte{[]byte("ab"), []byte("c")})
	require.NoError(t, err)
	b, _, err := FindProgramAddress([][]byte{[]byte("a"), []byte("bc")})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSeedLimits(t *testing.T) {
	_, _, err := FindProgramAddress(nil)
	require.ErrorIs(t, err, ErrInvalidSeeds)

	_, _, err = FindProgramAddress([][]byte{bytes.Repeat([]byte{1}, MaxSeedLength+1)})
	require.ErrorIs(t, err, ErrInvalidSeeds)

	tooMany := make([][]byte, MaxSeeds)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, _, err = FindProgramAddress(tooMany)
	require.ErrorIs(t, err, ErrInvalidSeeds)

	_, _, err = FindProgramAddress(tooMany[:MaxSeeds-1])
	require.NoError(t, err)

	_, _, err = FindProgramAddress(VestingAccountSeeds(string(bytes.Repeat([]byte{'x'}, MaxCompanyNameLength))))
	require.NoError(t, err)
}

func TestVerifyBump(t *testing.T) {
	seeds := VestingAccountSeeds("acme")
	addr, bump, err := FindProgramAddress(seeds)
	require.NoError(t, err)

	require.NoError(t, VerifyBump(seeds, bump, addr))
	require.ErrorIs(t, VerifyBump(seeds, bump-1, addr), ErrSeedsConstraintViolated)
	require.ErrorIs(t, VerifyBump(VestingAccountSeeds("other"), bump, addr), ErrSeedsConstraintViolated)
}

func TestAuthority(t *testing.T) {
	seeds := TreasurySeeds("acme")
	addr, bump, err := FindProgramAddress(seeds)
	require.NoError(t, err)

	authority, err := NewAuthority(seeds, bump)
	require.NoError(t, err)
	require.Equal(t, addr, authority.Address())
	require.Equal(t, bump, authority.Bump())
	require.NoError(t, authority.Verify(addr))
	require.ErrorIs(t, authority.Verify(sample.Address()), ErrInvalidAuthority)

	// mutating the caller's seeds does not change what the authority signs for
	seeds[1][0] ^= 0xff
	require.NoError(t, authority.Verify(addr))

	require.ErrorIs(t, Authority{}.Verify(addr), ErrInvalidAuthority)
}
