package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
)

// Records are stored in a fixed field order behind an 8-byte discriminator
// that names the record kind. Integers are little-endian; strings and
// addresses carry a u32 length prefix.

const (
	discriminatorLength = 8
	maxAddressLength    = 255
	maxDenomLength      = 128
)

var (
	vestingAccountDiscriminator  = discriminator("VestingAccount")
	employeeAccountDiscriminator = discriminator("EmployeeAccount")
)

// Upper bounds of the encoded record sizes.
const (
	VestingAccountSpace  = discriminatorLength + (4 + MaxCompanyNameLength) + (4 + maxAddressLength) + (4 + maxDenomLength) + (4 + maxAddressLength) + 1 + 1
	EmployeeAccountSpace = discriminatorLength + (4 + maxAddressLength) + 8 + 8 + 8 + (4 + maxAddressLength) + 8 + 8 + 1
)

func discriminator(name string) [discriminatorLength]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [discriminatorLength]byte
	copy(d[:], sum[:discriminatorLength])
	return d
}

type recordWriter struct {
	buf []byte
}

func (w *recordWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *recordWriter) u64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }
func (w *recordWriter) i64(v int64)  { w.u64(uint64(v)) }
func (w *recordWriter) bytes(b []byte) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(b)))
	w.buf = append(w.buf, b...)
}

type recordReader struct {
	buf []byte
	err error
}

func (r *recordReader) take(n int, field string) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = errorsmod.Wrapf(ErrInvalidRecord, "truncated %s: need %d bytes, have %d", field, n, len(r.buf))
		return nil
	}
	out := r.buf[:n]
	r.buf = r.buf[n:]
	return out
}

func (r *recordReader) u8(field string) uint8 {
	b := r.take(1, field)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *recordReader) u64(field string) uint64 {
	b := r.take(8, field)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *recordReader) i64(field string) int64 {
	return int64(r.u64(field))
}

func (r *recordReader) bytes(field string, limit int) []byte {
	lb := r.take(4, field+" length")
	if lb == nil {
		return nil
	}
	n := binary.LittleEndian.Uint32(lb)
	if int(n) > limit {
		r.err = errorsmod.Wrapf(ErrInvalidRecord, "%s is %d bytes, max %d", field, n, limit)
		return nil
	}
	b := r.take(int(n), field)
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (r *recordReader) header(want [discriminatorLength]byte, kind string) {
	got := r.take(discriminatorLength, "discriminator")
	if got == nil {
		return
	}
	if string(got) != string(want[:]) {
		r.err = errorsmod.Wrapf(ErrInvalidRecord, "discriminator %x is not a %s", got, kind)
	}
}

func (r *recordReader) finish() error {
	if r.err != nil {
		return r.err
	}
	if len(r.buf) != 0 {
		return errorsmod.Wrapf(ErrInvalidRecord, "%d trailing bytes", len(r.buf))
	}
	return nil
}

// Marshal encodes the record in its fixed layout.
func (v VestingAccount) Marshal() ([]byte, error) {
	if len(v.CompanyName) > MaxCompanyNameLength {
		return nil, errorsmod.Wrapf(ErrInvalidCompanyName, "company name is %d bytes, max %d", len(v.CompanyName), MaxCompanyNameLength)
	}
	w := recordWriter{buf: make([]byte, 0, VestingAccountSpace)}
	w.buf = append(w.buf, vestingAccountDiscriminator[:]...)
	w.bytes([]byte(v.CompanyName))
	w.bytes(v.Owner)
	w.bytes([]byte(v.Mint))
	w.bytes(v.TreasuryTokenAccount)
	w.u8(v.TreasuryBump)
	w.u8(v.Bump)
	return w.buf, nil
}

// Unmarshal decodes a record produced by Marshal.
func (v *VestingAccount) Unmarshal(bz []byte) error {
	r := recordReader{buf: bz}
	r.header(vestingAccountDiscriminator, "VestingAccount")
	decoded := VestingAccount{
		CompanyName:          string(r.bytes("company_name", MaxCompanyNameLength)),
		Owner:                r.bytes("owner", maxAddressLength),
		Mint:                 string(r.bytes("mint", maxDenomLength)),
		TreasuryTokenAccount: r.bytes("treasury_token_account", maxAddressLength),
		TreasuryBump:         r.u8("treasury_bump"),
		Bump:                 r.u8("bump"),
	}
	if err := r.finish(); err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Marshal encodes the record in its fixed layout.
func (e EmployeeAccount) Marshal() ([]byte, error) {
	w := recordWriter{buf: make([]byte, 0, EmployeeAccountSpace)}
	w.buf = append(w.buf, employeeAccountDiscriminator[:]...)
	w.bytes(e.Beneficiary)
	w.i64(e.StartTime)
	w.i64(e.EndTime)
	w.i64(e.CliffTime)
	w.bytes(e.VestingAccount)
	w.u64(e.TotalAmount)
	w.u64(e.TotalWithdrawn)
	w.u8(e.Bump)
	return w.buf, nil
}

// Unmarshal decodes a record produced by Marshal.
func (e *EmployeeAccount) Unmarshal(bz []byte) error {
	r := recordReader{buf: bz}
	r.header(employeeAccountDiscriminator, "EmployeeAccount")
	decoded := EmployeeAccount{
		Beneficiary:    r.bytes("beneficiary", maxAddressLength),
		StartTime:      r.i64("start_time"),
		EndTime:        r.i64("end_time"),
		CliffTime:      r.i64("cliff_time"),
		VestingAccount: r.bytes("vesting_account", maxAddressLength),
		TotalAmount:    r.u64("total_amount"),
		TotalWithdrawn: r.u64("total_withdrawn"),
		Bump:           r.u8("bump"),
	}
	if err := r.finish(); err != nil {
		return err
	}
	*e = decoded
	return nil
}

type binaryRecord interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// recordValueCodec adapts a fixed-layout record to a collections value codec.
type recordValueCodec[T any, PT interface {
	*T
	binaryRecord
}] struct {
	name string
}

func (c recordValueCodec[T, PT]) Encode(value T) ([]byte, error) {
	return PT(&value).Marshal()
}

func (c recordValueCodec[T, PT]) Decode(b []byte) (T, error) {
	var value T
	err := PT(&value).Unmarshal(b)
	return value, err
}

func (c recordValueCodec[T, PT]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c recordValueCodec[T, PT]) DecodeJSON(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c recordValueCodec[T, PT]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c recordValueCodec[T, PT]) ValueType() string {
	return ModuleName + "/" + c.name
}

var (
	VestingAccountValue  collcodec.ValueCodec[VestingAccount]  = recordValueCodec[VestingAccount, *VestingAccount]{name: "VestingAccount"}
	EmployeeAccountValue collcodec.ValueCodec[EmployeeAccount] = recordValueCodec[EmployeeAccount, *EmployeeAccount]{name: "EmployeeAccount"}
	ParamsValue          collcodec.ValueCodec[Params]          = jsonValueCodec[Params]{name: "Params"}
)

// jsonValueCodec stores small configuration values as JSON.
type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c jsonValueCodec[T]) ValueType() string {
	return ModuleName + "/" + c.name
}
