package sample_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pcm/pcm/sample"
)

func requireEquilibriumMaps[T, S sample.Sample](t *testing.T, name string) {
	t.Helper()

	got := sample.To[T](sample.Equilibrium[S]())
	if got != sample.Equilibrium[T]() {
		t.Errorf("%s: equilibrium converted to %v, want %v", name, got, sample.Equilibrium[T]())
	}
}

func TestEquilibriumMapsToEquilibrium(t *testing.T) {
	requireEquilibriumMaps[sample.U8, sample.I8](t, "i8->u8")
	requireEquilibriumMaps[sample.I16, sample.U16](t, "u16->i16")
	requireEquilibriumMaps[sample.U32, sample.I32](t, "i32->u32")
	requireEquilibriumMaps[sample.I64, sample.U64](t, "u64->i64")
	requireEquilibriumMaps[sample.F32, sample.I24](t, "i24->f32")
	requireEquilibriumMaps[sample.F64, sample.U48](t, "u48->f64")
	requireEquilibriumMaps[sample.I16, sample.F64](t, "f64->i16")
	requireEquilibriumMaps[sample.U24, sample.F32](t, "f32->u24")
	requireEquilibriumMaps[sample.U11, sample.I11](t, "i11->u11")
	requireEquilibriumMaps[sample.I20, sample.U20](t, "u20->i20")
}

func TestEquilibriumValues(t *testing.T) {
	if got := sample.Equilibrium[sample.I16](); got != 0 {
		t.Errorf("i16 equilibrium = %d, want 0", got)
	}
	if got := sample.Equilibrium[sample.U8](); got != 128 {
		t.Errorf("u8 equilibrium = %d, want 128", got)
	}
	if got := sample.Equilibrium[sample.U32](); got != 2147483648 {
		t.Errorf("u32 equilibrium = %d, want 2147483648", got)
	}
	if got := sample.Equilibrium[sample.U48](); got != 1<<47 {
		t.Errorf("u48 equilibrium = %d, want %d", got, uint64(1)<<47)
	}
	if got := sample.Equilibrium[sample.F64](); got != 0.0 {
		t.Errorf("f64 equilibrium = %v, want 0", got)
	}
}

func TestToReferenceValues(t *testing.T) {
	if got := sample.To[sample.U8](sample.F32(-1.0)); got != 0 {
		t.Errorf("u8(f32 -1.0) = %d, want 0", got)
	}
	if got := sample.To[sample.U8](sample.F32(0.0)); got != 128 {
		t.Errorf("u8(f32 0.0) = %d, want 128", got)
	}
	if got := sample.To[sample.U32](sample.I32(0)); got != 2147483648 {
		t.Errorf("u32(i32 0) = %d, want 2147483648", got)
	}
	if got := sample.To[sample.U8](sample.I8(-1)); got != 127 {
		t.Errorf("u8(i8 -1) = %d, want 127", got)
	}
	if got := sample.To[sample.I16](sample.I8(1)); got != 256 {
		t.Errorf("i16(i8 1) = %d, want 256", got)
	}
	if got := sample.To[sample.F64](sample.I8(-128)); got != -1.0 {
		t.Errorf("f64(i8 -128) = %v, want -1", got)
	}
	if got := sample.To[sample.F64](sample.I8(64)); got != 0.5 {
		t.Errorf("f64(i8 64) = %v, want 0.5", got)
	}
}

func TestNarrowingTruncates(t *testing.T) {
	if got := sample.To[sample.I8](sample.I16(0x1234)); got != 0x12 {
		t.Errorf("i8(i16 0x1234) = %#x, want 0x12", got)
	}
	if got := sample.To[sample.I8](sample.I16(-1)); got != -1 {
		t.Errorf("i8(i16 -1) = %d, want -1", got)
	}
	if got := sample.To[sample.I16](sample.I24(0x123456)); got != 0x1234 {
		t.Errorf("i16(i24 0x123456) = %#x, want 0x1234", got)
	}
}

func TestWideningRoundTrips(t *testing.T) {
	for _, v := range []sample.I8{-128, -1, 0, 1, 127} {
		if got := sample.To[sample.I8](sample.To[sample.I64](v)); got != v {
			t.Errorf("i8->i64->i8 of %d = %d", v, got)
		}
		if got := sample.To[sample.I8](sample.To[sample.U16](v)); got != v {
			t.Errorf("i8->u16->i8 of %d = %d", v, got)
		}
	}

	for _, v := range []sample.I16{-32768, -1000, 0, 1, 32767} {
		if got := sample.To[sample.I16](sample.To[sample.I48](v)); got != v {
			t.Errorf("i16->i48->i16 of %d = %d", v, got)
		}
		if got := sample.To[sample.I16](sample.To[sample.U24](v)); got != v {
			t.Errorf("i16->u24->i16 of %d = %d", v, got)
		}
	}
}

func TestFloatToIntTruncatesAndSaturates(t *testing.T) {
	cases := []struct {
		in   sample.F64
		want sample.I8
	}{
		{0.0, 0},
		{0.5, 64},
		{-0.5, -64},
		{0.999, 127},
		{-0.999, -127},
		{1.0, 127},
		{-1.0, -128},
		{2.0, 127},
		{-2.0, -128},
	}
	for _, c := range cases {
		if got := sample.To[sample.I8](c.in); got != c.want {
			t.Errorf("i8(f64 %v) = %d, want %d", c.in, got, c.want)
		}
	}

	if got := sample.To[sample.I16](sample.F64(1.0)); got != 32767 {
		t.Errorf("i16(f64 1.0) = %d, want 32767", got)
	}
	if got := sample.To[sample.I16](sample.F64(-1.0)); got != -32768 {
		t.Errorf("i16(f64 -1.0) = %d, want -32768", got)
	}
}

func TestIntToFloatFullScale(t *testing.T) {
	if got := sample.To[sample.F32](sample.I16(-32768)); got != -1.0 {
		t.Errorf("f32(i16 min) = %v, want -1", got)
	}
	if got := sample.To[sample.F64](sample.I16(16384)); got != 0.5 {
		t.Errorf("f64(i16 16384) = %v, want 0.5", got)
	}
	if got := sample.To[sample.F64](sample.U8(192)); got != 0.5 {
		t.Errorf("f64(u8 192) = %v, want 0.5", got)
	}
}

func TestAddAmp(t *testing.T) {
	if got := sample.AddAmp(sample.F64(0.25), sample.F64(0.5)); got != 0.75 {
		t.Errorf("f64 add = %v, want 0.75", got)
	}

	// Integer formats wrap in two's complement like their signed carriers.
	if got := sample.AddAmp(sample.I8(100), sample.I8(100)); got != -56 {
		t.Errorf("i8 add wrap = %d, want -56", got)
	}

	// Adding equilibrium is the identity in every format.
	if got := sample.AddAmp(sample.U8(37), sample.Equilibrium[sample.U8]()); got != 37 {
		t.Errorf("u8 add equilibrium = %d, want 37", got)
	}
}

func TestMulAmp(t *testing.T) {
	if got := sample.MulAmp(sample.F32(0.5), 0.5); got != 0.25 {
		t.Errorf("f32 mul = %v, want 0.25", got)
	}
	if got := sample.MulAmp(sample.I16(16384), 0.5); got != 8192 {
		t.Errorf("i16 mul = %d, want 8192", got)
	}
	if got := sample.MulAmp(sample.U8(192), 0.5); got != 160 {
		t.Errorf("u8 mul = %d, want 160", got)
	}
	if got := sample.MulAmp(sample.I16(100), sample.Identity); got != 100 {
		t.Errorf("i16 mul identity = %d, want 100", got)
	}
}

func TestClip(t *testing.T) {
	if got := sample.Clip(sample.F64(0.9), sample.F64(0.5)); got != 0.5 {
		t.Errorf("f64 clip high = %v, want 0.5", got)
	}
	if got := sample.Clip(sample.F64(-0.9), sample.F64(0.5)); got != -0.5 {
		t.Errorf("f64 clip low = %v, want -0.5", got)
	}
	if got := sample.Clip(sample.I16(-30000), sample.I16(20000)); got != -20000 {
		t.Errorf("i16 clip low = %d, want -20000", got)
	}
	if got := sample.Clip(sample.I16(123), sample.I16(20000)); got != 123 {
		t.Errorf("i16 clip pass = %d, want 123", got)
	}

	// Unsigned clipping is symmetric around the midpoint.
	if got := sample.Clip(sample.U8(255), sample.U8(192)); got != 192 {
		t.Errorf("u8 clip high = %d, want 192", got)
	}
	if got := sample.Clip(sample.U8(0), sample.U8(192)); got != 64 {
		t.Errorf("u8 clip low = %d, want 64", got)
	}
}

func TestRectify(t *testing.T) {
	if got := sample.Abs(sample.F64(-0.25)); got != 0.25 {
		t.Errorf("f64 abs = %v, want 0.25", got)
	}
	if got := sample.Abs(sample.I16(-1000)); got != 1000 {
		t.Errorf("i16 abs = %d, want 1000", got)
	}
	if got := sample.Abs(sample.I8(-128)); got != 127 {
		t.Errorf("i8 abs of min = %d, want 127", got)
	}
	if got := sample.Abs(sample.U8(28)); got != 228 {
		t.Errorf("u8 abs = %d, want 228", got)
	}

	if got := sample.PositiveHalf(sample.F64(-0.5)); got != 0 {
		t.Errorf("f64 positive half = %v, want 0", got)
	}
	if got := sample.PositiveHalf(sample.U8(100)); got != 128 {
		t.Errorf("u8 positive half = %d, want 128", got)
	}
	if got := sample.NegativeHalf(sample.F64(0.5)); got != 0 {
		t.Errorf("f64 negative half = %v, want 0", got)
	}
	if got := sample.NegativeHalf(sample.I16(-42)); got != -42 {
		t.Errorf("i16 negative half = %d, want -42", got)
	}
}

func TestFromFloat64(t *testing.T) {
	if got := sample.FromFloat64[sample.I24](0.5); got != 1<<22 {
		t.Errorf("i24 from 0.5 = %d, want %d", got, 1<<22)
	}
	if got := sample.FromFloat64[sample.U16](-1.0); got != 0 {
		t.Errorf("u16 from -1.0 = %d, want 0", got)
	}
	if got := sample.ToFloat64(sample.I48(1 << 46)); got != 0.5 {
		t.Errorf("f64 from i48 half = %v, want 0.5", got)
	}
}

func TestNarrowConstructors(t *testing.T) {
	if v, err := sample.NewI24(int32(sample.MaxI24)); err != nil || v != sample.MaxI24 {
		t.Errorf("NewI24(max) = %d, %v", v, err)
	}

	if _, err := sample.NewI24(1 << 23); !errors.Is(err, sample.ErrOutOfRange) {
		t.Errorf("NewI24 overflow err = %v, want ErrOutOfRange", err)
	}
	if _, err := sample.NewU11(1 << 11); !errors.Is(err, sample.ErrOutOfRange) {
		t.Errorf("NewU11 overflow err = %v, want ErrOutOfRange", err)
	}
	if _, err := sample.NewI48(-1<<47 - 1); !errors.Is(err, sample.ErrOutOfRange) {
		t.Errorf("NewI48 underflow err = %v, want ErrOutOfRange", err)
	}
	if v, err := sample.NewU20(12345); err != nil || v != 12345 {
		t.Errorf("NewU20(12345) = %d, %v", v, err)
	}
}

func TestClampedConstructors(t *testing.T) {
	if v := sample.I24Clamped(1 << 23); v != sample.MaxI24 {
		t.Errorf("I24Clamped(1<<23) = %d, want %d", v, sample.MaxI24)
	}
	if v := sample.I24Clamped(-1 << 23); v != sample.MinI24 {
		t.Errorf("I24Clamped(-1<<23) = %d, want %d", v, sample.MinI24)
	}
	if v := sample.U11Clamped(4000); v != sample.MaxU11 {
		t.Errorf("U11Clamped(4000) = %d, want %d", v, sample.MaxU11)
	}
	if v := sample.I48Clamped(42); v != 42 {
		t.Errorf("I48Clamped(42) = %d, want 42", v)
	}
}
