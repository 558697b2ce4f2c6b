package sample

import "testing"

var (
	benchI16 I16
	benchU8  U8
	benchF64 F64
)

func BenchmarkToNarrowing(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		benchI16 = To[I16](F64(0.3))
	}
}

func BenchmarkToUnsigned(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		benchU8 = To[U8](I32(123456789))
	}
}

func BenchmarkToFloat64(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		benchF64 = F64(ToFloat64(I24(654321)))
	}
}

func BenchmarkAddAmp(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		benchI16 = AddAmp(I16(1000), I16(-250))
	}
}
