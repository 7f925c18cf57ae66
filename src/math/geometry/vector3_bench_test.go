package geometry

import "testing"

var (
	benchVecA = Vector3{X: 1.25, Y: -2.5, Z: 3.75}
	benchVecB = Vector3{X: -4.5, Y: 5.25, Z: 6.125}

	benchVecResult   Vector3
	benchFloatResult float64
)

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVecA.Add(benchVecB)
	}
}

func BenchmarkAddSelf(b *testing.B) {
	v := benchVecA
	for i := 0; i < b.N; i++ {
		v.AddSelf(benchVecB)
	}
	benchVecResult = v
}

func BenchmarkDot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchVecA.Dot(benchVecB)
	}
}

func BenchmarkCross(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVecA.Cross(benchVecB)
	}
}

func BenchmarkNorm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchVecA.Norm()
	}
}

func BenchmarkNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVecResult = benchVecA.Normalize()
	}
}

func BenchmarkNormalizeSelf(b *testing.B) {
	v := benchVecA
	for i := 0; i < b.N; i++ {
		v.NormalizeSelf()
	}
	benchVecResult = v
}
