package balltree

import "testing"

func benchBuild(b *testing.B, n, dims int) {
	b.Helper()
	points := randomPoints(n, dims, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(points); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_100x2(b *testing.B)    { benchBuild(b, 100, 2) }
func BenchmarkBuild_1000x2(b *testing.B)   { benchBuild(b, 1000, 2) }
func BenchmarkBuild_1000x100(b *testing.B) { benchBuild(b, 1000, 100) }

func BenchmarkDump_1000(b *testing.B) {
	root, err := Build(randomPoints(1000, 3, 42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range Dump(root, 0) {
		}
	}
}
