package sim

// Rand is the random source used by the spawner and respawn placement.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
