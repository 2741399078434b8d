package zone

import (
	"math"
	"math/rand/v2"

	"github.com/rotisserie/eris"
)

// Clusterer groups feature vectors into k clusters and returns one label
// per input vector. Implementations must be deterministic for a fixed seed.
type Clusterer interface {
	Cluster(features [][]float64, k int) ([]int, error)
}

// KMeans is a seeded Lloyd's-iteration clusterer sized for small inputs
// (tens of rows, a handful of dimensions).
type KMeans struct {
	Seed    uint64
	MaxIter int
}

// NewKMeans returns a KMeans with the given seed and a bounded iteration
// count.
func NewKMeans(seed uint64) *KMeans {
	return &KMeans{Seed: seed, MaxIter: 100}
}

// Cluster assigns each feature vector to one of k clusters. It fails when
// there are fewer distinct points than clusters, leaving the caller to
// fall back to quantile binning.
func (km *KMeans) Cluster(features [][]float64, k int) ([]int, error) {
	if k <= 0 {
		return nil, eris.Errorf("zone: cluster count must be positive, got %d", k)
	}
	if len(features) < k {
		return nil, eris.Errorf("zone: %d points cannot form %d clusters", len(features), k)
	}

	distinct := distinctPoints(features)
	if len(distinct) < k {
		return nil, eris.Errorf("zone: only %d distinct points for %d clusters", len(distinct), k)
	}

	// Seed centroids from distinct points so no cluster starts empty.
	rng := rand.New(rand.NewPCG(km.Seed, km.Seed))
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(distinct))[:k] {
		centroids[i] = append([]float64(nil), distinct[idx]...)
	}

	labels := make([]int, len(features))
	maxIter := km.MaxIter
	if maxIter <= 0 {
		maxIter = 100
	}

	for iter := 0; iter < maxIter; iter++ {
		moved := false
		for i, f := range features {
			best := nearestCentroid(f, centroids)
			if labels[i] != best {
				labels[i] = best
				moved = true
			}
		}
		if iter > 0 && !moved {
			break
		}
		recomputeCentroids(features, labels, centroids)
	}

	return labels, nil
}

func distinctPoints(features [][]float64) [][]float64 {
	var out [][]float64
	for _, f := range features {
		dup := false
		for _, seen := range out {
			if pointsEqual(f, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

func pointsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nearestCentroid(f []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		d := sqDist(f, centroid)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func recomputeCentroids(features [][]float64, labels []int, centroids [][]float64) {
	dims := len(centroids[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i := range sums {
		sums[i] = make([]float64, dims)
	}

	for i, f := range features {
		c := labels[i]
		counts[c]++
		for d := range f {
			sums[c][d] += f[d]
		}
	}

	for c := range centroids {
		if counts[c] == 0 {
			// Empty cluster keeps its previous centroid.
			continue
		}
		for d := 0; d < dims; d++ {
			centroids[c][d] = sums[c][d] / float64(counts[c])
		}
	}
}
