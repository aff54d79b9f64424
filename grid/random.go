package grid

import (
	"math/rand"
	"time"

	"github.com/pdrpinto/tilepath"
)

// RandomConfig describes a clustered random obstacle layout.
type RandomConfig struct {
	Width, Height int
	// Clusters is the number of random walks; Steps the length of each.
	Clusters, Steps int
	// Density is the chance a visited cell becomes a wall.
	Density float64
	// Seed makes layouts reproducible. Zero picks a time-based seed.
	Seed int64
	// Keep lists cells that must stay walkable, such as start and goal.
	Keep []tilepath.Point
}

// Random builds walls by random walks, so obstacles clump the way rooms and
// rubble do rather than scattering as noise.
func Random(cfg RandomConfig) *Tiles {
	t := New(cfg.Width, cfg.Height)
	if t.width == 0 || t.height == 0 {
		return t
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < cfg.Clusters; c++ {
		p := tilepath.Point{X: r.Intn(t.width), Y: r.Intn(t.height)}
		for s := 0; s < cfg.Steps; s++ {
			if r.Float64() < cfg.Density {
				t.Block(p)
			}
			d := dirs[r.Intn(4)]
			if np := p.Add(d[0], d[1]); t.contains(np.X, np.Y) {
				p = np
			}
		}
	}
	for _, p := range cfg.Keep {
		t.Unblock(p)
	}
	return t
}
