package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebi/components"
)

// reachable counts the open cells 4-connected to start
func reachable(data *components.MapData, start components.Point) int {
	seen := map[components.Point]bool{start: true}
	queue := []components.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []components.Direction{components.Up, components.Down, components.Left, components.Right} {
			dx, dy := d.Delta()
			n := components.Point{X: p.X + dx, Y: p.Y + dy}
			if seen[n] || data.IsWall(n.X, n.Y) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func TestCavesMap(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		c := DefaultCavesMap()
		assert.Equal(t, c.MapData(newRng(3)).Cells, c.MapData(newRng(3)).Cells)
	})

	t.Run("single connected cave", func(t *testing.T) {
		c := DefaultCavesMap()
		for seed := uint64(1); seed <= 20; seed++ {
			data := c.MapData(newRng(seed))

			assertCovered(t, data)
			assertBorderWalls(t, data)

			spawns := data.Spawns()
			require.Len(t, spawns, 1, "seed %d\n%s", seed, data)
			assert.Equal(t, components.Spawn(components.Up), data.Cell(spawns[0].X, spawns[0].Y))

			open := data.Width*data.Height - data.Count(components.CellWall)
			assert.Equal(t, open, reachable(data, spawns[0]), "seed %d\n%s", seed, data)
		}
	})

	t.Run("open field spawns in the centre", func(t *testing.T) {
		c := DefaultCavesMap()
		c.WallChance = 0
		data := c.MapData(newRng(1))
		assert.Equal(t, []components.Point{{X: 14, Y: 14}}, data.Spawns())
	})

	t.Run("solid rock opens the centre", func(t *testing.T) {
		c := DefaultCavesMap()
		c.WallChance = 1
		data := c.MapData(newRng(1))
		assert.Equal(t, []components.Point{{X: 14, Y: 14}}, data.Spawns())
		assert.Equal(t, 29*29-1, data.Count(components.CellWall))
	})
}

func TestCavesMapWithoutInterior(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"empty", 0, 0},
		{"negative width", -1, 5},
		{"negative height", 7, -3},
		{"two by two", 2, 2},
		{"single row", 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CavesMap{Width: tt.width, Height: tt.height, WallChance: 0.45, Iterations: 4}
			var data *components.MapData
			require.NotPanics(t, func() { data = c.MapData(newRng(1)) })
			assert.Len(t, data.Cells, max(tt.width, 0)*max(tt.height, 0))
			assert.Equal(t, len(data.Cells), data.Count(components.CellWall))
			assert.Empty(t, data.Spawns())
		})
	}
}

func TestCavesMapValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CavesMap)
		valid  bool
	}{
		{"defaults", func(c *CavesMap) {}, true},
		{"no interior", func(c *CavesMap) { c.Height = 2 }, false},
		{"negative chance", func(c *CavesMap) { c.WallChance = -0.1 }, false},
		{"chance above one", func(c *CavesMap) { c.WallChance = 1.5 }, false},
		{"negative iterations", func(c *CavesMap) { c.Iterations = -1 }, false},
		{"no smoothing", func(c *CavesMap) { c.Iterations = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCavesMap()
			tt.modify(c)
			err := c.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParameters)
			}
		})
	}
}
