package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"hebi/components"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func zeroVarianceMap() *CorridorsMap {
	m := DefaultCorridorsMap()
	m.WallVariance = 0
	return m
}

// assertCovered checks every in-range coordinate has a cell and nothing else does
func assertCovered(t *testing.T, data *components.MapData) {
	t.Helper()
	assert.Len(t, data.Cells, data.Width*data.Height)
	for p := range data.Cells {
		assert.True(t, data.InBounds(p.X, p.Y), "out of range cell %v", p)
	}
}

func assertBorderWalls(t *testing.T, data *components.MapData) {
	t.Helper()
	for x := 0; x < data.Width; x++ {
		for y := 0; y < data.Height; y++ {
			if data.IsBorder(x, y) {
				assert.True(t, data.IsWall(x, y), "border (%d,%d) is not a wall\n%s", x, y, data)
			}
		}
	}
}

func assertTraversable(t *testing.T, data *components.MapData) {
	t.Helper()
	if data.Height <= 2 {
		return
	}
	for x := 1; x < data.Width-1; x++ {
		open := false
		for y := 1; y < data.Height-1; y++ {
			if !data.IsWall(x, y) {
				open = true
				break
			}
		}
		assert.True(t, open, "column %d is fully walled\n%s", x, data)
	}
}

func spawnsFacing(data *components.MapData, facing components.Direction) []components.Point {
	var out []components.Point
	for _, p := range data.Spawns() {
		if data.Cells[p].Facing == facing {
			out = append(out, p)
		}
	}
	return out
}

func TestCorridorsMapDeterministic(t *testing.T) {
	m := DefaultCorridorsMap()
	for seed := uint64(0); seed < 20; seed++ {
		a := m.MapData(newRng(seed))
		b := m.MapData(newRng(seed))
		require.Equal(t, a.Cells, b.Cells, "seed %d", seed)
	}
}

func TestCorridorsMapAdvancesRng(t *testing.T) {
	m := DefaultCorridorsMap()
	rng := newRng(7)
	first := m.MapData(rng)
	second := m.MapData(rng)

	assert.NotEqual(t, first.Cells, second.Cells)
	assert.Equal(t, first.Cells, m.MapData(newRng(7)).Cells)
}

func TestCorridorsMapInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *CorridorsMap)
	}{
		{"defaults", func(m *CorridorsMap) {}},
		{"full variance", func(m *CorridorsMap) { m.WallVariance = 1 }},
		{"zero variance", func(m *CorridorsMap) { m.WallVariance = 0 }},
		{"tall walls block columns", func(m *CorridorsMap) { m.CorridorHeight = 16; m.WallVariance = 0 }},
		{"negative offsets", func(m *CorridorsMap) { m.TopCorridorOffset = -5; m.BottomCorridorOffset = -2 }},
		{"narrow corridors", func(m *CorridorsMap) { m.CorridorWidth = 1 }},
		{"wide map", func(m *CorridorsMap) { m.Width = 80; m.Height = 40; m.CorridorHeight = 25 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultCorridorsMap()
			tt.mutate(m)
			require.NoError(t, m.Validate())

			for seed := uint64(1); seed <= 25; seed++ {
				data := m.MapData(newRng(seed))
				assert.Equal(t, m.Width, data.Width)
				assert.Equal(t, m.Height, data.Height)
				assertCovered(t, data)
				assertBorderWalls(t, data)
				assertTraversable(t, data)
			}
		})
	}
}

func TestCorridorsMapSpawnsWithDefaults(t *testing.T) {
	m := DefaultCorridorsMap()
	for seed := uint64(0); seed < 50; seed++ {
		data := m.MapData(newRng(seed))
		up := spawnsFacing(data, components.Up)
		down := spawnsFacing(data, components.Down)
		require.NotEmpty(t, up, "seed %d\n%s", seed, data)
		require.NotEmpty(t, down, "seed %d\n%s", seed, data)

		for _, p := range up {
			assert.Equal(t, m.Height-3, p.Y)
		}
		for _, p := range down {
			assert.Equal(t, 2, p.Y)
		}
	}
}

func TestCorridorsMapZeroVarianceScenario(t *testing.T) {
	m := zeroVarianceMap()
	data, top, bottom := m.generate(newRng(42))

	assert.True(t, data.IsWall(0, 0))
	assert.True(t, data.IsWall(33, 16))

	down := spawnsFacing(data, components.Down)
	up := spawnsFacing(data, components.Up)
	require.NotEmpty(t, down)
	require.NotEmpty(t, up)
	assert.Equal(t, 2, down[0].Y)
	assert.Equal(t, 14, up[0].Y)

	require.NotEmpty(t, top.heights)
	require.NotEmpty(t, bottom.heights)
	for x, h := range top.heights {
		assert.Equal(t, m.CorridorHeight, h, "top column %d", x)
	}
	for x, h := range bottom.heights {
		assert.Equal(t, m.CorridorHeight, h, "bottom column %d", x)
	}
}

func TestCorridorsMapZeroVarianceLayout(t *testing.T) {
	// Without variance no random draw shapes the walls, so the layout is
	// fixed regardless of seed.
	m := zeroVarianceMap()
	a := m.MapData(newRng(1))
	b := m.MapData(newRng(99))
	assert.Equal(t, a.Cells, b.Cells)

	// Top teeth sit on columns 3 + 4k inside (2, 30): 3, 7, ..., 27
	assert.Equal(t, []int{3, 7, 11, 15, 19, 23, 27}, wallColumns(m, true))
	// Bottom teeth on columns 4k inside (2, 30): 4, 8, ..., 28
	assert.Equal(t, []int{4, 8, 12, 16, 20, 24, 28}, wallColumns(m, false))

	// A top tooth of height 10 covers rows 1..10, with a notch carved at row 11
	assert.True(t, a.IsWall(7, 10))
	assert.False(t, a.IsWall(7, 11))
	assert.Equal(t, components.Spawn(components.Down), a.Cell(8, 2))

	// A bottom tooth covers rows 6..15, notch at row 5
	assert.True(t, a.IsWall(8, 6))
	assert.False(t, a.IsWall(8, 5))
	assert.Equal(t, components.Spawn(components.Up), a.Cell(9, 14))
}

func wallColumns(m *CorridorsMap, top bool) []int {
	_, topHeights, bottomHeights := m.generate(newRng(0))
	heights := bottomHeights
	if top {
		heights = topHeights
	}
	return heights.columns()
}

func TestCorridorsMapBlockedColumnGap(t *testing.T) {
	// Teeth taller than the map wall off their whole column; the generator
	// must still leave exactly one opening per column.
	m := DefaultCorridorsMap()
	m.CorridorHeight = 20
	m.WallVariance = 0

	data := m.MapData(newRng(3))
	assertTraversable(t, data)

	// Columns 3 and 7 carry top teeth and receive no spawn marker
	for _, x := range []int{3, 7} {
		open := 0
		for y := 1; y < data.Height-1; y++ {
			if !data.IsWall(x, y) {
				open++
			}
		}
		assert.Equal(t, 1, open, "column %d\n%s", x, data)
	}

	// Notch rows fall off the grid, but the spawns beside each tooth remain
	assert.Equal(t, components.Spawn(components.Down), data.Cell(4, 2))
	assert.Equal(t, components.Spawn(components.Down), data.Cell(8, 2))
	assert.Equal(t, components.Spawn(components.Up), data.Cell(5, 14))
	assert.Equal(t, components.Spawn(components.Up), data.Cell(9, 14))
	assert.Len(t, spawnsFacing(data, components.Down), 7)
	assert.Len(t, spawnsFacing(data, components.Up), 7)
}

func TestCorridorsMapSpawnsWithTallTeeth(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *CorridorsMap)
	}{
		{"short teeth", func(m *CorridorsMap) { m.CorridorHeight = 1 }},
		{"teeth one row past the edge", func(m *CorridorsMap) { m.CorridorHeight = 16 }},
		{"teeth taller than the map", func(m *CorridorsMap) { m.CorridorHeight = 20 }},
		{"teeth far taller than the map", func(m *CorridorsMap) { m.CorridorHeight = 40 }},
		{"shallow map", func(m *CorridorsMap) { m.Height = 5 }},
		{"narrow map", func(m *CorridorsMap) { m.Width = 12 }},
		{"single-cell corridors", func(m *CorridorsMap) { m.CorridorWidth = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := zeroVarianceMap()
			tt.mutate(m)
			require.NoError(t, m.Validate())
			require.Less(t, m.CorridorWidth, m.Width-4)
			require.Greater(t, m.Height, 4)

			for seed := uint64(1); seed <= 5; seed++ {
				data := m.MapData(newRng(seed))
				assert.NotEmpty(t, spawnsFacing(data, components.Up), "seed %d\n%s", seed, data)
				assert.NotEmpty(t, spawnsFacing(data, components.Down), "seed %d\n%s", seed, data)
				assertBorderWalls(t, data)
				assertTraversable(t, data)
			}
		})
	}
}

func TestCorridorsMapDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		m    CorridorsMap
	}{
		{"single cell", CorridorsMap{Width: 1, Height: 1, CorridorWidth: 1, CorridorHeight: 1}},
		{"two rows", CorridorsMap{Width: 10, Height: 2, CorridorWidth: 1, CorridorHeight: 3, WallVariance: 0.5}},
		{"three rows", CorridorsMap{Width: 12, Height: 3, CorridorWidth: 1, CorridorHeight: 1}},
		{"corridor wider than map", CorridorsMap{Width: 5, Height: 8, CorridorWidth: 9, CorridorHeight: 2, WallVariance: 1}},
		{"unvalidated zero corridor width", CorridorsMap{Width: 10, Height: 10, CorridorWidth: 0, CorridorHeight: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data *components.MapData
			require.NotPanics(t, func() { data = tt.m.MapData(newRng(5)) })
			assertCovered(t, data)
			assertBorderWalls(t, data)
			assertTraversable(t, data)
		})
	}
}

func TestCorridorsMapValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *CorridorsMap)
		wantErr bool
	}{
		{"defaults", func(m *CorridorsMap) {}, false},
		{"zero width", func(m *CorridorsMap) { m.Width = 0 }, true},
		{"zero corridor width", func(m *CorridorsMap) { m.CorridorWidth = 0 }, true},
		{"zero corridor height", func(m *CorridorsMap) { m.CorridorHeight = 0 }, true},
		{"negative variance", func(m *CorridorsMap) { m.WallVariance = -0.1 }, true},
		{"variance above one", func(m *CorridorsMap) { m.WallVariance = 1.5 }, true},
		{"corridor wider than map is allowed", func(m *CorridorsMap) { m.CorridorWidth = 50 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultCorridorsMap()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameters)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
