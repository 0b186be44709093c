package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/heatpath/field"
	"github.com/katalvlaran/heatpath/search"
)

//----------------------------------------------------------------------------//
// Field: validation
//----------------------------------------------------------------------------//

// TestField_NilField verifies that a nil field is rejected before anything
// else is inspected.
func TestField_NilField(t *testing.T) {
	_, err := search.Field(nil, field.Pos2{}, field.Pos2{})
	assert.ErrorIs(t, err, search.ErrNilField)
}

// TestField_UnknownAlgorithm ensures out-of-range Algo values are rejected.
func TestField_UnknownAlgorithm(t *testing.T) {
	f := mustField(t, [][]uint8{{0, 0}})

	_, err := search.Field(f, field.Pos2{}, field.Pos2{X: 1}, search.WithAlgorithm(search.Algo(99)))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestField_EndpointBounds checks both out-of-bounds sentinels.
func TestField_EndpointBounds(t *testing.T) {
	f := mustField(t, [][]uint8{{0, 0}, {0, 0}})

	_, err := search.Field(f, field.Pos2{X: -1}, field.Pos2{})
	assert.ErrorIs(t, err, search.ErrStartOutOfBounds)

	_, err = search.Field(f, field.Pos2{}, field.Pos2{X: 2, Y: 0})
	assert.ErrorIs(t, err, search.ErrEndOutOfBounds)
}

// TestField_WallEndpoints verifies that endpoints on impassable cells yield
// "no path", not a configuration error.
func TestField_WallEndpoints(t *testing.T) {
	f := mustField(t, [][]uint8{{255, 0, 255}})

	res, err := search.Field(f, field.Pos2{}, field.Pos2{X: 1})
	assert.NoError(t, err, "wall start must not be a configuration error")
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)

	res, err = search.Field(f, field.Pos2{X: 1}, field.Pos2{X: 2})
	assert.NoError(t, err, "wall end must not be a configuration error")
	assert.False(t, res.Found)
}

//----------------------------------------------------------------------------//
// Field: routing behavior
//----------------------------------------------------------------------------//

// TestField_StartEqualsEnd pins the degenerate route: a single position
// whose cost is the start cell itself.
func TestField_StartEqualsEnd(t *testing.T) {
	f := mustField(t, [][]uint8{{7}})

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar, search.Fringe} {
		res, err := search.Field(f, field.Pos2{}, field.Pos2{}, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		assert.True(t, res.Found, "%v: route must exist", algo)
		assert.Equal(t, []field.Pos2{{X: 0, Y: 0}}, res.Path, "%v", algo)
		assert.Equal(t, int64(7), res.Cost, "%v: cost is the start cell", algo)
	}
}

// TestField_WallOpening routes a 3×3 field whose middle column is walled
// except one opening at the top row. Every algorithm must thread the
// opening and return the zero total of the cells it crosses.
func TestField_WallOpening(t *testing.T) {
	f := mustField(t, [][]uint8{
		{0, 0, 0},
		{0, 255, 0},
		{0, 255, 0},
	})
	start, end := field.Pos2{X: 0, Y: 1}, field.Pos2{X: 2, Y: 1}

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar, search.Fringe} {
		res, err := search.Field(f, start, end, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		assert.True(t, res.Found, "%v: route must exist through the opening", algo)
		assert.Equal(t, int64(0), res.Cost, "%v", algo)
		assert.Equal(t, res.Cost, sumPath2(f, res.Path), "%v: cost additivity", algo)
		assert.Equal(t, start, res.Path[0], "%v", algo)
		assert.Equal(t, end, res.Path[len(res.Path)-1], "%v", algo)
		assert.Contains(t, res.Path, field.Pos2{X: 1, Y: 0}, "%v: the only crossing is the opening", algo)
	}
}

// TestField_NoPath verifies a sealed wall separating start from end makes
// all three algorithms report "no path" without error.
func TestField_NoPath(t *testing.T) {
	f := mustField(t, [][]uint8{
		{0, 255, 0},
		{0, 255, 0},
		{0, 255, 0},
	})

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar, search.Fringe} {
		res, err := search.Field(f, field.Pos2{X: 0, Y: 1}, field.Pos2{X: 2, Y: 1}, search.WithAlgorithm(algo))
		assert.NoError(t, err, "%v", algo)
		assert.False(t, res.Found, "%v", algo)
		assert.Empty(t, res.Path, "%v", algo)
		assert.Zero(t, res.Cost, "%v", algo)
	}
}

// TestField_Idempotent reruns one search and expects bit-identical output:
// no hidden randomness in exploration or tie-breaking.
func TestField_Idempotent(t *testing.T) {
	f := mustField(t, [][]uint8{
		{1, 2, 3},
		{4, 1, 2},
		{1, 1, 1},
	})

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar, search.Fringe} {
		first, err := search.Field(f, field.Pos2{}, field.Pos2{X: 2, Y: 2}, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		second, err := search.Field(f, field.Pos2{}, field.Pos2{X: 2, Y: 2}, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		assert.Equal(t, first, second, "%v: identical inputs must yield identical results", algo)
	}
}

//----------------------------------------------------------------------------//
// Volume: validation
//----------------------------------------------------------------------------//

// TestVolume_NilVolume verifies the nil-input sentinel.
func TestVolume_NilVolume(t *testing.T) {
	_, err := search.Volume(nil)
	assert.ErrorIs(t, err, search.ErrNilVolume)
}

// TestVolume_FringeUnsupported ensures a fringe request on a volume fails
// up front instead of silently running another algorithm.
func TestVolume_FringeUnsupported(t *testing.T) {
	v := mustVolume(t, uniformLayers(3, 3, 3, 0))

	_, err := search.Volume(v, search.WithAlgorithm(search.Fringe))
	assert.ErrorIs(t, err, search.ErrFringeUnsupported)
}

// TestVolume_OptionValidation covers the remaining configuration sentinels.
func TestVolume_OptionValidation(t *testing.T) {
	v := mustVolume(t, uniformLayers(2, 2, 2, 0))

	_, err := search.Volume(v, search.WithAlgorithm(search.Algo(42)))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Volume(v, search.WithReach(-1))
	assert.ErrorIs(t, err, search.ErrBadReach)

	_, err = search.Volume(v, search.WithAxis(field.Axis(9)))
	assert.ErrorIs(t, err, search.ErrBadAxis)

	_, err = search.Volume(v, search.WithStarts([]field.Pos3{}...))
	assert.ErrorIs(t, err, search.ErrEmptyEndpointSet)

	_, err = search.Volume(v, search.WithEnds([]field.Pos3{}...))
	assert.ErrorIs(t, err, search.ErrEmptyEndpointSet)

	_, err = search.Volume(v, search.WithStarts(field.Pos3{X: 5}))
	assert.ErrorIs(t, err, search.ErrStartOutOfBounds)

	_, err = search.Volume(v, search.WithEnds(field.Pos3{Layer: 2}))
	assert.ErrorIs(t, err, search.ErrEndOutOfBounds)
}

//----------------------------------------------------------------------------//
// Volume: routing behavior
//----------------------------------------------------------------------------//

// TestVolume_DefaultEndpoints routes a 3-layer all-zero volume with no
// explicit endpoints: any first-layer entry and last-layer exit is allowed,
// so the result is a zero-cost path visiting one position per layer.
func TestVolume_DefaultEndpoints(t *testing.T) {
	v := mustVolume(t, uniformLayers(3, 3, 3, 0))

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar} {
		res, err := search.Volume(v, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		assert.True(t, res.Found, "%v", algo)
		assert.Len(t, res.Path, 3, "%v: one position per layer", algo)
		assert.Equal(t, int64(0), res.Cost, "%v", algo)
		checkForcedAdvance(t, res.Path, field.AxisLayer, 1)
	}
}

// TestVolume_CheapestSeedWins pins a hand-checked optimum: the route must
// start at the cheap corner and cross to the cheap cell of the next layer.
func TestVolume_CheapestSeedWins(t *testing.T) {
	v := mustVolume(t, [][][]uint8{
		{{1, 5}, {5, 5}},
		{{9, 2}, {9, 9}},
	})

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar} {
		res, err := search.Volume(v, search.WithAlgorithm(algo))
		assert.NoError(t, err)
		assert.True(t, res.Found, "%v", algo)
		assert.Equal(t, int64(3), res.Cost, "%v: 1 at entry plus 2 at exit", algo)
		assert.Equal(t, []field.Pos3{{X: 0, Y: 0, Layer: 0}, {X: 1, Y: 0, Layer: 1}}, res.Path, "%v", algo)
	}
}

// TestVolume_ReachZero pins the in-slice position: only straight-down
// columns are traversable.
func TestVolume_ReachZero(t *testing.T) {
	v := mustVolume(t, [][][]uint8{
		{{1, 1}},
		{{3, 9}},
	})

	res, err := search.Volume(v, search.WithReach(0))
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []field.Pos3{{X: 0, Y: 0, Layer: 0}, {X: 0, Y: 0, Layer: 1}}, res.Path)
	checkForcedAdvance(t, res.Path, field.AxisLayer, 0)
}

// TestVolume_AxisX forces the column dimension: endpoints default to the
// first and last column, layer drift is free within reach.
func TestVolume_AxisX(t *testing.T) {
	v := mustVolume(t, [][][]uint8{
		{{1, 4, 7}},
		{{2, 5, 8}},
	})

	res, err := search.Volume(v, search.WithAxis(field.AxisX))
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(12), res.Cost)
	assert.Equal(t, []field.Pos3{{X: 0, Y: 0, Layer: 0}, {X: 1, Y: 0, Layer: 0}, {X: 2, Y: 0, Layer: 0}}, res.Path)
	checkForcedAdvance(t, res.Path, field.AxisX, 1)
}

// TestVolume_ExplicitEndpoints routes between fixed single positions.
func TestVolume_ExplicitEndpoints(t *testing.T) {
	v := mustVolume(t, uniformLayers(3, 3, 3, 1))

	res, err := search.Volume(v,
		search.WithStarts(field.Pos3{X: 0, Y: 0, Layer: 0}),
		search.WithEnds(field.Pos3{X: 2, Y: 2, Layer: 2}),
	)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int64(3), res.Cost, "three unit-cost positions")
	assert.Equal(t, field.Pos3{X: 0, Y: 0, Layer: 0}, res.Path[0])
	assert.Equal(t, field.Pos3{X: 2, Y: 2, Layer: 2}, res.Path[len(res.Path)-1])
	assert.Equal(t, res.Cost, sumPath3(v, res.Path), "cost additivity")
	checkForcedAdvance(t, res.Path, field.AxisLayer, 1)
}

// TestVolume_SingleLayer degenerates to picking the cheapest entry: start
// and end sets coincide on the only slice.
func TestVolume_SingleLayer(t *testing.T) {
	v := mustVolume(t, [][][]uint8{
		{{6, 3}, {8, 9}},
	})

	res, err := search.Volume(v)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []field.Pos3{{X: 1, Y: 0, Layer: 0}}, res.Path)
	assert.Equal(t, int64(3), res.Cost)
}

// TestVolume_WallEndpointsDropped keeps walls out of the endpoint sets
// without failing: the remaining cells still route.
func TestVolume_WallEndpointsDropped(t *testing.T) {
	v := mustVolume(t, [][][]uint8{
		{{255, 1}},
		{{1, 255}},
	})

	res, err := search.Volume(v)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []field.Pos3{{X: 1, Y: 0, Layer: 0}, {X: 0, Y: 0, Layer: 1}}, res.Path)
	assert.Equal(t, int64(2), res.Cost)
}

// TestVolume_NoPath seals an entire middle layer: no step can cross it, so
// both algorithms report "no path" without error.
func TestVolume_NoPath(t *testing.T) {
	layers := uniformLayers(3, 2, 2, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			layers[1][y][x] = 255
		}
	}
	v := mustVolume(t, layers)

	for _, algo := range []search.Algo{search.Dijkstra, search.AStar} {
		res, err := search.Volume(v, search.WithAlgorithm(algo))
		assert.NoError(t, err, "%v", algo)
		assert.False(t, res.Found, "%v", algo)
		assert.Empty(t, res.Path, "%v", algo)
	}
}

//----------------------------------------------------------------------------//
// ParseAlgo
//----------------------------------------------------------------------------//

// TestParseAlgo covers the accepted names, the alias, and rejection.
func TestParseAlgo(t *testing.T) {
	for name, want := range map[string]search.Algo{
		"dijkstra": search.Dijkstra,
		"astar":    search.AStar,
		"a*":       search.AStar,
		"fringe":   search.Fringe,
	} {
		got, err := search.ParseAlgo(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := search.ParseAlgo("bfs")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
