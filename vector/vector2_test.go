package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yuni-sa/vector2-go/vector"
)

func TestZeroValue(t *testing.T) {
	var vi vector.Vector2i
	require.Equal(t, 0, vi.X)
	require.Equal(t, 0, vi.Y)

	var vf vector.Vector2f
	require.Equal(t, float32(0), vf.X)
	require.Equal(t, float32(0), vf.Y)
	require.True(t, vf.IsZero())
}

func TestConstructors(t *testing.T) {
	v := vector.New(2, 4)
	require.Equal(t, vector.Vector2i{X: 2, Y: 4}, v)

	f := vector.New[float32](-50, 0)
	require.Equal(t, float32(-50), f.X)
	require.Equal(t, float32(0), f.Y)

	require.Equal(t, vector.Vector2i{X: 2, Y: 2}, vector.Splat(2))
	require.Equal(t, vector.Vector2i{X: 2, Y: 2}, vector.Splat(int(float32(2.0))))
}

func TestCopyIsIndependent(t *testing.T) {
	v := vector.New(-4, 60)
	v2 := v
	v2.X = 7
	require.Equal(t, -4, v.X)
	require.Equal(t, 60, v2.Y)
}

func TestConvert(t *testing.T) {
	f := vector.New[float32](-3500, 9371)
	i := vector.Convert[int](f)
	require.Equal(t, vector.New(-3500, 9371), i)

	// truncation toward zero
	require.Equal(t, vector.New(2, -2), vector.Convert[int](vector.New(2.9, -2.9)))

	d := vector.Convert[float64](vector.New[int8](-3, 4))
	require.Equal(t, vector.New(-3.0, 4.0), d)
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, 5.0, vector.New(4, -3).Magnitude())
	require.Equal(t, 50.0, vector.New(-5, -5).SquaredMagnitude())
	require.Equal(t, 0.0, vector.Vector2d{}.Magnitude())
}

func TestMagnitudeMatchesSquaredMagnitude(t *testing.T) {
	cases := []vector.Vector2d{
		{X: 0, Y: 0},
		{X: 3, Y: 4},
		{X: -2.5, Y: 7.25},
		{X: 1e-3, Y: -1e3},
		{X: 123456.789, Y: -0.001},
	}
	for _, v := range cases {
		m := v.Magnitude()
		require.InDelta(t, v.SquaredMagnitude(), m*m, 1e-9*math.Max(1, v.SquaredMagnitude()), "vector %s", v)
	}
}

func TestAt(t *testing.T) {
	v := vector.New(3, 4)

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 3, x)

	y, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 4, y)

	for _, i := range []int{2, 5, -1} {
		_, err := v.At(i)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
	}
}

func TestSet(t *testing.T) {
	var v vector.Vector2i
	v.Set(8, -1)
	require.Equal(t, vector.New(8, -1), v)

	var c uint8 = 2
	var f float32 = 2.58
	vector.SetFrom(&v, c, f)
	require.Equal(t, vector.New(2, 2), v)
}

func TestNormalize(t *testing.T) {
	vi := vector.New(-5, -6)
	require.NoError(t, vi.Normalize())
	require.Equal(t, vector.New(0, 0), vi)

	vf := vector.New[float32](-2, -2)
	require.NoError(t, vf.Normalize())
	require.InDelta(t, -0.7071, vf.X, 1e-4)
	require.InDelta(t, -0.7071, vf.Y, 1e-4)
}

func TestNormalizeZeroVector(t *testing.T) {
	v := vector.Vector2d{}
	err := v.Normalize()
	require.ErrorIs(t, err, vector.ErrZeroMagnitude)
	require.Equal(t, vector.Vector2d{}, v)

	_, err = vector.Vector2i{}.Normalized()
	require.ErrorIs(t, err, vector.ErrZeroMagnitude)
}

func TestNormalized(t *testing.T) {
	src := vector.New[float32](2, 2)
	n, err := src.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 0.7071, n.X, 1e-4)
	require.InDelta(t, 0.7071, n.Y, 1e-4)
	require.Equal(t, vector.New[float32](2, 2), src)

	n, err = vector.New[float32](-2, -2).Normalized()
	require.NoError(t, err)
	require.Equal(t, vector.New(0, 0), vector.Convert[int](n))
}

func TestNormalizedHasUnitLength(t *testing.T) {
	cases := []vector.Vector2d{
		{X: 3, Y: 4},
		{X: -1e-8, Y: 2e-8},
		{X: 1e8, Y: -3},
		{X: 0, Y: -9},
	}
	for _, v := range cases {
		n, err := v.Normalized()
		require.NoError(t, err)
		require.InDelta(t, 1.0, n.Magnitude(), 1e-12, "vector %s", v)
	}
}

func TestEqual(t *testing.T) {
	require.True(t, vector.New(30, 25).Equal(vector.New(30, 25)))
	require.False(t, vector.New(30, 25).Equal(vector.New(3, 2)))

	vi := vector.New(30, 25)
	vf := vector.New[float32](30, 25)
	require.True(t, vector.Equal(vi, vf))
	require.True(t, vector.Equal(vf, vi))

	require.True(t, vector.NotEqual(vi, vector.New[float32](31, 22)))
	require.False(t, vector.NotEqual(vi, vector.New(30, 25)))
}

func TestEqualComparesBothComponents(t *testing.T) {
	// x and y must each match their own counterpart
	require.False(t, vector.Equal(vector.New(1, 2), vector.New[float64](1, 1)))
	require.False(t, vector.Equal(vector.New(1, 1), vector.New[float64](1, 2)))
	require.False(t, vector.Equal(vector.New(2, 1), vector.New[float64](1, 1)))
}

func TestEqualIsSymmetricAcrossTypes(t *testing.T) {
	big := int64(1<<53 + 1)
	rounded := float64(big)

	require.False(t, vector.Equal(vector.New(big, 0), vector.New(rounded, 0)))
	require.False(t, vector.Equal(vector.New(rounded, 0), vector.New(big, 0)))

	require.False(t, vector.Equal(vector.New(30, 25), vector.New(30.5, 25)))
	require.False(t, vector.Equal(vector.New(30.5, 25), vector.New(30, 25)))

	require.False(t, vector.Equal(vector.New[int8](-1, 0), vector.New[uint8](255, 0)))
	require.False(t, vector.Equal(vector.New[uint8](255, 0), vector.New[int8](-1, 0)))

	nan := math.NaN()
	require.False(t, vector.Equal(vector.New(nan, 0), vector.New(nan, 0)))
}

func TestEqualOutOfRangeFloat(t *testing.T) {
	two63 := math.Ldexp(1, 63)
	require.False(t, vector.Equal(vector.New(two63, 0), vector.New[int64](math.MaxInt64, 0)))
	require.False(t, vector.Equal(vector.New[int64](math.MaxInt64, 0), vector.New(two63, 0)))

	two64 := math.Ldexp(1, 64)
	require.False(t, vector.Equal(vector.New(two64, 0), vector.New[uint64](math.MaxUint64, 0)))
	require.False(t, vector.Equal(vector.New[uint64](math.MaxUint64, 0), vector.New(two64, 0)))

	require.True(t, vector.Equal(vector.New(two63, 0), vector.New[uint64](1<<63, 0)))
	require.True(t, vector.Equal(vector.New[int8](-128, 127), vector.New[float32](-128, 127)))
	require.True(t, vector.Equal(vector.New[int64](math.MaxInt64, 0), vector.New[int64](math.MaxInt64, 0)))
}
