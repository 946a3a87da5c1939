package vector_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yuni-sa/vector2-go/vector"
)

func TestString(t *testing.T) {
	require.Equal(t, "(2.57, -34.9)", vector.New[float32](2.57, -34.9).String())
	require.Equal(t, "(2, 5)", vector.New(2, 5).String())
	require.Equal(t, "(0, -1)", vector.Down[int8]().String())
	require.Equal(t, "(255, 7)", vector.New[uint8](255, 7).String())
	require.Equal(t, "(2, 5)", fmt.Sprint(vector.New(2, 5)))
}

func TestParse(t *testing.T) {
	v, err := vector.Parse[int]("2 5")
	require.NoError(t, err)
	require.Equal(t, vector.New(2, 5), v)

	f, err := vector.Parse[float64]("  -1.5e2\t+3.25 ")
	require.NoError(t, err)
	require.Equal(t, vector.New(-150.0, 3.25), f)

	u, err := vector.Parse[uint16]("65535 0")
	require.NoError(t, err)
	require.Equal(t, vector.New[uint16](65535, 0), u)

	u, err = vector.Parse[uint16]("+5 3")
	require.NoError(t, err)
	require.Equal(t, vector.New[uint16](5, 3), u)

	i, err := vector.Parse[int8]("+5 -3")
	require.NoError(t, err)
	require.Equal(t, vector.New[int8](5, -3), i)
}

func TestParseFailure(t *testing.T) {
	bad := []string{
		"",
		"2",
		"2 5 7",
		"2.5 3",
		"x 3",
		"1 2,",
	}
	for _, s := range bad {
		_, err := vector.Parse[int](s)
		require.ErrorIs(t, err, vector.ErrParse, "input %q", s)
	}

	_, err := vector.Parse[int8]("128 0")
	require.ErrorIs(t, err, vector.ErrParse)

	_, err = vector.Parse[uint8]("-1 0")
	require.ErrorIs(t, err, vector.ErrParse)

	_, err = vector.Parse[uint8]("++1 0")
	require.ErrorIs(t, err, vector.ErrParse)
}

func TestScan(t *testing.T) {
	var v vector.Vector2i
	_, err := fmt.Sscan("2 5", &v)
	require.NoError(t, err)
	require.Equal(t, vector.New(2, 5), v)

	// consecutive vectors from one stream
	r := strings.NewReader("1 2\n-3 4.5")
	var a vector.Vector2i
	var b vector.Vector2d
	_, err = fmt.Fscan(r, &a, &b)
	require.NoError(t, err)
	require.Equal(t, vector.New(1, 2), a)
	require.Equal(t, vector.New(-3.0, 4.5), b)
}

func TestScanFailureLeavesVectorUnchanged(t *testing.T) {
	v := vector.New(7, 8)
	_, err := fmt.Sscan("2 nope", &v)
	require.Error(t, err)
	require.Equal(t, vector.New(7, 8), v)
}

func TestTextRoundTrip(t *testing.T) {
	v := vector.New[float32](2.57, -34.9)
	text, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "(2.57, -34.9)", string(text))

	var got vector.Vector2f
	require.NoError(t, got.UnmarshalText(text))
	require.Equal(t, v, got)

	require.NoError(t, got.UnmarshalText([]byte("1 2")))
	require.Equal(t, vector.New[float32](1, 2), got)

	require.ErrorIs(t, got.UnmarshalText([]byte("(1; 2)")), vector.ErrParse)
	require.Equal(t, vector.New[float32](1, 2), got)
}

func TestJSONUsesTextForm(t *testing.T) {
	type waypoint struct {
		Name string          `json:"name"`
		At   vector.Vector2i `json:"at"`
	}

	data, err := json.Marshal(waypoint{Name: "base", At: vector.New(2, 5)})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"base","at":"(2, 5)"}`, string(data))

	var w waypoint
	require.NoError(t, json.Unmarshal(data, &w))
	require.Equal(t, vector.New(2, 5), w.At)
}
