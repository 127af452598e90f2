package xmlmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-xmlmap"
	"github.com/KimNorgaard/go-xmlmap/internal/testutil"
)

func TestMarshalYAML_KeepsOrder(t *testing.T) {
	v := mapping("root", mapping(
		"z", xmlmap.Scalar("1"),
		"a", xmlmap.List{xmlmap.Scalar("x"), xmlmap.Scalar("")},
		"m", &xmlmap.Attributed{Value: xmlmap.Scalar("t"), Attributes: attrs("k", "v")},
	))

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `root:
    z: "1"
    a:
        - x
        - ""
    m:
        value: t
        '@attributes':
            k: v
`, string(out))
}

func TestMarshalYAML_NilEntries(t *testing.T) {
	out, err := yaml.Marshal(mapping(
		"a", (*xmlmap.Attributed)(nil),
		"b", (*xmlmap.Mapping)(nil),
	))
	require.NoError(t, err)
	require.Equal(t, "a: \"\"\nb: {}\n", string(out))
}

func TestFromYAML(t *testing.T) {
	v, err := xmlmap.FromYAML([]byte(`
root:
  b: 2
  a: [x, y]
  c:
    value: text
    "@attributes": {k: v, j: w}
  d:
    value: only
  e: ~
`))
	require.NoError(t, err)

	requireValue(t, mapping("root", mapping(
		"b", xmlmap.Scalar("2"),
		"a", xmlmap.List{xmlmap.Scalar("x"), xmlmap.Scalar("y")},
		"c", &xmlmap.Attributed{Value: xmlmap.Scalar("text"), Attributes: attrs("k", "v", "j", "w")},
		"d", mapping("value", xmlmap.Scalar("only")),
		"e", xmlmap.Scalar(""),
	)), v)
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := xmlmap.FromYAML([]byte("a: [unclosed"))
	require.Error(t, err)

	v, err := xmlmap.FromYAML(nil)
	require.NoError(t, err)
	requireValue(t, xmlmap.NewMapping(), v)
}

func TestYAML_RoundTrip(t *testing.T) {
	for _, name := range testutil.Fixtures(".xml") {
		t.Run(name, func(t *testing.T) {
			m, err := xmlmap.Unmarshal(testutil.ReadTestData(t, name))
			require.NoError(t, err)

			out, err := yaml.Marshal(m)
			require.NoError(t, err)

			back, err := xmlmap.FromYAML(out)
			require.NoError(t, err)
			requireValue(t, m, back)
		})
	}
}

func TestFromAny(t *testing.T) {
	v := xmlmap.FromAny(map[string]any{
		"b":  1.5,
		"a":  true,
		"10": "ten",
		"2":  nil,
		"l":  []string{"p", "q"},
		"s":  map[string]string{"y": "1", "x": "2"},
		"v":  xmlmap.Scalar("kept"),
	})

	requireValue(t, mapping(
		"2", xmlmap.Scalar(""),
		"10", xmlmap.Scalar("ten"),
		"a", xmlmap.Scalar("true"),
		"b", xmlmap.Scalar("1.5"),
		"l", xmlmap.List{xmlmap.Scalar("p"), xmlmap.Scalar("q")},
		"s", mapping("x", xmlmap.Scalar("2"), "y", xmlmap.Scalar("1")),
		"v", xmlmap.Scalar("kept"),
	), v)
}
