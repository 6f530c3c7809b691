package dimacs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edmonds/dimacs"
	"github.com/katalvlaran/edmonds/ggraph"
)

func TestRead_ParsesHeaderAndEdges(t *testing.T) {
	input := "c a triangle\np edge 3 3\ne 1 2\ne 2 3\ne 1 3\n"

	g, err := dimacs.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, []ggraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}, g.Edges())
}

func TestRead_IgnoresBlankLinesAndComments(t *testing.T) {
	input := "\nc leading comment\np edge 2 1\n\nc mid comment\ne 1 2\n"

	g, err := dimacs.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, []ggraph.Edge{{U: 0, V: 1}}, g.Edges())
}

func TestRead_MissingHeader(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader("e 1 2\n"))
	require.ErrorIs(t, err, dimacs.ErrMissingHeader)
}

func TestRead_EmptyInputMissingHeader(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader(""))
	require.ErrorIs(t, err, dimacs.ErrMissingHeader)
}

func TestRead_DuplicateHeader(t *testing.T) {
	input := "p edge 2 1\np edge 2 1\ne 1 2\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrDuplicateHeader)
}

func TestRead_BadHeaderFieldCount(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader("p edge 2\n"))
	require.ErrorIs(t, err, dimacs.ErrBadHeader)
}

func TestRead_BadHeaderInteger(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader("p edge two 1\n"))
	require.ErrorIs(t, err, dimacs.ErrBadInteger)
}

func TestRead_TruncatedEdgeLine(t *testing.T) {
	input := "p edge 2 1\ne 1\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrTruncatedEdgeLine)
}

func TestRead_BadEdgeInteger(t *testing.T) {
	input := "p edge 2 1\ne one 2\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrBadInteger)
}

func TestRead_ZeroVertexID(t *testing.T) {
	input := "p edge 2 1\ne 0 1\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrZeroVertexID)
}

func TestRead_NegativeVertexID(t *testing.T) {
	input := "p edge 2 1\ne -1 2\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrZeroVertexID)
}

func TestRead_VertexOutOfRange(t *testing.T) {
	input := "p edge 2 1\ne 1 5\n"
	_, err := dimacs.Read(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrVertexOutOfRange)
}

func TestReadWithWarnings_CapturesUnrecognizedLines(t *testing.T) {
	input := "p edge 1 0\nx this is garbage\n"
	var warnings bytes.Buffer

	g, err := dimacs.ReadWithWarnings(strings.NewReader(input), &warnings)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumNodes())
	require.Contains(t, warnings.String(), "line 2")
	require.Contains(t, warnings.String(), "garbage")
}

func TestRead_DiscardsWarningsByDefault(t *testing.T) {
	input := "p edge 1 0\nx garbage\n"
	g, err := dimacs.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, g.NumNodes())
}

func TestWrite_EmitsOneBasedHeaderAndEdges(t *testing.T) {
	var buf bytes.Buffer
	edges := []ggraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}

	require.NoError(t, dimacs.Write(&buf, 3, edges))
	require.Equal(t, "p edge 3 2\ne 1 2\ne 2 3\n", buf.String())
}

func TestWriteGraph_DelegatesToWrite(t *testing.T) {
	g := ggraph.New(2)
	g.AddEdge(0, 1)

	var buf bytes.Buffer
	require.NoError(t, dimacs.WriteGraph(&buf, g))
	require.Equal(t, "p edge 2 1\ne 1 2\n", buf.String())
}

func TestRoundTrip_ReadThenWriteThenReadAgain(t *testing.T) {
	input := "p edge 4 3\ne 1 2\ne 2 3\ne 3 4\n"

	g, err := dimacs.Read(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.WriteGraph(&buf, g))

	g2, err := dimacs.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), g2.NumNodes())
	require.Equal(t, g.Edges(), g2.Edges())
}

func TestErrors_AreDistinctSentinels(t *testing.T) {
	all := []error{
		dimacs.ErrMissingHeader, dimacs.ErrDuplicateHeader, dimacs.ErrBadHeader,
		dimacs.ErrTruncatedEdgeLine, dimacs.ErrBadInteger, dimacs.ErrZeroVertexID,
		dimacs.ErrVertexOutOfRange,
	}
	for i, e1 := range all {
		for j, e2 := range all {
			if i == j {
				continue
			}
			require.False(t, errors.Is(e1, e2), "%v should not equal %v", e1, e2)
		}
	}
}
