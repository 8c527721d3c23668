package report_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/report"
)

func sample() report.Result {
	return report.Result{
		File:      "g.gr",
		Algorithm: "greedy",
		Vertices:  4,
		Edges:     5,
		Cut:       []core.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 3}},
		Elapsed:   1500 * time.Millisecond,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	rw, err := report.NewWriter(&buf, "text")
	require.NoError(t, err)
	require.NoError(t, rw.Write(sample()))
	require.NoError(t, rw.Close())
	require.Equal(t,
		"Maximum cut for 'g.gr':\n\n[(0, 1) (1, 2) (0, 3)]\n\n3 of 5 edges (greedy)\n",
		buf.String())
}

func TestWriteBenchAndTimeout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteBench(&buf, sample()))
	require.NoError(t, report.WriteTimeout(&buf, "h.rud"))
	require.NoError(t, report.WriteParsed(&buf, "h.rud"))
	require.Equal(t, "g.gr, 4, 5, 3, 1500\nh.rud, timeout\nparsed 'h.rud'\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, sample()))
	require.Contains(t, buf.String(), "cut: [[0, 1], [1, 2], [0, 3]]")

	var got struct {
		File      string   `yaml:"file"`
		CutSize   int      `yaml:"cut_size"`
		ElapsedMS int64    `yaml:"elapsed_ms"`
		Cut       [][2]int `yaml:"cut"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "g.gr", got.File)
	require.Equal(t, 3, got.CutSize)
	require.Equal(t, int64(1500), got.ElapsedMS)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 3}}, got.Cut)
}

func TestWriteYAML_EmptyCut(t *testing.T) {
	r := sample()
	r.Cut = nil
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, r))
	require.True(t, strings.Contains(buf.String(), "cut: []"), buf.String())
}

// TestWriter_YAMLStream separates several results into documents.
func TestWriter_YAMLStream(t *testing.T) {
	var buf bytes.Buffer
	rw, err := report.NewWriter(&buf, "yaml")
	require.NoError(t, err)
	first, second := sample(), sample()
	second.Algorithm = "exact"
	require.NoError(t, rw.Write(first))
	require.NoError(t, rw.Write(second))
	require.NoError(t, rw.Close())

	dec := yaml.NewDecoder(&buf)
	var algos []string
	for {
		var doc struct {
			Algorithm string `yaml:"algorithm"`
		}
		if err := dec.Decode(&doc); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		algos = append(algos, doc.Algorithm)
	}
	require.Equal(t, []string{"greedy", "exact"}, algos)
}

func TestNewWriter_Unknown(t *testing.T) {
	_, err := report.NewWriter(&bytes.Buffer{}, "json")
	require.ErrorIs(t, err, report.ErrUnknownOutput)
}
