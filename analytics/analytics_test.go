package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/starlane/analytics"
	"github.com/katalvlaran/starlane/core"
)

type RunnerSuite struct {
	suite.Suite
	logs   *bytes.Buffer
	logger *slog.Logger
}

func (s *RunnerSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *RunnerSuite) TestLadder() {
	r := analytics.NewRunner(analytics.WithSeed(1), analytics.WithRunsPerSize(2), analytics.WithLogger(s.logger))
	res, err := r.RunPerformanceTests(context.Background(), []int{5, 20})
	s.Require().NoError(err)
	s.Require().Len(res, 2)

	s.Equal(5, res[0].GraphSize)
	s.Equal(15, res[0].EdgeCount)
	s.Equal(20, res[1].GraphSize)
	s.Equal(60, res[1].EdgeCount)
	for _, b := range res {
		s.Equal(2, b.Runs)
		s.Positive(int64(b.Elapsed))
		s.LessOrEqual(b.PathsFound, b.Runs)
		s.Equal(b.PathsFound > 0, b.PathFound)
		s.False(math.IsInf(b.PathCost, 0))
	}
	s.Contains(s.logs.String(), "analytics: performance tests finished")
}

func (s *RunnerSuite) TestInvalidParameters() {
	ctx := context.Background()

	_, err := analytics.NewRunner(analytics.WithRunsPerSize(0)).RunPerformanceTests(ctx, []int{5})
	s.ErrorIs(err, analytics.ErrInvalidParameter)

	_, err = analytics.NewRunner(analytics.WithEdgesMultiplier(-1)).RunPerformanceTests(ctx, []int{5})
	s.ErrorIs(err, analytics.ErrInvalidParameter)

	_, err = analytics.NewRunner(analytics.WithLogger(s.logger)).RunPerformanceTests(ctx, []int{5, 0})
	s.ErrorIs(err, analytics.ErrInvalidParameter)
}

func (s *RunnerSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := analytics.NewRunner(analytics.WithSeed(2), analytics.WithLogger(s.logger)).
		RunPerformanceTests(ctx, []int{5})
	s.ErrorIs(err, context.Canceled)
	s.Empty(res)
}

func (s *RunnerSuite) TestRunnerReusable() {
	r := analytics.NewRunner(analytics.WithSeed(3), analytics.WithRunsPerSize(1), analytics.WithLogger(s.logger))
	_, err := r.RunPerformanceTests(context.Background(), []int{3})
	s.Require().NoError(err)
	_, err = r.RunPerformanceTests(context.Background(), []int{3})
	s.NoError(err)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestMeasure(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")
	c, _ := g.AddVertex("C")
	require.NoError(t, g.AddEdge(a, b, core.EdgeData{Distance: 10, RiskFactor: 0.5}))

	m := analytics.Measure(g, a, b)
	assert.Equal(t, 3, m.GraphSize)
	assert.Equal(t, 1, m.EdgeCount)
	assert.True(t, m.PathFound)
	assert.InDelta(t, 15.0, m.PathCost, 1e-9)

	m = analytics.Measure(g, a, c)
	assert.False(t, m.PathFound)
	assert.True(t, math.IsInf(m.PathCost, 1))

	m = analytics.Measure(nil, 0, 0)
	assert.Zero(t, m.GraphSize)
	assert.False(t, m.PathFound)
}

func TestWriteReport(t *testing.T) {
	results := []analytics.PerformanceResult{
		{GraphSize: 10, EdgeCount: 30, Elapsed: 1500, PathFound: true, PathCost: 42.5, Runs: 5, PathsFound: 4},
		{GraphSize: 50, EdgeCount: 150, Elapsed: 9000, Runs: 5},
	}

	var table bytes.Buffer
	require.NoError(t, analytics.WriteReport(&table, results, analytics.FormatTable))
	assert.Contains(t, table.String(), "PLANETS")
	assert.Contains(t, table.String(), "42.50")
	assert.Contains(t, table.String(), "4/5")
	assert.Contains(t, table.String(), "1.5µs")

	var js bytes.Buffer
	require.NoError(t, analytics.WriteReport(&js, results, analytics.FormatJSON))
	var decoded []analytics.PerformanceResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, results, decoded)

	var y bytes.Buffer
	require.NoError(t, analytics.WriteReport(&y, results, analytics.FormatYAML))
	assert.Contains(t, y.String(), "graph_size: 10")
	assert.Contains(t, y.String(), "paths_found: 4")

	assert.ErrorIs(t, analytics.WriteReport(&y, results, "xml"), analytics.ErrUnknownFormat)
}
