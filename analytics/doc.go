// Package analytics measures solver performance on generated star maps.
//
// Measure times a single query. Runner.RunPerformanceTests walks a ladder
// of map sizes, builds RunsPerSize random maps per size with
// size*EdgesMultiplier lanes (package builder), times one query between
// random endpoints on each, and averages the timings per size. Progress is
// logged through log/slog; WriteReport renders the buckets.
//
//	r := analytics.NewRunner(analytics.WithSeed(1), analytics.WithRunsPerSize(3))
//	res, err := r.RunPerformanceTests(ctx, []int{100, 1000})
//	_ = analytics.WriteReport(os.Stdout, res, analytics.FormatTable)
package analytics
