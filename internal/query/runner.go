// Package query runs the actorgraph tools' batches against one loaded graph,
// with logging, metrics and an optional run report around every step.
package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/actorgraph/bfs"
	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/dijkstra"
	"github.com/katalvlaran/actorgraph/internal/config"
	"github.com/katalvlaran/actorgraph/internal/metrics"
	"github.com/katalvlaran/actorgraph/internal/report"
	"github.com/katalvlaran/actorgraph/predict"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
	"github.com/katalvlaran/actorgraph/tsv"
)

// Query kinds used in logs, metrics and the report.
const (
	KindUnweighted  = "bfs"
	KindWeighted    = "dijkstra"
	KindForest      = "forest"
	KindPredictPast = "predict_past"
	KindPredictNew  = "predict_new"
)

// ErrNoGraph is returned when a query runs before LoadGraph.
var ErrNoGraph = errors.New("query: graph not loaded")

// Runner owns the graph of one invocation.
type Runner struct {
	cfg    config.Config
	log    *zap.Logger
	runID  string
	graph  *core.Graph
	report *report.Report
	now    func() time.Time
}

// NewRunner creates a runner for command. Every log line carries run_id and command.
func NewRunner(cfg config.Config, log *zap.Logger, command string) *Runner {
	id := uuid.New().String()
	r := &Runner{
		cfg:   cfg,
		runID: id,
		log:   log.With(zap.String("run_id", id), zap.String("command", command)),
		now:   time.Now,
	}
	r.report = report.New(id, command, r.now())

	return r
}

// RunID returns the identifier of this invocation.
func (r *Runner) RunID() string { return r.runID }

// Config returns the settings the runner was created with.
func (r *Runner) Config() config.Config { return r.cfg }

// Graph returns the loaded graph, or nil before LoadGraph.
func (r *Runner) Graph() *core.Graph { return r.graph }

// Report returns the run summary collected so far.
func (r *Runner) Report() *report.Report { return r.report }

// LoadGraph ingests the credits file and links the graph.
func (r *Runner) LoadGraph(path string) error {
	start := r.now()
	g := core.NewGraph(core.WithReferenceYear(r.cfg.ReferenceYear))

	st, err := tsv.LoadCredits(path, g)
	if err != nil {
		r.log.Error("load credits", zap.String("path", path), zap.Int("rows", st.Rows), zap.Error(err))
		return err
	}
	if err := g.Build(); err != nil {
		return fmt.Errorf("query: build graph: %w", err)
	}
	r.graph = g

	gs := g.Stats()
	metrics.GraphActors.Set(float64(gs.Actors))
	metrics.GraphCredits.Set(float64(gs.Credits))
	metrics.GraphLinks.Set(float64(gs.Links))
	metrics.RowsSkipped.WithLabelValues("credits").Add(float64(st.Skipped))

	r.report.Graph = &report.GraphSection{
		Input:         path,
		Actors:        gs.Actors,
		Credits:       gs.Credits,
		Movies:        gs.Movies,
		Links:         gs.Links,
		FutureCredits: gs.FutureCredits,
		SkippedRows:   st.Skipped,
		ReferenceYear: gs.ReferenceYear,
	}

	r.log.Info("graph loaded",
		zap.String("path", path),
		zap.Int("actors", gs.Actors),
		zap.Int("credits", gs.Credits),
		zap.Int("movies", gs.Movies),
		zap.Int("links", gs.Links),
		zap.Int("skipped_rows", st.Skipped),
		zap.Duration("elapsed", r.now().Sub(start)),
	)
	if gs.FutureCredits > 0 {
		r.log.Warn("credits newer than reference year cost 1",
			zap.Int("future_credits", gs.FutureCredits),
			zap.Int("reference_year", gs.ReferenceYear))
	}

	return nil
}

// RecordSkipped accounts rows dropped from a query list.
func (r *Runner) RecordSkipped(input string, n int) {
	if n == 0 {
		return
	}
	metrics.RowsSkipped.WithLabelValues(input).Add(float64(n))
	r.log.Warn("skipped malformed rows", zap.String("input", input), zap.Int("rows", n))
}

// FindPaths answers every pair, unweighted or weighted. An unknown actor
// yields an empty path for that pair and the batch continues.
func (r *Runner) FindPaths(pairs []tsv.Pair, weighted bool) ([]core.Path, error) {
	if r.graph == nil {
		return nil, ErrNoGraph
	}
	kind := KindUnweighted
	if weighted {
		kind = KindWeighted
	}
	counts := r.report.Count(kind)

	out := make([]core.Path, 0, len(pairs))
	for _, p := range pairs {
		start := r.now()
		var (
			path core.Path
			cost int64
			err  error
		)
		if weighted {
			path, cost, err = dijkstra.ShortestPath(r.graph, p.From, p.To)
		} else {
			path, err = bfs.ShortestPath(r.graph, p.From, p.To)
		}

		outcome := metrics.OutcomeFound
		switch {
		case errors.Is(err, core.ErrActorNotFound):
			outcome = metrics.OutcomeUnknown
			counts.Unknown++
			path = core.Path{}
		case err != nil:
			metrics.ObserveQuery(kind, metrics.OutcomeError, r.now().Sub(start))
			return out, fmt.Errorf("query: %s %q -> %q: %w", kind, p.From, p.To, err)
		case len(path) == 0:
			outcome = metrics.OutcomeEmpty
			counts.Empty++
		default:
			counts.Found++
		}
		counts.Total++
		metrics.ObserveQuery(kind, outcome, r.now().Sub(start))

		r.log.Debug("path query",
			zap.String("kind", kind),
			zap.String("from", p.From),
			zap.String("to", p.To),
			zap.String("outcome", outcome),
			zap.Int("hops", path.Hops()),
			zap.Int64("cost", cost),
			zap.NamedError("reason", err),
		)
		out = append(out, path)
	}

	r.log.Info("paths answered",
		zap.String("kind", kind),
		zap.Int("pairs", counts.Total),
		zap.Int("found", counts.Found),
		zap.Int("empty", counts.Empty),
		zap.Int("unknown_actor", counts.Unknown),
	)

	return out, nil
}

// Travel computes the minimum spanning forest with the configured method.
func (r *Runner) Travel() (*prim_kruskal.Forest, error) {
	if r.graph == nil {
		return nil, ErrNoGraph
	}
	start := r.now()
	opts := r.cfg.MSTOptions()
	f, err := prim_kruskal.Compute(r.graph, opts)
	if err != nil {
		metrics.ObserveQuery(KindForest, metrics.OutcomeError, r.now().Sub(start))
		return nil, fmt.Errorf("query: forest: %w", err)
	}
	metrics.ObserveQuery(KindForest, metrics.OutcomeFound, r.now().Sub(start))
	metrics.ForestWeight.Set(float64(f.TotalWeight))
	metrics.ForestEdges.Set(float64(len(f.Edges)))

	c := r.report.Count(KindForest)
	c.Total++
	c.Found++
	r.report.Forest = &report.ForestSection{
		Method: opts.Method,
		Edges:  len(f.Edges),
		Trees:  f.Trees(),
		Nodes:  f.Nodes,
		Weight: f.TotalWeight,
	}

	r.log.Info("forest computed",
		zap.String("method", opts.Method),
		zap.Int("edges", len(f.Edges)),
		zap.Int("trees", f.Trees()),
		zap.Int("nodes", f.Nodes),
		zap.Int64("weight", f.TotalWeight),
		zap.Duration("elapsed", r.now().Sub(start)),
	)

	return f, nil
}

// Predictions holds both ranked batches of one Predict call.
type Predictions struct {
	Past []predict.Prediction
	New  []predict.Prediction

	// HaltedAt names the unknown actor that stopped the batches, if any.
	HaltedAt string
}

// Predict runs both predictors over names. An unknown actor stops both
// batches at that name; the rows computed before it are kept and the halt
// is reported through HaltedAt rather than as an error.
func (r *Runner) Predict(names []string) (Predictions, error) {
	if r.graph == nil {
		return Predictions{}, ErrNoGraph
	}
	var res Predictions
	opt := predict.WithTopK(r.cfg.TopK)

	var err error
	if res.Past, err = r.predictBatch(KindPredictPast, predict.Past, names, opt); err != nil {
		return res, err
	}
	if res.New, err = r.predictBatch(KindPredictNew, predict.New, names, opt); err != nil {
		return res, err
	}
	if len(res.Past) < len(names) {
		res.HaltedAt = names[len(res.Past)]
		r.report.HaltedAt = res.HaltedAt
		metrics.PredictorHalts.Inc()
		r.log.Warn("prediction halted at unknown actor",
			zap.String("actor", res.HaltedAt),
			zap.Int("answered", len(res.Past)),
			zap.Int("requested", len(names)),
		)
	}

	return res, nil
}

type predictFunc func(*core.Graph, []string, ...predict.Option) ([]predict.Prediction, error)

// predictBatch runs one predictor and records its outcome.
func (r *Runner) predictBatch(kind string, fn predictFunc, names []string, opt predict.Option) ([]predict.Prediction, error) {
	start := r.now()
	rows, err := fn(r.graph, names, opt)
	elapsed := r.now().Sub(start)

	counts := r.report.Count(kind)
	for _, row := range rows {
		outcome := metrics.OutcomeFound
		counts.Total++
		if len(row.Candidates) == 0 {
			outcome = metrics.OutcomeEmpty
			counts.Empty++
		} else {
			counts.Found++
		}
		metrics.QueriesTotal.WithLabelValues(kind, outcome).Inc()
	}
	metrics.QueryDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

	switch {
	case errors.Is(err, core.ErrActorNotFound):
		counts.Unknown++
		metrics.QueriesTotal.WithLabelValues(kind, metrics.OutcomeUnknown).Inc()
	case err != nil:
		metrics.QueriesTotal.WithLabelValues(kind, metrics.OutcomeError).Inc()
		return rows, fmt.Errorf("query: %s: %w", kind, err)
	}

	r.log.Info("predictions ranked",
		zap.String("kind", kind),
		zap.Int("actors", len(rows)),
		zap.Int("top_k", r.cfg.TopK),
		zap.Duration("elapsed", elapsed),
	)

	return rows, nil
}

// Finish stamps the run duration and writes the configured metrics textfile
// and report.
func (r *Runner) Finish() error {
	r.report.Finish(r.now())

	if r.cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(r.cfg.MetricsFile); err != nil {
			return err
		}
		r.log.Debug("metrics written", zap.String("path", r.cfg.MetricsFile))
	}
	if r.cfg.ReportFile != "" {
		if err := r.report.Write(r.cfg.ReportFile); err != nil {
			return err
		}
		r.log.Debug("report written", zap.String("path", r.cfg.ReportFile))
	}
	r.log.Info("run finished", zap.String("duration", r.report.Duration))

	return nil
}
