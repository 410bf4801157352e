// Package actorgraph is an in-memory graph of actors linked by the movies
// they shared, built from tab-separated credit rows and queried for degrees
// of separation, recency-weighted routes, spanning forests and likely
// collaborations.
//
// What is in the box?
//
//	• Core catalog: actors, (title, year) credits and the co-star adjacency
//	• Traversal: unweighted shortest path (BFS)
//	• Weighted paths: Dijkstra with recency cost ReferenceYear - year + 1, floored at 1
//	• Spanning forests: Kruskal with union-find, Prim with a frontier heap
//	• Collaboration prediction: past co-stars and new friends-of-friends, top-4
//	• TSV input and output in the pathfinder, movietraveler and linkpredictor formats
//
// Under the hood, everything is organized into subpackages:
//
//	core/         - Graph, Actor, Credit, Path; ingestion, Build and traversal bookkeeping
//	bfs/          - hop-count shortest path with hooks and depth limits
//	dijkstra/     - recency-weighted shortest path
//	prim_kruskal/ - minimum spanning forest and the UnionFind it relies on
//	predict/      - past and new collaboration scores with a bounded top-k
//	tsv/          - credit, actor and pair readers; path, forest and prediction writers
//	builder/      - synthetic credit catalogs for tests and benchmarks
//	internal/     - configuration, logging, metrics, run reports, query runner and CLI
//	cmd/actorgraph - the command-line entry point
//
// Quick ASCII example:
//
//	Kevin Bacon ──[Apollo 13#@1995]── Tom Hanks ──[Cast Away#@2000]── Helen Hunt
//
//	is a path of two hops between Kevin Bacon and Helen Hunt.
//
//	go install github.com/katalvlaran/actorgraph/cmd/actorgraph@latest
package actorgraph
