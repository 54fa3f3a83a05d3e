// Package mstlab is a workbench for undirected weighted graphs: build a
// graph, then replay Kruskal's and Prim's minimum spanning tree algorithms
// and BFS/DFS traversals on it one step at a time.
//
// Under the hood, everything is organized in small packages:
//
//	core/           thread-safe Graph, Edge and sentinel errors
//	unionfind/      disjoint sets with path compression and union by rank
//	bfs/, dfs/      traversals with hooks, depth limits and cancellation
//	prim_kruskal/   Kruskal and Prim returning every intermediate edge set
//	builder/        seeded demo graphs (path, cycle, star, wheel, complete, grid, random)
//	session/        validated, logged engine boundary and session registry
//	script/         YAML, HCL and line-format command scripts; the REPL grammar
//	render/         DOT, Mermaid and JSON export with highlighted MST edges
//	server/         chi HTTP API over sessions
//	config/, observability/  viper configuration and zap logging
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      3   2
//	       \  │
//	         C
//
//	Kruskal accepts A-B(1), then B-C(2), and skips A-C(3), which closes a cycle.
//
// The mstlab binary (cmd/mstlab) exposes run, repl, serve, export and
// generate subcommands.
package mstlab
