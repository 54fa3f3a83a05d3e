package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/render"
	"github.com/katalvlaran/mstlab/session"
)

// ErrBadRequest marks malformed request bodies and parameters.
var ErrBadRequest = errors.New("server: bad request")

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidStart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, core.ErrVertexNotFound),
		errors.Is(err, core.ErrEdgeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, session.ErrWeightOutOfRange),
		errors.Is(err, render.ErrUnknownFormat),
		errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, builder.ErrUnknownKind),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrTooManyVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrInvalidWeightRange):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail writes err with its mapped status; unexpected errors are logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	return nil
}

type sessionResponse struct {
	ID string `json:"id"`
}

func (s *Server) createSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.reg.Create()
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID()})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Delete(sessionFrom(r).ID()); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type graphResponse struct {
	Nodes []string         `json:"nodes"`
	Edges []core.Edge      `json:"edges"`
	Stats *core.GraphStats `json:"stats"`
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	v := sess.View()
	writeJSON(w, http.StatusOK, graphResponse{Nodes: v.Nodes, Edges: v.Edges, Stats: sess.Stats()})
}

// generate replaces the session graph with a builder.Recipe body.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req builder.Recipe
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sess := sessionFrom(r)
	stats, err := sess.Generate(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v := sess.View()
	writeJSON(w, http.StatusCreated, graphResponse{Nodes: v.Nodes, Edges: v.Edges, Stats: stats})
}

func (s *Server) resetGraph(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Reset()
	w.WriteHeader(http.StatusNoContent)
}

type nodeRequest struct {
	ID string `json:"id"`
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := sessionFrom(r).AddNode(req.ID); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, nodeRequest{ID: strings.TrimSpace(req.ID)})
}

func (s *Server) removeNode(w http.ResponseWriter, r *http.Request) {
	if err := sessionFrom(r).RemoveNode(chi.URLParam(r, "node")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type neighborsResponse struct {
	Node      string   `json:"node"`
	Neighbors []string `json:"neighbors"`
}

func (s *Server) neighbors(w http.ResponseWriter, r *http.Request) {
	node := chi.URLParam(r, "node")
	ids, err := sessionFrom(r).Neighbors(node)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, neighborsResponse{Node: node, Neighbors: ids})
}

// edgeRequest accepts the weight as a JSON number or numeric string.
type edgeRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight any    `json:"weight"`
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	weight, err := session.CoerceWeight(req.Weight)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	e, err := sessionFrom(r).AddEdge(req.From, req.To, weight)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) removeEdge(w http.ResponseWriter, r *http.Request) {
	if err := sessionFrom(r).RemoveEdge(chi.URLParam(r, "from"), chi.URLParam(r, "to")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type traversal int

const (
	traverseBFS traversal = iota
	traverseDFS
)

type orderResponse struct {
	Start string   `json:"start"`
	Order []string `json:"order"`
}

func (s *Server) traverse(kind traversal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		start := r.URL.Query().Get("start")

		var (
			order []string
			err   error
		)
		if kind == traverseBFS {
			order, err = sess.BFS(r.Context(), start)
		} else {
			order, err = sess.DFS(r.Context(), start)
		}
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, orderResponse{Start: strings.TrimSpace(start), Order: order})
	}
}

type stepsResponse struct {
	Method      string             `json:"method"`
	Steps       prim_kruskal.Steps `json:"steps"`
	TotalWeight float64            `json:"total_weight"`
	Components  int                `json:"components"`
}

// runMST dispatches by method name; Prim reads its start from the query.
func runMST(r *http.Request, sess *session.Session, method string) (string, prim_kruskal.Steps, error) {
	m, err := prim_kruskal.ParseMethod(method)
	if err != nil {
		return "", nil, err
	}
	var steps prim_kruskal.Steps
	if m == prim_kruskal.MethodPrim {
		steps, err = sess.Prim(r.Context(), r.URL.Query().Get("start"))
	} else {
		steps, err = sess.Kruskal(r.Context())
	}

	return m, steps, err
}

func (s *Server) mst(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	m, steps, err := runMST(r, sess, chi.URLParam(r, "method"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if steps == nil {
		steps = prim_kruskal.Steps{}
	}
	final := steps.Final()
	comps, err := sess.Components(final)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stepsResponse{
		Method:      m,
		Steps:       steps,
		TotalWeight: final.TotalWeight(),
		Components:  comps,
	})
}

// export renders the graph; ?highlight=kruskal|prim (with ?start= for prim)
// marks the final MST edges, ?step=N marks the N-th snapshot instead.
func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	q := r.URL.Query()

	format := render.FormatDOT
	if f := q.Get("format"); f != "" {
		var err error
		if format, err = render.ParseFormat(f); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	var hl prim_kruskal.Snapshot
	if method := q.Get("highlight"); method != "" {
		_, steps, err := runMST(r, sess, method)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		hl = steps.Final()
		if n := q.Get("step"); n != "" {
			i, err := strconv.Atoi(n)
			if err != nil || i < 1 || i > steps.Len() {
				s.fail(w, r, fmt.Errorf("%w: step must be in 1..%d", ErrBadRequest, steps.Len()))
				return
			}
			hl = steps[i-1]
		}
	}

	w.Header().Set("Content-Type", format.ContentType())
	if err := render.Write(w, format, sess.View(), hl); err != nil {
		s.log.Warn("export write failed", zap.Error(err))
	}
}
