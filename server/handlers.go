package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
	"github.com/katalvlaran/lvlpath/navigate"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(c gridgraph.Cell) point { return point{X: c.X, Y: c.Y} }

type levelSummary struct {
	Name      string   `json:"name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Waypoints []string `json:"waypoints"`
}

type levelDetail struct {
	levelSummary
	Rows []string `json:"rows"`
}

type routeResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Cost  *float64 `json:"cost"`
	Path  []point  `json:"path"`
}

type cellCost struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Cost float64 `json:"cost"`
}

type costsResponse struct {
	From   string     `json:"from"`
	Source point      `json:"source"`
	Costs  []cellCost `json:"costs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLevels(w http.ResponseWriter, _ *http.Request) {
	out := make([]levelSummary, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, summarize(name, s.planners[name].Level()))
	}
	writeJSON(w, http.StatusOK, map[string]any{"levels": out})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	name, p, ok := s.planner(w, r)
	if !ok {
		return
	}
	l := p.Level()
	rendered := levelio.Render(l, nil, levelio.DefaultRenderOptions())
	writeJSON(w, http.StatusOK, levelDetail{
		levelSummary: summarize(name, l),
		Rows:         strings.Split(rendered, "\n"),
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.planner(w, r)
	if !ok {
		return
	}
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, errors.New("query parameters from and to are required"))
		return
	}

	res, err := p.Route(from, to)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := routeResponse{From: from, To: to, Found: res.Found, Path: make([]point, 0, len(res.Path))}
	if res.Found {
		cost := res.Cost
		out.Cost = &cost
	}
	for _, c := range res.Path {
		out.Path = append(out.Path, toPoint(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCosts(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.planner(w, r)
	if !ok {
		return
	}
	from := r.URL.Query().Get("from")
	if from == "" {
		writeError(w, http.StatusBadRequest, errors.New("query parameter from is required"))
		return
	}

	src, err := p.Resolve(from)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	costs, err := p.CostsFrom(from)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := costsResponse{From: from, Source: toPoint(src), Costs: make([]cellCost, 0, len(costs))}
	for c, d := range costs {
		out.Costs = append(out.Costs, cellCost{X: c.X, Y: c.Y, Cost: d})
	}
	sort.Slice(out.Costs, func(i, j int) bool {
		if out.Costs[i].Y != out.Costs[j].Y {
			return out.Costs[i].Y < out.Costs[j].Y
		}
		return out.Costs[i].X < out.Costs[j].X
	})
	writeJSON(w, http.StatusOK, out)
}

// planner looks up the {name} route variable, writing a 404 when it is unknown.
func (s *Server) planner(w http.ResponseWriter, r *http.Request) (string, *navigate.Planner, bool) {
	name := mux.Vars(r)["name"]
	p, ok := s.planners[name]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown level %q", name))
		return "", nil, false
	}
	return name, p, true
}

func summarize(name string, l *gridgraph.Level) levelSummary {
	return levelSummary{
		Name:      name,
		Width:     l.Width,
		Height:    l.Height,
		Waypoints: l.WaypointLabels(),
	}
}

func statusFor(err error) int {
	if errors.Is(err, navigate.ErrUnknownWaypoint) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
