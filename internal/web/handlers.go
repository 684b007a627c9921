package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/cubesync/internal/cube"
)

type rotateRequest struct {
	Face  string `json:"face"`
	Layer int    `json:"layer"`
}

type rotateResponse struct {
	OK bool `json:"ok"`
}

type snapshotResponse struct {
	Size     int    `json:"size"`
	State    string `json:"state"`
	Solved   bool   `json:"solved"`
}

var faceNames = map[string]cube.Face{
	"U": cube.Up,
	"R": cube.Right,
	"F": cube.Front,
	"L": cube.Left,
	"B": cube.Back,
	"D": cube.Down,
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>cubesync</title>
    <meta charset="utf-8">
</head>
<body>
    <h1>cubesync</h1>
    <p>A concurrency-safe cube, reachable over HTTP.</p>
    <ul>
        <li>POST /api/rotate {"face":"R","layer":0}</li>
        <li>GET /api/snapshot</li>
        <li>GET /api/health</li>
    </ul>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleRotate(w http.ResponseWriter, r *http.Request) {
	var req rotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	face, ok := faceNames[req.Face]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown face %q", req.Face), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.cube.Rotate(ctx, face, req.Layer); err != nil {
		s.metrics.rejected.Inc()
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rotateResponse{OK: true})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	state, err := s.cube.Snapshot(ctx)
	if err != nil {
		s.metrics.rejected.Inc()
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	resp := snapshotResponse{
		Size:   s.cube.Size(),
		State:  state,
		Solved: cube.IsSolved(state, s.cube.Size()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"metrics": s.metrics.snapshot(),
	})
}
