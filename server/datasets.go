package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/katalvlaran/divconq/dataset"
	"github.com/katalvlaran/divconq/runner"
)

// errMissingFilename is reported when visualize-file gets no file name.
var errMissingFilename = errors.New(`missing "filename"`)

// applyResponse is the body of /api/apply-algorithms: the batch report plus
// the result files written next to the datasets.
type applyResponse struct {
	runner.Report
	Files []string `json:"files"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()

	rep, err := runner.Run(r.Context(), s.cfg.datasetDir, runner.WithLogger(s.cfg.logger))
	if err != nil {
		s.writeError(w, err)
		return
	}
	paths, err := runner.WriteResults(s.cfg.datasetDir, rep)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, applyResponse{Report: rep, Files: paths})
}

type listResponse struct {
	Dir   string        `json:"dir"`
	Files []runner.File `json:"files"`
}

// handleListFiles lists the dataset files; a missing directory lists as empty.
func (s *Server) handleListFiles(w http.ResponseWriter, _ *http.Request) {
	files, err := runner.List(s.cfg.datasetDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, listResponse{Dir: s.cfg.datasetDir, Files: nonNil(files)})
}

type visualizeRequest struct {
	Filename string `json:"filename"`
}

// handleVisualizeFile solves one stored dataset. Only bare dataset names are
// accepted, so the lookup never leaves the dataset directory.
func (s *Server) handleVisualizeFile(w http.ResponseWriter, r *http.Request) {
	var req visualizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, badRequest(fmt.Errorf("decode request: %w", err)))
		return
	}
	if req.Filename == "" {
		s.writeError(w, badRequest(errMissingFilename))
		return
	}
	kind, _, ok := runner.DatasetKind(req.Filename)
	if !ok {
		s.writeError(w, badRequest(fmt.Errorf("%q is not a dataset file name", req.Filename)))
		return
	}

	f, err := os.Open(filepath.Join(s.cfg.datasetDir, req.Filename))
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer f.Close()

	if kind == runner.KindClosestPair {
		pts, err := dataset.ReadPoints(f)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp, err := s.solvePoints(pts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Filename, resp.Points = req.Filename, pts
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	x, y, err := dataset.ReadIntegers(f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp, err := s.solveProduct(x, y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp.Filename = req.Filename
	s.writeJSON(w, http.StatusOK, resp)
}

// handleUploadAndVisualize solves an upload of either format. The points
// format is tried first; an upload that is neither is a 400.
func (s *Server) handleUploadAndVisualize(w http.ResponseWriter, r *http.Request) {
	f, err := uploadedFile(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.writeError(w, err)
		return
	}

	pts, perr := dataset.ReadPoints(bytes.NewReader(data))
	if perr == nil {
		resp, err := s.solvePoints(pts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Points = pts
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	x, y, ierr := dataset.ReadIntegers(bytes.NewReader(data))
	if ierr != nil {
		s.writeError(w, badRequest(fmt.Errorf("not a point set: %w; not an integer pair: %w", perr, ierr)))
		return
	}
	resp, err := s.solveProduct(x, y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}
