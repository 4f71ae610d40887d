package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/katalvlaran/divconq/closestpair"
	"github.com/katalvlaran/divconq/dataset"
	"github.com/katalvlaran/divconq/karatsuba"
	"github.com/katalvlaran/divconq/runner"
)

// errMissingFile is reported when the multipart field "file" is absent.
var errMissingFile = errors.New(`missing multipart field "file"`)

// Server serves the JSON API.
type Server struct {
	cfg config
	mux *http.ServeMux

	// dirMu serializes the routes that write into the dataset directory.
	dirMu sync.Mutex
}

// New builds a Server from opts.
func New(opts ...Option) (*Server, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/closest-pair", s.handleClosestPair)
	s.mux.HandleFunc("POST /api/karatsuba", s.handleKaratsuba)
	s.mux.HandleFunc("POST /api/generate-datasets", s.handleGenerate)
	s.mux.HandleFunc("POST /api/apply-algorithms", s.handleApply)
	s.mux.HandleFunc("GET /api/list-files", s.handleListFiles)
	s.mux.HandleFunc("POST /api/visualize-file", s.handleVisualizeFile)
	s.mux.HandleFunc("POST /api/upload-and-visualize", s.handleUploadAndVisualize)

	return s, nil
}

// Handler returns the routed handler wrapped with the upload cap and request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.maxUpload)
		s.mux.ServeHTTP(w, r)
	}))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          s.cfg.logger,
	}

	errc := make(chan error, 1)
	go func() {
		s.cfg.logger.Printf("listening on %s (datasets in %s)", addr, s.cfg.datasetDir)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return ctx.Err()
	}
}

// closestPairResponse is the body of a successful closest-pair call.
// ClosestPair and Distance are null when the input has fewer than two points.
// Points and Filename are set only by the visualize routes.
type closestPairResponse struct {
	Type        runner.Kind         `json:"type"`
	Filename    string              `json:"filename,omitempty"`
	NumPoints   int                 `json:"num_points"`
	Points      []closestpair.Point `json:"points,omitempty"`
	ClosestPair []closestpair.Point `json:"closest_pair"`
	Indices     []int               `json:"indices,omitempty"`
	Distance    *float64            `json:"distance"`
	ElapsedMS   float64             `json:"execution_time_ms"`
	Stats       closestpair.Stats   `json:"stats"`
	Steps       []closestpair.Step  `json:"steps"`
	StepsTotal  int                 `json:"steps_total"`
}

func (s *Server) handleClosestPair(w http.ResponseWriter, r *http.Request) {
	f, err := uploadedFile(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer f.Close()

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
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) solvePoints(pts []closestpair.Point) (closestPairResponse, error) {
	tr := closestpair.Trace{Limit: s.cfg.traceLimit}
	start := time.Now()
	res, err := closestpair.ClosestPair(pts, closestpair.WithTrace(&tr))
	elapsed := msSince(start)
	if err != nil {
		return closestPairResponse{}, err
	}

	resp := closestPairResponse{
		Type:       runner.KindClosestPair,
		NumPoints:  len(pts),
		ElapsedMS:  elapsed,
		Stats:      res.Stats,
		Steps:      nonNil(tr.Steps),
		StepsTotal: tr.Total,
	}
	if res.Pair != nil {
		d := res.Distance
		resp.ClosestPair = []closestpair.Point{res.Pair.A, res.Pair.B}
		resp.Indices = []int{res.Pair.I, res.Pair.J}
		resp.Distance = &d
	}

	return resp, nil
}

// karatsubaResponse is the body of a successful Karatsuba call.
// Integers travel as decimal strings.
type karatsubaResponse struct {
	Type         runner.Kind      `json:"type"`
	Filename     string           `json:"filename,omitempty"`
	X            string           `json:"x"`
	Y            string           `json:"y"`
	XDigits      int              `json:"x_digits"`
	YDigits      int              `json:"y_digits"`
	Result       string           `json:"result"`
	ResultDigits int              `json:"result_digits"`
	Verified     bool             `json:"verified"`
	ElapsedMS    float64          `json:"execution_time_ms"`
	Stats        karatsuba.Stats  `json:"stats"`
	Steps        []karatsuba.Step `json:"steps"`
	StepsTotal   int              `json:"steps_total"`
}

func (s *Server) handleKaratsuba(w http.ResponseWriter, r *http.Request) {
	f, err := uploadedFile(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer f.Close()

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
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) solveProduct(x, y *big.Int) (karatsubaResponse, error) {
	tr := karatsuba.Trace{Limit: s.cfg.traceLimit}
	var st karatsuba.Stats
	start := time.Now()
	z, err := karatsuba.MultiplySigned(x, y, karatsuba.WithTrace(&tr), karatsuba.WithStats(&st))
	elapsed := msSince(start)
	if err != nil {
		return karatsubaResponse{}, err
	}

	return karatsubaResponse{
		Type:         runner.KindKaratsuba,
		X:            x.String(),
		Y:            y.String(),
		XDigits:      karatsuba.DigitCount(x),
		YDigits:      karatsuba.DigitCount(y),
		Result:       z.String(),
		ResultDigits: karatsuba.DigitCount(z),
		Verified:     karatsuba.Verify(x, y, z),
		ElapsedMS:    elapsed,
		Stats:        st,
		Steps:        nonNil(tr.Steps),
		StepsTotal:   tr.Total,
	}, nil
}

type generateResponse struct {
	Dir   string   `json:"dir"`
	Seed  int64    `json:"seed"`
	Files []string `json:"files"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	seed := s.cfg.seed
	if v := r.FormValue("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.writeError(w, badRequest(fmt.Errorf("seed %q: %w", v, err)))
			return
		}
		seed = n
	}

	s.dirMu.Lock()
	paths, err := dataset.WriteSuite(s.cfg.datasetDir, seed)
	s.dirMu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Dir: s.cfg.datasetDir, Seed: seed, Files: paths})
}

// uploadedFile returns the multipart field "file".
func uploadedFile(r *http.Request) (multipart.File, error) {
	f, _, err := r.FormFile("file")
	if err == nil {
		return f, nil
	}
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		return nil, err
	case errors.Is(err, http.ErrMissingFile):
		return nil, badRequest(errMissingFile)
	default:
		return nil, badRequest(err)
	}
}

// requestError marks failures caused by the request itself.
type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return requestError{err: err} }

// statusFor maps an error onto an HTTP status.
func statusFor(err error) int {
	var (
		tooBig *http.MaxBytesError
		reqErr requestError
	)
	switch {
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &reqErr), errors.Is(err, dataset.ErrInputFormat), errors.Is(err, closestpair.ErrNonFinite):
		return http.StatusBadRequest
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, runner.ErrNoDatasets):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.cfg.logger.Printf("internal error: %v", err)
	}
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.cfg.logger.Printf("encode response: %v", err)
	}
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.cfg.logger.Printf("%s %s %d %.2fms", r.Method, r.URL.Path, rec.status, msSince(start))
	})
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}

// nonNil keeps empty traces encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
