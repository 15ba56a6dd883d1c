// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve   JSON instance in, JSON report out (?algo=auto|exact|greedy)
//	GET  /v1/health  liveness
//	GET  /metrics    Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/internal/config"
	"github.com/katalvlaran/setcover/setcover"
)

var (
	log    = logrus.WithField("prefix", "server")
	tracer = otel.Tracer("setcover.server")
)

const (
	serviceName     = "setcover"
	requestIDHeader = "X-Request-ID"
	shutdownTimeout = 10 * time.Second
)

var (
	// ErrInstanceTooLarge rejects instances above server.max_universe.
	ErrInstanceTooLarge = errors.New("server: instance too large")
	// ErrExactTooLarge rejects a forced exact solve whose m·2ⁿ exceeds the threshold.
	ErrExactTooLarge = errors.New("server: exact solve too large")
)

// ErrorResponse is the body of every non-200 answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// Server holds the router and solver defaults.
type Server struct {
	addr        string
	maxBody     int64
	maxUniverse int
	threshold   float64
	algorithm   setcover.Algorithm
	router      *gin.Engine
}

// New builds a Server from cfg.
func New(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algo, err := cfg.AlgorithmValue()
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:        cfg.Server.Addr,
		maxBody:     cfg.Server.MaxBodyBytes,
		maxUniverse: cfg.Server.MaxUniverse,
		threshold:   cfg.Solver.Threshold,
		algorithm:   algo,
	}
	s.router = gin.New()
	s.router.Use(gin.Recovery(), otelgin.Middleware(serviceName), requestID())
	s.router.GET("/v1/health", s.handleHealth)
	s.router.POST("/v1/solve", s.handleSolve)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID echoes X-Request-ID, generating one when absent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSolve decodes a JSON instance, solves it and answers with a Report.
// Input errors are 400; a partial cover is still 200 with complete=false.
// Instances above maxUniverse and forced exact solves whose Cost exceeds the
// threshold are rejected before any solver work.
func (s *Server) handleSolve(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "HandleSolve")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	reqID := c.GetString(requestIDHeader)
	logger := log.WithField("request_id", reqID)

	algo := s.algorithm
	if q := c.Query("algo"); q != "" {
		var err error
		if algo, err = setcover.ParseAlgorithm(q); err != nil {
			s.fail(c, span, logger, http.StatusBadRequest, "INVALID_ALGORITHM", err)
			return
		}
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)
	in, err := instance.Decode(body, instance.FormatJSON)
	if err != nil {
		s.fail(c, span, logger, http.StatusBadRequest, "INVALID_INSTANCE", err)
		return
	}
	if err = in.Resolve(); err != nil {
		s.fail(c, span, logger, http.StatusBadRequest, "INVALID_INSTANCE", err)
		return
	}
	span.SetAttributes(
		attribute.String("setcover.algorithm", algo.String()),
		attribute.Int("setcover.universe", in.Universe),
		attribute.Int("setcover.sets", len(in.Sets)),
	)
	if in.Universe > s.maxUniverse {
		err = fmt.Errorf("%w: universe %d exceeds %d", ErrInstanceTooLarge, in.Universe, s.maxUniverse)
		s.fail(c, span, logger, http.StatusBadRequest, "INSTANCE_TOO_LARGE", err)
		return
	}

	solver, err := in.Solver(setcover.WithThreshold(s.threshold))
	if err != nil {
		s.fail(c, span, logger, http.StatusBadRequest, "SOLVE_FAILED", err)
		return
	}
	if algo == setcover.Exact && solver.Cost() > s.threshold {
		err = fmt.Errorf("%w: cost %g exceeds threshold %g", ErrExactTooLarge, solver.Cost(), s.threshold)
		s.fail(c, span, logger, http.StatusBadRequest, "EXACT_TOO_LARGE", err)
		return
	}
	cover, err := solver.Run(algo)
	if err != nil {
		s.fail(c, span, logger, http.StatusBadRequest, "SOLVE_FAILED", err)
		return
	}
	report := instance.NewReport(in, solver, cover)
	span.SetAttributes(
		attribute.String("setcover.used", report.Algorithm),
		attribute.Bool("setcover.complete", report.Complete),
		attribute.Float64("setcover.weight", report.Weight),
	)
	logger.WithFields(logrus.Fields{
		"algorithm": report.Algorithm,
		"complete":  report.Complete,
		"weight":    report.Weight,
	}).Debug("Solved instance")

	c.JSON(http.StatusOK, report)
}

func (s *Server) fail(c *gin.Context, span trace.Span, logger *logrus.Entry, status int, code string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.WithError(err).Warn("Rejected solve request")
	c.JSON(status, ErrorResponse{
		Error:     err.Error(),
		Code:      code,
		RequestID: c.GetString(requestIDHeader),
	})
}
