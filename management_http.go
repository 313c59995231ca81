package hyperprobe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	fiber "github.com/gofiber/fiber/v3"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

// ManagementHTTPOption configures the management HTTP server.
type ManagementHTTPOption func(*ManagementHTTPServer)

// ManagementHTTPServer exposes the on-demand enumeration surface over HTTP:
// probe snapshots, the calibration scalar, and a manual calibration
// trigger. It holds the Fiber app and its settings.
type ManagementHTTPServer struct {
	addr         string
	app          *fiber.App
	readTimeout  time.Duration
	writeTimeout time.Duration
	authFunc     func(fiber.Ctx) error
	ln           net.Listener
	started      bool
}

// WithMgmtAuth sets an auth function (return error to block).
func WithMgmtAuth(fn func(fiber.Ctx) error) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.authFunc = fn }
}

// WithMgmtReadTimeout sets read timeout.
func WithMgmtReadTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.readTimeout = d }
}

// WithMgmtWriteTimeout sets write timeout.
func WithMgmtWriteTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.writeTimeout = d }
}

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// NewManagementHTTPServer builds an HTTP server holder (lazy start).
func NewManagementHTTPServer(addr string, opts ...ManagementHTTPOption) *ManagementHTTPServer {
	srv := &ManagementHTTPServer{
		addr:         addr,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts { // apply options
		opt(srv)
	}

	srv.app = fiber.New(fiber.Config{
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
	})

	return srv
}

// managementService is the slice of Service the handlers need.
type managementService interface {
	Profiles(ctx context.Context) []Profile
	Snapshot(ctx context.Context, name string) (Profile, error)
	Frequency() uint64
	Capacity() int
	Count(ctx context.Context) int
}

// Start launches the listener (idempotent). The caller provides the service
// for handler wiring.
func (s *ManagementHTTPServer) Start(ctx context.Context, svc managementService) error {
	if s.started { // idempotent
		return nil
	}

	s.mountRoutes(ctx, svc)

	lc := net.ListenConfig{}

	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return ewrap.Wrap(err, "mgmt listen")
	}

	s.ln = ln

	go func() { // serve in background, the management surface is optional
		serveErr := s.app.Listener(ln)
		if serveErr != nil {
			_ = serveErr
		}
	}()

	s.started = true

	return nil
}

// Address returns the bound address (useful when passing ":0" for an
// ephemeral port). Empty if not started yet.
func (s *ManagementHTTPServer) Address() string {
	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Shutdown stops the server.
func (s *ManagementHTTPServer) Shutdown(ctx context.Context) error {
	if !s.started {
		return nil
	}

	ch := make(chan error, 1)

	go func() {
		ch <- s.app.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return sentinel.ErrMgmtHTTPShutdownTimeout
	case err := <-ch:
		return err
	}
}

// mountRoutes registers endpoints onto the Fiber app.
func (s *ManagementHTTPServer) mountRoutes(ctx context.Context, svc managementService) {
	useAuth := s.wrapAuth
	s.registerBasic(ctx, useAuth, svc)
	s.registerProbes(ctx, useAuth, svc)
	s.registerControl(useAuth)
}

// wrapAuth returns an auth-wrapped handler if authFunc provided.
func (s *ManagementHTTPServer) wrapAuth(handler fiber.Handler) fiber.Handler {
	if s.authFunc == nil {
		return handler
	}

	return func(fiberCtx fiber.Ctx) error {
		authErr := s.authFunc(fiberCtx)
		if authErr != nil {
			return authErr
		}

		return handler(fiberCtx)
	}
}

func (s *ManagementHTTPServer) registerBasic(ctx context.Context, useAuth func(fiber.Handler) fiber.Handler, svc managementService) {
	s.app.Get("/health", useAuth(func(fiberCtx fiber.Ctx) error { return fiberCtx.SendString("ok") }))
	s.app.Get("/calibration", useAuth(func(fiberCtx fiber.Ctx) error {
		return fiberCtx.JSON(fiber.Map{
			"frequency": svc.Frequency(),
			"capacity":  svc.Capacity(),
			"probes":    svc.Count(ctx),
		})
	}))
}

func (s *ManagementHTTPServer) registerProbes(ctx context.Context, useAuth func(fiber.Handler) fiber.Handler, svc managementService) {
	s.app.Get("/probes", useAuth(func(fiberCtx fiber.Ctx) error {
		profiles := svc.Profiles(ctx)

		body, err := json.Marshal(profiles)
		if err != nil {
			return ewrap.Wrap(err, "encode probes")
		}

		// Weak validator over the snapshot payload so pollers can skip
		// unchanged bodies.
		fiberCtx.Set(fiber.HeaderETag, fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(body))))
		fiberCtx.Type("json")

		return fiberCtx.Send(body)
	}))
	s.app.Get("/probes/:name", useAuth(func(fiberCtx fiber.Ctx) error {
		profile, err := svc.Snapshot(ctx, fiberCtx.Params("name"))
		if err != nil {
			return fiberCtx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "probe not found"})
		}

		return fiberCtx.JSON(profile)
	}))
}

func (s *ManagementHTTPServer) registerControl(useAuth func(fiber.Handler) fiber.Handler) {
	s.app.Post("/calibrate", useAuth(func(fiberCtx fiber.Ctx) error {
		EnsureCalibrated(0)

		return fiberCtx.SendStatus(fiber.StatusAccepted)
	}))
}
