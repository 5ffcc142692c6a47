// main is the entry point of the exam registration service.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Load the reference datasets (students, exam price list) — fatal on failure
//  4. Open the registration store (append-only CSV)
//  5. Register all HTTP routes
//  6. Start the HTTP server in a separate goroutine
//  7. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  8. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/examreg-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/examreg-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/examreg-api/internal/config"
	"github.com/aanand-mishra/examreg-api/internal/http/handlers/exam"
	"github.com/aanand-mishra/examreg-api/internal/http/handlers/registration"
	"github.com/aanand-mishra/examreg-api/internal/http/handlers/student"
	"github.com/aanand-mishra/examreg-api/internal/http/middleware"
	"github.com/aanand-mishra/examreg-api/internal/refdata"
	"github.com/aanand-mishra/examreg-api/internal/storage/csvstore"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and fatals if anything is wrong.
	// If this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger: key=value pairs rather than plain
	// strings, easy to filter in aggregators.
	log := setupLogger(cfg.Env)

	log.Info("starting examreg-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Load Reference Data ────────────────────────────────────────────
	// Both workbooks are loaded once and cached for the process
	// lifetime. This is the only fatal failure class in the system:
	// without the student table and the price list there is nothing to
	// serve.
	ref, err := refdata.Load(cfg)
	if err != nil {
		log.Error("failed to load reference data",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("reference data loaded",
		slog.String("students", cfg.StudentDataPath),
		slog.String("exam_options", cfg.ExamOptionsPath),
		slog.Int("exam_count", len(ref.Exams())))

	// ── 4. Initialise Storage ─────────────────────────────────────────────
	// The CSV store is the system of record and the sole point of
	// receipt numbering. We keep it behind the storage.Storage
	// interface so handlers stay backend-agnostic.
	store := csvstore.New(cfg)

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath),
		slog.String("receipt_prefix", cfg.ReceiptPrefix))

	// ── 5. Register HTTP Routes ───────────────────────────────────────────
	// Handler factories receive their dependencies once, at
	// registration, and return the actual handlers (closure pattern).
	//
	// Route table:
	//   GET  /api/students/{scholarNo}   → look up a reference student
	//   GET  /api/exams                  → the exam price list
	//   POST /api/registrations          → submit a registration
	//   GET  /api/registrations          → all saved registrations
	//   GET  /api/registrations/search   → search by scholar/receipt no
	//   GET  /api/receipts/{receiptNo}   → receipt PDF (?copy=1 → re-print)
	router := http.NewServeMux()

	router.HandleFunc("GET /api/students/{scholarNo}", student.GetByScholarNo(ref))
	router.HandleFunc("GET /api/exams", exam.List(ref))
	router.HandleFunc("POST /api/registrations", registration.Create(store, ref))
	router.HandleFunc("GET /api/registrations", registration.GetList(store))
	router.HandleFunc("GET /api/registrations/search", registration.Search(store))
	router.HandleFunc("GET /api/receipts/{receiptNo}", registration.ReceiptPDF(store, ref, cfg.Letterhead))

	// ── 6. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: middleware.RequestLogger(log, router),

		// Timeouts guard against slow clients holding connections.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 7. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks; running it here would keep the graceful
	// shutdown below from ever executing.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected result of Shutdown, not a
		// failure.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 8. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered so the signal is not missed if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	// Give in-flight requests five seconds to finish. There is no store
	// teardown: file handles are acquired and released per operation.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
