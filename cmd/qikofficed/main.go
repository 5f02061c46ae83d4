package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qikoffice-dev/qikoffice-api/internal/api"
	"github.com/qikoffice-dev/qikoffice-api/internal/auth"
	"github.com/qikoffice-dev/qikoffice-api/internal/config"
	"github.com/qikoffice-dev/qikoffice-api/internal/logger"
	"github.com/qikoffice-dev/qikoffice-api/internal/server"
	"github.com/qikoffice-dev/qikoffice-api/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	log.Infow("starting Qik Office daemon", "addr", cfg.HTTPAddr, "env", cfg.Env)

	// Pick the store backend: MongoDB when a URI is configured, otherwise
	// the embedded engine with disk snapshots.
	var st store.Store
	if cfg.MongoURI != "" {
		mongoStore, err := store.NewMongoStore(context.Background(), cfg.MongoURI, cfg.DBName)
		if err != nil {
			// Boot anyway; data endpoints answer 503 until a restart with a
			// reachable backend, and /test reports the state.
			log.Errorw("mongo unavailable, data endpoints will fail", "error", err)
		} else {
			log.Infow("connected to mongo", "db", cfg.DBName)
			st = mongoStore
		}
	} else {
		snap, err := store.NewSnapshot(cfg.DataDir)
		if err != nil {
			log.Fatalw("could not initialize data directory", "dir", cfg.DataDir, "error", err)
		}
		initialData, err := snap.LoadAll()
		if err != nil {
			log.Warnw("could not load existing snapshots", "error", err)
		}
		log.Infow("running on embedded store", "dir", cfg.DataDir, "collections", len(initialData))
		st = store.NewMemStore(initialData, snap)
	}

	h := api.New(st, log)
	router := server.NewRouter(h, log)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	if cfg.SelfSignedTLS && cfg.TLSCert == "" {
		cert, err := auth.GenerateSelfSignedCert()
		if err != nil {
			log.Fatalw("could not generate self-signed certificate", "error", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		log.Info("serving with self-signed TLS certificate")
	}

	errCh := make(chan error, 1)
	go func() {
		var err error
		switch {
		case cfg.TLSCert != "" && cfg.TLSKey != "":
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		case srv.TLSConfig != nil:
			err = srv.ListenAndServeTLS("", "")
		default:
			err = srv.ListenAndServe()
		}
		errCh <- err
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infow("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown error", "error", err)
	}
	if st != nil {
		if err := st.Close(ctx); err != nil {
			log.Errorw("store close error", "error", err)
		}
	}
	log.Info("daemon stopped")
}
