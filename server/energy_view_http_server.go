package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EnergyViewHttpServer struct {
	addr            string
	shutdownTimeout time.Duration
	router          *Router
	muxRouter       *mux.Router
}

func NewEnergyViewHttpServer(addr string, shutdownTimeout time.Duration, router *Router, muxRouter *mux.Router) *EnergyViewHttpServer {
	return &EnergyViewHttpServer{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		router:          router,
		muxRouter:       muxRouter,
	}
}

// Handler registers the routes and returns the root handler.
func (s *EnergyViewHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	return s.muxRouter
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *EnergyViewHttpServer) Start() {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[EnergyViewHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[EnergyViewHttpServer] ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[EnergyViewHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[EnergyViewHttpServer] Server forced to shutdown: %v", err)
	}

	log.Println("[EnergyViewHttpServer] Server exiting")
}
