package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wordduel/wordduel-backend/internal/repository"
)

type Server struct {
	logger      *slog.Logger
	leaderboard repository.LeaderboardRepository
}

func New(logger *slog.Logger, leaderboard repository.LeaderboardRepository) *Server {
	return &Server{
		logger:      logger,
		leaderboard: leaderboard,
	}
}

func (that *Server) Start(port string) error {
	router := mux.NewRouter()
	router.HandleFunc("/ping", that.pingHandler).Methods(http.MethodGet)
	router.HandleFunc("/leaderboard", that.leaderboardHandler).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
