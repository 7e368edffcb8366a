package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/viettl/skipli/config"
	"github.com/viettl/skipli/internal/mailer"
	"github.com/viettl/skipli/internal/realtime"
	chat_repo "github.com/viettl/skipli/internal/repo/chat"
	"github.com/viettl/skipli/internal/routers"
	"github.com/viettl/skipli/internal/worker"
	"github.com/viettl/skipli/state"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appState, err := state.InitAppState(ctx, stop)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application state")
	}
	defer appState.Close()

	hub := realtime.NewHub(chat_repo.NewChatRepo(appState))
	defer hub.Close()
	log.Info().Msg("Realtime hub initialized")

	r := routers.NewRouter(appState, hub)

	smtp := mailer.NewSMTPMailer(config.Conf)
	workerPool := worker.NewWorkerPool(appState.Redis, 5, smtp)
	go workerPool.Start(ctx)
	workerPool.StartDLQWorker(ctx, appState)
	workerPool.StartDLQRetryConsumer(ctx, appState)

	server := &http.Server{
		Addr:         config.Conf.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Msgf("Starting server on http://localhost%s", config.Conf.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("ListenAndServe failed: %v", err))
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown initiated...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("Graceful shutdown failed: %v\n", err)
	} else {
		fmt.Println("Server exited gracefully.")
	}
	workerPool.Wait()
}
