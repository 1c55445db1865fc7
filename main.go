package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	intconfig "schooladmin/internal/config"
	"schooladmin/internal/graphql"
	router "schooladmin/internal/http"
	"schooladmin/internal/http/handlers"
	"schooladmin/internal/repositories"
	"schooladmin/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	utils.ConfigureLogger(env.LogLevel, env.LogFormat)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	if env.JWTSecret == "" {
		utils.Log.Warn("JWT_SECRET is empty; every authenticated route will answer 401")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := graphql.Register(reg); err != nil {
		utils.Log.WithError(err).Fatal("register graphql metrics")
	}

	gql := graphql.NewClient(env.GraphQLEndpoint, env.GraphQLToken, utils.Log)

	if _, err := intconfig.ConnectDB(env.JournalDSN); err != nil {
		utils.Log.WithError(err).Fatal("connect journal database")
	}
	defer intconfig.CloseDB()

	journal := repositories.AmendmentJournal{DB: intconfig.DB}
	if journal.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := journal.EnsureSchema(ctx)
		cancel()
		if err != nil {
			utils.Log.WithError(err).Fatal("prepare journal schema")
		}
	} else {
		utils.Log.Warn("JOURNAL_DSN is empty; amendment history and date holds are disabled")
	}

	r := router.NewRouter(env, handlers.New(gql, journal), reg)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.WithField("addr", env.AppAddr).WithField("backend", env.GraphQLEndpoint).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.WithError(err).Error("shutdown failed")
		return
	}
	utils.Log.Info("server stopped")
}
