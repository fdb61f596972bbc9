package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accounts-service/internal/config"
	"accounts-service/internal/db"
	"accounts-service/internal/logging"
	"accounts-service/internal/security"
	"accounts-service/internal/server"
	"accounts-service/internal/store"
	tokenhandler "accounts-service/internal/token/handler"
	tokenrepo "accounts-service/internal/token/repository"
	tokenservice "accounts-service/internal/token/service"
	userhandler "accounts-service/internal/user/handler"
	userrepo "accounts-service/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer conn.Close()
		st = store.NewPostgresStore(conn)
		log.Println("record store: postgres")
	} else {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		st = fs
		log.Printf("record store: files under %s", cfg.DataDir)
	}

	users := userrepo.NewStoreRepository(st)
	tokens := tokenrepo.NewStoreRepository(st)
	hasher := security.NewHasher(cfg.HashingSecret)
	tokenSvc := tokenservice.NewService(users, tokens, hasher, cfg.TokenTTLDuration())

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	r := server.NewRouter(logger, server.Deps{
		Users:  userhandler.New(users, tokenSvc, hasher),
		Tokens: tokenhandler.New(tokenSvc, tokens),
	})
	handler := server.NewHTTPHandler(r)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}
	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve http: %v", err)
		}
	}()

	var httpsSrv *http.Server
	if cfg.TLSEnabled() {
		httpsSrv = &http.Server{Addr: cfg.HTTPSAddr, Handler: handler}
		go func() {
			log.Printf("HTTPS server listening on %s", cfg.HTTPSAddr)
			if err := httpsSrv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil && err != http.ErrServerClosed {
				log.Fatalf("serve https: %v", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("shutdown http: %v", err)
	}
	if httpsSrv != nil {
		if err := httpsSrv.Shutdown(ctx); err != nil {
			log.Printf("shutdown https: %v", err)
		}
	}
	log.Println("server stopped")
}
