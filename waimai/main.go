package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"waimai/waimai/config"
	"waimai/waimai/controllers"
	"waimai/waimai/restaurants"
	"waimai/waimai/routes"
	"waimai/waimai/services/doubao"
	"waimai/waimai/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	catalog, err := restaurants.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logging.ErrorLogger.Error("catalog load error", zap.Error(err))
		os.Exit(1)
	}
	llm := doubao.NewClient(cfg)
	if llm == nil {
		logging.AppLogger.Info("no DOUBAO_API_KEY set, chat uses rule-based recommendation")
	}
	recommendCtrl := controllers.NewRecommendController(catalog, llm)
	locator := controllers.NewLocator(cfg.DefaultCity)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/api", routes.APIRoutes(recommendCtrl, locator))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("assistant service listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
