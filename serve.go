package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AlviRownok/Chess-Knight-Paths/api"
	"github.com/AlviRownok/Chess-Knight-Paths/api/handlers"
	"github.com/AlviRownok/Chess-Knight-Paths/store"
)

func serveCmd() *cobra.Command {
	var portFlag int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for the pathfinding frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = portFlag
			}

			h := &handlers.PathsHandler{}
			if cfg.HistoryPath != "" {
				history, err := store.OpenHistory(cfg.HistoryPath)
				if err != nil {
					return err
				}
				defer history.Close()
				h.History = history
				log.Printf("[INFO] search history enabled at %s", cfg.HistoryPath)
			}
			if cfg.RedisAddr != "" {
				cache := store.NewCache(cfg.RedisAddr, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
				if err := cache.Ping(cmd.Context()); err != nil {
					return fmt.Errorf("redis at %s: %w", cfg.RedisAddr, err)
				}
				defer cache.Close()
				h.Cache = cache
				log.Printf("[INFO] result cache enabled at %s", cfg.RedisAddr)
			}

			if !cfg.Verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			router := api.SetupRouter(h, cfg.AllowedOrigin)
			log.Printf("[INFO] server running on port %d", cfg.Port)
			return router.Run(fmt.Sprintf(":%d", cfg.Port))
		},
	}

	cmd.Flags().IntVarP(&portFlag, "port", "p", 8080, "HTTP port (overrides config)")
	return cmd
}
