// mockgithub запускает локальный сервер, имитирующий GitHub REST API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pr-activity-service/internal/mockgithub"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	var (
		fixture string
		port    string
		token   string
	)

	cmd := &cobra.Command{
		Use:   "mockgithub",
		Short: "Serve a fake GitHub REST API from a JSON fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mockgithub.New()
			if fixture != "" {
				f, err := mockgithub.LoadFixture(fixture)
				if err != nil {
					return err
				}
				server.Apply(f)
				logger.WithFields(logrus.Fields{
					"fixture":      fixture,
					"repositories": len(f.PullRequests),
				}).Info("Fixture loaded")
			}
			if token != "" {
				server.RequireToken(token)
			}

			e := server.Handler()
			go func() {
				if err := e.Start(":" + port); err != nil {
					logger.Infof("Server stopped: %v", err)
				}
			}()
			logger.Infof("Mock GitHub API listening on :%s", port)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&fixture, "fixture", "", "path to JSON fixture")
	cmd.Flags().StringVar(&port, "port", "9090", "listen port")
	cmd.Flags().StringVar(&token, "token", "", "require this bearer token")

	if err := cmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
