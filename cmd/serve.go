package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/timada-org/todos/internal/api"
	"github.com/timada-org/todos/internal/core"
	"github.com/timada-org/todos/internal/events"
	"github.com/timada-org/todos/internal/store"
)

var (
	cfgFile string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the todos server",

		Run: func(cmd *cobra.Command, args []string) {
			config, err := core.NewConfig(cfgFile)
			if err != nil {
				log.Fatalln(err)
			}

			st, err := store.Open(config.Database.Path)
			if err != nil {
				log.Fatalln(err)
			}

			var publisher *events.Client
			if config.Broker.URL != "" {
				publisher, err = events.New(events.ClientOptions{
					URL:   config.Broker.URL,
					Topic: config.Broker.Topic,
					Name:  "todos",
				})
				if err != nil {
					log.Fatalln(err)
				}
				defer publisher.Close()
			}

			app := api.New(api.AppOptions{
				Addr:      config.Addr,
				Store:     st,
				Publisher: publisher,
			})

			log.Fatal(app.Listen())
		},
	}
)

func init() {
	serveCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yml", "config file (default is configs/config.yml)")
}
