package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-delivery/pkg/common"
	"github.com/matst80/slask-delivery/pkg/messaging"
	"github.com/matst80/slask-delivery/pkg/server"
	"github.com/matst80/slask-delivery/pkg/storage"
)

var country = "se"
var listenAddress = ":8081"
var storagePath = "data"

func init() {
	if c, ok := os.LookupEnv("COUNTRY"); ok {
		country = c
	}
	if addr, ok := os.LookupEnv("LISTEN_ADDRESS"); ok {
		listenAddress = addr
	}
	if path, ok := os.LookupEnv("STORAGE_PATH"); ok {
		storagePath = path
	}
}

func main() {
	diskStorage := storage.NewDiskConfigStorage(country, storagePath)
	ws := server.NewWebServer(diskStorage)
	if err := ws.Reload(); err != nil {
		log.Printf("starting with empty schedule config: %v", err)
	}

	if rabbitUrl, ok := os.LookupEnv("RABBIT_URL"); ok {
		conn, err := amqp.DialConfig(rabbitUrl, amqp.Config{
			Properties: amqp.NewConnectionProperties(),
		})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			log.Fatalf("Failed to open channel: %v", err)
		}
		for _, topic := range messaging.AllTopics {
			if err := messaging.DefineTopic(ch, country, topic); err != nil {
				log.Fatalf("Failed to declare topic %s: %v", topic, err)
			}
		}
		ch.Close()

		ws.Notify = func(notice messaging.ChangeNotice) {
			if err := messaging.SendChange(conn, country, notice); err != nil {
				log.Printf("Failed to broadcast %s: %v", notice.Topic, err)
			}
		}
	} else {
		log.Println("RABBIT_URL not set, serving nodes will not be notified")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /admin/config", ws.HandleGetConfig)
	mux.HandleFunc("PUT /admin/cities", ws.HandleUpsertCity)
	mux.HandleFunc("DELETE /admin/cities/{id}", ws.HandleDeleteCity)
	mux.HandleFunc("PUT /admin/slots", ws.HandleUpsertTimeSlot)
	mux.HandleFunc("DELETE /admin/slots/{id}", ws.HandleDeleteTimeSlot)
	mux.HandleFunc("POST /admin/rules/dates", ws.HandleAddDateRule)
	mux.HandleFunc("DELETE /admin/rules/dates/{id}", ws.HandleDeleteDateRule)
	mux.HandleFunc("POST /admin/rules/slots", ws.HandleAddSlotRule)
	mux.HandleFunc("DELETE /admin/rules/slots/{id}", ws.HandleDeleteSlotRule)

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       10 * time.Second,
		Write:      10 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)
	saveOnExit := func(ctx context.Context) error {
		cfg, err := ws.Config()
		if err != nil {
			return nil
		}
		return diskStorage.Save(cfg)
	}
	common.RunServerWithShutdown(srv, "delivery admin server", timeouts.Shutdown, timeouts.Hook, saveOnExit)
}
