package main

import (
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-delivery/pkg/common"
	"github.com/matst80/slask-delivery/pkg/messaging"
	"github.com/matst80/slask-delivery/pkg/server"
	"github.com/matst80/slask-delivery/pkg/storage"
)

var country = "se"
var listenAddress = ":8080"
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
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

func configStorage() storage.ConfigStorage {
	if redisUrl != "" {
		log.Printf("using redis config storage at %s", redisUrl)
		return storage.NewRedisConfigStorage(redisUrl, redisPassword, 0)
	}
	return storage.NewDiskConfigStorage(country, storagePath)
}

func main() {
	ws := server.NewWebServer(configStorage())
	if err := ws.Reload(); err != nil {
		log.Printf("no schedule config yet: %v", err)
	}

	if rabbitUrl != "" {
		conn, err := amqp.DialConfig(rabbitUrl, amqp.Config{
			Properties: amqp.NewConnectionProperties(),
		})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()
		err = messaging.ListenToAll(conn, country, func(notice messaging.ChangeNotice) error {
			log.Printf("config change %s, reloading snapshot", notice.Topic)
			return ws.Reload()
		})
		if err != nil {
			log.Fatalf("Failed to subscribe to config changes: %v", err)
		}
	} else {
		log.Println("RABBIT_URL not set, config changes need a restart")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/api/delivery/options", common.JsonHandler(ws.HandleOptions))
	mux.HandleFunc("/api/delivery/slots", common.JsonHandler(ws.HandleSlots))
	mux.HandleFunc("POST /api/checkout/validate", common.JsonHandler(ws.HandleValidateCheckout))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       10 * time.Second,
		Write:      10 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)
	common.RunServerWithShutdown(srv, "delivery availability server", timeouts.Shutdown, timeouts.Hook)
}
