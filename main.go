package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	router "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/handlers"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	handlers.SetJWTSecret(env.JWTSecret)
	handlers.SetDispatcher(buildDispatcher(env))

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

// buildDispatcher wires the notification channels for the configured
// delivery profile. The database channel is always on; external
// transports come up only when their credentials are present, so a bare
// dev environment still runs.
func buildDispatcher(env intconfig.Env) notify.Dispatcher {
	channels := map[string]notify.Channel{
		notify.ChannelDatabase: notify.DatabaseChannel{
			Store: repositories.NotificationRepository{},
		},
	}

	if env.SendgridAPIKey != "" {
		channels[notify.ChannelMail] = notify.MailChannel{Mailer: notify.SendgridMailer{
			APIKey:   env.SendgridAPIKey,
			FromName: env.MailFromName,
			FromAddr: env.MailFromAddr,
		}}
	} else {
		channels[notify.ChannelMail] = notify.MailChannel{Mailer: notify.ConsoleMailer{}}
	}

	if env.RabbitURL != "" {
		pub, err := notify.NewRabbitPublisher(env.RabbitURL, env.RabbitExchange)
		if err != nil {
			log.Printf("warning: rabbitmq unavailable, broadcast disabled: %v", err)
		} else {
			channels[notify.ChannelBroadcast] = notify.BroadcastChannel{Publisher: pub}
		}
	}

	if env.TermiiAPIKey != "" {
		channels[notify.ChannelSMS] = notify.SMSChannel{Gateway: notify.TermiiGateway{
			APIKey:   env.TermiiAPIKey,
			SenderID: env.TermiiSenderID,
		}}
	}

	return notify.Dispatcher{
		Profile:  notify.Profile(env.DeliveryProfile),
		Channels: channels,
	}
}
