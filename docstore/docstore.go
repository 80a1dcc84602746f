package docstore

import (
	"context"
	"log"
	"time"

	"pathfinder/config"

	redis "github.com/redis/go-redis/v9"
)

// Client is the global document-store connection. It may be nil or stale when
// Redis is unreachable; writers must tolerate that.
var Client *redis.Client

// ConnectDocStore opens the Redis connection used for prediction documents.
// Unlike the relational store, an unreachable document store is not fatal:
// the server boots and degrades to placeholder prediction ids.
func ConnectDocStore() {
	Client = redis.NewClient(&redis.Options{
		Addr:         config.AppConfig.RedisAddr,
		Password:     config.AppConfig.RedisPassword,
		DB:           config.AppConfig.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: document store unreachable at %s: %v", config.AppConfig.RedisAddr, err)
		return
	}

	log.Println("Connected to document store.")
}
