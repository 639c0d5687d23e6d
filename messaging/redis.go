package messaging

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

func init() {
	MQClients = append(MQClients, "redis")
}

// RedisMQClient publishes with redis PUBLISH.
type RedisMQClient struct {
	redisClient *redis.Client

	channel string
}

func (redisMQ *RedisMQClient) String() string {
	return "redis"
}

func (redisMQ *RedisMQClient) Channel() string {
	return redisMQ.channel
}

func (redisMQ *RedisMQClient) Connect(ctx context.Context, _ string, args map[string]interface{}) error {
	address, err := getString(args, "redisMQ", "Address")
	if err != nil {
		return err
	}

	password, _ := GetEntry(args, "Password").(string)
	redisMQ.channel, _ = GetEntry(args, "Channel").(string)

	var db int

	if dbStr, ok := GetEntry(args, "DB").(string); ok && dbStr != "" {
		db, err = strconv.Atoi(dbStr)
		if err != nil {
			return fmt.Errorf("redisMQ connect db atoi: %w", err)
		}
	}

	redisMQ.redisClient = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	err = redisMQ.redisClient.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("redisMQ connect ping: %w", err)
	}

	return nil
}

func (redisMQ *RedisMQClient) Publish(ctx context.Context, channelName string, data []byte) error {
	if redisMQ.redisClient == nil {
		return ErrClientClosed
	}

	return redisMQ.redisClient.Publish(ctx, channelName, data).Err()
}

func (redisMQ *RedisMQClient) Close() error {
	if redisMQ.redisClient == nil {
		return nil
	}

	err := redisMQ.redisClient.Close()
	redisMQ.redisClient = nil

	return err
}
