// Package redis connects to Redis and provides a query cache shared by every
// process of a deployment.
//
// Connect retries until the server answers a ping:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// QueryCache plugs into the accessor in place of the in-process LRU:
//
//	acc := paramkit.New(paramkit.WithQueryCache(redis.NewQueryCacheFromConfig(client, cfg)))
//
// Entries are JSON encoded values keyed by an xxhash of the raw query string.
// Each entry also records the query it was built from, so a hash collision is
// a miss rather than a wrong answer. Redis errors never reach the caller: they
// are logged and the query is decoded again.
//
// Healthcheck adapts the client to httpserver.HealthCheckHandler.
package redis
