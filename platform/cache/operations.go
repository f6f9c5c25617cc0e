package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

// Get returns redis.ErrNil when key is absent.
func Get(key string, conn redis.Conn) ([]byte, error) {
	return redis.Bytes(conn.Do("GET", key))
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

// Set stores value under key. A zero ttl keeps it until it is deleted.
func Set(key string, value interface{}, ttl time.Duration, conn redis.Conn) error {
	var err error
	if ttl > 0 {
		_, err = redis.String(conn.Do("SET", key, value, "PX", ttl.Milliseconds()))
	} else {
		_, err = redis.String(conn.Do("SET", key, value))
	}
	return err
}
