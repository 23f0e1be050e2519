package geoip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=api_mocks_test.go -package=geoip

const (
	OffsetParam = "tz_offset"

	// offsets range from UTC-12 to UTC+14
	minOffsetMinutes = -12 * 60
	maxOffsetMinutes = 14 * 60

	tzCacheKeyPrefix = "ip-tz::"
	DefaultCacheTTL  = 7 * 24 * time.Hour
)

var (
	ErrInvalidOffset = errors.New("invalid timezone offset")
	ErrNoTimezone    = errors.New("no timezone for ip")
	ErrLocalAddress  = errors.New("local address has no timezone")
)

type ipLookup interface {
	GetIPInfo(ip net.IP) (*ipinfo.Core, error)
}

// Api resolves the viewer's UTC offset, either from the request or from the
// timezone of the client IP.
type Api struct {
	mu          sync.Mutex
	lookup      ipLookup
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewApi(ipInfoToken string, httpClient *http.Client, redisClient *redis.Client) *Api {
	return NewApiWithLookup(ipinfo.NewClient(httpClient, nil, ipInfoToken), redisClient)
}

func NewApiWithLookup(lookup ipLookup, redisClient *redis.Client) *Api {
	return &Api{
		lookup:      lookup,
		redisClient: redisClient,
		cacheTTL:    DefaultCacheTTL,
	}
}

// ParseOffset parses minutes east of UTC.
func ParseOffset(s string) (int, error) {
	offset, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	if offset < minOffsetMinutes || offset > maxOffsetMinutes {
		return 0, fmt.Errorf("%w: %d out of range", ErrInvalidOffset, offset)
	}
	return offset, nil
}

// OffsetMinutes returns the viewer offset for r at the instant now. An explicit
// tz_offset query param wins, otherwise the client IP timezone is used, and UTC
// when neither is available.
func (a *Api) OffsetMinutes(r *http.Request, now time.Time) int {
	if raw := r.URL.Query().Get(OffsetParam); raw != "" {
		offset, err := ParseOffset(raw)
		if err == nil {
			return offset
		}
		log.Debugf("ignoring request offset: %s", err)
	}

	userIp, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Debugf("offset minutes, read user ip: %s", err)
		return 0
	}

	tz, err := a.Timezone(r.Context(), userIp)
	if err != nil {
		log.Debugf("offset minutes, timezone for [%s]: %s", userIp, err)
		return 0
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Errorf("offset minutes, load location [%s]: %s", tz, err)
		return 0
	}

	_, offsetSeconds := now.In(loc).Zone()
	return offsetSeconds / 60
}

// Timezone returns the IANA timezone of the ip, cached in redis.
func (a *Api) Timezone(ctx context.Context, userIp string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geoIp.timezone")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", userIp))

	if userIp == pkg.LocalhostIP {
		return "", ErrLocalAddress
	}

	ip := net.ParseIP(userIp)
	if ip == nil {
		return "", fmt.Errorf("ip addr %s is invalid", userIp)
	}

	// concurrent dashboard requests from the same client would all miss the cache
	a.mu.Lock()
	defer a.mu.Unlock()

	cacheKey := tzCacheKeyPrefix + userIp
	cached, err := a.redisClient.Get(ctx, cacheKey).Result()
	switch {
	case err == nil && cached != "":
		span.SetAttributes(attribute.Bool("user.ip.from-cache", true))
		log.Tracef("found timezone for [%s] in redis cache", userIp)
		return cached, nil
	case err != nil && !errors.Is(err, redis.Nil):
		log.Errorf("failed to get timezone from redis for [%s]: %s", cacheKey, err)
	}
	span.SetAttributes(attribute.Bool("user.ip.from-cache", false))

	log.Debugf("will ask ipinfo for timezone of: %s", userIp)
	info, err := a.lookup.GetIPInfo(ip)
	if err != nil {
		return "", fmt.Errorf("ipinfo lookup: %w", err)
	}
	if info == nil || info.Timezone == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTimezone, userIp)
	}

	if err := a.redisClient.Set(ctx, cacheKey, info.Timezone, a.cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache timezone in redis for %s: %s", userIp, err)
	}

	return info.Timezone, nil
}
