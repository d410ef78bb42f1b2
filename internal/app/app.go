// Package app wires configuration, logging, event sinks and the dispatcher.
package app

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-linear/internal/api"
	"github.com/huynhanx03/go-linear/internal/events"
	"github.com/huynhanx03/go-linear/internal/simulator"
	"github.com/huynhanx03/go-linear/pkg/database/redis"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
	"github.com/huynhanx03/go-linear/pkg/settings"
	"github.com/huynhanx03/go-linear/pkg/utils"
)

const defaultShutdownTimeout = 10

// App owns one simulator session.
type App struct {
	Config     *settings.Config
	Log        *zap.Logger
	Dispatcher *simulator.Dispatcher
}

// New builds the collection, the configured event sink and the dispatcher.
func New(cfg *settings.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	mode, err := linear.ParseMode(cfg.Collection.Mode)
	if err != nil {
		return nil, errors.Wrap(err, "collection mode")
	}
	coll, err := linear.NewInt64(cfg.Collection.Capacity, linear.WithMode[int64](mode))
	if err != nil {
		return nil, errors.Wrapf(err, "collection capacity %d", cfg.Collection.Capacity)
	}

	sink, err := NewSink(cfg, log)
	if err != nil {
		return nil, err
	}

	d := simulator.NewDispatcher(coll,
		simulator.WithLogger(log),
		simulator.WithSink(sink),
		simulator.WithSession(cfg.Events.Session),
		simulator.WithPublishTimeout(utils.ToDurationMs(cfg.Events.PublishTimeoutMs)),
	)

	log.Info("simulator ready",
		zap.String("session", d.Session()),
		zap.Int("capacity", coll.Capacity()),
		zap.Stringer("mode", coll.Mode()),
		zap.String("sink", cfg.Events.Sink),
	)

	return &App{Config: cfg, Log: log, Dispatcher: d}, nil
}

// NewSink connects the sink selected by cfg.Events.Sink. "all" fans out to
// Redis and Kafka. A positive async_buffer moves delivery off the command path.
func NewSink(cfg *settings.Config, log *zap.Logger) (events.Sink, error) {
	codec, err := events.NewCodec(cfg.Events.Codec)
	if err != nil {
		return nil, err
	}

	var sink events.Sink
	switch cfg.Events.Sink {
	case "", "none":
		return events.NopSink{}, nil
	case "redis":
		sink, err = newRedisSink(cfg, codec)
	case "kafka":
		sink, err = newKafkaSink(cfg, codec)
	case "all":
		sink, err = newFanOutSink(cfg, codec)
	default:
		return nil, errors.Errorf("unknown event sink %q", cfg.Events.Sink)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Events.AsyncBuffer > 0 {
		async := events.NewAsyncSink(sink, cfg.Events.AsyncBuffer,
			utils.ToDurationMs(cfg.Events.PublishTimeoutMs),
			func(ev *events.Event, err error) {
				log.Warn("deliver event failed", zap.Uint64("seq", ev.Seq), zap.Error(err))
			})
		log.Info("async event buffer",
			zap.Int("requested", cfg.Events.AsyncBuffer),
			zap.Int("capacity", async.Capacity()),
		)
		sink = async
	}
	return sink, nil
}

func newRedisSink(cfg *settings.Config, codec events.Codec) (events.Sink, error) {
	engine, err := redis.NewConnection(&cfg.Redis)
	if err != nil {
		return nil, errors.Wrap(err, "redis sink")
	}
	return events.NewRedisSink(engine, cfg.Events.Channel, codec), nil
}

func newKafkaSink(cfg *settings.Config, codec events.Codec) (events.Sink, error) {
	producer, err := events.DialKafka(cfg.Kafka)
	if err != nil {
		return nil, errors.Wrap(err, "kafka sink")
	}
	return events.NewKafkaSink(producer, cfg.Events.Topic, codec), nil
}

func newFanOutSink(cfg *settings.Config, codec events.Codec) (events.Sink, error) {
	r, err := newRedisSink(cfg, codec)
	if err != nil {
		return nil, err
	}
	k, err := newKafkaSink(cfg, codec)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return events.MultiSink{r, k}, nil
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port))
	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewRouter(a.Dispatcher, a.Log, a.Config.Server),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := a.Config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ToDuration(timeout))
		defer cancel()
		a.Log.Info("http server shutting down")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "http shutdown")
	})

	return g.Wait()
}

// Close releases the event sink.
func (a *App) Close() error {
	return a.Dispatcher.Close()
}
