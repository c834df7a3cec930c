package metrics

//go:generate mockgen -destination=mock/mock_recorder.go -package=mockmetrics -source=metrics.go

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spot_the_spy"

// Command outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected" // a game rule said no
	OutcomeError    = "error"
)

// Recorder receives the counters the bot exports
type Recorder interface {
	// CommandHandled records one dispatched command and how it ended
	CommandHandled(command, outcome string, duration time.Duration)

	// NotificationFailed records an outbound message that could not be delivered
	NotificationFailed(kind string)

	// GameStarted records a lobby moving to running
	GameStarted(players int)

	// GameClosed records a teardown, reason is cancel or end
	GameClosed(reason string)
}

type prometheusRecorder struct {
	commands      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	started       prometheus.Histogram
	closed        *prometheus.CounterVec
}

// NewPrometheus creates a recorder and registers its collectors with reg
func NewPrometheus(reg prometheus.Registerer) (Recorder, error) {
	r := &prometheusRecorder{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled by the dispatcher.",
		}, []string{"command", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent handling a command.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Outbound messages that could not be delivered.",
		}, []string{"kind"}),
		started: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_players",
			Help:      "Roster size of started games.",
			Buckets:   prometheus.LinearBuckets(4, 1, 7),
		}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_closed_total",
			Help:      "Games torn down, by reason.",
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{r.commands, r.latency, r.notifications, r.started, r.closed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *prometheusRecorder) CommandHandled(command, outcome string, duration time.Duration) {
	r.commands.WithLabelValues(command, outcome).Inc()
	r.latency.WithLabelValues(command).Observe(duration.Seconds())
}

func (r *prometheusRecorder) NotificationFailed(kind string) {
	r.notifications.WithLabelValues(kind).Inc()
}

func (r *prometheusRecorder) GameStarted(players int) {
	r.started.Observe(float64(players))
}

func (r *prometheusRecorder) GameClosed(reason string) {
	r.closed.WithLabelValues(reason).Inc()
}

type noop struct{}

// Noop returns a recorder that drops everything
func Noop() Recorder {
	return noop{}
}

func (noop) CommandHandled(string, string, time.Duration) {}
func (noop) NotificationFailed(string)                    {}
func (noop) GameStarted(int)                              {}
func (noop) GameClosed(string)                            {}
