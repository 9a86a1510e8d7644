package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/flixe/goapi/base/log"
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

const (
	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer counters before sending to statsd
	bufferMetrics = 10
)

var (
	cliMu sync.RWMutex
	cli   statsCli = &LogClient{}
)

// Init points every Service at the datadog agent on host:port. Without a host the metrics
// are written to the debug log.
func Init(host string, port int) error {
	if host == "" {
		setClient(&LogClient{})
		return nil
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	c, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.New failed")
		return err
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
	setClient(c)
	return nil
}

func setClient(c statsCli) {
	cliMu.Lock()
	defer cliMu.Unlock()
	cli = c
}

func client() statsCli {
	cliMu.RLock()
	defer cliMu.RUnlock()
	return cli
}

func bumpGauge(key string, val float64, tags []string) {
	if err := client().Gauge(key, val, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpAvg"}).Error("Bump fail")
	}
}

func bumpSum(key string, val float64, tags []string) {
	if err := client().Count(key, int64(val), tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Error("Bump fail")
	}
}

func bumpHistogram(key string, val float64, tags []string) {
	if err := client().Histogram(key, val, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

func bumpTime(key string, ms float64, tags []string) {
	if err := client().TimeInMilliseconds(key, ms, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpTime"}).Error("Bump fail")
	}
}
