package metrics

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	PrometheusRegisterer() prometheus.Registerer
	GetBalancePrometheus() *BalancePrometheusMetrics
	GetRecurrencePrometheus() *RecurrencePrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	balanceMetrics    *BalancePrometheusMetrics
	recurrenceMetrics *RecurrencePrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:               reg,
		balanceMetrics:    newBalancePrometheusMetrics(reg),
		recurrenceMetrics: newRecurrencePrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetBalancePrometheus() *BalancePrometheusMetrics {
	return m.balanceMetrics
}

func (m *metrics) GetRecurrencePrometheus() *RecurrencePrometheusMetrics {
	return m.recurrenceMetrics
}
