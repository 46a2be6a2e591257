//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"sync"
)

// TestSuite bundles the backing containers a test package needs. Postgres
// always starts; Kafka and Wiremock only when the options ask for them.
type TestSuite struct {
	Postgres *PostgresContainer
	Kafka    *KafkaContainer
	Wiremock *WiremockContainer
}

type SuiteOptions struct {
	WithKafka    bool
	WithWiremock bool
	MappingsPath string // Wiremock stub mappings directory
}

// NewTestSuite starts the requested containers concurrently and tears
// everything down again if any of them fails to come up.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}

	var wg sync.WaitGroup
	failures := make(chan error, 3)

	start := func(name string, run func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(); err != nil {
				failures <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	start("postgres", func() error {
		pg, err := NewPostgres(ctx)
		suite.Postgres = pg
		return err
	})
	if opts.WithKafka {
		start("kafka", func() error {
			k, err := NewKafka(ctx)
			suite.Kafka = k
			return err
		})
	}
	if opts.WithWiremock {
		start("wiremock", func() error {
			w, err := NewWiremock(ctx, opts.MappingsPath)
			suite.Wiremock = w
			return err
		})
	}

	wg.Wait()
	close(failures)

	var errs []error
	for err := range failures {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		suite.Cleanup(ctx)
		return nil, fmt.Errorf("start test containers: %v", errs)
	}
	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Wiremock != nil {
		s.Wiremock.Cleanup(ctx)
	}
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Cleanup(ctx)
	}
}
