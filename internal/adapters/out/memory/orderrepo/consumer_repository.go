package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"restaurant/internal/core/domain/model/consumer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ConsumerRepository implements ports.ConsumerRepository.
type ConsumerRepository struct {
	mu        sync.RWMutex
	consumers map[kernel.UUID]*consumer.Consumer
}

func NewConsumerRepository() *ConsumerRepository {
	return &ConsumerRepository{
		consumers: make(map[kernel.UUID]*consumer.Consumer),
	}
}

func (r *ConsumerRepository) Add(_ context.Context, c *consumer.Consumer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.consumers[c.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("consumer", fmt.Errorf("consumer %s already exists", c.ID()))
	}
	r.consumers[c.ID()] = c
	return nil
}

func (r *ConsumerRepository) Get(_ context.Context, id kernel.UUID) (*consumer.Consumer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.consumers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("consumer", id.String())
	}
	return c, nil
}
