package software

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

type query struct {
	target metadata.QueryTarget
	active bool
	ended  bool
	result uint64
	// polls left before the result reports available
	pending uint32
}

func (b *Backend) query(id uint32) (*query, error) {
	q, ok := b.queries.Owner(id).(*query)
	if !ok {
		return nil, fmt.Errorf("query %d: %w", id, core.ErrUnknownIdentifier)
	}
	return q, nil
}

func (b *Backend) CreateQuery(target metadata.QueryTarget) (uint32, error) {
	return b.queries.Acquire(&query{target: target}), nil
}

func (b *Backend) DeleteQuery(id uint32) error {
	q, _ := b.queries.Owner(id).(*query)
	if err := b.queries.Release(id); err != nil {
		return b.invalidDelete("query", id, err)
	}
	if q != nil && q.active {
		delete(b.activeQueries, q.target)
	}
	return nil
}

func (b *Backend) BeginQuery(id uint32, target metadata.QueryTarget) error {
	q, err := b.query(id)
	if err != nil {
		return err
	}
	if q.target != target {
		return fmt.Errorf("query %d was created for %s, not %s", id, q.target, target)
	}
	if other, ok := b.activeQueries[target]; ok && other != q {
		return fmt.Errorf("another %s query is already active", target)
	}
	q.active = true
	q.ended = false
	q.result = 0
	q.pending = 0
	b.activeQueries[target] = q
	return nil
}

func (b *Backend) EndQuery(id uint32, target metadata.QueryTarget) error {
	q, err := b.query(id)
	if err != nil {
		return err
	}
	if b.activeQueries[target] != q {
		return fmt.Errorf("query %d: %w", id, core.ErrQueryNotRunning)
	}
	delete(b.activeQueries, target)
	q.active = false
	q.ended = true
	q.pending = b.config.QueryLatency
	return nil
}

func (b *Backend) QueryResultAvailable(id uint32) (bool, error) {
	q, err := b.query(id)
	if err != nil {
		return false, err
	}
	if !q.ended {
		return false, fmt.Errorf("query %d: %w", id, core.ErrQueryNotEnded)
	}
	if q.pending > 0 {
		q.pending--
		return false, nil
	}
	return true, nil
}

func (b *Backend) QueryResult(id uint32) (uint64, error) {
	q, err := b.query(id)
	if err != nil {
		return 0, err
	}
	if !q.ended {
		return 0, fmt.Errorf("query %d: %w", id, core.ErrQueryNotEnded)
	}
	if q.pending > 0 {
		// the equivalent of a driver finish
		b.stats.Stalls++
		q.pending = 0
	}
	return q.result, nil
}

func (b *Backend) countQuery(target metadata.QueryTarget, primitives uint32) {
	if q, ok := b.activeQueries[target]; ok {
		q.result += uint64(primitives)
	}
}
