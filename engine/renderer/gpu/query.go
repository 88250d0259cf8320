package gpu

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// Query is a primitive counter following Idle → Running → Ended. An ended
// query may be begun again, which discards the previous result.
//
// Result blocks until the driver has finished the query. It never returns a
// value for a query that has not been ended; TryResult is the polling variant.
type Query struct {
	Object
	api    QueryAPI
	target metadata.QueryTarget
	state  metadata.QueryState
}

func NewQuery(api QueryAPI, target metadata.QueryTarget) (*Query, error) {
	id, err := api.CreateQuery(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s query: %w", target, err)
	}
	core.LogDebug("query %d created for %s", id, target)
	return WrapQuery(api, id, target, metadata.ObjectFlagDeleteOnDestruction|metadata.ObjectFlagCreated), nil
}

// WrapQuery adopts an existing native query. Without
// metadata.ObjectFlagDeleteOnDestruction the query is only borrowed.
func WrapQuery(api QueryAPI, id uint32, target metadata.QueryTarget, flags metadata.ObjectFlag) *Query {
	return &Query{
		Object: newObject("query", id, flags, api.DeleteQuery),
		api:    api,
		target: target,
		state:  metadata.QueryStateIdle,
	}
}

// Release hands the native query over to the caller. A running query is not
// released, since a new wrapper could not tell it is still counting; End it
// first. Otherwise the state goes back to Idle.
func (q *Query) Release() uint32 {
	if q.state == metadata.QueryStateRunning {
		core.LogError("query %d: release called while running", q.id)
		return metadata.InvalidID
	}
	q.state = metadata.QueryStateIdle
	return q.Object.Release()
}

func (q *Query) Target() metadata.QueryTarget {
	return q.target
}

func (q *Query) State() metadata.QueryState {
	return q.state
}

func (q *Query) Begin() error {
	if q.id == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if q.state == metadata.QueryStateRunning {
		core.LogError("query %d: begin called while running", q.id)
		return fmt.Errorf("query %d: %w", q.id, core.ErrQueryRunning)
	}
	if err := q.api.BeginQuery(q.id, q.target); err != nil {
		return fmt.Errorf("query %d: begin: %w", q.id, err)
	}
	q.state = metadata.QueryStateRunning
	return nil
}

func (q *Query) End() error {
	if q.id == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if q.state != metadata.QueryStateRunning {
		return fmt.Errorf("query %d is %s: %w", q.id, q.state, core.ErrQueryNotRunning)
	}
	if err := q.api.EndQuery(q.id, q.target); err != nil {
		return fmt.Errorf("query %d: end: %w", q.id, err)
	}
	q.state = metadata.QueryStateEnded
	return nil
}

// ResultAvailable polls the driver. Right after End it usually reports
// false; callers poll until true or call Result to wait.
func (q *Query) ResultAvailable() (bool, error) {
	if err := q.checkEnded(); err != nil {
		return false, err
	}
	return q.api.QueryResultAvailable(q.id)
}

// Result waits for the driver and returns the counted primitives.
func (q *Query) Result() (uint64, error) {
	if err := q.checkEnded(); err != nil {
		return 0, err
	}
	return q.api.QueryResult(q.id)
}

// TryResult returns the result only if the driver already has it.
func (q *Query) TryResult() (uint64, bool, error) {
	available, err := q.ResultAvailable()
	if err != nil || !available {
		return 0, false, err
	}
	result, err := q.api.QueryResult(q.id)
	if err != nil {
		return 0, false, err
	}
	return result, true, nil
}

func (q *Query) checkEnded() error {
	if q.id == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if q.state != metadata.QueryStateEnded {
		core.LogError("query %d: result requested while %s", q.id, q.state)
		return fmt.Errorf("query %d is %s: %w", q.id, q.state, core.ErrQueryNotEnded)
	}
	return nil
}
