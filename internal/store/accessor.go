package store

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/keylock"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Accessor is the only way the rest of the app touches a Backend. It turns
// backend failures into StorageErrors, serialises upserts per key and
// notifies subscribers after every successful write.
type Accessor struct {
	backend        Backend
	locker         keylock.Locker
	metricsManager *metrics.Manager
	hub            *hub
	now            func() time.Time
	seenVersion    atomic.Int64
}

func NewAccessor(backend Backend, locker keylock.Locker, metricsManager *metrics.Manager) *Accessor {
	if locker == nil {
		locker = keylock.NewLocal()
	}
	return &Accessor{
		backend:        backend,
		locker:         locker,
		metricsManager: metricsManager,
		hub:            &hub{},
		now:            time.Now,
	}
}

func lockKey(kind Kind, date, key string) string {
	return string(kind) + "|" + date + "|" + key
}

// Get returns the record for (kind, date, key) or a NotFound error.
func (a *Accessor) Get(ctx context.Context, kind Kind, date, key string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(kind)), attribute.String("date", date))

	rec, err := a.backend.Get(ctx, kind, date, key)
	if err != nil {
		return nil, a.storageErr("get", err, "get %s %s/%s", kind, date, key)
	}
	return rec, nil
}

func (a *Accessor) List(ctx context.Context, kind Kind, q Query) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(kind)))

	recs, err := a.backend.List(ctx, kind, q)
	if err != nil {
		return nil, a.storageErr("list", err, "list %s", kind)
	}
	return recs, nil
}

// Upsert merges patch into the record stored under (kind, date, key). When
// there is no such record a new one is created from defaults with patch
// applied on top. The lookup and the write form one critical section, so
// after it returns there is exactly one record for the key.
func (a *Accessor) Upsert(ctx context.Context, kind Kind, date, key string, patch, defaults Patch) (*Record, error) {
	return a.Modify(ctx, kind, date, key, defaults, func(Patch) (Patch, error) {
		return patch, nil
	})
}

// Modify is Upsert for patches that depend on the stored data. fn receives
// the current fields (defaults when the record does not exist yet) and
// returns the patch to apply. An error from fn aborts the write.
func (a *Accessor) Modify(ctx context.Context, kind Kind, date, key string, defaults Patch, fn func(current Patch) (Patch, error)) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("date", date),
		attribute.String("key", key),
	)

	if !kind.IsValid() {
		return nil, apperr.Validation("unknown record kind %q", kind)
	}

	unlock, err := a.locker.Lock(ctx, lockKey(kind, date, key))
	if err != nil {
		return nil, a.storageErr("lock", err, "lock %s %s/%s", kind, date, key)
	}
	defer unlock()

	now := a.now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		Date:      date,
		Key:       key,
		CreatedAt: now,
	}

	existing, err := a.backend.Get(ctx, kind, date, key)
	switch {
	case err == nil:
		rec = *existing
	case apperr.IsNotFound(err):
		span.SetAttributes(attribute.Bool("created", true))
	default:
		return nil, a.storageErr("upsert", err, "read %s %s/%s", kind, date, key)
	}

	current, err := merge(rec.Data, defaults, nil)
	if err != nil {
		return nil, a.storageErr("upsert", err, "decode %s %s/%s", kind, date, key)
	}
	currentFields := Patch{}
	if err := json.Unmarshal(current, &currentFields); err != nil {
		return nil, a.storageErr("upsert", err, "decode %s %s/%s", kind, date, key)
	}

	patch, err := fn(currentFields)
	if err != nil {
		return nil, err
	}

	rec.Data, err = merge(current, nil, patch)
	if err != nil {
		return nil, a.storageErr("upsert", err, "merge %s %s/%s", kind, date, key)
	}
	rec.UpdatedAt = now

	saved, err := a.backend.Put(ctx, rec)
	if err != nil {
		return nil, a.storageErr("upsert", err, "write %s %s/%s", kind, date, key)
	}

	if a.metricsManager != nil {
		a.metricsManager.CounterUpserts.WithLabelValues(string(kind)).Inc()
	}
	a.hub.publish(Change{Kind: kind, Op: OpUpsert, Date: date, Key: key})

	return saved, nil
}

func (a *Accessor) Delete(ctx context.Context, kind Kind, date, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlock, err := a.locker.Lock(ctx, lockKey(kind, date, key))
	if err != nil {
		return a.storageErr("lock", err, "lock %s %s/%s", kind, date, key)
	}
	defer unlock()

	if err := a.backend.Delete(ctx, kind, date, key); err != nil {
		return a.storageErr("delete", err, "delete %s %s/%s", kind, date, key)
	}
	a.hub.publish(Change{Kind: kind, Op: OpDelete, Date: date, Key: key})
	return nil
}

// ReplaceAll wipes the store and loads records in one atomic step.
func (a *Accessor) ReplaceAll(ctx context.Context, records []Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.replace_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("records", len(records)))

	if err := a.backend.ReplaceAll(ctx, records); err != nil {
		return a.storageErr("replace_all", err, "replace all records")
	}
	for _, kind := range Kinds {
		a.hub.publish(Change{Kind: kind, Op: OpReplace})
	}
	return nil
}

// Subscribe calls fn after every successful write to kind (every table when
// kind is empty). The returned func cancels the subscription.
func (a *Accessor) Subscribe(kind Kind, fn func(Change)) func() {
	unsubscribe := a.hub.subscribe(kind, fn)
	a.updateSubscribersGauge()
	return func() {
		unsubscribe()
		a.updateSubscribersGauge()
	}
}

// Version returns the backend data version. Anything derived from the
// records at one version stays valid until the version moves.
func (a *Accessor) Version(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.version")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	v, err := a.backend.Version(ctx)
	if err != nil {
		return 0, a.storageErr("version", err, "get data version")
	}
	return v, nil
}

// Watch polls the data version every interval until ctx is done and
// publishes an OpSync change whenever it moved since the last poll. Writes
// through this accessor are published right away and once more by Watch.
func (a *Accessor) Watch(ctx context.Context, interval time.Duration) {
	if v, err := a.backend.Version(ctx); err == nil {
		a.seenVersion.Store(v)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.pollVersion(ctx)
		}
	}
}

func (a *Accessor) pollVersion(ctx context.Context) {
	v, err := a.backend.Version(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warnf("store watch: get data version: %s", err)
		}
		return
	}
	if a.seenVersion.Swap(v) != v {
		log.Tracef("store data version moved to %d", v)
		a.hub.publish(Change{Op: OpSync})
	}
}

func (a *Accessor) Close() error {
	return a.backend.Close()
}

func (a *Accessor) updateSubscribersGauge() {
	if a.metricsManager != nil {
		a.metricsManager.GaugeSubscribers.Set(float64(a.hub.count()))
	}
}

func (a *Accessor) storageErr(op string, err error, format string, args ...any) error {
	wrapped := apperr.Storage(err, format, args...)
	if apperr.IsNotFound(wrapped) || apperr.IsValidation(wrapped) {
		return wrapped
	}
	log.Errorf("store %s: %s", op, err)
	if a.metricsManager != nil {
		a.metricsManager.CounterStorageErrors.WithLabelValues(op).Inc()
	}
	return wrapped
}
