package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveStore(t *testing.T) {
	errMissing := errors.New("missing")
	isMissing := func(err error) bool { return errors.Is(err, errMissing) }

	ObserveStore("test", "get", nil, isMissing)
	ObserveStore("test", "get", errMissing, isMissing)
	ObserveStore("test", "get", errors.New("disk"), isMissing)
	ObserveStore("test", "get", errors.New("disk"), nil)

	require.Equal(t, 1.0, testutil.ToFloat64(StoreOperations.WithLabelValues("test", "get", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(StoreOperations.WithLabelValues("test", "get", "rejected")))
	require.Equal(t, 2.0, testutil.ToFloat64(StoreOperations.WithLabelValues("test", "get", "error")))
}

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterCollectors(reg) })
	require.Panics(t, func() { RegisterCollectors(reg) })
}
