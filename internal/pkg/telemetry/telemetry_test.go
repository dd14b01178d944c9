package telemetry

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	l := logrus.New()
	l.SetOutput(io.Discard)

	shutdown := Setup("vetcare-web", logrus.NewEntry(l))
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned %v", err)
	}
}
