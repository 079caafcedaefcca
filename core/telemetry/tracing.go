package telemetry

import (
	"context"
	"errors"

	"github.com/sbalogh/rttr/core/variant"
	"github.com/sbalogh/rttr/core/wrapper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/sbalogh/rttr"

var errInvalidResult = errors.New("invocation returned an invalid result")

type TracingHandler struct {
	Tracer trace.Tracer
}

// NewTracingHandler takes its tracer from tp, or from the global provider
// when tp is nil.
func NewTracingHandler(tp trace.TracerProvider) *TracingHandler {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &TracingHandler{Tracer: tp.Tracer(instrumentationName)}
}

// StartNewSpan starts new span
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// Wrap decorates w so that each invocation runs in its own span named after
// the method. Invalid results mark the span as failed.
func (th *TracingHandler) Wrap(name string, w wrapper.Wrapper) wrapper.Wrapper {
	return &tracedWrapper{Wrapper: w, name: name, th: th}
}

type tracedWrapper struct {
	wrapper.Wrapper

	name string
	th   *TracingHandler
}

func (w *tracedWrapper) Invoke(obj variant.Instance, args ...variant.Argument) variant.Variant {
	span := w.start(len(args))
	defer span.End()

	return finish(span, w.Wrapper.Invoke(obj, args...))
}

func (w *tracedWrapper) InvokeVariadic(obj variant.Instance, args []variant.Argument) variant.Variant {
	span := w.start(len(args))
	defer span.End()

	return finish(span, w.Wrapper.InvokeVariadic(obj, args))
}

func (w *tracedWrapper) start(nargs int) trace.Span {
	_, span := w.th.StartNewSpan(
		context.Background(),
		"invoke "+w.name,
		trace.WithAttributes(
			MethodName(w.name),
			MethodType(KindOf(w.Wrapper.IsStatic())),
			ArgCount(nargs),
		),
	)

	return span
}

func finish(span trace.Span, res variant.Variant) variant.Variant {
	if res.IsValid() {
		span.SetStatus(codes.Ok, "")
		return res
	}

	err := res.Err()
	if err == nil {
		err = errInvalidResult
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return res
}
