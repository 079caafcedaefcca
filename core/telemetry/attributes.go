package telemetry

import "go.opentelemetry.io/otel/attribute"

type MethodKind int

func (k MethodKind) String() string {
	switch k {
	case MethodStatic:
		return "static"
	case MethodMember:
		return "member"
	case MethodUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	MethodUnknown MethodKind = iota
	MethodStatic
	MethodMember
)

// KindOf maps the static flag of a wrapper to a MethodKind.
func KindOf(static bool) MethodKind {
	if static {
		return MethodStatic
	}
	return MethodMember
}

func MethodType(k MethodKind) attribute.KeyValue {
	return attribute.String("method_type", k.String())
}

func MethodName(name string) attribute.KeyValue {
	return attribute.String("method", name)
}

func ArgCount(n int) attribute.KeyValue {
	return attribute.Int("arg_count", n)
}
