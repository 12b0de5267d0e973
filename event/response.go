// SPDX-License-Identifier: Unlicense OR MIT

package event

// Response is a widget's reply to a delivered event: the event was
// used, was not handled, or produced a message value for an ancestor to
// interpret. Messages replace per-widget callback closures: a child
// returns a tagged value and its container decides what it means.
type Response struct {
	kind responseKind
	msg  any
}

type responseKind uint8

const (
	responseUsed responseKind = iota
	responseUnhandled
	responseMsg
)

// Used reports that the event was handled.
func Used() Response {
	return Response{kind: responseUsed}
}

// Unhandled reports that the event was not handled; the caller may
// apply fallback behaviour.
func Unhandled() Response {
	return Response{kind: responseUnhandled}
}

// Msg reports that the event was handled and produced the message v.
func Msg(v any) Response {
	return Response{kind: responseMsg, msg: v}
}

// IsUnhandled reports whether the event went unhandled.
func (r Response) IsUnhandled() bool {
	return r.kind == responseUnhandled
}

// Message returns the message produced by the handler, if any.
func (r Response) Message() (any, bool) {
	return r.msg, r.kind == responseMsg
}
