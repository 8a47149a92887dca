package irc

import "regexp"

// Handler responds to a single Event pulled off an EventReader. It is
// the application task's hook (§5's "application task(s)") into the
// connection core — not part of the core itself.
type Handler interface {
	HandleEvent(w *Writer, e Event)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(w *Writer, e Event)

func (f HandlerFunc) HandleEvent(w *Writer, e Event) { f(w, e) }

// Router dispatches Events to handlers registered against an
// EventKind, a Message Code, or a free-form matcher, generalizing the
// teacher's command/text router to the wider Event union this package
// exposes (§11 of SPEC_FULL). Routes are tested in the order they were
// added; only the first match runs.
type Router struct {
	routes      []*route
	middlewares []Middleware
}

// Middleware wraps a Handler to produce another Handler, run in the
// order registered, for every event — matched or not.
type Middleware func(next Handler) Handler

func wrap(h Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

var noopHandler HandlerFunc = func(*Writer, Event) {}

// Use appends global middleware, run against every event regardless of
// whether a route matched.
func (r *Router) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

// HandleEvent implements Handler, making a Router itself usable
// wherever a Handler is expected (e.g. fed directly from an
// EventReader's receive loop).
func (r *Router) HandleEvent(w *Writer, e Event) {
	for _, rt := range r.routes {
		if rt.matches(e) {
			wrap(rt.h, r.middlewares...).HandleEvent(w, e)
			return
		}
	}
	wrap(noopHandler, r.middlewares...).HandleEvent(w, e)
}

// route is a single registered handler plus the matchers that gate it.
type route struct {
	h        Handler
	matchers []matcher
}

func (rt *route) matches(e Event) bool {
	for _, m := range rt.matchers {
		if !m.matches(e) {
			return false
		}
	}
	return true
}

type matcher interface {
	matches(Event) bool
}

type matcherFunc func(Event) bool

func (f matcherFunc) matches(e Event) bool { return f(e) }

type kindMatch struct{ kind EventKind }

func (m kindMatch) matches(e Event) bool { return e.Kind == m.kind }

type codeMatch struct{ code Code }

func (m codeMatch) matches(e Event) bool {
	return e.Kind == EventMessage && e.Message != nil && e.Message.Code == m.code
}

// On registers h for every event of the given kind (Disconnected,
// Reconnecting, Reconnected, Closed, ...).
func (r *Router) On(kind EventKind, h HandlerFunc) *route {
	rt := &route{h: h, matchers: []matcher{kindMatch{kind}}}
	r.routes = append(r.routes, rt)
	return rt
}

// OnCode registers h for EventMessage events carrying the given Code,
// e.g. irc.CmdPrivmsg or irc.RplWelcome.
func (r *Router) OnCode(code Code, h HandlerFunc) *route {
	rt := &route{h: h, matchers: []matcher{codeMatch{code}}}
	r.routes = append(r.routes, rt)
	return rt
}

// OnConnect attaches a handler called once the server has sent
// RPL_WELCOME (numeric 001), i.e. the connection has been accepted.
func (r *Router) OnConnect(h HandlerFunc) *route {
	return r.OnCode(RplWelcome, h)
}

// OnText attaches a handler for PRIVMSG events whose trailing text
// matches a wildcard pattern: `*` matches any text, `?` matches a
// single character, anything else must match literally.
func (r *Router) OnText(wildtext string, h HandlerFunc) *route {
	return r.OnCode(CmdPrivmsg, h).matchText(wildtext)
}

// OnTextRE attaches a handler for PRIVMSG events whose trailing text
// matches the Go regular expression expr.
func (r *Router) OnTextRE(expr string, h HandlerFunc) *route {
	return r.OnCode(CmdPrivmsg, h).textRE(expr)
}

// Matcher appends an arbitrary matcher to the route.
func (rt *route) Matcher(m matcher) *route {
	rt.matchers = append(rt.matchers, m)
	return rt
}

// MatchFunc appends f as a matcher on the route.
func (rt *route) MatchFunc(f func(Event) bool) *route {
	return rt.Matcher(matcherFunc(f))
}

var wildcardTokenRE = regexp.MustCompile(`\*|\?|[^*?]+`)

func (rt *route) matchText(pattern string) *route {
	expr := wildcardTokenRE.ReplaceAllStringFunc(pattern, func(tok string) string {
		switch tok {
		case "*":
			return ".*"
		case "?":
			return "."
		default:
			return regexp.QuoteMeta(tok)
		}
	})
	return rt.textRE("^" + expr + "$")
}

func (rt *route) textRE(expr string) *route {
	re := regexp.MustCompile(expr)
	return rt.MatchFunc(func(e Event) bool {
		if e.Kind != EventMessage || e.Message == nil {
			return false
		}
		text, err := e.Message.Text()
		if err != nil {
			return false
		}
		return re.MatchString(text)
	})
}

// MatchServer restricts a route to messages sourced from the server
// itself (as opposed to a user prefix).
func (rt *route) MatchServer() *route {
	return rt.MatchFunc(func(e Event) bool {
		return e.Kind == EventMessage && e.Message != nil && e.Message.Prefix.IsServer()
	})
}
