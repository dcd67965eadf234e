// Package definite provides a small embeddable finite state machine driven
// by a declared table of allowed transitions.
//
// A machine is built from a Transitions table mapping each state name to
// the states reachable from it (a nil slice marks a terminal state) and a
// default starting state:
//
//	machine, err := definite.New(definite.Transitions{
//	    "draft":           {"awaiting_review", "rejected"},
//	    "awaiting_review": {"draft", "reviewed", "rejected"},
//	    "reviewed":        {"published", "rejected"},
//	    "published":       nil,
//	    "rejected":        {"draft"},
//	}, "draft")
//
// Transitions are validated against the table; an illegal target returns
// ErrInvalidState or ErrTransitionNotAllowed and leaves the state
// untouched:
//
//	err = machine.Transition("awaiting_review")
//
// Handlers registered at construction run during a transition, before the
// state commits. The wildcard handler (registered with WithAnyHandler or
// under the Any key) always runs first, then the handler for the target
// state. A handler error abandons the transition:
//
//	machine, err := definite.New(table, "draft",
//	    definite.WithObject(post),
//	    definite.WithAnyHandler(func(state string, obj any) error {
//	        obj.(*NewsPost).State = state
//	        return obj.(*NewsPost).Save()
//	    }),
//	    definite.WithHandler("published", func(state string, obj any) error {
//	        obj.(*NewsPost).PubDate = time.Now().UTC()
//	        return nil
//	    }),
//	)
//
// Transition tables can also be loaded at runtime from JSON or YAML
// documents with FromJSON and FromYAML.
//
// A Machine is not safe for concurrent use; each instance should be owned
// and driven by a single goroutine.
package definite
