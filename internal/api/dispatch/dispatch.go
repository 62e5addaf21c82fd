// Package dispatch resolves an HTTP method plus up to two path segments into
// a named controller action and invokes it through a table built once at
// startup. The resolution is resource-agnostic: both the user and vacation
// controllers register their actions in their own Table.
package dispatch

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Resolution is the outcome of classifying a request against a resource.
type Resolution struct {
	// Action is the name of the controller action to run.
	Action string
	// ID is the numeric resource id when the second segment was numeric.
	ID int64
	// HasID distinguishes "no id" from id 0.
	HasID bool
	// Param is the loosely-typed third segment passed to named actions.
	Param string
}

// Resolve classifies (method, second segment, third segment):
//
//   - numeric second segment → id route, action chosen by method alone
//   - non-numeric second segment → named action with optional param
//   - no second segment → collection route, action chosen by method alone
func Resolve(method, segment, param string) Resolution {
	if segment != "" {
		if id, err := strconv.ParseInt(segment, 10, 64); err == nil {
			return Resolution{Action: methodAction(method, true), ID: id, HasID: true}
		}
		return Resolution{Action: segment, Param: param}
	}
	return Resolution{Action: methodAction(method, false)}
}

// methodAction maps an HTTP method to its conventional action name. An
// unmapped method falls through as its own action name, which no controller
// registers, so it surfaces as an unknown action.
func methodAction(method string, hasID bool) string {
	switch method {
	case http.MethodGet:
		if hasID {
			return "show"
		}
		return "index"
	case http.MethodPost:
		return "store"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "destroy"
	default:
		return method
	}
}

// HandlerFunc runs a resolved action.
type HandlerFunc func(c echo.Context, res Resolution) error

// Table holds a controller's action handlers. Registration happens at
// startup; lookups are read-only afterwards.
type Table struct {
	handlers map[string]HandlerFunc
}

func NewTable() *Table {
	return &Table{handlers: make(map[string]HandlerFunc)}
}

func (t *Table) Register(action string, h HandlerFunc) {
	t.handlers[action] = h
}

// Handle is the echo handler for every route of one resource. Unknown
// actions are rejected before any authorization runs, so unregistered
// routes never leak auth requirements.
func (t *Table) Handle(c echo.Context) error {
	res := Resolve(c.Request().Method, c.Param("segment"), c.Param("param"))

	h, ok := t.handlers[res.Action]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("Action '%s' not found", res.Action),
		})
	}
	return h(c, res)
}
