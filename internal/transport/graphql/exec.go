package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

//go:embed schema.graphqls
var schemaSDL string

// Schema is the parsed read schema.
var Schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is a GraphQL result. Data is omitted when the request failed
// before execution.
type Response struct {
	Data   any           `json:"data,omitempty"`
	Errors gqlerror.List `json:"errors,omitempty"`
}

// executor runs one validated query operation against the resolver.
type executor struct {
	schema    *ast.Schema
	resolvers map[string]fieldFunc
	present   func(ctx context.Context, err error) *gqlerror.Error
	vars      map[string]any

	mu   sync.Mutex
	errs gqlerror.List
}

// Execute parses, validates and runs req. Parse and validation errors are
// reported without data; field errors come back next to partial data.
func (h *Handler) Execute(ctx context.Context, req Request) *Response {
	doc, errs := gqlparser.LoadQuery(h.schema, req.Query)
	if len(errs) > 0 {
		return &Response{Errors: errs}
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return &Response{Errors: gqlerror.List{gqlerror.Errorf("operation %q not found", req.OperationName)}}
	}
	if op.Operation != ast.Query {
		return &Response{Errors: gqlerror.List{gqlerror.Errorf("%s operations are not supported", op.Operation)}}
	}

	vars, err := validator.VariableValues(h.schema, op, req.Variables)
	if err != nil {
		return &Response{Errors: gqlerror.List{asGQLError(err)}}
	}

	e := &executor{
		schema:    h.schema,
		resolvers: h.resolvers,
		present:   h.present,
		vars:      vars,
	}
	data, ok := e.executeFields(ctx, "Query", op.SelectionSet, nil, nil)

	resp := &Response{Errors: e.errs}
	if ok {
		resp.Data = data
	} else {
		resp.Data = json.RawMessage("null")
	}
	return resp
}

// collected is one response key with every field selection merged into it.
type collected struct {
	key    string
	fields []*ast.Field
}

func (c collected) subSelections() ast.SelectionSet {
	if len(c.fields) == 1 {
		return c.fields[0].SelectionSet
	}
	var set ast.SelectionSet
	for _, f := range c.fields {
		set = append(set, f.SelectionSet...)
	}
	return set
}

// collectFields flattens fragments and applies @skip and @include, keeping
// the first-seen order of response keys.
func (e *executor) collectFields(typeName string, set ast.SelectionSet, out []collected, visited map[string]bool) []collected {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if !e.included(s.Directives) {
				continue
			}
			key := s.Alias
			if key == "" {
				key = s.Name
			}
			merged := false
			for i := range out {
				if out[i].key == key {
					out[i].fields = append(out[i].fields, s)
					merged = true
					break
				}
			}
			if !merged {
				out = append(out, collected{key: key, fields: []*ast.Field{s}})
			}
		case *ast.InlineFragment:
			if !e.included(s.Directives) || (s.TypeCondition != "" && s.TypeCondition != typeName) {
				continue
			}
			out = e.collectFields(typeName, s.SelectionSet, out, visited)
		case *ast.FragmentSpread:
			if !e.included(s.Directives) || visited[s.Name] || s.Definition == nil {
				continue
			}
			if s.Definition.TypeCondition != typeName {
				continue
			}
			visited[s.Name] = true
			out = e.collectFields(typeName, s.Definition.SelectionSet, out, visited)
		}
	}
	return out
}

func (e *executor) included(dirs ast.DirectiveList) bool {
	if d := dirs.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(e.vars)["if"].(bool); skip {
			return false
		}
	}
	if d := dirs.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(e.vars)["if"].(bool); !include {
			return false
		}
	}
	return true
}

// executeFields resolves the selection set on parent. It reports false when
// a non-null field came back null, which nulls the parent in turn.
func (e *executor) executeFields(ctx context.Context, typeName string, set ast.SelectionSet, parent any, path ast.Path) (*orderedMap, bool) {
	fields := e.collectFields(typeName, set, nil, map[string]bool{})
	out := &orderedMap{}
	for _, cf := range fields {
		f := cf.fields[0]
		if f.Name == "__typename" {
			out.set(cf.key, typeName)
			continue
		}

		fieldPath := appendPath(path, ast.PathName(cf.key))
		v, ok := e.executeField(ctx, typeName, cf, parent, fieldPath)
		if !ok {
			return nil, false
		}
		out.set(cf.key, v)
	}
	return out, true
}

func (e *executor) executeField(ctx context.Context, typeName string, cf collected, parent any, path ast.Path) (any, bool) {
	f := cf.fields[0]
	if f.Definition == nil {
		e.addError(ctx, fmt.Errorf("field %s.%s is not supported", typeName, f.Name), path, f.Position)
		return nil, true
	}
	typ := f.Definition.Type

	val, err := e.resolve(ctx, typeName, f, parent)
	if err != nil {
		e.addError(ctx, err, path, f.Position)
		return nil, !typ.NonNull
	}
	return e.completeValue(ctx, typ, cf.subSelections(), val, path, f.Position)
}

func (e *executor) resolve(ctx context.Context, typeName string, f *ast.Field, parent any) (any, error) {
	if fn, ok := e.resolvers[typeName+"."+f.Name]; ok {
		return fn(ctx, parent, f.ArgumentMap(e.vars))
	}
	v, ok := tagged(parent, f.Name)
	if !ok {
		return nil, fmt.Errorf("no resolver for %s.%s", typeName, f.Name)
	}
	return v, nil
}

// completeValue shapes val by the schema type. List items are completed
// concurrently so loader calls of sibling items share a batch.
func (e *executor) completeValue(ctx context.Context, typ *ast.Type, sel ast.SelectionSet, val any, path ast.Path, pos *ast.Position) (any, bool) {
	if isNil(val) {
		if typ.NonNull {
			e.addError(ctx, errors.New("the requested element is null which the schema does not allow"), path, pos)
			return nil, false
		}
		return nil, true
	}

	if typ.Elem != nil {
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Slice {
			e.addError(ctx, fmt.Errorf("expected a list, got %T", val), path, pos)
			return nil, !typ.NonNull
		}

		items := make([]any, rv.Len())
		oks := make([]bool, rv.Len())
		var wg sync.WaitGroup
		for i := range rv.Len() {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				items[i], oks[i] = e.completeValue(ctx, typ.Elem, sel, rv.Index(i).Interface(), appendPath(path, ast.PathIndex(i)), pos)
			}(i)
		}
		wg.Wait()

		for _, ok := range oks {
			if !ok {
				return nil, !typ.NonNull
			}
		}
		return items, true
	}

	def := e.schema.Types[typ.NamedType]
	switch def.Kind {
	case ast.Scalar, ast.Enum:
		return serialize(val), true
	case ast.Object:
		obj, ok := e.executeFields(ctx, typ.NamedType, sel, val, path)
		if !ok {
			return nil, !typ.NonNull
		}
		return obj, true
	default:
		e.addError(ctx, fmt.Errorf("unsupported type kind %s", def.Kind), path, pos)
		return nil, !typ.NonNull
	}
}

func (e *executor) addError(ctx context.Context, err error, path ast.Path, pos *ast.Position) {
	gqlErr := e.present(ctx, err)
	gqlErr.Path = path
	if pos != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: pos.Line, Column: pos.Column}}
	}

	e.mu.Lock()
	e.errs = append(e.errs, gqlErr)
	e.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// tagged reads the struct field of obj whose graphql tag is name.
func tagged(obj any, name string) (any, bool) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		if rt.Field(i).Tag.Get("graphql") == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func serialize(val any) any {
	switch v := val.(type) {
	case uuid.UUID:
		return v.String()
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case *string:
		return *v
	}
	return val
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func appendPath(path ast.Path, el ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, el)
}

func asGQLError(err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}
	return &gqlerror.Error{Message: err.Error()}
}

// orderedMap is a JSON object that keeps the selection order of its keys.
type orderedMap struct {
	keys   []string
	values []any
}

func (m *orderedMap) set(key string, v any) {
	m.keys = append(m.keys, key)
	m.values = append(m.values, v)
}

func (m *orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
