package render

// Context is the string-keyed value bag threaded through rendering. Each
// recursive render step derives its own copy via Clone, so a value inserted
// for one page is never observable in a sibling's context. Stored values are
// treated as immutable: Clone snapshots the mapping, not the values.
type Context struct {
	engine *Engine
	values map[string]any
}

// Context returns a fresh root context bound to this engine.
func (e *Engine) Context() Context {
	return Context{engine: e, values: make(map[string]any)}
}

func (c Context) Clone() Context {
	values := make(map[string]any, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	return Context{engine: c.engine, values: values}
}

func (c Context) Insert(key string, value any) {
	c.values[key] = value
}

func (c Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Markdown renders a markdown body through the engine's shared renderer.
func (c Context) Markdown(src []byte) (MarkdownResult, error) {
	return c.engine.md.Render(src)
}

// Render submits the named template together with this context's values to
// the engine, writing index.html under dest.
func (c Context) Render(name, dest string) error {
	return c.engine.render(name, c.values, dest)
}
