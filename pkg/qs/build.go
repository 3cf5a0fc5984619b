package qs

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/value"
)

// The builder works on a small mutable tree (string | *list | *dict) and is
// frozen into immutable values once all pairs are merged.

type list struct {
	items map[int]any
	next  int
}

type dict struct {
	m map[string]any
}

func newList() *list { return &list{items: make(map[int]any)} }

func newDict() *dict { return &dict{m: make(map[string]any)} }

func (l *list) set(i int, v any) {
	l.items[i] = v
	if i >= l.next {
		l.next = i + 1
	}
}

func (l *list) push(v any) { l.set(l.next, v) }

func build(pairs []Pair, o Options) value.Value {
	root := newDict()
	for _, p := range pairs {
		segs := splitKey(p.Key, o)
		root.m[segs[0]] = insert(root.m[segs[0]], segs[1:], p.Value, o)
	}
	return freeze(root)
}

func insert(cur any, segs []string, val string, o Options) any {
	if len(segs) == 0 {
		return mergeLeaf(cur, val)
	}
	seg, rest := segs[0], segs[1:]

	// "a[]" appends.
	if seg == "" {
		if d, ok := cur.(*dict); ok {
			key := strconv.Itoa(len(d.m))
			d.m[key] = insert(nil, rest, val, o)
			return d
		}
		l := toList(cur)
		l.push(insert(nil, rest, val, o))
		return l
	}

	// "a[0]" indexes while the index is within ArrayLimit.
	if idx, ok := arrayIndex(seg, o.ArrayLimit); ok {
		if d, ok := cur.(*dict); ok {
			d.m[seg] = insert(d.m[seg], rest, val, o)
			return d
		}
		l := toList(cur)
		l.set(idx, insert(l.items[idx], rest, val, o))
		return l
	}

	// A scalar meeting a nested key keeps both, side by side.
	if s, ok := cur.(string); ok {
		d := newDict()
		d.m[seg] = insert(nil, rest, val, o)
		l := newList()
		l.push(s)
		l.push(d)
		return l
	}

	d := toDict(cur)
	d.m[seg] = insert(d.m[seg], rest, val, o)
	return d
}

func mergeLeaf(cur any, val string) any {
	switch c := cur.(type) {
	case nil:
		return val
	case string:
		l := newList()
		l.push(c)
		l.push(val)
		return l
	case *list:
		c.push(val)
		return c
	default:
		l := newList()
		l.push(c)
		l.push(val)
		return l
	}
}

func toList(cur any) *list {
	switch c := cur.(type) {
	case *list:
		return c
	case string:
		l := newList()
		l.push(c)
		return l
	default:
		return newList()
	}
}

func toDict(cur any) *dict {
	switch c := cur.(type) {
	case *dict:
		return c
	case *list:
		d := newDict()
		for i, v := range c.items {
			d.m[strconv.Itoa(i)] = v
		}
		return d
	default:
		return newDict()
	}
}

func arrayIndex(seg string, limit int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i > limit || strconv.Itoa(i) != seg {
		return 0, false
	}
	return i, true
}

// splitKey expands "a[b][c]" into ["a", "b", "c"]. Keys without a usable
// parent ("[a]", "a[b") stay literal.
func splitKey(key string, o Options) []string {
	if o.AllowDots {
		key = dotsToBrackets(key)
	}

	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return []string{key}
	}

	segs := []string{key[:open]}
	rest := key[open:]
	for depth := 0; depth < o.Depth && strings.HasPrefix(rest, "["); depth++ {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		inner := rest[1:end]
		if strings.IndexByte(inner, '[') >= 0 {
			break
		}
		segs = append(segs, inner)
		rest = rest[end+1:]
	}

	if len(segs) == 1 {
		return []string{key}
	}
	if rest != "" {
		segs = append(segs, rest)
	}
	return segs
}

// dotsToBrackets rewrites "a.b.c[d]" as "a[b][c][d]". Dots inside brackets
// and empty dot segments are left alone.
func dotsToBrackets(key string) string {
	if strings.IndexByte(key, '.') < 0 {
		return key
	}

	var b strings.Builder
	depth := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '[':
			depth++
			b.WriteByte(c)
		case c == ']':
			if depth > 0 {
				depth--
			}
			b.WriteByte(c)
		case c == '.' && depth == 0:
			j := i + 1
			for j < len(key) && key[j] != '.' && key[j] != '[' {
				j++
			}
			if j == i+1 {
				b.WriteByte(c)
				continue
			}
			b.WriteByte('[')
			b.WriteString(key[i+1 : j])
			b.WriteByte(']')
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func freeze(node any) value.Value {
	switch n := node.(type) {
	case string:
		return value.String(n)
	case *list:
		idx := make([]int, 0, len(n.items))
		for i := range n.items {
			idx = append(idx, i)
		}
		slices.Sort(idx)
		items := make([]value.Value, len(idx))
		for j, i := range idx {
			items[j] = freeze(n.items[i])
		}
		return value.Seq(items...)
	case *dict:
		m := make(map[string]value.Value, len(n.m))
		for k, v := range n.m {
			m[k] = freeze(v)
		}
		return value.Map(m)
	default:
		return value.Missing()
	}
}
