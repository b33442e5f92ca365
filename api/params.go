package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ParamValue is implemented by types with a fixed query string form.
type ParamValue interface {
	AsValue() string
}

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) AsValue() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Param is a single query string pair.
type Param struct {
	Key   string
	Value string
}

// QueryParams is an ordered list of query parameters. Keys may repeat.
type QueryParams struct {
	params []Param
}

// Push appends key with the encoded value.
func (p *QueryParams) Push(key string, value any) *QueryParams {
	p.params = append(p.params, Param{Key: key, Value: EncodeValue(value)})
	return p
}

// PushOpt appends key only when value is present. A nil value or a nil
// pointer is absent; a non-nil pointer is dereferenced.
func (p *QueryParams) PushOpt(key string, value any) *QueryParams {
	if value == nil {
		return p
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return p
		}
		value = rv.Elem().Interface()
	}
	return p.Push(key, value)
}

// Len returns the number of pairs.
func (p *QueryParams) Len() int { return len(p.params) }

// Pairs returns a copy of the pairs in insertion order.
func (p *QueryParams) Pairs() []Param {
	out := make([]Param, len(p.params))
	copy(out, p.params)
	return out
}

// Encode returns the form-encoded query string in insertion order.
func (p *QueryParams) Encode() string {
	var sb strings.Builder
	for i, kv := range p.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.Value))
	}
	return sb.String()
}

// AddToURL appends every pair to the query of u, after any pairs already
// present.
func (p *QueryParams) AddToURL(u *url.URL) {
	for _, kv := range p.params {
		AppendQuery(u, kv.Key, kv.Value)
	}
}

// AppendQuery appends a single form-encoded pair to the query of u without
// reordering the existing query.
func AppendQuery(u *url.URL, key, value string) {
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)
	if u.RawQuery == "" {
		u.RawQuery = pair
		return
	}
	u.RawQuery += "&" + pair
}

// EncodeValue returns the canonical query string form of v.
//
// Date-times are written in UTC with second precision and a trailing Z.
func EncodeValue(v any) string {
	switch x := v.(type) {
	case ParamValue:
		return x.AsValue()
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	case time.Time:
		return x.UTC().Truncate(time.Second).Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}
