package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cdg-go/cdg/api"
)

// env carries what every command needs once flags and configuration are
// resolved.
type env struct {
	ctx    context.Context
	client api.Client
	format api.Format
	offset int
	limit  int
	out    io.Writer
}

type formatter[B any] interface {
	Format(api.Format) B
}

type pager[B any] interface {
	Format(api.Format) B
	Offset(int) B
	Limit(int) B
}

func formatted[B formatter[B]](e *env, b B) B {
	return b.Format(e.format)
}

func paged[B pager[B]](e *env, b B) B {
	b.Format(e.format)
	if e.offset > 0 {
		b.Offset(e.offset)
	}
	if e.limit > 0 {
		b.Limit(e.limit)
	}
	return b
}

// run builds the endpoint and writes its response.
func run[E api.Endpoint](e *env, build func() (E, error)) error {
	ep, err := build()
	if err != nil {
		return err
	}
	return e.emit(ep)
}

// emit writes XML bodies verbatim and re-indents JSON ones.
func (e *env) emit(ep api.Endpoint) error {
	if e.format == api.FormatXML {
		resp, err := api.QueryRaw(e.ctx, ep, e.client)
		if err != nil {
			return err
		}
		_, err = e.out.Write(resp.Body)
		return err
	}

	v, err := api.Query[map[string]any](e.ctx, ep, e.client)
	if err != nil {
		return err
	}
	return e.print(v)
}

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
