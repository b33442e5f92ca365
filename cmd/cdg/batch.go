package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/bill"
)

type BatchCmd struct {
	Bills       []string `arg:"" name:"bill" help:"Bills as congress/type/number, for example 117/hr/3076."`
	Concurrency int      `help:"Maximum requests in flight." default:"4"`
}

// billRef is one parsed batch argument.
type billRef struct {
	congress int
	billType api.BillType
	number   int
}

func parseBillRef(s string) (billRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return billRef{}, fmt.Errorf("bill %q: want congress/type/number", s)
	}
	congressNum, err := strconv.Atoi(parts[0])
	if err != nil {
		return billRef{}, fmt.Errorf("bill %q: congress: %w", s, err)
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil {
		return billRef{}, fmt.Errorf("bill %q: number: %w", s, err)
	}
	return billRef{
		congress: congressNum,
		billType: api.BillType(strings.ToLower(parts[1])),
		number:   number,
	}, nil
}

// Run fetches every bill and prints them as one JSON array in argument
// order. The first failure cancels the remaining requests.
func (c *BatchCmd) Run(e *env) error {
	if e.format == api.FormatXML {
		return errors.New("batch supports json output only")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", c.Concurrency)
	}

	endpoints := make([]*bill.Bill, len(c.Bills))
	for i, s := range c.Bills {
		ref, err := parseBillRef(s)
		if err != nil {
			return err
		}
		endpoints[i], err = bill.NewBillBuilder().
			Congress(ref.congress).
			BillType(ref.billType).
			BillNumber(ref.number).
			Build()
		if err != nil {
			return fmt.Errorf("bill %q: %w", s, err)
		}
	}

	results := make([]map[string]any, len(endpoints))
	g, ctx := errgroup.WithContext(e.ctx)
	g.SetLimit(c.Concurrency)
	for i, ep := range endpoints {
		g.Go(func() error {
			v, err := api.Query[map[string]any](ctx, ep, e.client)
			if err != nil {
				return fmt.Errorf("bill %q: %w", c.Bills[i], err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return e.print(results)
}
