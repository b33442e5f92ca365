// Package mcpserver exposes read-only congress.gov lookups via MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/bill"
	"github.com/cdg-go/cdg/api/congress"
	"github.com/cdg-go/cdg/api/law"
	"github.com/cdg-go/cdg/api/member"
)

// RegisterTools registers all congress.gov MCP tools on the given server.
func RegisterTools(server *mcp.Server, client api.Client) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_bill",
			Description: "Get a bill by congress, type (hr, s, hjres, sjres, hconres, sconres, hres, sres) and number",
		},
		getBillHandler(client),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_bills",
			Description: "List recently updated bills, optionally for one congress and bill type",
		},
		listBillsHandler(client),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_bill_actions",
			Description: "List the actions taken on a bill",
		},
		listBillActionsHandler(client),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_member",
			Description: "Get a member of congress by bioguide ID",
		},
		getMemberHandler(client),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_congress",
			Description: "Get a congress and its sessions; omit congress for the current one",
		},
		getCongressHandler(client),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_law",
			Description: "Get the bill behind a public (pub) or private (priv) law",
		},
		getLawHandler(client),
	)
}

type billInput struct {
	Congress   int    `json:"congress"`
	BillType   string `json:"bill_type"`
	BillNumber int    `json:"bill_number"`
}

// billPageInput addresses a bill sub-resource list.
type billPageInput struct {
	Congress   int    `json:"congress"`
	BillType   string `json:"bill_type"`
	BillNumber int    `json:"bill_number"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

func getBillHandler(c api.Client) mcp.ToolHandlerFor[billInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input billInput) (*mcp.CallToolResult, any, error) {
		if input.Congress <= 0 || input.BillType == "" || input.BillNumber <= 0 {
			return errorResult("congress, bill_type and bill_number are required"), nil, nil
		}

		e, err := bill.NewBillBuilder().
			Congress(input.Congress).
			BillType(api.BillType(input.BillType)).
			BillNumber(input.BillNumber).
			Build()
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "get_bill", e, c)
	}
}

type listBillsInput struct {
	Congress int    `json:"congress,omitempty"`
	BillType string `json:"bill_type,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

func listBillsHandler(c api.Client) mcp.ToolHandlerFor[listBillsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input listBillsInput) (*mcp.CallToolResult, any, error) {
		var (
			e   api.Endpoint
			err error
		)
		switch {
		case input.BillType != "" && input.Congress <= 0:
			return errorResult("bill_type requires congress"), nil, nil
		case input.BillType != "":
			b := bill.NewByTypeBuilder().Congress(input.Congress).BillType(api.BillType(input.BillType))
			if input.Offset > 0 {
				b.Offset(input.Offset)
			}
			if input.Limit > 0 {
				b.Limit(input.Limit)
			}
			e, err = b.Build()
		case input.Congress > 0:
			b := bill.NewByCongressBuilder().Congress(input.Congress)
			if input.Offset > 0 {
				b.Offset(input.Offset)
			}
			if input.Limit > 0 {
				b.Limit(input.Limit)
			}
			e, err = b.Build()
		default:
			b := bill.NewListBuilder()
			if input.Offset > 0 {
				b.Offset(input.Offset)
			}
			if input.Limit > 0 {
				b.Limit(input.Limit)
			}
			e, err = b.Build()
		}
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "list_bills", e, c)
	}
}

func listBillActionsHandler(c api.Client) mcp.ToolHandlerFor[billPageInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input billPageInput) (*mcp.CallToolResult, any, error) {
		if input.Congress <= 0 || input.BillType == "" || input.BillNumber <= 0 {
			return errorResult("congress, bill_type and bill_number are required"), nil, nil
		}

		b := bill.NewActionsBuilder().
			Congress(input.Congress).
			BillType(api.BillType(input.BillType)).
			BillNumber(input.BillNumber)
		if input.Offset > 0 {
			b.Offset(input.Offset)
		}
		if input.Limit > 0 {
			b.Limit(input.Limit)
		}
		e, err := b.Build()
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "list_bill_actions", e, c)
	}
}

type memberInput struct {
	BioguideID string `json:"bioguide_id"`
}

func getMemberHandler(c api.Client) mcp.ToolHandlerFor[memberInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input memberInput) (*mcp.CallToolResult, any, error) {
		if input.BioguideID == "" {
			return errorResult("bioguide_id is required"), nil, nil
		}

		e, err := member.NewMemberBuilder().BioguideID(input.BioguideID).Build()
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "get_member", e, c)
	}
}

type congressInput struct {
	Congress int `json:"congress,omitempty"`
}

func getCongressHandler(c api.Client) mcp.ToolHandlerFor[congressInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input congressInput) (*mcp.CallToolResult, any, error) {
		if input.Congress < 0 {
			return errorResult("congress must be positive"), nil, nil
		}

		var (
			e   api.Endpoint
			err error
		)
		if input.Congress == 0 {
			e, err = congress.NewCurrentBuilder().Build()
		} else {
			e, err = congress.NewCongressBuilder().Congress(input.Congress).Build()
		}
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "get_congress", e, c)
	}
}

type lawInput struct {
	Congress  int    `json:"congress"`
	LawType   string `json:"law_type"`
	LawNumber int    `json:"law_number"`
}

func getLawHandler(c api.Client) mcp.ToolHandlerFor[lawInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input lawInput) (*mcp.CallToolResult, any, error) {
		if input.Congress <= 0 || input.LawNumber <= 0 {
			return errorResult("congress and law_number are required"), nil, nil
		}
		if input.LawType == "" {
			input.LawType = string(api.LawTypePublic)
		}

		e, err := law.NewLawBuilder().
			Congress(input.Congress).
			LawType(api.LawType(input.LawType)).
			LawNumber(input.LawNumber).
			Build()
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return query(ctx, "get_law", e, c)
	}
}

func query(ctx context.Context, tool string, e api.Endpoint, c api.Client) (*mcp.CallToolResult, any, error) {
	res, err := api.Query[map[string]any](ctx, e, c)
	if err != nil {
		if status, ok := api.HTTPStatus(err); ok && status == 404 {
			return errorResult(fmt.Sprintf("%s: not found", tool)), nil, nil
		}
		return nil, nil, fmt.Errorf("%s: %w", tool, err)
	}
	return textResult(res)
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
