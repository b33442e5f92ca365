// Package api describes congress.gov endpoints and executes them.
//
// An Endpoint names a path and an ordered list of query parameters. Query
// resolves it against a Client, appends the parameters and the API key,
// sends one GET request and decodes the JSON response:
//
//	e, err := bill.NewBillBuilder().Congress(117).BillType(api.BillTypeHR).BillNumber(3076).Build()
//	if err != nil {
//		return err
//	}
//	res, err := api.Query[map[string]any](ctx, e, client)
//
// Failures are reported as *Error values classified by ErrorKind. Nothing is
// retried or cached.
package api
