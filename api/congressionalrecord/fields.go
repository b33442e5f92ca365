package congressionalrecord

import "github.com/cdg-go/cdg/api"

type listFields struct {
	Format api.Format `param:"format" validate:"enum"`
	Year   *int       `param:"y"`
	Month  *int       `param:"m"`
	Day    *int       `param:"d"`
	Offset *int       `param:"offset"`
	Limit  *int       `param:"limit"`
}
