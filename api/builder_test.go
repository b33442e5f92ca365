package api_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/internal/testutil"
)

type sampleFields struct {
	Congress   *int          `param:"congress" validate:"required"`
	BillType   *api.BillType `param:"billType" validate:"required,enum"`
	BillNumber *int          `param:"billNumber" validate:"required"`
	Format     api.Format    `param:"format" validate:"enum"`
	Sort       *api.Sort     `param:"sort" validate:"omitempty,enum"`
}

func ptr[T any](v T) *T { return &v }

func TestCheckFieldsAccepts(t *testing.T) {
	t.Parallel()
	f := sampleFields{
		Congress:   ptr(0),
		BillType:   ptr(api.BillTypeHR),
		BillNumber: ptr(3076),
	}
	assert.NoError(t, api.CheckFields("sample", &f))

	f.Format = api.FormatXML
	f.Sort = ptr(api.SortDesc)
	assert.NoError(t, api.CheckFields("sample", &f))
}

func TestCheckFieldsReportsFirstMissing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		fields sampleFields
		want   string
	}{
		{name: "nothing set", fields: sampleFields{}, want: "congress"},
		{name: "type missing", fields: sampleFields{Congress: ptr(117)}, want: "billType"},
		{
			name:   "number missing",
			fields: sampleFields{Congress: ptr(117), BillType: ptr(api.BillTypeS)},
			want:   "billNumber",
		},
		{
			name:   "congress missing after others",
			fields: sampleFields{BillType: ptr(api.BillTypeS), BillNumber: ptr(1)},
			want:   "congress",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := api.CheckFields("sample", &tt.fields)
			testutil.AssertMissingField(t, err, tt.want)
		})
	}
}

func TestCheckFieldsRejectsUnknownVocabulary(t *testing.T) {
	t.Parallel()
	f := sampleFields{
		Congress:   ptr(117),
		BillType:   ptr(api.BillType("HR")),
		BillNumber: ptr(1),
	}
	err := api.CheckFields("sample", &f)
	require.Error(t, err)
	assert.False(t, errors.Is(err, api.ErrMissingField))

	var inv *api.InvalidFieldError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "billType", inv.Field)
	assert.Equal(t, "sample: invalid value \"HR\" for `billType`", err.Error())

	f.BillType = ptr(api.BillTypeHR)
	f.Sort = ptr(api.Sort("up"))
	err = api.CheckFields("sample", &f)
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "sort", inv.Field)
}
