package errorgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `key,code,message
data_not_found,DATA_NOT_FOUND,data not found
firstDate_required,FIRST_DATE_REQUIRED,first date is required
firstDate_date,DATE_INVALID,date must be formatted as YYYY-MM-DD
start_date,DATE_INVALID,date must be formatted as YYYY-MM-DD
`
	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, got.ErrorKeys, 4)
	assert.Equal(t, "ErrKeyDataNotFound", got.ErrorKeys[0].Key)
	assert.Equal(t, "ErrKeyFirstDateRequired", got.ErrorKeys[1].Key)
	assert.Len(t, got.ErrorCodes, 3, "codes are deduplicated")
	assert.Len(t, got.ErrorMessages, 3, "messages are deduplicated")
	assert.Equal(t, ErrorMap{Key: "ErrKeyStartDate", Code: "errCodeDateInvalid", Message: got.ErrorMaps[2].Message}, got.ErrorMaps[3])
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("key,code,message\nonly_key\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("key,code,message\na,A,a\na,B,b\n"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	data, err := Parse(strings.NewReader("key,code,message\ndata_not_found,DATA_NOT_FOUND,data not found\n"))
	require.NoError(t, err)

	src, err := Render(data)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by errorgen. DO NOT EDIT.")
	assert.Contains(t, out, `ErrKeyDataNotFound = "data_not_found"`)
	assert.Contains(t, out, `errDataNotFound = errors.New("data not found")`)
	assert.Contains(t, out, "ErrKeyDataNotFound: {Code: errCodeDataNotFound, ErrorMessage: errDataNotFound},")
}
