package errorgen

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

//go:embed error_map.tmpl
var errorMapTemplate string

type (
	ErrorGen struct {
		ErrorMaps     []ErrorMap
		ErrorKeys     []ErrorKey
		ErrorMessages []ErrorMessage
		ErrorCodes    []ErrorCode
	}

	ErrorMap struct {
		Key     string
		Code    string
		Message string
	}

	ErrorKey struct {
		Key         string
		Description string
	}

	ErrorMessage struct {
		Key         string
		Description string
	}

	ErrorCode struct {
		Key         string
		Description string
	}
)

func identifier(prefix, value string) string {
	return prefix + strings.Join(strings.Split(strcase.ToCamel(value), " "), "")
}

// Parse reads key,code,message rows. The first row is a header.
func Parse(r io.Reader) (ErrorGen, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return ErrorGen{}, fmt.Errorf("read csv: %w", err)
	}

	var (
		isExistErrorMessage = make(map[string]bool)
		isExistErrorCode    = make(map[string]bool)
		isExistErrorKey     = make(map[string]bool)
		data                ErrorGen
	)
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) < 3 {
			return ErrorGen{}, fmt.Errorf("line %d: expected key,code,message", i+1)
		}
		key, code, message := lines[i][0], lines[i][1], lines[i][2]

		errKey := identifier("ErrKey", key)
		if isExistErrorKey[errKey] {
			return ErrorGen{}, fmt.Errorf("line %d: duplicate key %q", i+1, key)
		}
		isExistErrorKey[errKey] = true
		data.ErrorKeys = append(data.ErrorKeys, ErrorKey{Key: errKey, Description: key})

		errCodeKey := identifier("errCode", code)
		if !isExistErrorCode[errCodeKey] {
			data.ErrorCodes = append(data.ErrorCodes, ErrorCode{Key: errCodeKey, Description: code})
		}
		isExistErrorCode[errCodeKey] = true

		errMessageKey := identifier("err", message)
		if !isExistErrorMessage[errMessageKey] {
			data.ErrorMessages = append(data.ErrorMessages, ErrorMessage{Key: errMessageKey, Description: message})
		}
		isExistErrorMessage[errMessageKey] = true

		data.ErrorMaps = append(data.ErrorMaps, ErrorMap{
			Key:     errKey,
			Code:    errCodeKey,
			Message: errMessageKey,
		})
	}
	return data, nil
}

// Render executes the template and gofmts the result.
func Render(data ErrorGen) ([]byte, error) {
	tmpl, err := template.New("error_map").Funcs(sprig.TxtFuncMap()).Parse(errorMapTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var processed bytes.Buffer
	if err := tmpl.Execute(&processed, data); err != nil {
		return nil, fmt.Errorf("unable to parse data into template: %w", err)
	}

	formatted, err := format.Source(processed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format processed template: %w", err)
	}
	return formatted, nil
}

func GenerateErrorMapFromCSV(fileLocation, outputDestination, outputFile string) error {
	csvFile, err := os.Open(fileLocation)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	data, err := Parse(csvFile)
	if err != nil {
		return err
	}

	src, err := Render(data)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outputDestination, outputFile), src, 0o644)
}
