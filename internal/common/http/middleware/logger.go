package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/log"
)

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// maxLoggedBody caps request and response bodies in the access log. Group
// listings and range balances can be large.
const maxLoggedBody = 4096

func readRequestBody(c echo.Context) []byte {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

func truncateBody(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

func maskedRequestHeader(c echo.Context) string {
	headers := make(map[string][]string)
	for k, vals := range c.Request().Header {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			headers[k] = []string{"*****"}
		} else {
			headers[k] = vals
		}
	}

	b, _ := json.Marshal(headers)
	return string(b)
}

// routeParams returns the resolved path parameters of the matched route, such
// as the account, group or recurrence id.
func routeParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	if len(names) == 0 {
		return nil
	}
	values := c.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}

// requestOwner prefers the owner stored by the Owner middleware and falls back
// to the raw header on routes that do not require one.
func requestOwner(c echo.Context) string {
	if owner := commonhttp.RequestOwner(c); owner > 0 {
		return strconv.FormatInt(owner, 10)
	}
	return c.Request().Header.Get(commonhttp.HeaderUserID)
}

func captureResponseBody(c echo.Context) *bytes.Buffer {
	resBody := new(bytes.Buffer)
	mw := io.MultiWriter(c.Response().Writer, resBody)
	writer := &bodyDumpResponseWriter{
		mw,
		c.Response().Writer,
	}
	c.Response().Writer = writer
	return resBody
}

var excludedLogs = []string{
	"/api/health",
	"/metrics",
	"/swagger/*",
	"/debug/pprof/*",
}

// Logger writes one access log line per ledger request. The line carries the
// owner, the matched route and its resource ids. Response bodies are only
// kept for failed requests.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			reqBody := readRequestBody(c)
			resBody := captureResponseBody(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			// the owner middleware swaps the request, read it after next
			req := c.Request()
			res := c.Response()
			route := c.Path()

			fields := []log.Field{
				log.String("method", req.Method),
				log.String("route", route),
				log.String("uri", req.URL.RequestURI()),
				log.String("owner", requestOwner(c)),
				log.Int("status", res.Status),
				log.Int64("response_size", res.Size),
				log.String("latency", latency.String()),
				log.String("request_header", maskedRequestHeader(c)),
			}
			if params := routeParams(c); params != nil {
				fields = append(fields, log.Any("params", params))
			}
			if len(reqBody) > 0 {
				fields = append(fields, log.String("request_body", truncateBody(reqBody)))
			}
			if res.Status >= http.StatusBadRequest {
				fields = append(fields, log.String("response", truncateBody(resBody.Bytes())))
			}

			message := fmt.Sprintf("%d %s %s %v", res.Status, req.Method, route, latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				log.Error(req.Context(), message, fields...)
			case res.Status >= http.StatusBadRequest:
				log.Warn(req.Context(), message, fields...)
			default:
				log.Info(req.Context(), message, fields...)
			}

			return nil
		}
	}
}
