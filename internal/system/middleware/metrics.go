/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	ua "github.com/mileusna/useragent"

	"github.com/asgardeo/teamsauth/internal/system/constants"
	"github.com/asgardeo/teamsauth/internal/system/metrics"
)

const otherPathLabel = "/:other"

// statusResponseWriter records the status code written by the wrapped handler.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{ResponseWriter: w}
}

func (w *statusResponseWriter) WriteHeader(code int) {
	if w.statusCode == 0 {
		w.statusCode = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusResponseWriter) code() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

// WithMetrics records request counts and latency for next. Paths are reduced to their first segment
// and only the given roots are labelled individually.
func WithMetrics(name string, collectors *metrics.Collectors, roots []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statusW := newStatusResponseWriter(w)

		defer func(start time.Time) {
			labels := requestLabels(name, r, statusW.code(), roots)
			collectors.HTTPDuration.With(labels).Observe(time.Since(start).Seconds())
			collectors.HTTPRequests.With(labels).Inc()
		}(time.Now())

		next.ServeHTTP(statusW, r)
	})
}

func requestLabels(name string, r *http.Request, code int, roots []string) map[string]string {
	return map[string]string{
		"handler":    name,
		"method":     r.Method,
		"path":       normalizePath(r.URL.Path, roots),
		"status":     strconv.Itoa(code/100) + "XX",
		"user_agent": userAgentName(r),
	}
}

// normalizePath reduces p to its first segment when that segment is a known root.
func normalizePath(p string, roots []string) string {
	trimmed := strings.TrimPrefix(p, "/")
	head, _, _ := strings.Cut(trimmed, "/")
	root := "/" + head
	if slices.Contains(roots, root) {
		return root
	}
	return otherPathLabel
}

// userAgentName returns the browser name of the request, or "unknown".
func userAgentName(r *http.Request) string {
	header := r.Header.Get(constants.UserAgentHeaderName)
	if header == "" {
		return "unknown"
	}
	if name := ua.Parse(header).Name; name != "" {
		return name
	}
	return "unknown"
}
