/*
Copyright 2026 Codenotary Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqlbrowser

import (
	"net/http"

	"github.com/codenotary/sqlbrowser/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartMetrics serves the prometheus registry on addr under /metrics.
// The server is then returned and can be stopped using Close().
func StartMetrics(addr string, l logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				l.Debugf("Metrics http server closed")
			} else {
				l.Errorf("Metrics error: %s", err)
			}
		}
	}()

	l.Infof("metrics exposed on http://%s/metrics", addr)

	return server
}
