// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/bitmark-inc/pokedex/fault"
)

// FetchBody - GET a URL and return the response body
//
// a 404 is reported as fault.NotFound and any other non-200 status as
// fault.RemoteRequestFailed, both wrapped with the status and URL
func FetchBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if nil != err {
		return nil, err
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, err
	}

	switch response.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("status: %q on: %q  error: %w", response.Status, url, fault.NotFound)
	default:
		return nil, fmt.Errorf("status: %q on: %q  error: %w", response.Status, url, fault.RemoteRequestFailed)
	}
}
