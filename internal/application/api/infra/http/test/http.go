package test

import (
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/smartystreets/goconvey/convey" // nolint

	infraTest "github.com/diegobernardes/strata/internal/infra/test"
)

// Runner is used to execute http requests and check if it matchs.
func Runner(
	status int,
	header http.Header,
	handler func(w http.ResponseWriter, r *http.Request),
	req *http.Request,
	expectedBody []byte,
) {
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	So(err, ShouldBeNil)
	So(resp.StatusCode, ShouldEqual, status)
	So(resp.Header, ShouldResemble, header)

	if len(body) == 0 && expectedBody == nil {
		return
	}
	infraTest.CompareJSONBytes(body, expectedBody)
}
