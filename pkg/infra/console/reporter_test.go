package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/infra/console"
)

func TestReporter_PlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	r := console.NewReporter(&out, &errOut, false)

	r.Sending("http://127.0.0.1:8080")
	r.Signature("sha1=0123")
	r.Response(&model.HookResponse{StatusCode: 200, Body: []byte("OK")})

	gt.Equal(t, out.String(),
		"Sending payload to http://127.0.0.1:8080\n"+
			"X-Hub-Signature: sha1=0123\n"+
			"Response status: 200\n"+
			"Response body: OK\n")
	gt.Equal(t, errOut.Len(), 0)
}

func TestReporter_EmptyBodyIsNotPrinted(t *testing.T) {
	var out, errOut bytes.Buffer
	r := console.NewReporter(&out, &errOut, false)

	r.Response(&model.HookResponse{StatusCode: 204})
	gt.Equal(t, out.String(), "Response status: 204\n")
}

func TestReporter_FailureGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	r := console.NewReporter(&out, &errOut, false)

	r.Failure(errors.New("connection refused"))
	gt.Equal(t, out.Len(), 0)
	gt.Equal(t, errOut.String(), "Request error: connection refused\n")
}

func TestReporter_ColoredOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	r := console.NewReporter(&out, &errOut, true)

	r.Response(&model.HookResponse{StatusCode: 500})
	gt.String(t, out.String()).Contains("\x1b[")
	gt.String(t, out.String()).Contains("500")
}
