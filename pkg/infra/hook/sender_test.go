package hook_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/infra/hook"
)

type captured struct {
	method        string
	path          string
	headers       http.Header
	contentLength int64
	body          []byte
}

func newCaptureServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.headers = r.Header.Clone()
		c.contentLength = r.ContentLength
		c.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(server.Close)
	return server, c
}

func mustTarget(t *testing.T, raw string) *model.Target {
	t.Helper()
	target, err := model.ParseTarget(raw)
	gt.NoError(t, err)
	return target
}

func TestSender_Send(t *testing.T) {
	server, c := newCaptureServer(t, http.StatusOK, "OK")
	body := []byte(`{"action":"published","release":{"name":"リリース"}}`)

	resp, err := hook.NewSender().Send(context.Background(), &model.HookRequest{
		Target:     mustTarget(t, server.URL+"/hooks/release"),
		Event:      model.EventTypeRelease,
		DeliveryID: "delivery-1",
		Signature:  "sha1=abc",
		Body:       body,
	})
	gt.NoError(t, err)
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.Equal(t, string(resp.Body), "OK")

	gt.Equal(t, c.method, http.MethodPost)
	gt.Equal(t, c.path, "/hooks/release")
	gt.Equal(t, c.headers.Get("Content-Type"), "application/json")
	gt.Equal(t, c.headers.Get("X-GitHub-Event"), "release")
	gt.Equal(t, c.headers.Get("X-Hub-Signature"), "sha1=abc")
	gt.Equal(t, c.headers.Get("X-GitHub-Delivery"), "delivery-1")
	gt.String(t, c.headers.Get("User-Agent")).Contains("GitHub-Hookshot/")

	gt.Equal(t, string(c.body), string(body))
	gt.Equal(t, c.contentLength, int64(len(body)))
}

func TestSender_ErrorStatusIsNotAnError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusNotFound, "no such hook")

	resp, err := hook.NewSender().Send(context.Background(), &model.HookRequest{
		Target:    mustTarget(t, server.URL),
		Event:     model.EventTypeRelease,
		Signature: "sha1=abc",
		Body:      []byte(`{}`),
	})
	gt.NoError(t, err)
	gt.Equal(t, resp.StatusCode, http.StatusNotFound)
	gt.True(t, resp.Rejected())
	gt.Equal(t, string(resp.Body), "no such hook")
}

func TestSender_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	addr := ln.Addr().String()
	gt.NoError(t, ln.Close())

	start := time.Now()
	_, err = hook.NewSender().Send(context.Background(), &model.HookRequest{
		Target:    mustTarget(t, "http://"+addr+"/"),
		Event:     model.EventTypeRelease,
		Signature: "sha1=abc",
		Body:      []byte(`{}`),
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
	gt.True(t, time.Since(start) < hook.DefaultTimeout)
}

func TestSender_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	_, err := hook.NewSender(hook.WithTimeout(100*time.Millisecond)).Send(context.Background(), &model.HookRequest{
		Target:    mustTarget(t, server.URL),
		Event:     model.EventTypeRelease,
		Signature: "sha1=abc",
		Body:      []byte(`{}`),
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
}

func TestSender_TLSVerification(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	req := &model.HookRequest{
		Target:    mustTarget(t, server.URL),
		Event:     model.EventTypeRelease,
		Signature: "sha1=abc",
		Body:      []byte(`{}`),
	}

	t.Run("self-signed certificate is rejected by default", func(t *testing.T) {
		_, err := hook.NewSender().Send(context.Background(), req)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
	})

	t.Run("insecure mode accepts self-signed certificate", func(t *testing.T) {
		resp, err := hook.NewSender(hook.WithInsecure(true)).Send(context.Background(), req)
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusAccepted)
		gt.Equal(t, len(resp.Body), 0)
	})
}
