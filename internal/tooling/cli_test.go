// CLASSIFICATION: COMMUNITY
// Filename: cli_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-16
package tooling

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"

	uihttp "webapp/ui/http"
)

func TestRootCommandServesCompiledInConfig(t *testing.T) {
	var got uihttp.Config
	cmd := newRootCommand(func(ctx context.Context, cfg uihttp.Config, out io.Writer) error {
		got = cfg
		_, err := io.WriteString(out, "UI app running at "+uihttp.URL(cfg.Port)+"\n")
		return err
	})
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	assert.NilError(t, cmd.Execute())
	assert.Equal(t, got.Port, uihttp.DefaultPort)
	assert.Equal(t, got.Bind, uihttp.DefaultBind)
	assert.Equal(t, filepath.Base(got.RootDir), uihttp.PublicDirName)
	assert.Check(t, got.Logger != nil)
	assert.Equal(t, out.String(), "UI app running at http://localhost:8080\n")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	called := false
	cmd := newRootCommand(func(context.Context, uihttp.Config, io.Writer) error {
		called = true
		return nil
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"extra"})

	assert.ErrorContains(t, cmd.Execute(), `unknown command "extra"`)
	assert.Check(t, !called)
}

func TestRootCommandPropagatesServeError(t *testing.T) {
	bindErr := errors.New("listen on :8080: bind: address already in use")
	cmd := newRootCommand(func(context.Context, uihttp.Config, io.Writer) error {
		return bindErr
	})
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.Check(t, errors.Is(err, bindErr), "got %v", err)
}

func TestServeStopsOnCancel(t *testing.T) {
	root := fs.NewDir(t, "webapp-cli", fs.WithFile("index.html", "<h1>hi</h1>"))
	defer root.Remove()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	out := new(bytes.Buffer)
	cfg := uihttp.Config{Bind: "127.0.0.1", RootDir: root.Path()}
	assert.NilError(t, serve(ctx, cfg, out))
	assert.Check(t, is.Contains(out.String(), "UI app running at http://localhost:"))
}

func TestSignalContextCancel(t *testing.T) {
	ctx, cancel := newSignalContext(context.Background())
	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
}
